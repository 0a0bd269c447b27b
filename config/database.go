package config

import (
	"fmt"
	"log"
	"strings"

	"review-requester/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the database named by settings.SQLURL, migrates the schema and
// stores the handle in DB.
func InitDB(settings *Settings) {
	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Info
	if settings.Environment == "production" && !settings.DebugSQL {
		logLevel = logger.Warn
	}

	db, err := OpenDB(settings.SQLURL, logLevel)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	DB = db
	log.Println("Database connected successfully")
}

// OpenDB selects the gorm dialector from the URL scheme: mysql:// or sqlite://.
// A bare value without a scheme is treated as a MySQL DSN.
func OpenDB(url string, level logger.LogLevel) (*gorm.DB, error) {
	dialector, err := dialectorFor(url)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: level},
		),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func dialectorFor(url string) (gorm.Dialector, error) {
	url = strings.TrimSpace(url)
	switch {
	case url == "":
		return nil, fmt.Errorf("database url is empty")
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(url, "sqlite://"))), nil
	case strings.HasPrefix(url, "mysql://"):
		return mysql.Open(mysqlDSN(strings.TrimPrefix(url, "mysql://"))), nil
	case strings.Contains(url, "://"):
		return nil, fmt.Errorf("unsupported database url scheme in %q", url)
	default:
		return mysql.Open(mysqlDSN(url)), nil
	}
}

// sqliteDSN turns on foreign keys, which SQLite leaves off per connection.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") || strings.Contains(path, "_fk") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// mysqlDSN adds the parameters gorm needs to scan DATETIME into time.Time.
func mysqlDSN(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "charset=utf8mb4&parseTime=True&loc=UTC"
}

// Migrate creates or updates the tables, indexes and the reviewer_languages join table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
