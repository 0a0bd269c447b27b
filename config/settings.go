package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultSQLURL      = "sqlite://review-requester.db"
	defaultPort        = "8080"
	defaultEmailDomain = "example.com"

	// ReviewMailSubject is the subject used for the mailto link and notification mail.
	ReviewMailSubject = "New Coding Project Review Request"
)

// Settings holds runtime configuration read from the environment.
type Settings struct {
	SQLURL         string
	Port           string
	GinMode        string
	Environment    string
	DebugSQL       bool
	EmailDomain    string
	SeedFile       string
	JWTSecret      string
	JWTExpireHours int
	MonitorToken   string
	LogDir         string
	AllowedOrigins []string
}

// LoadSettings reads the environment. Call godotenv.Load first to pick up a .env file.
func LoadSettings() *Settings {
	return &Settings{
		SQLURL:         getEnv("APP_SQL_URL", defaultSQLURL),
		Port:           getEnv("SERVER_PORT", defaultPort),
		GinMode:        os.Getenv("GIN_MODE"),
		Environment:    strings.ToLower(os.Getenv("ENVIRONMENT")),
		DebugSQL:       strings.ToLower(os.Getenv("DEBUG_SQL")) == "true",
		EmailDomain:    getEnv("REVIEWER_EMAIL_DOMAIN", defaultEmailDomain),
		SeedFile:       os.Getenv("SEED_FILE"),
		JWTSecret:      os.Getenv("API_JWT_SECRET"),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		MonitorToken:   os.Getenv("MONITOR_TOKEN"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// IsRelease reports whether gin should run in release mode.
func (s *Settings) IsRelease() bool {
	return s.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
