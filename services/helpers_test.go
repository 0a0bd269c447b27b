package services

import (
	"context"
	"testing"
	"time"

	"review-requester/config"
	"review-requester/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testDomain = "example.com"

// newTestDB opens a migrated in-memory SQLite database. A single connection
// keeps every query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB("sqlite://:memory:", logger.Silent)
	require.NoError(t, err, "Failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db), "Failed to migrate schema")
	return db
}

func seedLanguages(t *testing.T, db *gorm.DB, names ...string) map[string]models.ReviewLanguage {
	t.Helper()
	out := make(map[string]models.ReviewLanguage, len(names))
	for _, name := range names {
		lang := models.ReviewLanguage{Name: name}
		require.NoError(t, db.Create(&lang).Error)
		out[name] = lang
	}
	return out
}

func mustCreateReviewer(t *testing.T, svc *ReviewerService, first, last string, languageIDs ...int) *models.Reviewer {
	t.Helper()
	r, err := svc.Create(context.Background(), ReviewerInput{FirstName: first, LastName: last, LanguageIDs: languageIDs})
	require.NoError(t, err)
	return r
}

func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Minute)
		return now
	}
}

func summaryIDs(rows []models.ReviewerSummary) []int {
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}
