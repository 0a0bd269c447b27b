package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ReviewerSummary is a reviewer row annotated with review statistics.
type ReviewerSummary struct {
	ID           int              `gorm:"column:id" json:"id"`
	FirstName    string           `gorm:"column:first_name" json:"first_name"`
	LastName     string           `gorm:"column:last_name" json:"last_name"`
	EmailAddress string           `gorm:"column:email_address" json:"email_address"`
	ReviewCount  int64            `gorm:"column:review_count" json:"review_count"`
	LastReview   AggregateTime    `gorm:"column:last_review" json:"last_review"`
	Languages    []ReviewLanguage `gorm:"-" json:"languages"`
}

// ReviewerHistoryEntry is one review request of a reviewer with its language name.
type ReviewerHistoryEntry struct {
	ID           int       `gorm:"column:id" json:"id"`
	ReviewDate   time.Time `gorm:"column:review_date" json:"review_date"`
	LanguageID   int       `gorm:"column:language_id" json:"language_id"`
	LanguageName string    `gorm:"column:language_name" json:"language_name"`
}

// LanguageHistoryEntry is one review request in a language with its reviewer name.
type LanguageHistoryEntry struct {
	ID         int       `gorm:"column:id" json:"id"`
	ReviewDate time.Time `gorm:"column:review_date" json:"review_date"`
	ReviewerID int       `gorm:"column:reviewer_id" json:"reviewer_id"`
	FirstName  string    `gorm:"column:first_name" json:"first_name"`
	LastName   string    `gorm:"column:last_name" json:"last_name"`
}

// LanguageTotal is a language leaderboard row.
type LanguageTotal struct {
	LanguageID   int    `gorm:"column:language_id" json:"language_id"`
	LanguageName string `gorm:"column:language_name" json:"language_name"`
	ReviewCount  int64  `gorm:"column:review_count" json:"review_count"`
}

// ReviewerTotal is a reviewer leaderboard row.
type ReviewerTotal struct {
	ReviewerID  int    `gorm:"column:reviewer_id" json:"reviewer_id"`
	FirstName   string `gorm:"column:first_name" json:"first_name"`
	LastName    string `gorm:"column:last_name" json:"last_name"`
	ReviewCount int64  `gorm:"column:review_count" json:"review_count"`
}

// AggregateTime scans the result of MAX() over a datetime column. MySQL
// returns a time.Time, SQLite returns the stored text because aggregate
// columns carry no declared type.
type AggregateTime struct {
	Time  time.Time
	Valid bool
}

var aggregateTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339Nano,
}

// Scan implements sql.Scanner.
func (t *AggregateTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v, true
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into AggregateTime", value)
	}
}

func (t *AggregateTime) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time, t.Valid = time.Time{}, false
		return nil
	}
	for _, layout := range aggregateTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed, true
			return nil
		}
	}
	return fmt.Errorf("unrecognised time value %q", s)
}

// Value implements driver.Valuer.
func (t AggregateTime) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time, nil
}

// MarshalJSON renders null when no review exists.
func (t AggregateTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time)
}
