package services

import (
	"context"
	"errors"
	"log"

	"review-requester/config"
	"review-requester/models"
	"review-requester/utils"

	"gorm.io/gorm"
)

// SeedSummary reports what a seeding run changed.
type SeedSummary struct {
	LanguagesCreated int
	LanguagesSkipped int
	ReviewersCreated int
	ReviewersSkipped int
}

// SeedService loads the static language list and reviewer roster.
type SeedService struct {
	db          *gorm.DB
	emailDomain string
}

func NewSeedService(db *gorm.DB, emailDomain string) *SeedService {
	if db == nil {
		db = config.DB
	}
	return &SeedService{db: db, emailDomain: emailDomain}
}

// Seed inserts languages by name and reviewers by derived email, skipping
// anything that already exists. Running it twice changes nothing the second time.
func (s *SeedService) Seed(ctx context.Context, data *config.SeedData) (*SeedSummary, error) {
	summary := &SeedSummary{}
	if data == nil {
		return summary, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, raw := range data.Languages {
			name := utils.SanitizeInput(raw)
			if name == "" {
				continue
			}
			_, created, err := ensureLanguage(tx, name)
			if err != nil {
				return err
			}
			if created {
				summary.LanguagesCreated++
			} else {
				summary.LanguagesSkipped++
			}
		}

		for _, entry := range data.Reviewers {
			created, err := s.seedReviewer(tx, entry, summary)
			if err != nil {
				return err
			}
			if created {
				summary.ReviewersCreated++
			} else {
				summary.ReviewersSkipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *SeedService) seedReviewer(tx *gorm.DB, entry config.SeedReviewer, summary *SeedSummary) (bool, error) {
	first, last, email, err := reviewerIdentity(entry.FirstName, entry.LastName, s.emailDomain)
	if err != nil {
		log.Printf("Warning: seed: skipping reviewer %q %q: %v", entry.FirstName, entry.LastName, err)
		return false, nil
	}

	var existing models.Reviewer
	err = tx.Where("email_address = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	languages := make([]models.ReviewLanguage, 0, len(entry.Languages))
	for _, raw := range entry.Languages {
		name := utils.SanitizeInput(raw)
		if name == "" {
			continue
		}
		language, created, err := ensureLanguage(tx, name)
		if err != nil {
			return false, err
		}
		if created {
			summary.LanguagesCreated++
		}
		languages = append(languages, language)
	}

	reviewer := models.Reviewer{
		FirstName:    first,
		LastName:     last,
		EmailAddress: email,
		Languages:    languages,
	}
	if err := tx.Omit("Languages.*").Create(&reviewer).Error; err != nil {
		return false, translateWriteError(err, "reviewer "+email)
	}
	return true, nil
}
