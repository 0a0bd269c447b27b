package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"review-requester/config"
	"review-requester/models"
	"review-requester/utils"

	"gorm.io/gorm"
)

type LanguageService struct {
	db *gorm.DB
}

func NewLanguageService(db *gorm.DB) *LanguageService {
	if db == nil {
		db = config.DB
	}
	return &LanguageService{db: db}
}

// List returns all languages ordered by name.
func (s *LanguageService) List(ctx context.Context) ([]models.ReviewLanguage, error) {
	languages := []models.ReviewLanguage{}
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (s *LanguageService) Get(ctx context.Context, id int) (*models.ReviewLanguage, error) {
	var language models.ReviewLanguage
	if err := s.db.WithContext(ctx).First(&language, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("language %d", id)
		}
		return nil, err
	}
	return &language, nil
}

// Create inserts a language. There is no lookup beforehand; a duplicate name
// is rejected by the unique index and reported as ErrConflict.
func (s *LanguageService) Create(ctx context.Context, name string) (*models.ReviewLanguage, error) {
	name = utils.SanitizeInput(name)
	if name == "" {
		return nil, badRequest("name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, badRequest("name is limited to %d characters", maxNameLength)
	}

	language := models.ReviewLanguage{Name: name}
	if err := s.db.WithContext(ctx).Create(&language).Error; err != nil {
		return nil, translateWriteError(err, "language "+name)
	}
	return &language, nil
}

// ensureLanguage returns the language called name, creating it when missing.
func ensureLanguage(tx *gorm.DB, name string) (models.ReviewLanguage, bool, error) {
	var language models.ReviewLanguage
	err := tx.Where("name = ?", name).First(&language).Error
	if err == nil {
		return language, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return language, false, err
	}

	language = models.ReviewLanguage{Name: name}
	if err := tx.Create(&language).Error; err != nil {
		return language, false, translateWriteError(err, "language "+name)
	}
	return language, true, nil
}
