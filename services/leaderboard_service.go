package services

import (
	"context"

	"review-requester/config"
	"review-requester/models"

	"gorm.io/gorm"
)

// LeaderboardService answers the read-only history and totals views.
type LeaderboardService struct {
	db        *gorm.DB
	reviewers *ReviewerService
	languages *LanguageService
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	if db == nil {
		db = config.DB
	}
	return &LeaderboardService{
		db:        db,
		reviewers: NewReviewerService(db, ""),
		languages: NewLanguageService(db),
	}
}

// ReviewerHistory returns the reviewer and their requests, newest first.
func (s *LeaderboardService) ReviewerHistory(ctx context.Context, reviewerID int) (*models.Reviewer, []models.ReviewerHistoryEntry, error) {
	reviewer, err := s.reviewers.Get(ctx, reviewerID)
	if err != nil {
		return nil, nil, err
	}

	entries := []models.ReviewerHistoryEntry{}
	err = s.db.WithContext(ctx).
		Table("review_request").
		Select("review_request.id, review_request.review_date, " +
			"review_language.id AS language_id, review_language.name AS language_name").
		Joins("JOIN review_language ON review_language.id = review_request.review_language_id").
		Where("review_request.reviewer_id = ?", reviewerID).
		Order("review_request.review_date DESC, review_request.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, nil, err
	}
	return reviewer, entries, nil
}

// LanguageHistory returns the language and its requests with reviewer names, newest first.
func (s *LeaderboardService) LanguageHistory(ctx context.Context, languageID int) (*models.ReviewLanguage, []models.LanguageHistoryEntry, error) {
	language, err := s.languages.Get(ctx, languageID)
	if err != nil {
		return nil, nil, err
	}

	entries := []models.LanguageHistoryEntry{}
	err = s.db.WithContext(ctx).
		Table("review_request").
		Select("review_request.id, review_request.review_date, " +
			"reviewer.id AS reviewer_id, reviewer.first_name, reviewer.last_name").
		Joins("JOIN reviewer ON reviewer.id = review_request.reviewer_id").
		Where("review_request.review_language_id = ?", languageID).
		Order("review_request.review_date DESC, review_request.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, nil, err
	}
	return language, entries, nil
}

// LanguageTotals counts requests per language, busiest first. Languages
// without requests are included with zero.
func (s *LeaderboardService) LanguageTotals(ctx context.Context) ([]models.LanguageTotal, error) {
	totals := []models.LanguageTotal{}
	err := s.db.WithContext(ctx).
		Table("review_language").
		Select("review_language.id AS language_id, review_language.name AS language_name, " +
			"COUNT(review_request.id) AS review_count").
		Joins("LEFT JOIN review_request ON review_request.review_language_id = review_language.id").
		Group("review_language.id, review_language.name").
		Order("review_count DESC, review_language.name ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// ReviewerTotals counts requests per reviewer, busiest first.
func (s *LeaderboardService) ReviewerTotals(ctx context.Context) ([]models.ReviewerTotal, error) {
	totals := []models.ReviewerTotal{}
	err := s.db.WithContext(ctx).
		Table("reviewer").
		Select("reviewer.id AS reviewer_id, reviewer.first_name, reviewer.last_name, " +
			"COUNT(review_request.id) AS review_count").
		Joins("LEFT JOIN review_request ON review_request.reviewer_id = reviewer.id").
		Group("reviewer.id, reviewer.first_name, reviewer.last_name").
		Order("review_count DESC, reviewer.last_name ASC, reviewer.first_name ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
