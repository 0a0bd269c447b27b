package services

import (
	"context"
	"errors"
	"time"

	"review-requester/config"
	"review-requester/models"

	"gorm.io/gorm"
)

// ReviewFilter narrows the review list; zero values mean no restriction.
type ReviewFilter struct {
	ReviewerID int
	LanguageID int
}

// ReviewInput is a single review request posted through the API.
type ReviewInput struct {
	ReviewerID       int
	ReviewLanguageID int
	ReviewDate       *time.Time
}

// Submission is the outcome of assigning one language review to several reviewers.
type Submission struct {
	Language  models.ReviewLanguage
	Reviewers []models.Reviewer
	Requests  []models.ReviewRequest
}

// Emails returns the selected reviewers' addresses in submission order.
func (s *Submission) Emails() []string {
	emails := make([]string, 0, len(s.Reviewers))
	for _, r := range s.Reviewers {
		emails = append(emails, r.EmailAddress)
	}
	return emails
}

type ReviewService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReviewService(db *gorm.DB) *ReviewService {
	if db == nil {
		db = config.DB
	}
	return &ReviewService{db: db, now: time.Now}
}

// Submit creates one review request per reviewer for languageID. Either all
// rows are committed or none.
func (s *ReviewService) Submit(ctx context.Context, reviewerIDs []int, languageID int) (*Submission, error) {
	reviewerIDs = uniqueIDs(reviewerIDs)
	if len(reviewerIDs) == 0 {
		return nil, badRequest("at least one reviewer is required")
	}
	if languageID <= 0 {
		return nil, badRequest("language is required")
	}

	submission := &Submission{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&submission.Language, languageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return badRequest("unknown language %d", languageID)
			}
			return err
		}

		var reviewers []models.Reviewer
		if err := tx.Where("id IN ?", reviewerIDs).Find(&reviewers).Error; err != nil {
			return err
		}
		if len(reviewers) != len(reviewerIDs) {
			return badRequest("unknown reviewer id in %v", reviewerIDs)
		}
		byID := make(map[int]models.Reviewer, len(reviewers))
		for _, r := range reviewers {
			byID[r.ID] = r
		}

		reviewDate := s.now().UTC()
		requests := make([]models.ReviewRequest, 0, len(reviewerIDs))
		for _, id := range reviewerIDs {
			submission.Reviewers = append(submission.Reviewers, byID[id])
			requests = append(requests, models.ReviewRequest{
				ReviewerID:       id,
				ReviewLanguageID: languageID,
				ReviewDate:       reviewDate,
			})
		}
		if err := tx.Create(&requests).Error; err != nil {
			return translateWriteError(err, "review request")
		}
		submission.Requests = requests
		return nil
	})
	if err != nil {
		return nil, err
	}
	return submission, nil
}

// Create records a single review request. The review date defaults to now.
func (s *ReviewService) Create(ctx context.Context, in ReviewInput) (*models.ReviewRequest, error) {
	if in.ReviewerID <= 0 || in.ReviewLanguageID <= 0 {
		return nil, badRequest("reviewer_id and review_language_id are required")
	}

	request := models.ReviewRequest{
		ReviewerID:       in.ReviewerID,
		ReviewLanguageID: in.ReviewLanguageID,
		ReviewDate:       s.now().UTC(),
	}
	if in.ReviewDate != nil && !in.ReviewDate.IsZero() {
		request.ReviewDate = in.ReviewDate.UTC()
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Reviewer{}).Where("id = ?", in.ReviewerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return badRequest("unknown reviewer %d", in.ReviewerID)
		}
		if err := tx.Model(&models.ReviewLanguage{}).Where("id = ?", in.ReviewLanguageID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return badRequest("unknown language %d", in.ReviewLanguageID)
		}
		if err := tx.Create(&request).Error; err != nil {
			return translateWriteError(err, "review request")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns review requests newest first.
func (s *ReviewService) List(ctx context.Context, filter ReviewFilter) ([]models.ReviewRequest, error) {
	q := s.db.WithContext(ctx).Model(&models.ReviewRequest{})
	if filter.ReviewerID > 0 {
		q = q.Where("reviewer_id = ?", filter.ReviewerID)
	}
	if filter.LanguageID > 0 {
		q = q.Where("review_language_id = ?", filter.LanguageID)
	}

	requests := []models.ReviewRequest{}
	if err := q.Order("review_date DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
