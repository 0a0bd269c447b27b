package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"review-requester/config"
	"review-requester/models"
	"review-requester/utils"

	"gorm.io/gorm"
)

const maxNameLength = 50

// ReviewerFilter selects and orders the reviewer directory.
type ReviewerFilter struct {
	LanguageID int
	Sort       string
	Order      string
}

// ReviewerInput is the writable part of a reviewer.
type ReviewerInput struct {
	FirstName   string
	LastName    string
	LanguageIDs []int
}

var reviewerSortColumns = map[string]string{
	"first_name":    "reviewer.first_name",
	"last_name":     "reviewer.last_name",
	"email_address": "reviewer.email_address",
	"review_count":  "review_count",
	"last_review":   "last_review",
}

// NormalizeSort returns a supported sort key and order, falling back to last_name asc.
func NormalizeSort(sortKey, order string) (string, string) {
	sortKey = strings.TrimSpace(sortKey)
	if _, ok := reviewerSortColumns[sortKey]; !ok {
		sortKey = "last_name"
	}
	if strings.ToLower(strings.TrimSpace(order)) == "desc" {
		return sortKey, "desc"
	}
	return sortKey, "asc"
}

type ReviewerService struct {
	db          *gorm.DB
	emailDomain string
}

func NewReviewerService(db *gorm.DB, emailDomain string) *ReviewerService {
	if db == nil {
		db = config.DB
	}
	return &ReviewerService{db: db, emailDomain: emailDomain}
}

// EmailFor derives the address a reviewer with these names would get.
func (s *ReviewerService) EmailFor(firstName, lastName string) string {
	return utils.ReviewerEmail(firstName, lastName, s.emailDomain)
}

// List returns every reviewer with review_count and last_review, optionally
// restricted to reviewers who know filter.LanguageID.
func (s *ReviewerService) List(ctx context.Context, filter ReviewerFilter) ([]models.ReviewerSummary, error) {
	sortKey, order := NormalizeSort(filter.Sort, filter.Order)

	q := s.db.WithContext(ctx).
		Table("reviewer").
		Select("reviewer.id, reviewer.first_name, reviewer.last_name, reviewer.email_address, " +
			"COUNT(review_request.id) AS review_count, MAX(review_request.review_date) AS last_review").
		Joins("LEFT JOIN review_request ON review_request.reviewer_id = reviewer.id").
		Group("reviewer.id, reviewer.first_name, reviewer.last_name, reviewer.email_address")

	if filter.LanguageID > 0 {
		speakers := s.db.Table("reviewer_languages").
			Select("reviewer_id").
			Where("review_language_id = ?", filter.LanguageID)
		q = q.Where("reviewer.id IN (?)", speakers)
	}

	var rows []models.ReviewerSummary
	if err := q.Order(reviewerSortColumns[sortKey] + " " + order + ", reviewer.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.ReviewerSummary{}, nil
	}

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var reviewers []models.Reviewer
	if err := s.db.WithContext(ctx).Preload("Languages").Where("id IN ?", ids).Find(&reviewers).Error; err != nil {
		return nil, err
	}
	byID := make(map[int][]models.ReviewLanguage, len(reviewers))
	for _, r := range reviewers {
		byID[r.ID] = sortedLanguages(r.Languages)
	}
	for i := range rows {
		rows[i].Languages = byID[rows[i].ID]
		if rows[i].Languages == nil {
			rows[i].Languages = []models.ReviewLanguage{}
		}
	}

	return rows, nil
}

// Get loads one reviewer with languages.
func (s *ReviewerService) Get(ctx context.Context, id int) (*models.Reviewer, error) {
	var reviewer models.Reviewer
	if err := s.db.WithContext(ctx).Preload("Languages").First(&reviewer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("reviewer %d", id)
		}
		return nil, err
	}
	reviewer.Languages = sortedLanguages(reviewer.Languages)
	return &reviewer, nil
}

// Create inserts a reviewer whose email is derived from the names. A reviewer
// with the same email is a conflict and is left untouched.
func (s *ReviewerService) Create(ctx context.Context, in ReviewerInput) (*models.Reviewer, error) {
	first, last, email, err := s.prepare(in)
	if err != nil {
		return nil, err
	}

	var created models.Reviewer
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Reviewer{}).Where("email_address = ?", email).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return conflict("reviewer with email %s", email)
		}

		languages, err := findLanguages(tx, in.LanguageIDs)
		if err != nil {
			return err
		}

		created = models.Reviewer{
			FirstName:    first,
			LastName:     last,
			EmailAddress: email,
			Languages:    languages,
		}
		if err := tx.Omit("Languages.*").Create(&created).Error; err != nil {
			return translateWriteError(err, "reviewer "+email)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created.Languages = sortedLanguages(created.Languages)
	return &created, nil
}

// Update overwrites the names (re-deriving the email) and replaces the
// language set wholesale.
func (s *ReviewerService) Update(ctx context.Context, id int, in ReviewerInput) (*models.Reviewer, error) {
	first, last, email, err := s.prepare(in)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reviewer models.Reviewer
		if err := tx.First(&reviewer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("reviewer %d", id)
			}
			return err
		}

		var clash int64
		if err := tx.Model(&models.Reviewer{}).
			Where("email_address = ? AND id <> ?", email, id).
			Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return conflict("reviewer with email %s", email)
		}

		languages, err := findLanguages(tx, in.LanguageIDs)
		if err != nil {
			return err
		}

		if err := tx.Model(&reviewer).Updates(map[string]interface{}{
			"first_name":    first,
			"last_name":     last,
			"email_address": email,
		}).Error; err != nil {
			return translateWriteError(err, "reviewer "+email)
		}

		assoc := tx.Model(&reviewer).Association("Languages")
		if len(languages) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(languages)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the reviewer, the reviewer_languages rows and the
// reviewer's review history in one transaction.
func (s *ReviewerService) Delete(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reviewer models.Reviewer
		if err := tx.First(&reviewer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("reviewer %d", id)
			}
			return err
		}

		if err := tx.Model(&reviewer).Association("Languages").Clear(); err != nil {
			return err
		}
		if err := tx.Where("reviewer_id = ?", id).Delete(&models.ReviewRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&reviewer).Error
	})
}

func (s *ReviewerService) prepare(in ReviewerInput) (first, last, email string, err error) {
	return reviewerIdentity(in.FirstName, in.LastName, s.emailDomain)
}

// reviewerIdentity trims the names and derives the email. Any name the
// columns can hold is accepted; only empty names and values over
// maxNameLength characters are rejected.
func reviewerIdentity(firstName, lastName, domain string) (first, last, email string, err error) {
	first = utils.SanitizeInput(firstName)
	last = utils.SanitizeInput(lastName)
	if first == "" || last == "" {
		return "", "", "", badRequest("first_name and last_name are required")
	}
	if utf8.RuneCountInString(first) > maxNameLength || utf8.RuneCountInString(last) > maxNameLength {
		return "", "", "", badRequest("names are limited to %d characters", maxNameLength)
	}
	email = utils.ReviewerEmail(first, last, domain)
	if utf8.RuneCountInString(email) > maxNameLength {
		return "", "", "", badRequest("derived email %s exceeds %d characters", email, maxNameLength)
	}
	return first, last, email, nil
}

// findLanguages loads the languages for ids, failing when any id is unknown.
func findLanguages(tx *gorm.DB, ids []int) ([]models.ReviewLanguage, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []models.ReviewLanguage{}, nil
	}

	var languages []models.ReviewLanguage
	if err := tx.Where("id IN ?", ids).Find(&languages).Error; err != nil {
		return nil, err
	}
	if len(languages) != len(ids) {
		return nil, badRequest("unknown language id in %v", ids)
	}
	return languages, nil
}

func sortedLanguages(languages []models.ReviewLanguage) []models.ReviewLanguage {
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})
	return languages
}
