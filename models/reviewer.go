package models

import "time"

// Reviewer represents the reviewer table
type Reviewer struct {
	ID           int    `gorm:"primaryKey;column:id" json:"id"`
	FirstName    string `gorm:"column:first_name;size:50;not null;uniqueIndex:name_uix,priority:2" json:"first_name"`
	LastName     string `gorm:"column:last_name;size:50;not null;uniqueIndex:name_uix,priority:1" json:"last_name"`
	EmailAddress string `gorm:"column:email_address;size:50;not null;unique" json:"email_address"`

	// Relations
	Languages []ReviewLanguage `gorm:"many2many:reviewer_languages;joinForeignKey:ReviewerID;joinReferences:ReviewLanguageID" json:"languages"`
}

// ReviewLanguage represents the review_language table
type ReviewLanguage struct {
	ID   int    `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;size:50;not null;unique" json:"name"`
}

// ReviewRequest records one reviewer being asked to review code in one language.
type ReviewRequest struct {
	ID               int       `gorm:"primaryKey;column:id" json:"id"`
	ReviewerID       int       `gorm:"column:reviewer_id;not null;index:reviewer_ix,priority:1" json:"reviewer_id"`
	ReviewLanguageID int       `gorm:"column:review_language_id;not null;index:reviewer_ix,priority:2" json:"review_language_id"`
	ReviewDate       time.Time `gorm:"column:review_date;not null;index:review_date_ix" json:"review_date"`

	// Relations
	Reviewer       *Reviewer       `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"-"`
	ReviewLanguage *ReviewLanguage `gorm:"foreignKey:ReviewLanguageID" json:"-"`
}

// TableName overrides
func (Reviewer) TableName() string {
	return "reviewer"
}

func (ReviewLanguage) TableName() string {
	return "review_language"
}

func (ReviewRequest) TableName() string {
	return "review_request"
}

// FullName returns "First Last".
func (r *Reviewer) FullName() string {
	return r.FirstName + " " + r.LastName
}

// LanguageIDs returns the ids of the reviewer's languages in stored order.
func (r *Reviewer) LanguageIDs() []int {
	ids := make([]int, 0, len(r.Languages))
	for _, lang := range r.Languages {
		ids = append(ids, lang.ID)
	}
	return ids
}

// HasLanguage reports whether the reviewer is linked to the language id.
func (r *Reviewer) HasLanguage(languageID int) bool {
	for _, lang := range r.Languages {
		if lang.ID == languageID {
			return true
		}
	}
	return false
}

// All returns every model for AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{
		&ReviewLanguage{},
		&Reviewer{},
		&ReviewRequest{},
	}
}
