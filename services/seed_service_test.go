package services

import (
	"context"
	"strings"
	"testing"

	"review-requester/config"
	"review-requester/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewSeedService(db, testDomain)

	data, err := config.ParseSeedData([]byte(`
languages: [Go, Python, " ", Go]
reviewers:
  - first_name: Ada
    last_name: Lovelace
    languages: [Python, Haskell]
  - first_name: Ken
    last_name: Thompson
    languages: [Go]
  - first_name: ""
    last_name: Nobody
`))
	require.NoError(t, err)

	first, err := svc.Seed(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 3, first.LanguagesCreated, "Go, Python and Haskell")
	assert.Equal(t, 1, first.LanguagesSkipped)
	assert.Equal(t, 2, first.ReviewersCreated)

	second, err := svc.Seed(ctx, data)
	require.NoError(t, err)
	assert.Zero(t, second.LanguagesCreated)
	assert.Zero(t, second.ReviewersCreated)
	assert.Equal(t, 3, second.ReviewersSkipped)

	var languages, reviewers int64
	require.NoError(t, db.Model(&models.ReviewLanguage{}).Count(&languages).Error)
	require.NoError(t, db.Model(&models.Reviewer{}).Count(&reviewers).Error)
	assert.EqualValues(t, 3, languages)
	assert.EqualValues(t, 2, reviewers)

	var ada models.Reviewer
	require.NoError(t, db.Preload("Languages").Where("email_address = ?", "ada.lovelace@example.com").First(&ada).Error)
	assert.Len(t, ada.Languages, 2)
}

func TestSeedEmbeddedRoster(t *testing.T) {
	data, err := config.LoadSeedData("")
	require.NoError(t, err)
	require.NotEmpty(t, data.Languages)
	require.NotEmpty(t, data.Reviewers)

	summary, err := NewSeedService(newTestDB(t), testDomain).Seed(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, len(data.Reviewers), summary.ReviewersCreated)
}

func TestSeedSkipsInvalidNames(t *testing.T) {
	db := newTestDB(t)
	data := &config.SeedData{
		Languages: []string{"Go"},
		Reviewers: []config.SeedReviewer{
			{FirstName: "Conan", LastName: "O'Brien", Languages: []string{"Go"}},
			{FirstName: "Ada", LastName: strings.Repeat("l", 60), Languages: []string{"Go"}},
			{FirstName: strings.Repeat("g", 30), LastName: strings.Repeat("h", 30)},
		},
	}

	summary, err := NewSeedService(db, testDomain).Seed(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ReviewersCreated)
	assert.Equal(t, 2, summary.ReviewersSkipped)

	var reviewers []models.Reviewer
	require.NoError(t, db.Find(&reviewers).Error)
	require.Len(t, reviewers, 1)
	assert.Equal(t, "conan.o'brien@example.com", reviewers[0].EmailAddress)
}
