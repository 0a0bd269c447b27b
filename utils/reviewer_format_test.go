package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewerEmail(t *testing.T) {
	assert.Equal(t, "ada.lovelace@example.com", ReviewerEmail("Ada", "Lovelace", "example.com"))
	assert.Equal(t, "maryann.van.dyke@corp.io", ReviewerEmail(" Mary Ann ", "van.Dyke", "Corp.IO"))
	assert.Equal(t, ReviewerEmail("ada", "LOVELACE", "example.com"), ReviewerEmail("Ada", "Lovelace", "example.com"))
}

func TestMailtoLink(t *testing.T) {
	link := MailtoLink([]string{"a@example.com", " ", "b@example.com"}, "New Coding Project Review Request")
	assert.Equal(t, "mailto:a@example.com,b@example.com?subject=New%20Coding%20Project%20Review%20Request", link)

	assert.Equal(t, "mailto:a@example.com", MailtoLink([]string{"a@example.com"}, ""))
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs([]string{"3", " 1 ", ""})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, ids)

	_, err = ParseIDs([]string{"2", "x"})
	var invalid *InvalidIDError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "x", invalid.Value)

	_, err = ParseIDs([]string{"-4"})
	assert.Error(t, err)
}

func TestParseOptionalID(t *testing.T) {
	for _, raw := range []string{"", "0", "None", "  "} {
		id, err := ParseOptionalID(raw)
		require.NoError(t, err, raw)
		assert.Zero(t, id, raw)
	}

	id, err := ParseOptionalID("7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	_, err = ParseOptionalID("seven")
	assert.Error(t, err)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "Grace", SanitizeInput("  Gr\x00ace \n"))
}
