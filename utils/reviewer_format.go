package utils

import (
	"net/url"
	"strings"
)

// ReviewerEmail derives the reviewer address "first.last@domain". Names are
// lower-cased and inner whitespace is dropped so the result is stable for
// the same pair of names.
func ReviewerEmail(firstName, lastName, domain string) string {
	local := compact(firstName) + "." + compact(lastName)
	return local + "@" + strings.ToLower(strings.TrimSpace(domain))
}

func compact(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// MailtoLink builds a mailto: URL addressed to every recipient with the given subject.
func MailtoLink(recipients []string, subject string) string {
	parts := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r = strings.TrimSpace(r); r != "" {
			parts = append(parts, r)
		}
	}
	link := "mailto:" + strings.Join(parts, ",")
	if subject != "" {
		link += "?subject=" + url.PathEscape(subject)
	}
	return link
}
