// Package templates holds the server-rendered pages.
package templates

import (
	"embed"
	"html/template"
	"time"

	"review-requester/models"
)

//go:embed *.html
var files embed.FS

const dateLayout = "2006-01-02 15:04"

// Load parses every page. Template names are the file names, e.g. "reviewers.html".
func Load() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files, "*.html"))
}

// Funcs are the helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"date":      formatDate,
		"nextOrder": nextOrder,
		"add1":      func(i int) int { return i + 1 },
	}
}

func formatDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return "Never"
		}
		return t.UTC().Format(dateLayout)
	case models.AggregateTime:
		if !t.Valid {
			return "Never"
		}
		return t.Time.UTC().Format(dateLayout)
	default:
		return ""
	}
}

// nextOrder flips the direction when the column is already the sort key.
func nextOrder(column, currentSort, currentOrder string) string {
	if column == currentSort && currentOrder == "asc" {
		return "desc"
	}
	return "asc"
}
