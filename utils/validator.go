// utils/validator.go - Input validation
package utils

import (
	"strconv"
	"strings"
)

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}

// ParseIDs converts form or query values to positive ids. Blank entries are
// skipped; anything else that is not a positive integer is an error.
func ParseIDs(values []string) ([]int, error) {
	ids := make([]int, 0, len(values))
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return nil, &InvalidIDError{Value: raw}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseOptionalID reads a filter id where "", "0" and "None" mean unset.
func ParseOptionalID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "", "0", "None":
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, &InvalidIDError{Value: raw}
	}
	return id, nil
}

// InvalidIDError reports an id value that could not be parsed.
type InvalidIDError struct {
	Value string
}

func (e *InvalidIDError) Error() string {
	return "invalid id '" + e.Value + "'"
}
