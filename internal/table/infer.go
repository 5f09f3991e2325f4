package table

import (
	"errors"
	"strings"
)

// ErrTooFewColumns indicates a table too narrow for fallback inference:
// the first two columns stand in for identifier and name when no header
// matches, so at least two must exist.
var ErrTooFewColumns = errors.New("table needs at least two columns")

// Header substrings that mark a column as the student identifier or the
// student name.
var (
	identifierPatterns = []string{"roll", "enrollment", "id", "number"}
	namePatterns       = []string{"name", "student"}
)

// InferColumns decides which columns hold the student identifier and the
// student name. It scans the headers once, in order; per column the
// identifier slot is tested first, and the name test is skipped for a
// column that was eligible for the still-open identifier slot. First
// qualifying column wins each slot. A column matching both pattern sets
// therefore takes the identifier role and never both.
//
// Unresolved slots fall back to the first and second column overall.
func InferColumns(names []string) (idCol, nameCol string, err error) {
	idIdx, nameIdx := -1, -1

	for i, n := range names {
		lower := strings.ToLower(n)
		if idIdx < 0 && containsAny(lower, identifierPatterns) {
			idIdx = i
		} else if nameIdx < 0 && containsAny(lower, namePatterns) {
			nameIdx = i
		}
	}

	if idIdx < 0 {
		if len(names) < 1 {
			return "", "", ErrTooFewColumns
		}
		idIdx = 0
	}
	if nameIdx < 0 {
		if len(names) < 2 {
			return "", "", ErrTooFewColumns
		}
		nameIdx = 1
	}

	return names[idIdx], names[nameIdx], nil
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
