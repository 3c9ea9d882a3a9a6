package utils

import (
	"regexp"
	"strings"
)

// EscapeRegex quotes every regex metacharacter so user input can be placed
// inside a Mongo $regex safely.
func EscapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}

// IsPlaceholder reports whether a filter value is empty or one of the
// dropdown placeholders that mean "no filter".
func IsPlaceholder(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	switch strings.ToLower(v) {
	case strings.ToLower(SELECT_IMPORTER), strings.ToLower(SELECT_ICD), strings.ToLower(ALL_ICDS), ALL:
		return true
	}
	return false
}

// EqualFold compares two strings case-insensitively after trimming.
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
