package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// dateParser accepts the formats operators actually type into the job
// sheets and the formats the browser date pickers post back.
var dateParser = &now.Config{
	TimeLocation: time.UTC,
	TimeFormats: []string{
		"2006-01-02T15:04:05.999999999Z07:00",
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
		"2006-1-2",
		"2006/01/02",
		"2006/1/2",
		"01/02/2006 15:04",
		"01/02/2006",
		"1/2/2006",
		"01-02-2006",
		"02-Jan-2006",
		"2-Jan-2006",
		"02 Jan 2006",
		"2 Jan 2006",
		"02 Jan 2006 15:04",
		"Jan 2, 2006",
		"Jan 2 2006",
		"January 2, 2006",
		"Mon Jan 02 2006 15:04:05 GMT-0700",
		"Mon Jan 02 2006",
		"Mon, 02 Jan 2006 15:04:05 MST",
		"2006-01",
		"2006",
	},
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// ParseLooseDate parses a loosely formatted date string. The second return
// value is false for empty, time-only or unparseable input.
func ParseLooseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || !yearPattern.MatchString(value) {
		return time.Time{}, false
	}

	// Browsers append a zone name in parentheses, e.g. "(India Standard Time)".
	if i := strings.Index(value, " ("); i > 0 {
		value = value[:i]
	}

	t, err := dateParser.Parse(value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsValidDate reports whether raw holds a parseable date.
func IsValidDate(raw string) bool {
	_, ok := ParseLooseDate(raw)
	return ok
}
