package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLooseDate_AcceptedFormats(t *testing.T) {
	cases := map[string]time.Time{
		"2024-05-01":               time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		"2024-05-01T10:30":         time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		"2024-05-01T10:30:15Z":     time.Date(2024, 5, 1, 10, 30, 15, 0, time.UTC),
		"2024-05-01T10:30:15.000Z": time.Date(2024, 5, 1, 10, 30, 15, 0, time.UTC),
		"2024/05/01":               time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		"05/01/2024":               time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		"01-May-2024":              time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		"  2024-05-01  ":           time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	for raw, want := range cases {
		got, ok := ParseLooseDate(raw)
		require.True(t, ok, "expected %q to parse", raw)
		assert.True(t, want.Equal(got), "parse %q: want %v got %v", raw, want, got)
	}
}

func TestParseLooseDate_BrowserForms(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"01-05-2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"May 1 2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"1 May 2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"Wed May 01 2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"1-May-2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-05", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseLooseDate(tt.raw)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %v got %v", tt.want, got)
			assert.True(t, IsValidDate(tt.raw))
		})
	}
}

func TestParseLooseDate_RejectedInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "10:30", "2024-13-45", "pending"} {
		_, ok := ParseLooseDate(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
		assert.False(t, IsValidDate(raw))
	}
}

func TestEscapeRegex(t *testing.T) {
	assert.Equal(t, `ABC\(1\)\.\*`, EscapeRegex("ABC(1).*"))
	assert.Equal(t, "MSKU1234567", EscapeRegex("MSKU1234567"))
}

func TestIsPlaceholder(t *testing.T) {
	for _, v := range []string{"", " ", "Select Importer", "select icd", "All ICDs", "all"} {
		assert.True(t, IsPlaceholder(v), v)
	}
	assert.False(t, IsPlaceholder("ICD SANAND"))
}
