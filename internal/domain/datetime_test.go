package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{
			name:     "RFC3339",
			raw:      "2025-07-15T14:30:00Z",
			expected: time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "date time with seconds",
			raw:      "2025-07-15T14:30:45",
			expected: time.Date(2025, 7, 15, 14, 30, 45, 0, time.UTC),
		},
		{
			name:     "datetime-local input form",
			raw:      "2025-07-15T14:30",
			expected: time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "space separated with seconds",
			raw:      "2025-07-15 14:30:45",
			expected: time.Date(2025, 7, 15, 14, 30, 45, 0, time.UTC),
		},
		{
			name:     "space separated",
			raw:      "2025-07-15 14:30",
			expected: time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			raw:      "2025-07-15",
			expected: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDateTime(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "parsed %v, want %v", result, tt.expected)
		})
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"free text", "not-a-date"},
		{"empty string", ""},
		{"month out of range", "2025-13-01T10:00"},
		{"partial time", "2025-07-15T14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateTime(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "datetime-local input form",
			raw:      "2025-07-15T14:30",
			expected: "15/07/2025 14:30",
		},
		{
			name:     "date only renders midnight",
			raw:      "2025-01-02",
			expected: "02/01/2025 00:00",
		},
		{
			name:     "unparseable value passes through",
			raw:      "sometime soon",
			expected: "sometime soon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatForDisplay(tt.raw, DisplayDateTimeFormat))
		})
	}
}
