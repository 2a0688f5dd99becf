package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stubNow(t *testing.T, instant time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return instant }
	t.Cleanup(func() { now = orig })
}

func TestResolve(t *testing.T) {
	fallback := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	stubNow(t, fallback)

	tests := []struct {
		name     string
		dateStr  string
		timeStr  string
		expected time.Time
	}{
		{
			name:     "slash with Buddhist year",
			dateStr:  "09/01/2569",
			expected: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "slash with Gregorian year",
			dateStr:  "09/01/2026",
			expected: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "two-digit year above pivot is Buddhist",
			dateStr:  "15/06/68",
			expected: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "two-digit year at or below pivot is Gregorian",
			dateStr:  "15/06/24",
			expected: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dash reads year-month-day first",
			dateStr:  "2026-01-09",
			expected: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dash falls back to day-month-year",
			dateStr:  "09-01-2569",
			expected: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dash with Buddhist year first component",
			dateStr:  "2569-01-09",
			expected: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "time cell sets hour and minute",
			dateStr:  "09/01/2569",
			timeStr:  "14:30",
			expected: time.Date(2026, 1, 9, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "out-of-range clock reads as midnight",
			dateStr:  "09/01/2569",
			timeStr:  "25:99",
			expected: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace tolerated",
			dateStr:  " 09/01/2569 ",
			expected: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "empty resolves to current instant",
			dateStr:  "",
			expected: fallback,
		},
		{
			name:     "free text resolves to current instant",
			dateStr:  "พรุ่งนี้",
			expected: fallback,
		},
		{
			name:     "impossible calendar date resolves to current instant",
			dateStr:  "31/02/2569",
			expected: fallback,
		},
		{
			name:     "two components resolve to current instant",
			dateStr:  "09/01",
			expected: fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.dateStr, tt.timeStr))
		})
	}
}

func TestResolveEraEquivalence(t *testing.T) {
	// The same calendar day written in either era resolves identically.
	assert.Equal(t, Resolve("09/01/2569", ""), Resolve("09/01/2026", ""))
	assert.Equal(t, Resolve("25/12/2568", ""), Resolve("25/12/2025", ""))
}

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected time.Time
		found    bool
	}{
		{
			name:     "date embedded in Thai label",
			label:    "ยอดขาย 25/12/2568",
			expected: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		{
			name:     "dash separated",
			label:    "export 09-01-69",
			expected: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		{
			name:     "first valid match wins",
			label:    "31/02/2569 แก้เป็น 01/03/2569",
			expected: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		{
			name:  "no date in label",
			label: "ชีต1",
			found: false,
		},
		{
			name:  "empty label",
			label: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Scan(tt.label)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFormatBuddhist(t *testing.T) {
	assert.Equal(t, "09/01/2569", FormatBuddhist(time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "25/12/2568", FormatBuddhist(time.Date(2025, 12, 25, 14, 30, 0, 0, time.UTC)))
}

func TestFormatBuddhistRoundTrip(t *testing.T) {
	// Rendering a resolved instant and resolving the rendered text lands on
	// the same day.
	instant := Resolve("09/01/2569", "")
	again := Resolve(FormatBuddhist(instant), "")
	assert.Equal(t, instant, again)
}

func TestNormalizeYear(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{2569, 2026},
		{2026, 2026},
		{68, 2025},
		{41, 1998},
		{40, 2040},
		{24, 2024},
		{0, 2000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeYear(tt.input), "normalizeYear(%d)", tt.input)
	}
}
