package amountutils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"kasidit/sheet-ledger/internal/amountutils"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain integer", "120", "120"},
		{"decimal", "45.50", "45.5"},
		{"thousands separators", "1,234.50", "1234.5"},
		{"baht symbol", "฿120", "120"},
		{"currency code", "THB 99.00", "99"},
		{"euro symbol", "€75.20", "75.2"},
		{"negative", "-50.25", "-50.25"},
		{"surrounding whitespace", "  300  ", "300"},
		{"apostrophe grouping", "1'234.50", "1234.5"},
		{"quoted cell", "\"1,250.00\"", "1250"},
		{"empty cell", "", "0"},
		{"whitespace only", "   ", "0"},
		{"free text", "ยังไม่จ่าย", "0"},
		{"mixed garbage", "12abc", "0"},
		{"lone symbol", "฿", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tt.expected)
			assert.NoError(t, err)
			assert.True(t, expected.Equal(amountutils.Normalize(tt.input)),
				"Normalize(%q) = %s, want %s", tt.input, amountutils.Normalize(tt.input), expected)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "฿1234.50", amountutils.Format(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "฿0.00", amountutils.Format(decimal.Zero))
	assert.Equal(t, "฿-50.25", amountutils.Format(decimal.NewFromFloat(-50.25)))
}
