// Package summary produces a natural-language digest of a sync run using
// the Gemini API.
package summary

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"kasidit/sheet-ledger/internal/amountutils"
	"kasidit/sheet-ledger/internal/models"
)

// ErrNoRecords is returned when there is nothing to summarize.
var ErrNoRecords = errors.New("no records to summarize")

// Client generates text for a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CategoryTotal is the aggregated amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// Digest aggregates records into per-category totals ordered by descending
// total, largest spend first.
func Digest(records []models.Record) []CategoryTotal {
	byCategory := make(map[string]*CategoryTotal)
	for _, r := range records {
		ct, ok := byCategory[r.Category]
		if !ok {
			ct = &CategoryTotal{Category: r.Category}
			byCategory[r.Category] = ct
		}
		ct.Total = ct.Total.Add(r.Amount)
		ct.Count++
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(a, b int) bool {
		if !totals[a].Total.Equal(totals[b].Total) {
			return totals[a].Total.GreaterThan(totals[b].Total)
		}
		return totals[a].Category < totals[b].Category
	})
	return totals
}

// Summarize asks the client for a short spending summary built from the
// category digest.
func Summarize(ctx context.Context, client Client, records []models.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}

	totals := Digest(records)
	grand := decimal.Zero
	var sb strings.Builder
	for _, ct := range totals {
		fmt.Fprintf(&sb, "- %s: %s (%d รายการ)\n", ct.Category, amountutils.Format(ct.Total), ct.Count)
		grand = grand.Add(ct.Total)
	}

	prompt := fmt.Sprintf(
		"สรุปรายจ่ายของร้านให้สั้นและอ่านง่าย เป็นภาษาไทย ไม่เกินห้าประโยค\n"+
			"ยอดรวมทั้งหมด: %s จาก %d รายการ\n"+
			"ยอดตามหมวดหมู่:\n%s",
		amountutils.Format(grand), len(records), sb.String())

	return client.Generate(ctx, prompt)
}
