// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel values substituted for empty fields so downstream consumers
// (tables, dashboards, summaries) never see an empty category or description.
const (
	DefaultCategory    = "อื่นๆ"  // "other"
	DefaultDescription = "ไม่ระบุ" // "unspecified"
)

// Record represents a single normalized transaction produced from one
// spreadsheet row. A Record is immutable after construction; every sync
// discards and regenerates the full record set.
type Record struct {
	ID          string          `json:"id"`          // unique within a run: "<sourceIndex>-<rowIndex>"
	OccurredAt  time.Time       `json:"occurredAt"`  // Gregorian instant, used for sorting and grouping
	DisplayDate string          `json:"displayDate"` // DD/MM/YYYY with Buddhist year, presentation only
	Category    string          `json:"category"`    // never empty
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"` // never empty
	SourceIndex int             `json:"sourceIndex"` // which input source produced this record
	SourceLabel string          `json:"sourceLabel"` // display name of the source, carried unchanged
}

// RecordID derives the run-unique record identifier from the source and row
// indices. Embedding both guarantees no collisions across concurrently
// ingested sources.
func RecordID(sourceIndex, rowIndex int) string {
	return fmt.Sprintf("%d-%d", sourceIndex, rowIndex)
}

// AmountFloat returns the amount as a float64 for consumers that cannot
// handle decimals. Prefer direct decimal operations for calculations.
func (r Record) AmountFloat() float64 {
	f, _ := r.Amount.Float64()
	return f
}
