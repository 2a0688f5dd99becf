// Package builder assembles normalized transaction records from parsed
// spreadsheet rows. It owns record construction exclusively; records are
// immutable once emitted.
package builder

import (
	"strings"
	"time"
	"unicode/utf8"

	"kasidit/sheet-ledger/internal/amountutils"
	"kasidit/sheet-ledger/internal/dateutils"
	"kasidit/sheet-ledger/internal/logging"
	"kasidit/sheet-ledger/internal/models"
	"kasidit/sheet-ledger/internal/roles"
)

// shortCategoryMax is the rune length under which a category-candidate cell
// is taken as the actual category; anything longer is treated as free text
// and folded into the description.
const shortCategoryMax = 20

// descriptionSeparator joins the category-candidate and note cells when both
// end up in the description.
const descriptionSeparator = " - "

// Build converts data rows (header already removed) into records for one
// source. When the source label itself encodes a date, that date overrides
// every row's own date cell; a sheet tab named "25/12/2568" is a more
// trustworthy statement of the batch date than inconsistently entered rows.
// Malformed rows are defaulted field by field or skipped, never fatal.
func Build(rows [][]string, roleMap roles.Map, sourceIndex int, sourceLabel string, logger logging.Logger) []models.Record {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	labelDate, labelHasDate := dateutils.Scan(sourceLabel)

	records := make([]models.Record, 0, len(rows))
	for rowIndex, row := range rows {
		// Stray short lines the parser could not classify carry no data.
		if len(row) < 2 {
			continue
		}

		dateCell := roleMap.Cell(row, roles.Date)
		timeCell := roleMap.Cell(row, roles.Time)
		amount := amountutils.Normalize(roleMap.Cell(row, roles.Amount))

		// A row with neither a date nor a nonzero amount carries no usable
		// information.
		if strings.TrimSpace(dateCell) == "" && amount.IsZero() {
			continue
		}

		var occurredAt time.Time
		if labelHasDate {
			occurredAt = labelDate
		} else {
			occurredAt = dateutils.Resolve(dateCell, timeCell)
		}

		category, description := deriveCategory(
			roleMap.Cell(row, roles.Category),
			roleMap.Cell(row, roles.Note),
		)

		records = append(records, models.Record{
			ID:          models.RecordID(sourceIndex, rowIndex),
			OccurredAt:  occurredAt,
			DisplayDate: dateutils.FormatBuddhist(occurredAt),
			Category:    category,
			Amount:      amount,
			Description: description,
			SourceIndex: sourceIndex,
			SourceLabel: sourceLabel,
		})
	}

	logger.Debug("Built records for source",
		logging.Field{Key: logging.FieldSource, Value: sourceIndex},
		logging.Field{Key: logging.FieldLabel, Value: sourceLabel},
		logging.Field{Key: logging.FieldRows, Value: len(rows)},
		logging.Field{Key: logging.FieldRecords, Value: len(records)})

	return records
}

// deriveCategory turns the category-candidate and note cells into a
// non-empty category and description. A short candidate is the true
// category; a long one is folded into the description alongside the note and
// the category falls back to the note itself.
func deriveCategory(candidate, note string) (category, description string) {
	candidate = strings.TrimSpace(candidate)
	note = strings.TrimSpace(note)

	category = note
	if candidate != "" && utf8.RuneCountInString(candidate) < shortCategoryMax {
		category = candidate
		description = note
	} else {
		switch {
		case candidate != "" && note != "":
			description = candidate + descriptionSeparator + note
		case candidate != "":
			description = candidate
		default:
			description = note
		}
	}

	if category == "" {
		category = models.DefaultCategory
	}
	if description == "" {
		description = models.DefaultDescription
	}
	return category, description
}
