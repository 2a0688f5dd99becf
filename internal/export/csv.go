// Package export writes merged records to CSV files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"kasidit/sheet-ledger/internal/logging"
	"kasidit/sheet-ledger/internal/models"
)

// csvRow is the CSV projection of a record. Amount is formatted with two
// decimals and OccurredAt as RFC 3339 so the file re-imports losslessly.
type csvRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	DisplayDate string `csv:"DisplayDate"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
	Source      string `csv:"Source"`
	SourceLabel string `csv:"SourceLabel"`
}

// WriteRecordsToCSV writes the records to the given path, creating parent
// directories as needed.
func WriteRecordsToCSV(records []models.Record, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	rows := make([]csvRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, csvRow{
			ID:          r.ID,
			Date:        r.OccurredAt.Format(time.RFC3339),
			DisplayDate: r.DisplayDate,
			Category:    r.Category,
			Amount:      r.Amount.StringFixed(2),
			Description: r.Description,
			Source:      fmt.Sprintf("%d", r.SourceIndex),
			SourceLabel: r.SourceLabel,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	logger.Info("Wrote records to CSV",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldRecords, Value: len(records)})
	return nil
}
