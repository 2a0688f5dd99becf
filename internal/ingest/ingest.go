// Package ingest orchestrates pulling all configured sources, parsing them,
// and merging the result into a single record list.
package ingest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"kasidit/sheet-ledger/internal/builder"
	"kasidit/sheet-ledger/internal/fetch"
	"kasidit/sheet-ledger/internal/logging"
	"kasidit/sheet-ledger/internal/models"
	"kasidit/sheet-ledger/internal/roles"
	"kasidit/sheet-ledger/internal/sheetcsv"
	"kasidit/sheet-ledger/internal/sheeturl"
)

// SourceResult reports the outcome of one source within a run.
type SourceResult struct {
	Source  models.Source
	Records int
	Err     error
}

// Result is the outcome of a full sync run.
type Result struct {
	RunID   string
	Records []models.Record
	Sources []SourceResult
}

// Ingester fetches and merges all sources of a ledger.
type Ingester struct {
	fetcher fetch.Fetcher
	logger  logging.Logger
}

// NewIngester creates an Ingester using the given fetcher.
func NewIngester(fetcher fetch.Fetcher, logger logging.Logger) *Ingester {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Ingester{fetcher: fetcher, logger: logger}
}

// Sync gathers every source concurrently and merges the records, newest
// first. A source that fails contributes nothing but never aborts the run;
// its error is kept in the per-source results.
func (ing *Ingester) Sync(ctx context.Context, sources []models.Source) Result {
	runID := uuid.New().String()
	ing.logger.Info("Starting sync run",
		logging.Field{Key: logging.FieldRunID, Value: runID},
		logging.Field{Key: logging.FieldCount, Value: len(sources)})

	perSource := make([][]models.Record, len(sources))
	results := make([]SourceResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src models.Source) {
			defer wg.Done()
			records, err := ing.syncOne(ctx, i, src)
			perSource[i] = records
			results[i] = SourceResult{Source: src, Records: len(records), Err: err}
		}(i, src)
	}
	wg.Wait()

	var merged []models.Record
	for i, records := range perSource {
		if results[i].Err != nil {
			ing.logger.WithError(results[i].Err).Warn("Source failed, continuing without it",
				logging.Field{Key: logging.FieldSource, Value: i},
				logging.Field{Key: logging.FieldLabel, Value: sources[i].DisplayLabel()})
			continue
		}
		merged = append(merged, records...)
	}

	sort.Slice(merged, func(a, b int) bool {
		return merged[a].OccurredAt.After(merged[b].OccurredAt)
	})

	ing.logger.Info("Sync run complete",
		logging.Field{Key: logging.FieldRunID, Value: runID},
		logging.Field{Key: logging.FieldRecords, Value: len(merged)})

	return Result{RunID: runID, Records: merged, Sources: results}
}

// syncOne resolves, fetches, and builds one source.
func (ing *Ingester) syncOne(ctx context.Context, index int, src models.Source) ([]models.Record, error) {
	endpoint, err := sheeturl.Resolve(src.Ref, src.Gid)
	if err != nil {
		return nil, err
	}

	body, err := ing.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	rows := sheetcsv.Parse(body)
	if len(rows) == 0 {
		ing.logger.Warn("Source yielded no rows",
			logging.Field{Key: logging.FieldSource, Value: index},
			logging.Field{Key: logging.FieldLabel, Value: src.DisplayLabel()})
		return nil, nil
	}

	header := rows[0]
	var firstData []string
	if len(rows) > 1 {
		firstData = rows[1]
	}
	roleMap := roles.Infer(header, firstData)

	return builder.Build(rows[1:], roleMap, index, src.DisplayLabel(), ing.logger), nil
}
