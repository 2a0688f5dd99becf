// Package fetch retrieves CSV payloads over HTTP.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"kasidit/sheet-ledger/internal/ingesterror"
	"kasidit/sheet-ledger/internal/logging"
)

// Fetcher retrieves the body of a resolved endpoint as text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches endpoints with a shared http.Client. Redirects are
// followed; Google Sheets export URLs redirect at least once.
type HTTPFetcher struct {
	client *http.Client
	logger logging.Logger
}

// NewHTTPFetcher creates an HTTPFetcher with the given per-request timeout.
func NewHTTPFetcher(timeout time.Duration, logger logging.Logger) *HTTPFetcher {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch performs a GET and returns the response body. Any non-200 status is
// an error; Sheets serves error pages with 200-family redirect chains, so a
// surviving non-200 always means the sheet is unreachable.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", ingesterror.NewFetchError(url, 0, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", ingesterror.NewFetchError(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ingesterror.NewFetchError(url, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ingesterror.NewFetchError(url, 0, err)
	}

	f.logger.Debug("Fetched endpoint",
		logging.Field{Key: logging.FieldEndpoint, Value: url},
		logging.Field{Key: "bytes", Value: len(body)})

	return string(body), nil
}
