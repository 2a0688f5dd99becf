package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPRemoteKV talks to a plain HTTP key-value endpoint: GET <base>/<key>
// returns the value, PUT <base>/<key> stores the body, 404 means absent.
type HTTPRemoteKV struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRemoteKV creates a client for the given base URL.
func NewHTTPRemoteKV(baseURL string, timeout time.Duration) *HTTPRemoteKV {
	return &HTTPRemoteKV{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *HTTPRemoteKV) keyURL(key string) string {
	return r.baseURL + "/" + url.PathEscape(key)
}

// Get fetches a value. The second return is false when the key is absent.
func (r *HTTPRemoteKV) Get(ctx context.Context, key string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.keyURL(key), nil)
	if err != nil {
		return "", false, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", false, err
		}
		return string(body), true, nil
	case http.StatusNotFound:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("remote get %s: unexpected status %d", key, resp.StatusCode)
	}
}

// Set stores a value under the given key.
func (r *HTTPRemoteKV) Set(ctx context.Context, key, value string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.keyURL(key), strings.NewReader(value))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote set %s: unexpected status %d", key, resp.StatusCode)
	}
	return nil
}
