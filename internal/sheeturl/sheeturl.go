// Package sheeturl resolves loosely specified source references (pasted
// Google Sheets URLs, published-sheet URLs, bare document IDs) into concrete
// CSV export endpoints.
package sheeturl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"kasidit/sheet-ledger/internal/ingesterror"
)

const (
	exportEndpoint = "https://docs.google.com/spreadsheets/d/%s/export?format=csv"

	// Bare references shorter than this cannot be document IDs; real IDs
	// are 44 characters and short strings are almost certainly typos.
	minBareIDLength = 20
)

var docIDRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// Resolve turns a source reference into a fetchable CSV URL. gid selects a
// worksheet within the document; an empty gid means the first sheet.
func Resolve(ref, gid string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ingesterror.NewReferenceError(ref, "empty reference")
	}

	// Published sheets use token paths (/d/e/2PACX-...) that are not
	// document IDs, so they must be recognized before the ID pattern; the
	// pattern would otherwise match the literal "e" segment.
	if strings.Contains(ref, "/spreadsheets/d/e/") || strings.Contains(ref, "2PACX") {
		return resolvePublished(ref, gid)
	}

	if m := docIDRe.FindStringSubmatch(ref); m != nil {
		return withGid(fmt.Sprintf(exportEndpoint, m[1]), gid), nil
	}

	if !strings.Contains(ref, "/") && len(ref) >= minBareIDLength {
		return withGid(fmt.Sprintf(exportEndpoint, ref), gid), nil
	}

	return "", ingesterror.NewReferenceError(ref, "not a sheets URL or document ID")
}

// resolvePublished rewrites a publish-to-web URL to its CSV form: the
// /pubhtml page becomes /pub and the output parameter is forced to csv.
func resolvePublished(ref, gid string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", ingesterror.NewReferenceError(ref, "unparsable published URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ingesterror.NewReferenceError(ref, "published URL missing scheme or host")
	}

	u.Path = strings.Replace(u.Path, "/pubhtml", "/pub", 1)
	if !strings.HasSuffix(u.Path, "/pub") {
		u.Path = strings.TrimSuffix(u.Path, "/") + "/pub"
	}

	q := u.Query()
	q.Set("output", "csv")
	if gid != "" {
		q.Set("gid", gid)
	}
	q.Del("single")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func withGid(endpoint, gid string) string {
	if gid == "" {
		return endpoint
	}
	return endpoint + "&gid=" + url.QueryEscape(gid)
}
