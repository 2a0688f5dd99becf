package ingest_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasidit/sheet-ledger/internal/ingest"
	"kasidit/sheet-ledger/internal/logging"
	"kasidit/sheet-ledger/internal/models"
)

const sheetID = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"

// fakeFetcher serves canned CSV payloads keyed by substring of the URL.
type fakeFetcher struct {
	payloads map[string]string
	failFor  string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.failFor != "" && strings.Contains(url, f.failFor) {
		return "", errors.New("boom")
	}
	for key, payload := range f.payloads {
		if strings.Contains(url, key) {
			return payload, nil
		}
	}
	return "", errors.New("no payload for " + url)
}

func TestSyncMergesSortedDescending(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string]string{
		"gid=1": "วันที่,เวลา,จำนวนเงิน,ประเภท,หมายเหตุ\n09/01/2569,,120,อาหาร,ข้าว\n",
		"gid=2": "วันที่,เวลา,จำนวนเงิน,ประเภท,หมายเหตุ\n15/01/2569,,80,เครื่องดื่ม,ชา\n01/01/2569,,45,อาหาร,ก๋วยเตี๋ยว\n",
	}}
	sources := []models.Source{
		{Ref: sheetID, Gid: "1", Label: "หนึ่ง"},
		{Ref: sheetID, Gid: "2", Label: "สอง"},
	}

	result := ingest.NewIngester(fetcher, &logging.MockLogger{}).Sync(context.Background(), sources)

	require.Len(t, result.Records, 3)
	assert.NotEmpty(t, result.RunID)

	// Newest first across sources.
	assert.Equal(t, "15/01/2569", result.Records[0].DisplayDate)
	assert.Equal(t, "09/01/2569", result.Records[1].DisplayDate)
	assert.Equal(t, "01/01/2569", result.Records[2].DisplayDate)

	for i := 1; i < len(result.Records); i++ {
		assert.False(t, result.Records[i-1].OccurredAt.Before(result.Records[i].OccurredAt))
	}
}

func TestSyncToleratesFailedSource(t *testing.T) {
	fetcher := &fakeFetcher{
		payloads: map[string]string{
			"gid=1": "วันที่,เวลา,จำนวนเงิน,ประเภท,หมายเหตุ\n09/01/2569,,120,,\n",
			"gid=3": "วันที่,เวลา,จำนวนเงิน,ประเภท,หมายเหตุ\n10/01/2569,,60,,\n",
		},
		failFor: "gid=2",
	}
	sources := []models.Source{
		{Ref: sheetID, Gid: "1"},
		{Ref: sheetID, Gid: "2"},
		{Ref: sheetID, Gid: "3"},
	}

	result := ingest.NewIngester(fetcher, &logging.MockLogger{}).Sync(context.Background(), sources)

	require.Len(t, result.Records, 2)
	require.Len(t, result.Sources, 3)
	assert.NoError(t, result.Sources[0].Err)
	assert.Error(t, result.Sources[1].Err)
	assert.NoError(t, result.Sources[2].Err)
}

func TestSyncBadReference(t *testing.T) {
	fetcher := &fakeFetcher{}
	sources := []models.Source{{Ref: "nope"}}

	result := ingest.NewIngester(fetcher, &logging.MockLogger{}).Sync(context.Background(), sources)

	assert.Empty(t, result.Records)
	require.Len(t, result.Sources, 1)
	assert.Error(t, result.Sources[0].Err)
}

func TestSyncRecordIDsUniqueAcrossSources(t *testing.T) {
	payload := "วันที่,เวลา,จำนวนเงิน,ประเภท,หมายเหตุ\n09/01/2569,,120,,\n10/01/2569,,50,,\n"
	fetcher := &fakeFetcher{payloads: map[string]string{
		"gid=1": payload,
		"gid=2": payload,
	}}
	sources := []models.Source{
		{Ref: sheetID, Gid: "1"},
		{Ref: sheetID, Gid: "2"},
	}

	result := ingest.NewIngester(fetcher, &logging.MockLogger{}).Sync(context.Background(), sources)

	require.Len(t, result.Records, 4)
	seen := map[string]bool{}
	for _, r := range result.Records {
		assert.False(t, seen[r.ID], "duplicate record ID %s", r.ID)
		seen[r.ID] = true
	}
}

func TestSyncEmptyPayload(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string]string{"gid=1": ""}}
	sources := []models.Source{{Ref: sheetID, Gid: "1"}}

	result := ingest.NewIngester(fetcher, &logging.MockLogger{}).Sync(context.Background(), sources)

	assert.Empty(t, result.Records)
	assert.NoError(t, result.Sources[0].Err)
}

func TestSyncLabelDateFromSource(t *testing.T) {
	fetcher := &fakeFetcher{payloads: map[string]string{
		"gid=1": "วันที่,เวลา,จำนวนเงิน,ประเภท,หมายเหตุ\n09/01/2569,,120,,\n",
	}}
	sources := []models.Source{{Ref: sheetID, Gid: "1", Label: "ยอดขาย 25/12/2568"}}

	result := ingest.NewIngester(fetcher, &logging.MockLogger{}).Sync(context.Background(), sources)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "25/12/2568", result.Records[0].DisplayDate)
	assert.Equal(t, "ยอดขาย 25/12/2568", result.Records[0].SourceLabel)
}
