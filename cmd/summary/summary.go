// Package summary generates an AI spending digest of a fresh sync run
package summary

import (
	"context"
	"fmt"
	"time"

	"kasidit/sheet-ledger/cmd/root"
	"kasidit/sheet-ledger/internal/fetch"
	"kasidit/sheet-ledger/internal/ingest"
	"kasidit/sheet-ledger/internal/logging"
	"kasidit/sheet-ledger/internal/summary"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Fetch all sources and print an AI-generated spending summary",
	Long: `Fetch every configured source, merge the records, and ask Gemini for
a short natural-language summary of the spending.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg
	if !cfg.AI.Enabled {
		root.Log.Fatal("AI summary is disabled; set ai.enabled and GEMINI_API_KEY")
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	ctx := context.Background()

	fetcher := fetch.NewHTTPFetcher(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second, logger)
	result := ingest.NewIngester(fetcher, logger).Sync(ctx, cfg.Sources)

	client, err := summary.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		root.Log.Fatalf("Cannot create Gemini client: %v", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close Gemini client")
		}
	}()

	aiCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
	defer cancel()

	text, err := summary.Summarize(aiCtx, client, result.Records)
	if err != nil {
		root.Log.Fatalf("Summary failed: %v", err)
	}
	fmt.Println(text)
}
