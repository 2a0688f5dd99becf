// Package resolve turns a source reference into its CSV export endpoint
package resolve

import (
	"fmt"

	"kasidit/sheet-ledger/cmd/root"
	"kasidit/sheet-ledger/internal/sheeturl"

	"github.com/spf13/cobra"
)

// Cmd represents the resolve command
var Cmd = &cobra.Command{
	Use:   "resolve <reference>",
	Short: "Print the CSV export endpoint for a source reference",
	Long: `Resolve a pasted Google Sheets URL, published-sheet URL, or bare
document ID into the CSV export endpoint that sync would fetch.`,
	Args: cobra.ExactArgs(1),
	Run:  resolveFunc,
}

func resolveFunc(cmd *cobra.Command, args []string) {
	endpoint, err := sheeturl.Resolve(args[0], root.SharedFlags.Gid)
	if err != nil {
		root.Log.Fatalf("Cannot resolve reference: %v", err)
	}
	fmt.Println(endpoint)
}
