// Package root contains the root command for the application
package root

import (
	"kasidit/sheet-ledger/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Output string
	Gid    string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sheet-ledger",
		Short: "A CLI tool to pull spreadsheet exports into a normalized transaction ledger.",
		Long: `sheet-ledger fetches Google Sheets CSV exports, infers each sheet's
column layout, and merges every source into a single normalized
transaction list sorted newest first.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sheet-ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Gid, "gid", "g", "", "Worksheet gid within the document")
}
