package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kasidit/sheet-ledger/cmd/resolve"
	"kasidit/sheet-ledger/cmd/root"
	"kasidit/sheet-ledger/cmd/settings"
	"kasidit/sheet-ledger/cmd/summary"
	syncmd "kasidit/sheet-ledger/cmd/sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	configureLogLevelDirectly()

	// 3. Now that logging is configured, initialize the root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(syncmd.Cmd)
	root.Cmd.AddCommand(resolve.Cmd)
	root.Cmd.AddCommand(settings.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	// Set the global logrus level before any logging happens
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
