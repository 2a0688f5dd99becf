// Package settings shows and edits the stored ledger settings
package settings

import (
	"context"
	"fmt"
	"time"

	"kasidit/sheet-ledger/cmd/root"
	"kasidit/sheet-ledger/internal/logging"
	"kasidit/sheet-ledger/internal/models"
	"kasidit/sheet-ledger/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	storeName string
	logoURL   string
	addSource string
	addLabel  string
)

// Cmd represents the settings command
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or update the stored ledger settings",
	Long: `Show the current ledger settings, or update them with the provided
flags. Updates are written to the local settings file and, when a remote
store is configured, pushed there as well.`,
	Run: settingsFunc,
}

func init() {
	Cmd.Flags().StringVar(&storeName, "name", "", "Store display name")
	Cmd.Flags().StringVar(&logoURL, "logo", "", "Store logo URL")
	Cmd.Flags().StringVar(&addSource, "add-source", "", "Source reference to append")
	Cmd.Flags().StringVar(&addLabel, "label", "", "Label for the appended source")
}

func settingsFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	ctx := context.Background()

	var remote store.RemoteKV
	if cfg.Store.RemoteURL != "" {
		remote = store.NewHTTPRemoteKV(cfg.Store.RemoteURL, 10*time.Second)
	}
	settingsStore := store.NewSettingsStore(remote, cfg.Store.SettingsFile, logger)
	settings := settingsStore.Load(ctx)

	changed := false
	if storeName != "" {
		settings.StoreName = storeName
		changed = true
	}
	if logoURL != "" {
		settings.LogoURL = logoURL
		changed = true
	}
	if addSource != "" {
		settings.Sources = append(settings.Sources, models.Source{
			Ref:   addSource,
			Gid:   root.SharedFlags.Gid,
			Label: addLabel,
		})
		changed = true
	}

	if changed {
		if err := settingsStore.Save(ctx, settings); err != nil {
			root.Log.Fatalf("Cannot save settings: %v", err)
		}
		root.Log.Info("Settings saved")
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		root.Log.Fatalf("Cannot render settings: %v", err)
	}
	fmt.Print(string(out))
}
