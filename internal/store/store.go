// Package store persists ledger settings. Settings live primarily in a
// remote key-value service so several devices share one configuration; a
// local YAML file serves as cache and offline fallback.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"kasidit/sheet-ledger/internal/logging"
	"kasidit/sheet-ledger/internal/models"
)

// settingsKey is the key under which settings are stored remotely.
const settingsKey = "ledger-settings"

// Settings holds the user-editable ledger configuration.
type Settings struct {
	StoreName string          `yaml:"store_name" json:"storeName"`
	LogoURL   string          `yaml:"logo_url" json:"logoUrl"`
	Sources   []models.Source `yaml:"sources" json:"sources"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{StoreName: "ร้านค้า"}
}

// RemoteKV is a minimal remote key-value client.
type RemoteKV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// SettingsStore loads and saves settings across the remote service and the
// local file.
type SettingsStore struct {
	remote RemoteKV
	path   string
	logger logging.Logger
}

// NewSettingsStore creates a store backed by the given remote client (which
// may be nil for local-only operation) and local file path.
func NewSettingsStore(remote RemoteKV, path string, logger logging.Logger) *SettingsStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &SettingsStore{remote: remote, path: path, logger: logger}
}

// Load returns the current settings. Order of trust: remote service, local
// file, built-in defaults. A missing or unreachable layer is not an error;
// the next layer answers instead.
func (s *SettingsStore) Load(ctx context.Context) Settings {
	if s.remote != nil {
		raw, found, err := s.remote.Get(ctx, settingsKey)
		if err != nil {
			s.logger.WithError(err).Warn("Remote settings unavailable, falling back to local file")
		} else if found {
			var settings Settings
			if err := json.Unmarshal([]byte(raw), &settings); err != nil {
				s.logger.WithError(err).Warn("Remote settings malformed, falling back to local file")
			} else {
				return settings
			}
		}
	}

	settings, err := s.loadLocal()
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).Warn("Local settings unreadable, using defaults",
				logging.Field{Key: logging.FieldFile, Value: s.path})
		}
		return DefaultSettings()
	}
	return settings
}

// Save writes the settings to the local file and, best effort, to the
// remote service. The local write is authoritative; a remote failure is
// logged and swallowed so saving keeps working offline.
func (s *SettingsStore) Save(ctx context.Context, settings Settings) error {
	if err := s.saveLocal(settings); err != nil {
		return err
	}

	if s.remote != nil {
		raw, err := json.Marshal(settings)
		if err != nil {
			return err
		}
		if err := s.remote.Set(ctx, settingsKey, string(raw)); err != nil {
			s.logger.WithError(err).Warn("Remote settings write failed, local copy saved",
				logging.Field{Key: logging.FieldKey, Value: settingsKey})
		}
	}
	return nil
}

func (s *SettingsStore) loadLocal() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Settings{}, err
	}
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s *SettingsStore) saveLocal(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}
