// ABOUTME: Configuration for the local persistence backend
// ABOUTME: JSON config under the XDG data dir, with env overrides
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for data and config paths.
	AppName = "cardstack"

	// ConfigFileName is where local storage settings live.
	ConfigFileName = "storage-config.json"

	// Backend names accepted in config and flags.
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Config holds persistence backend settings.
type Config struct {
	// Backend selects badger (default) or sqlite
	Backend string `json:"backend,omitempty"`

	// DataDir overrides the default XDG data directory
	DataDir string `json:"data_dir,omitempty"`

	// QuotaBytes bounds total stored value size; 0 means unlimited
	QuotaBytes int64 `json:"quota_bytes,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendBadger,
		DataDir: filepath.Join(xdg.DataHome, AppName),
	}
}

func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// LoadConfig loads config from disk, falling back to defaults when the file
// is missing or unreadable. CARDSTACK_BACKEND and CARDSTACK_DATA_DIR env vars
// take precedence over the file.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err == nil {
		if data, err := os.ReadFile(path); err == nil {
			var loaded Config
			if json.Unmarshal(data, &loaded) == nil {
				if loaded.Backend != "" {
					cfg.Backend = loaded.Backend
				}
				if loaded.DataDir != "" {
					cfg.DataDir = loaded.DataDir
				}
				if loaded.QuotaBytes > 0 {
					cfg.QuotaBytes = loaded.QuotaBytes
				}
			}
		}
	}

	if backend := os.Getenv("CARDSTACK_BACKEND"); backend != "" {
		cfg.Backend = backend
	}
	if dir := os.Getenv("CARDSTACK_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	return cfg, nil
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Open opens the persistence adapter the config selects.
func (c *Config) Open() (KV, error) {
	if c.Backend == BackendSQLite {
		return OpenSQLite(filepath.Join(c.DataDir, "cardstack.db"), c.QuotaBytes)
	}
	return OpenBadger(filepath.Join(c.DataDir, "badger"), c.QuotaBytes)
}
