package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
)

var (
	home, _           = os.UserHomeDir()
	DefaultConfigPath = filepath.Join(home, ".driftbox", "config.json")
	DefaultServerURL  = "https://telemetry.driftbox.dev"

	DefaultSyncInterval = 5 * time.Minute
)

var (
	ErrNoUserID = errors.New("config: user id missing")
)

type Config struct {
	UserID       string        `json:"user_id"`
	DeviceID     string        `json:"device_id"`
	ServerURL    string        `json:"server_url"`
	SyncInterval time.Duration `json:"sync_interval"`
	Path         string        `json:"-"`
}

// Validate checks required fields and fills defaults for optional ones.
// DeviceID may stay empty; a device can sync before it is provisioned.
func (c *Config) Validate() error {
	if c.UserID == "" {
		return ErrNoUserID
	}

	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: invalid server url %q", c.ServerURL)
	}

	if c.SyncInterval <= 0 {
		c.SyncInterval = DefaultSyncInterval
	}

	return nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Path = path
	return &cfg, nil
}
