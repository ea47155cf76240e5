// Package config loads dexcache configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultBaseURL is the public PokeAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Config holds runtime settings. Zero-valued paths are resolved under the
// user's home directory by Resolve.
type Config struct {
	BaseURL      string        `env:"DEXCACHE_API_URL" envDefault:"https://pokeapi.co/api/v2"`
	DBPath       string        `env:"DEXCACHE_DB"`
	SettingsPath string        `env:"DEXCACHE_SETTINGS"`
	Timeout      time.Duration `env:"DEXCACHE_TIMEOUT" envDefault:"30s"`
	Dedup        bool          `env:"DEXCACHE_DEDUP" envDefault:"true"`
	UserAgent    string        `env:"DEXCACHE_USER_AGENT" envDefault:"dexcache/1.0"`
	Verbose      bool          `env:"DEXCACHE_VERBOSE" envDefault:"false"`
}

// Load parses the environment into a Config and resolves default paths.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Resolve()
	return &cfg, nil
}

// Resolve fills empty paths with locations under ~/.dexcache.
func (c *Config) Resolve() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(homeDir(), "cache.db")
	}
	if c.SettingsPath == "" {
		c.SettingsPath = filepath.Join(homeDir(), "settings.yaml")
	}
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dexcache")
}
