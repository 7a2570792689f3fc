// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session token and user record
// go to the OS keychain. File values can be overridden per-invocation via
// environment variables, optionally sourced from a .env file.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Sahilkhan-creator/Learnstream/internal/xdg"
)

// DefaultBaseURL is the production Findhub API origin.
const DefaultBaseURL = "https://api.findhub.app"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL string `json:"api_base_url" env:"FINDHUB_API_URL"`
	LogLevel   string `json:"log_level"    env:"FINDHUB_LOG_LEVEL"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration with precedence: defaults < config file <
// environment. A missing config file yields defaults, not an error.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	c := Config{APIBaseURL: DefaultBaseURL, LogLevel: "info"}

	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults stand
	default:
		return c, err
	}

	if err := env.Parse(&c); err != nil {
		return c, err
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultBaseURL
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
