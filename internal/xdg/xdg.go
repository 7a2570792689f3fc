// Package xdg resolves the XDG Base Directory paths findhub writes to:
// the config file and the keyring file-backend fallback. Directories are
// created on first use with private permissions since both may hold
// security-sensitive data.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for findhub.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/findhub when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "findhub")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// StateDir returns the XDG state directory for findhub.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/findhub when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(base, "findhub")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
