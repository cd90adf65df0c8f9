package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and any $VAR environment references in a
// file path. Paths that do not use either form pass through unchanged.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	} else if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}

// SnapshotDir resolves the directory where fetched datasets are stored.
// Precedence: explicit value, then $XDG_DATA_HOME, then ~/.local/share.
func SnapshotDir(configured string) string {
	if configured != "" {
		return ExpandPath(configured)
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "claimlens")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "claimlens-data"
	}
	return filepath.Join(home, ".local", "share", "claimlens")
}
