package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UserConfigPath returns the user-level config file path,
// e.g. ~/.config/pomodoro/config.json on Linux.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "pomodoro", "config.json"), nil
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
