package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// LocalSettingsFile overrides the global settings when present in the working directory
	LocalSettingsFile = ".ispcli.yaml"
)

var (
	// ConfigDir is the global configuration directory (~/.ispcli)
	ConfigDir string

	// SettingsFile is the global settings file
	SettingsFile string

	// KeybindsFile holds user key binding overrides
	KeybindsFile string

	// DebugLogFile receives the TUI debug log when ISPCLI_DEBUG is set
	DebugLogFile string
)

// Initialize sets up the configuration directory and paths
// It creates ~/.ispcli/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".ispcli"))
}

// InitializeAt sets up the configuration paths under dir
func InitializeAt(dir string) error {
	ConfigDir = dir
	SettingsFile = filepath.Join(ConfigDir, "settings.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	DebugLogFile = filepath.Join(ConfigDir, "debug.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}
	return nil
}

// GetSettingsFilePath returns the settings file path (local or global)
func GetSettingsFilePath() string {
	if _, err := os.Stat(LocalSettingsFile); err == nil {
		return LocalSettingsFile
	}
	return SettingsFile
}

// ExpandPath expands a leading ~/ to the home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}
