package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the user preferences read from settings.yaml
type Settings struct {
	HighlightColor    string `yaml:"highlightColor"`
	OraclePlaceholder string `yaml:"oraclePlaceholder"`
	SkeletonStyle     string `yaml:"skeletonStyle"`
	ExportFile        string `yaml:"exportFile"`
	// MessageTimeout is in seconds, 0 keeps status messages until replaced
	MessageTimeout *int `yaml:"messageTimeout,omitempty"`
}

const (
	DefaultHighlightColor    = "#d3e7c9"
	DefaultOraclePlaceholder = "expected value/behavior"
	DefaultSkeletonStyle     = "junit"
	DefaultExportFile        = "table-data.json"
	DefaultMessageTimeout    = 3
)

// DefaultSettings returns the built-in preferences
func DefaultSettings() Settings {
	timeout := DefaultMessageTimeout
	return Settings{
		HighlightColor:    DefaultHighlightColor,
		OraclePlaceholder: DefaultOraclePlaceholder,
		SkeletonStyle:     DefaultSkeletonStyle,
		ExportFile:        DefaultExportFile,
		MessageTimeout:    &timeout,
	}
}

// MessageDuration returns how long status messages stay visible
func (s Settings) MessageDuration() time.Duration {
	if s.MessageTimeout == nil {
		return DefaultMessageTimeout * time.Second
	}
	return time.Duration(*s.MessageTimeout) * time.Second
}

// LoadSettings reads settings from path, filling unset fields with defaults
// A missing file yields the defaults
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return settings, nil
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return settings, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return merge(settings, loaded), nil
}

// SaveSettings writes settings to path
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func merge(base, override Settings) Settings {
	if override.HighlightColor != "" {
		base.HighlightColor = override.HighlightColor
	}
	if override.OraclePlaceholder != "" {
		base.OraclePlaceholder = override.OraclePlaceholder
	}
	if override.SkeletonStyle != "" {
		base.SkeletonStyle = override.SkeletonStyle
	}
	if override.ExportFile != "" {
		base.ExportFile = override.ExportFile
	}
	if override.MessageTimeout != nil {
		if *override.MessageTimeout < 0 {
			zero := 0
			override.MessageTimeout = &zero
		}
		base.MessageTimeout = override.MessageTimeout
	}
	return base
}
