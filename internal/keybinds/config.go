package keybinds

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Config is the user's keybinding configuration
// Each context maps a key to an action name; an empty action unbinds the key
type Config struct {
	Version   string            `json:"version"`
	Global    map[string]string `json:"global,omitempty"`
	Normal    map[string]string `json:"normal,omitempty"`
	BCC       map[string]string `json:"bcc,omitempty"`
	Preview   map[string]string `json:"preview,omitempty"`
	Search    map[string]string `json:"search,omitempty"`
	Help      map[string]string `json:"help,omitempty"`
	TextInput map[string]string `json:"text_input,omitempty"`
	Confirm   map[string]string `json:"confirm,omitempty"`
}

func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:    c.Global,
		ContextNormal:    c.Normal,
		ContextBCC:       c.BCC,
		ContextPreview:   c.Preview,
		ContextSearch:    c.Search,
		ContextHelp:      c.Help,
		ContextTextInput: c.TextInput,
		ContextConfirm:   c.Confirm,
	}
}

// LoadConfig loads keybinding configuration from a JSON file
// Comments and trailing commas are accepted
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyConfig applies user configuration to a registry
// User bindings override default bindings
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("context %s: %w", context, err)
			}
			if actionStr == "" {
				registry.Unregister(context, key)
				continue
			}
			action := Action(actionStr)
			if !IsKnownAction(action) {
				return fmt.Errorf("context %s: unknown action %q for key %q", context, actionStr, key)
			}
			registry.Register(context, key, action)
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}
		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}

	return registry, nil
}

// ExportDefaults returns the default bindings as a config value
func ExportDefaults() *Config {
	r := NewDefaultRegistry()
	config := &Config{Version: "1.0"}
	for _, context := range AllContexts {
		bindings := make(map[string]string)
		for _, b := range r.ListBindings(context) {
			bindings[b.Key] = string(b.Action)
		}
		config.set(context, bindings)
	}
	return config
}

func (c *Config) set(context Context, bindings map[string]string) {
	switch context {
	case ContextGlobal:
		c.Global = bindings
	case ContextNormal:
		c.Normal = bindings
	case ContextBCC:
		c.BCC = bindings
	case ContextPreview:
		c.Preview = bindings
	case ContextSearch:
		c.Search = bindings
	case ContextHelp:
		c.Help = bindings
	case ContextTextInput:
		c.TextInput = bindings
	case ContextConfirm:
		c.Confirm = bindings
	}
}
