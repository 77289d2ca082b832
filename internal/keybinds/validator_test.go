package keybinds

import (
	"strings"
	"testing"
)

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name:     "with key",
			issue:    Issue{Severity: SeverityWarning, Kind: "shadowed", Context: ContextNormal, Key: "q", Message: "hides global quit_force behind quit"},
			expected: `normal "q": hides global quit_force behind quit (shadowed)`,
		},
		{
			name:     "context only",
			issue:    Issue{Severity: SeverityError, Kind: "unreachable", Context: ContextConfirm, Message: "no key left for confirm"},
			expected: "confirm: no key left for confirm (unreachable)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	if got := (&ValidationResult{}).String(); got != "keybinds: no issues" {
		t.Errorf("String() = %q", got)
	}

	result := &ValidationResult{}
	result.add(SeverityWarning, "shadowed", ContextBCC, "tab", "hides something")
	result.add(SeverityError, "invalid", ContextNormal, "x", "unknown action %q", "explode")

	lines := strings.Split(result.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected two lines, got %q", result.String())
	}
	if !strings.HasPrefix(lines[0], "keybinds error: normal") {
		t.Errorf("Expected errors first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "keybinds warning: bcc") {
		t.Errorf("Expected warning second, got %q", lines[1])
	}
	if len(result.Errors()) != 1 || len(result.Warnings()) != 1 {
		t.Errorf("Expected one error and one warning, got %+v", result.Issues)
	}
}

func TestValidator_DefaultsAreClean(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())
	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("Expected defaults to validate cleanly, got:\n%s", result.String())
	}
}

func TestValidator_UnknownAction(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextNormal, "x", Action("explode"))

	result := NewValidator().ValidateRegistry(r)
	if !result.HasErrors() {
		t.Fatal("Expected unknown action to be an error")
	}
	errs := result.Errors()
	if errs[0].Key != "x" || errs[0].Kind != "invalid" {
		t.Errorf("Unexpected error: %+v", errs[0])
	}
}

func TestValidator_RequiredActionRemoved(t *testing.T) {
	config := &Config{Confirm: map[string]string{"y": "", "Y": ""}}

	result := NewValidator().ValidateConfig(config)
	if !result.HasErrors() {
		t.Fatal("Expected error when confirm has no key left")
	}
	found := false
	for _, e := range result.Errors() {
		if e.Context == ContextConfirm && e.Kind == "unreachable" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected confirm context error, got:\n%s", result.String())
	}
}

func TestValidator_ReservedAndShadowing(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextGlobal, "?", ActionOpenHelp)
	r.Register(ContextNormal, "ctrl+c", ActionCopyISP)

	result := NewValidator().ValidateRegistry(r)
	var reserved, shadow bool
	for _, w := range result.Warnings() {
		if w.Key == "ctrl+c" && w.Kind == "reserved" {
			reserved = true
		}
		if w.Key == "ctrl+c" && w.Kind == "shadowed" {
			shadow = true
		}
	}
	if !reserved || !shadow {
		t.Errorf("Expected reserved and shadowing warnings, got:\n%s", result.String())
	}
}

func TestValidateConfig_BadKey(t *testing.T) {
	result := NewValidator().ValidateConfig(&Config{Normal: map[string]string{"ctrl+": "quit"}})
	if !result.HasErrors() {
		t.Error("Expected invalid key to be rejected")
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"a", false},
		{"ctrl+s", false},
		{"enter", false},
		{"", true},
		{"alt+", true},
	}
	for _, tt := range tests {
		if err := ValidateKey(tt.key); (err != nil) != tt.wantErr {
			t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
		}
	}
}
