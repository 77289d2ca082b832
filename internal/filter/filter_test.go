package filter

import (
	"strings"
	"testing"
)

type row struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func TestApply(t *testing.T) {
	input := `[{"name": "T1 (base test)", "values": ["1-10"]}, {"name": "T2", "values": ["0"]}]`

	tests := []struct {
		name       string
		expression string
		expected   string
		wantErr    bool
	}{
		{"empty expression", "", input, false},
		{"projection", "[].name", "[\n  \"T1 (base test)\",\n  \"T2\"\n]", false},
		{"index", "[1].values[0]", `"0"`, false},
		{"no match", "[5]", "null", false},
		{"invalid expression", "[?", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(input, tt.expression)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("Apply() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestApply_InvalidJSON(t *testing.T) {
	_, err := Apply("{", "a")
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("Expected invalid JSON error, got %v", err)
	}
}

func TestApplyValue(t *testing.T) {
	rows := []row{{Name: "T1", Values: []string{"a"}}, {Name: "T2", Values: []string{"b"}}}

	got, err := ApplyValue(rows, "[?name=='T2'].values[0]")
	if err != nil {
		t.Fatalf("ApplyValue failed: %v", err)
	}
	if got != "[\n  \"b\"\n]" {
		t.Errorf("Unexpected result: %q", got)
	}

	all, err := ApplyValue(rows, "")
	if err != nil {
		t.Fatalf("ApplyValue failed: %v", err)
	}
	if !strings.Contains(all, "\"name\": \"T1\"") {
		t.Errorf("Expected indented JSON, got %s", all)
	}
}

func TestIsValidJMESPath(t *testing.T) {
	if !IsValidJMESPath("[].name") {
		t.Error("Expected valid expression")
	}
	if IsValidJMESPath("[?") {
		t.Error("Expected invalid expression")
	}
}
