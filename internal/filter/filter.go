// Package filter applies JMESPath expressions to JSON output.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Apply runs a JMESPath expression over a JSON document and returns the
// result as indented JSON. An empty expression returns the input unchanged.
func Apply(jsonStr string, expression string) (string, error) {
	if expression == "" {
		return jsonStr, nil
	}

	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return search(data, expression)
}

// ApplyValue marshals v to JSON and runs the expression over it
func ApplyValue(v interface{}, expression string) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal value: %w", err)
	}
	if expression == "" {
		var data interface{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return "", fmt.Errorf("invalid JSON: %w", err)
		}
		return marshal(data)
	}
	return Apply(string(raw), expression)
}

func search(data interface{}, expression string) (string, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}
	if result == nil {
		return "null", nil
	}
	return marshal(result)
}

func marshal(v interface{}) (string, error) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}

// IsValidJMESPath checks if an expression is valid JMESPath syntax
func IsValidJMESPath(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}
