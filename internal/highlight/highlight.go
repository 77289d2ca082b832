// Package highlight colors exported text for terminal previews.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	// Formatter is the chroma terminal formatter used for previews
	Formatter = "terminal256"
	// Style is the chroma style used for previews
	Style = "monokai"
)

// Language names accepted by Code
const (
	LangHTML     = "html"
	LangMarkdown = "markdown"
	LangJava     = "java"
	LangGo       = "go"
	LangJSON     = "json"
	LangYAML     = "yaml"
)

// Code returns source colored for a 256-color terminal
// The plain source is returned when highlighting fails
func Code(source, language string) string {
	if source == "" {
		return source
	}
	var sb strings.Builder
	if err := quick.Highlight(&sb, source, language, Formatter, Style); err != nil {
		return source
	}
	return sb.String()
}
