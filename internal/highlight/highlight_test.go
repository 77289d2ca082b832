package highlight

import (
	"strings"
	"testing"
)

func TestCode_AddsEscapes(t *testing.T) {
	out := Code("<table><tr><td>x</td></tr></table>", LangHTML)
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("Expected ANSI escapes in output, got %q", out)
	}
	if !strings.Contains(out, "table") {
		t.Error("Expected source text to be kept")
	}
}

func TestCode_Empty(t *testing.T) {
	if Code("", LangGo) != "" {
		t.Error("Expected empty output for empty input")
	}
}

func TestCode_UnknownLanguageKeepsText(t *testing.T) {
	out := Code("plain words", "no-such-language")
	if !strings.Contains(out, "plain words") {
		t.Errorf("Expected text to survive, got %q", out)
	}
}
