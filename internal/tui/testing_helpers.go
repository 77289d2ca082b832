package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/ispcli/internal/config"
	"github.com/studiowebux/ispcli/internal/keybinds"
	"github.com/studiowebux/ispcli/internal/session"
)

// CreateTestModel creates a Model with an empty table and default settings
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	settings := config.DefaultSettings()
	noTimeout := 0
	settings.MessageTimeout = &noTimeout

	m := New(session.NewManager(), keybinds.NewDefaultRegistry(), settings)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &m
}

// CreateTestModelWithSample creates a Model holding the sample table
func CreateTestModelWithSample(t *testing.T) *Model {
	t.Helper()

	m := CreateTestModel(t)
	m.sessionMgr.LoadSample()
	m.refreshRows()
	return m
}

// keyMsg builds the key message bubbletea would send for key
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+v":
		return tea.KeyMsg{Type: tea.KeyCtrlV}
	case "ctrl+w":
		return tea.KeyMsg{Type: tea.KeyCtrlW}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press sends keys in order and returns the command of the last one
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, key := range keys {
		_, cmd = m.Update(keyMsg(key))
	}
	return cmd
}

// typeText sends text one rune at a time
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// runCmd executes cmd and feeds its message back into the model
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a command, got nil")
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
