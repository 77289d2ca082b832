package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/ispcli/internal/config"
	"github.com/studiowebux/ispcli/internal/keybinds"
	"github.com/studiowebux/ispcli/internal/session"
	"github.com/studiowebux/ispcli/internal/snapshot"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
	ModeBCC
	ModePreview
	ModeSearch
	ModeHelp
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "TABLE"
	case ModeEdit:
		return "EDIT"
	case ModeBCC:
		return "TESTS"
	case ModePreview:
		return "PREVIEW"
	case ModeSearch:
		return "SEARCH"
	case ModeHelp:
		return "HELP"
	case ModeConfirm:
		return "CONFIRM"
	}
	return ""
}

// confirmAction is what a confirmation prompt runs on yes
type confirmAction int

const (
	confirmClear confirmAction = iota
	confirmQuit
	confirmImport
)

// Model represents the TUI state
type Model struct {
	// Core state
	sessionMgr *session.Manager
	keybinds   *keybinds.Registry
	settings   config.Settings
	mode       Mode
	returnMode Mode // Mode restored when an edit, help or confirm prompt closes

	// Table
	rows   []tableRow
	cursor int
	offset int

	// Test set
	bccCursor int
	bccOffset int

	// Edit prompt
	editState *EditState

	// Preview
	preview     previewState
	previewView viewport.Model
	helpView    viewport.Model
	modalView   viewport.Model

	// Search
	searchQuery   string
	searchMatches []int // Row indices, best match first
	searchIndex   int

	// Confirmation
	confirmPrompt string
	confirmAction confirmAction
	pendingImport string // Path waiting for confirmation before it replaces the table

	// File last imported from or exported to
	filePath string

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewports()

	case clipboardCopiedMsg:
		cmd = m.setStatusMessage(fmt.Sprintf("%s copied to clipboard", msg.what))

	case clipboardPastedMsg:
		switch m.mode {
		case ModeEdit:
			m.editState.Insert(msg.text)
		case ModeSearch:
			m.searchQuery += msg.text
			m.performSearch()
		}

	case fileLoadedMsg:
		if err := m.sessionMgr.Import(msg.data, snapshot.DetectFormat(msg.path)); err != nil {
			log.Printf("import %s: %v", msg.path, err)
			cmd = m.setErrorMessage(fmt.Sprintf("Import failed: %v", err))
			break
		}
		m.filePath = msg.path
		m.cursor = 0
		m.offset = 0
		m.clearSearch()
		m.refreshRows()
		cmd = m.setStatusMessage(fmt.Sprintf("Imported %s", msg.path))

	case fileSavedMsg:
		m.sessionMgr.MarkSaved()
		m.filePath = msg.path
		cmd = m.setStatusMessage(fmt.Sprintf("Exported to %s", msg.path))

	case clearStatusMsg:
		m.statusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""

	case errorMsg:
		log.Printf("error: %s", string(msg))
		cmd = m.setErrorMessage(string(msg))
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeEdit:
		return m.renderEditModal()
	case ModeBCC:
		return m.renderBCC()
	case ModePreview:
		return m.renderPreview()
	case ModeHelp:
		return m.renderHelp()
	case ModeConfirm:
		return m.renderConfirmModal()
	default:
		return m.renderMain()
	}
}

// Custom message types
type clipboardCopiedMsg struct {
	what string
}

type clipboardPastedMsg struct {
	text string
}

type fileLoadedMsg struct {
	path string
	data []byte
}

type fileSavedMsg struct {
	path string
}

type clearStatusMsg struct{}
type clearErrorMsg struct{}

type errorMsg string

// refreshRows rebuilds the table rows from the session and clamps the cursor
func (m *Model) refreshRows() {
	m.rows = flattenRows(m.sessionMgr.Document())
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.searchQuery != "" {
		m.searchMatches = m.matchRows()
		if m.searchIndex >= len(m.searchMatches) {
			m.searchIndex = 0
		}
	}
	m.ensureCursorVisible()
}

// selectRow moves the cursor to the row showing target, if present
func (m *Model) selectRow(target tableRow) {
	if i := indexOf(m.rows, target); i >= 0 {
		m.cursor = i
		m.ensureCursorVisible()
	}
}

// selected returns the row under the cursor
func (m *Model) selected() (tableRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return tableRow{}, false
	}
	return m.rows[m.cursor], true
}

// Helper methods for setting messages with the configured timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = truncate(msg, 100)
	m.errorMsg = ""
	if timeout := m.settings.MessageDuration(); timeout > 0 {
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})
	}
	return nil
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = truncate(msg, 100)
	if timeout := m.settings.MessageDuration(); timeout > 0 {
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearErrorMsg{}
		})
	}
	return nil
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
