package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/ispcli/internal/config"
	"github.com/studiowebux/ispcli/internal/snapshot"
)

// clipboardWrite and clipboardRead are replaced in tests
var (
	clipboardWrite = clipboard.WriteAll
	clipboardRead  = clipboard.ReadAll
)

// copyToClipboard copies content and reports what was copied
func copyToClipboard(what, content string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(content); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy %s: %v", what, err))
		}
		return clipboardCopiedMsg{what: what}
	}
}

// pasteFromClipboard reads the clipboard into the active prompt
func pasteFromClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboardRead()
		if err != nil {
			return errorMsg(fmt.Sprintf("Failed to paste: %v", err))
		}
		return clipboardPastedMsg{text: text}
	}
}

// loadFile reads a snapshot file; decoding happens in Update
func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return errorMsg(fmt.Sprintf("Import failed: %v", err))
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return errorMsg(fmt.Sprintf("Import failed: %v", err))
		}
		return fileLoadedMsg{path: path, data: data}
	}
}

// saveFile writes an encoded snapshot
func saveFile(path string, data []byte) tea.Cmd {
	return func() tea.Msg {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return errorMsg(fmt.Sprintf("Export failed: %v", err))
		}
		if dir := filepath.Dir(expanded); dir != "" {
			if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
				return errorMsg(fmt.Sprintf("Export failed: failed to create directory: %v", err))
			}
		}
		if err := os.WriteFile(expanded, data, config.FilePermissions); err != nil {
			return errorMsg(fmt.Sprintf("Export failed: %v", err))
		}
		return fileSavedMsg{path: path}
	}
}

// exportCmd encodes the current document and writes it to path
func (m *Model) exportCmd(path string) tea.Cmd {
	data, err := m.sessionMgr.Export(snapshot.DetectFormat(path))
	if err != nil {
		return m.setErrorMessage(fmt.Sprintf("Export failed: %v", err))
	}
	return saveFile(path, data)
}

// defaultFilePath is the path suggested by import and export prompts
func (m *Model) defaultFilePath() string {
	if m.filePath != "" {
		return m.filePath
	}
	return m.settings.ExportFile
}
