package tui

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/ispcli/internal/config"
	"github.com/studiowebux/ispcli/internal/keybinds"
	"github.com/studiowebux/ispcli/internal/session"
)

// DebugEnv enables the debug log when set
const DebugEnv = "ISPCLI_DEBUG"

// New creates a new TUI model
func New(mgr *session.Manager, registry *keybinds.Registry, settings config.Settings) Model {
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	m := Model{
		sessionMgr:  mgr,
		keybinds:    registry,
		settings:    settings,
		mode:        ModeNormal,
		editState:   NewEditState(),
		previewView: viewport.New(80, 20),
		helpView:    viewport.New(80, 20),
		modalView:   viewport.New(80, 20),
	}
	m.refreshRows()

	return m
}

// Run starts the TUI, importing initialFile first when given
// config.Initialize must have been called
func Run(initialFile string) error {
	settings, err := config.LoadSettings(config.GetSettingsFilePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		settings = config.DefaultSettings()
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using default keybinds\n", err)
		registry = keybinds.NewDefaultRegistry()
	}
	if result := keybinds.NewValidator().ValidateRegistry(registry); result.HasErrors() || result.HasWarnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", result.String())
	}

	mgr := session.NewManager()
	if initialFile != "" {
		if err := mgr.ImportFile(initialFile); err != nil {
			return err
		}
	}

	// The log package would otherwise write over the alternate screen
	log.SetOutput(io.Discard)
	if os.Getenv(DebugEnv) != "" {
		f, err := tea.LogToFile(config.DebugLogFile, "ispcli")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	}

	m := New(mgr, registry, settings)
	m.filePath = initialFile

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
