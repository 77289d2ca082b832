/*
Package tui implements the interactive ISP table editor.

# Architecture

The TUI follows the Bubble Tea Model-Update-View pattern:
  - model.go: Mode enum, Model state, Update and View
  - keys.go: keyboard routing through the keybinds registry
  - rows.go: flattening of the document into selectable table rows
  - edit_state.go: the text input shared by every edit prompt
  - actions.go: clipboard and file operations run as tea.Cmd
  - render.go, modals.go: styles and views

# Modes

  - ModeNormal: the table editor
  - ModeEdit: a text prompt (names, values, oracles, test names, paths)
  - ModeBCC: the generated Base Choice Coverage test set
  - ModePreview: ISP or test set exports with syntax highlighting
  - ModeSearch: fuzzy search over table rows
  - ModeHelp: key bindings built from the registry
  - ModeConfirm: yes/no prompt before clearing or quitting

# Threading Model

Update is the only place the session is mutated. Clipboard and file I/O run
in tea.Cmd functions and report back with messages. session.Manager and
EditState are guarded by sync.RWMutex so commands can read them safely.
*/
package tui
