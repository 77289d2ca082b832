package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorGreen)

	styleTitleUnfocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorGray)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleCell = lipgloss.NewStyle().Padding(0, 1)
)

// renderMain renders the table editor
func (m *Model) renderMain() string {
	header := m.renderHeader()

	var body string
	if len(m.rows) == 0 {
		body = styleSubtle.Render(fmt.Sprintf("\n  The table is empty. Press %s to add a parameter or %s to load the sample.\n",
			m.bindingHint(keybinds.ContextNormal, keybinds.ActionAddParameter),
			m.bindingHint(keybinds.ContextNormal, keybinds.ActionLoadSample)))
	} else {
		body = m.renderTable(m.width - 2)
	}

	main := lipgloss.JoinVertical(lipgloss.Left, header, "", body)
	main = lipgloss.NewStyle().Height(m.height - StatusBarLines).Render(main)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

// renderHeader renders the title line with file, dirty marker and readiness
func (m *Model) renderHeader() string {
	left := styleTitle.Render("ISP Table")
	if m.filePath != "" {
		left += styleSubtle.Render("  " + m.filePath)
	}
	if m.sessionMgr.IsDirty() {
		left += styleWarning.Render("  [modified]")
	}

	var right string
	switch reason := m.sessionMgr.Readiness(); {
	case reason == nil:
		right = styleSuccess.Render(fmt.Sprintf("✓ %d tests", bcc.ExpectedRowCount(m.sessionMgr.Document())))
	case errors.Is(reason, bcc.ErrNoCharacteristics):
		right = styleSubtle.Render("no partitions yet")
	default:
		right = styleWarning.Render(reason.Error())
	}

	spacing := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
	return left + strings.Repeat(" ", spacing) + right
}

// renderTable renders the visible window of table rows
func (m *Model) renderTable(width int) string {
	height := m.tableHeight()
	end := min(m.offset+height, len(m.rows))
	visible := m.rows[m.offset:end]

	cells := make([][]string, len(visible))
	for i, row := range visible {
		cells[i] = rowCells(row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		Headers("Parameter", "Characteristic", "Partition", "Value", "Base").
		Rows(cells...).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleCell.Bold(true).Foreground(colorCyan)
			}
			style := styleCell
			if row < 0 || row >= len(visible) {
				return style
			}
			r := visible[row]
			if col == 4 {
				switch {
				case r.IsBase || r.HasBase:
					style = style.Foreground(colorGreen)
				case r.Kind == RowCharacteristic && !r.Empty:
					style = style.Foreground(colorYellow)
				}
			}
			if m.offset+row == m.cursor {
				style = style.Inherit(styleSelected)
			}
			return style
		})

	return t.Render()
}

// rowCells returns the five table cells of a row
func rowCells(row tableRow) []string {
	switch row.Kind {
	case RowParameter:
		return []string{nameOrPlaceholder(row.Name), "", "", "", ""}
	case RowCharacteristic:
		status := "missing"
		if row.Empty {
			status = "-"
		} else if row.HasBase {
			status = "✓"
		}
		return []string{"", row.Label, "", "", status}
	default:
		base := ""
		if row.IsBase {
			base = "● base"
		}
		return []string{"", "", row.Label, row.Value, base}
	}
}

func nameOrPlaceholder(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

// renderStatusBar renders the status bar at the bottom
func (m *Model) renderStatusBar() string {
	left := styleTitle.Render(m.mode.String())
	if len(m.rows) > 0 {
		left += styleSubtle.Render(fmt.Sprintf(" %d/%d", m.cursor+1, len(m.rows)))
	}

	right := ""
	switch m.mode {
	case ModeSearch:
		right = fmt.Sprintf("Search: %s", addCursor(m.searchQuery))
		if m.searchQuery != "" {
			right += styleSubtle.Render(fmt.Sprintf("  (%d matches)", len(m.searchMatches)))
		}
	default:
		if len(m.searchMatches) > 0 {
			right = styleWarning.Render(fmt.Sprintf("Search: %d of %d | ", m.searchIndex+1, len(m.searchMatches)))
		}
		if m.errorMsg != "" {
			right += styleError.Render(m.errorMsg)
		} else if m.statusMsg != "" {
			right += styleSuccess.Render(m.statusMsg)
		} else if len(m.searchMatches) == 0 {
			right += styleSubtle.Render(fmt.Sprintf("Press %s to search | %s for help | %s to quit",
				m.bindingHint(keybinds.ContextNormal, keybinds.ActionOpenSearch),
				m.bindingHint(keybinds.ContextNormal, keybinds.ActionOpenHelp),
				m.bindingHint(keybinds.ContextNormal, keybinds.ActionQuit)))
		}
	}

	spacing := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", spacing) + right
}

// addCursor adds a visible cursor (█) to a text string
func addCursor(text string) string {
	return text + "█"
}

// tableHeight is the number of table rows that fit on screen
func (m *Model) tableHeight() int {
	return max(m.height-HeaderLines-StatusBarLines-TableBorder, 1)
}

func (m *Model) ensureCursorVisible() {
	height := m.tableHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// updateViewports resizes the scrollable panes after a window change
func (m *Model) updateViewports() {
	width := max(m.width-10, 10)
	height := max(m.height-ModalOverheadLines-4, 3)

	m.previewView.Width = width
	m.previewView.Height = height
	m.helpView.Width = width
	m.helpView.Height = height

	m.ensureCursorVisible()
	m.ensureBCCCursorVisible()
	if m.mode == ModePreview {
		m.updatePreviewContent()
	}
}

// renderPreview renders the export preview
func (m *Model) renderPreview() string {
	formats := m.previewFormats()
	title := fmt.Sprintf("%s  (%d/%d)", formats[m.preview.format].Name, m.preview.format+1, len(formats))
	footer := fmt.Sprintf("[%s] next format  [%s] copy  [%s] close",
		m.bindingHint(keybinds.ContextPreview, keybinds.ActionCycleFormat),
		m.bindingHint(keybinds.ContextPreview, keybinds.ActionCopyPreview),
		m.bindingHint(keybinds.ContextPreview, keybinds.ActionCloseModal))
	return m.renderViewportModal(title, m.previewView.View(), footer)
}

// openHelp fills the help viewer from the registry and shows it
func (m *Model) openHelp() {
	m.helpView.SetContent(m.helpContent())
	m.helpView.GotoTop()
	m.returnMode = m.mode
	m.mode = ModeHelp
}

// renderHelp renders the help viewer
func (m *Model) renderHelp() string {
	footer := fmt.Sprintf("[%s] close  [j/k] scroll", m.bindingHint(keybinds.ContextHelp, keybinds.ActionCloseModal))
	return m.renderViewportModal("Keyboard Shortcuts", m.helpView.View(), footer)
}

var helpSections = []struct {
	title   string
	context keybinds.Context
}{
	{"TABLE", keybinds.ContextNormal},
	{"TEST SET", keybinds.ContextBCC},
	{"PREVIEW", keybinds.ContextPreview},
	{"SEARCH", keybinds.ContextSearch},
	{"TEXT INPUT", keybinds.ContextTextInput},
	{"CONFIRM", keybinds.ContextConfirm},
	{"EVERYWHERE", keybinds.ContextGlobal},
}

// helpContent lists the bound actions of each context
func (m *Model) helpContent() string {
	var sb strings.Builder
	sb.WriteString("ispcli - Keyboard Shortcuts\n")
	sb.WriteString(styleSubtle.Render("Override bindings in keybinds.json"))
	sb.WriteString("\n")

	for _, section := range helpSections {
		seen := make(map[keybinds.Action]bool)
		var actions []keybinds.Action
		for _, b := range m.keybinds.ListBindings(section.context) {
			if seen[b.Action] || b.Action == keybinds.ActionGoToTopPrepare || b.Action == keybinds.ActionNoOp {
				continue
			}
			seen[b.Action] = true
			actions = append(actions, b.Action)
		}
		if len(actions) == 0 {
			continue
		}
		sort.SliceStable(actions, func(i, j int) bool {
			a, b := keybinds.GetActionInfo(actions[i]), keybinds.GetActionInfo(actions[j])
			if a.Category != b.Category {
				return a.Category < b.Category
			}
			return a.Description < b.Description
		})

		sb.WriteString("\n")
		sb.WriteString(styleTitle.Render(section.title))
		sb.WriteString("\n")
		for _, action := range actions {
			keys := m.keybinds.GetBindingString(section.context, action)
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", keys, keybinds.GetActionInfo(action).Description))
		}
	}

	return sb.String()
}

// renderEditModal renders the active text prompt
func (m *Model) renderEditModal() string {
	field := m.editState.Field()

	var content strings.Builder
	if row := m.editState.Row(); row.Label != "" {
		content.WriteString(styleSubtle.Render(row.Label) + "\n\n")
	}
	switch field {
	case FieldTestName:
		content.WriteString(styleSubtle.Render("Leave empty to use the default name") + "\n\n")
	case FieldOracle:
		content.WriteString(styleSubtle.Render("Expected value or behavior of this test") + "\n\n")
	}
	content.WriteString(fmt.Sprintf("%s: %s", field.Prompt(), m.editState.Render()))

	if m.errorMsg != "" {
		content.WriteString("\n\n" + styleError.Render(wrapText(m.errorMsg, EditModalWidth-6)))
	}

	footer := fmt.Sprintf("[%s] save  [%s] cancel  [%s] paste",
		m.bindingHint(keybinds.ContextTextInput, keybinds.ActionTextSubmit),
		m.bindingHint(keybinds.ContextTextInput, keybinds.ActionTextCancel),
		m.bindingHint(keybinds.ContextTextInput, keybinds.ActionTextPaste))

	return m.renderModalWithFooter(m.editState.Title(), content.String(), footer, EditModalWidth, EditModalHeight)
}

// renderConfirmModal renders a yes/no prompt
func (m *Model) renderConfirmModal() string {
	footer := fmt.Sprintf("[%s]es [%s]o",
		m.bindingHint(keybinds.ContextConfirm, keybinds.ActionConfirm),
		m.bindingHint(keybinds.ContextConfirm, keybinds.ActionCancel))
	return m.renderModalWithFooter("Confirm", wrapText(m.confirmPrompt, 50), footer, 60, 10)
}

// wrapText wraps text at word boundaries
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(word) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
