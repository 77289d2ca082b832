package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/formatter"
	"github.com/studiowebux/ispcli/internal/keybinds"
	"github.com/studiowebux/ispcli/internal/types"
)

func (m *Model) bccModalSize() (int, int) {
	return max(m.width-4, 20), max(m.height-4, 8)
}

// bccListHeight is the number of tests visible in the list pane
func (m *Model) bccListHeight() int {
	_, height := m.bccModalSize()
	return max(height-5-TableBorder, 1)
}

func (m *Model) ensureBCCCursorVisible() {
	height := m.bccListHeight()
	if m.bccCursor < m.bccOffset {
		m.bccOffset = m.bccCursor
	}
	if m.bccCursor >= m.bccOffset+height {
		m.bccOffset = m.bccCursor - height + 1
	}
	if m.bccOffset < 0 {
		m.bccOffset = 0
	}
}

// renderBCC renders the test set with the details of the selected test
func (m *Model) renderBCC() string {
	rows := m.sessionMgr.TestRows()
	width, height := m.bccModalSize()

	panes := testPanes{
		width:     width,
		height:    height,
		listTitle: "Base Choice Coverage",
		footer:    m.bccFooter(),
	}

	if len(rows) == 0 {
		panes.list = m.renderNotReady()
		return panes.render(m.width, m.height)
	}

	cursor := min(m.bccCursor, len(rows)-1)
	listWidth, detailWidth := panes.widths()

	panes.listTitle = fmt.Sprintf("Base Choice Coverage (%d tests)", len(rows))
	panes.list = m.renderTestTable(rows, cursor, listWidth-2)
	panes.detailTitle = rows[cursor].Name
	panes.detail = m.renderTestDetails(rows[cursor], detailWidth-2)

	return panes.render(m.width, m.height)
}

func (m *Model) bccFooter() string {
	if m.errorMsg != "" {
		return styleError.Render(m.errorMsg)
	}
	if m.statusMsg != "" {
		return styleSuccess.Render(m.statusMsg)
	}

	hints := []struct {
		action keybinds.Action
		label  string
	}{
		{keybinds.ActionEditOracle, "oracle"},
		{keybinds.ActionEditTestName, "test name"},
		{keybinds.ActionCopyBCC, "copy HTML"},
		{keybinds.ActionCopyBCCMD, "copy Markdown"},
		{keybinds.ActionCopySkeleton, "copy skeleton"},
		{keybinds.ActionPreviewExports, "preview"},
		{keybinds.ActionCloseModal, "close"},
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = fmt.Sprintf("[%s] %s", m.bindingHint(keybinds.ContextBCC, h.action), h.label)
	}
	return strings.Join(parts, "  ")
}

// renderNotReady explains why no tests can be generated
func (m *Model) renderNotReady() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(styleWarning.Render(bcc.GuidanceMessage))
	sb.WriteString("\n\n")

	reason := m.sessionMgr.Readiness()
	var missing *bcc.MissingBaseError
	switch {
	case errors.As(reason, &missing):
		sb.WriteString("Missing base choice:\n")
		for _, col := range missing.Characteristics {
			sb.WriteString("  • " + col.Label() + "\n")
		}
	case errors.Is(reason, bcc.ErrNoCharacteristics):
		sb.WriteString(styleSubtle.Render("Add characteristics with partitions to generate tests."))
	case reason != nil:
		sb.WriteString(styleSubtle.Render(reason.Error()))
	}
	return sb.String()
}

// renderTestTable renders the visible window of generated tests
func (m *Model) renderTestTable(rows []types.TestRow, cursor, width int) string {
	base := rows[0].Values
	headers := make([]string, 0, len(base)+1)
	headers = append(headers, "Test")
	for i := range base {
		headers = append(headers, bcc.Letter(i))
	}

	end := min(m.bccOffset+m.bccListHeight(), len(rows))
	visible := rows[m.bccOffset:end]
	cells := make([][]string, len(visible))
	for i, row := range visible {
		cells[i] = append([]string{row.Name}, row.Values...)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		Headers(headers...).
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
			if col > 0 && col-1 < len(base) && visible[row].Values[col-1] == base[col-1] {
				style = style.Foreground(colorGreen)
			}
			if m.bccOffset+row == cursor {
				style = style.Inherit(styleSelected)
			}
			return style
		})

	return t.Render()
}

// renderTestDetails renders inputs, oracle and test name of one test
func (m *Model) renderTestDetails(row types.TestRow, width int) string {
	entry := m.sessionMgr.Annotation(row.Signature)
	columns := bcc.ActiveCharacteristics(m.sessionMgr.Document())

	var sb strings.Builder
	label := formatter.TestLabel(row, map[string]string{row.Name: entry.TestName})
	sb.WriteString("Test name: " + label)
	if entry.TestName == "" {
		sb.WriteString(styleSubtle.Render(" (default)"))
	}
	sb.WriteString("\n\n")

	for i, col := range columns {
		if i >= len(row.Values) {
			break
		}
		marker := "  "
		if i == row.Varied {
			marker = styleWarning.Render("→ ")
		}
		sb.WriteString(fmt.Sprintf("%s%s: %s\n", marker, col.Label(), row.Values[i]))
	}

	sb.WriteString("\n" + styleTitle.Render("Oracle") + "\n")
	if entry.Oracle != "" {
		sb.WriteString(wrapText(entry.Oracle, width))
	} else {
		sb.WriteString(styleSubtle.Render(m.settings.OraclePlaceholder))
	}

	return sb.String()
}
