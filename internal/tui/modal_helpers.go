package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// testPanes lays out the test list next to the details of the selected test
// An empty detailTitle renders the list pane alone at full width
type testPanes struct {
	width  int
	height int

	listTitle string
	list      string

	detailTitle string
	detail      string

	footer string
}

// paneGap is the space taken by the second border column and the join
const paneGap = 3

// widths splits the modal width between the list and detail panes
func (p testPanes) widths() (int, int) {
	list := int(float64(p.width-paneGap) * BCCListWidthRatio)
	return list, p.width - list - paneGap
}

func (p testPanes) render(screenWidth, screenHeight int) string {
	inner := p.height - 4

	var body string
	if p.detailTitle == "" {
		body = pane(styleTitleFocused.Render(p.listTitle), p.list, colorGreen, p.width, inner)
	} else {
		listWidth, detailWidth := p.widths()
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			pane(styleTitleFocused.Render(p.listTitle), p.list, colorGreen, listWidth, inner),
			pane(styleTitleUnfocused.Render(p.detailTitle), p.detail, colorGray, detailWidth, inner),
		)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, body, "\n"+styleSubtle.Render(p.footer))
	return lipgloss.Place(screenWidth, screenHeight, lipgloss.Center, lipgloss.Center, view)
}

// pane draws one bordered column with its title on the first line
func pane(title, body string, border lipgloss.AdaptiveColor, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Height(height).
		Render(title + "\n" + body)
}
