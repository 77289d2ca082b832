package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// fitModal clamps a requested modal size to the terminal
func (m *Model) fitModal(width, height int) (int, int) {
	width = min(width, m.width-ViewportPaddingHorizontal)
	height = min(height, m.height-ModalHeightMarginSmall)
	if m.width >= 30 {
		width = max(width, 30)
	}
	if m.height >= 8 {
		height = max(height, 8)
	}
	return width, height
}

// renderModalWithFooter shows content in a centered box of about width x height
// Content taller than the box scrolls inside modalView
func (m *Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	width, height = m.fitModal(width, height)

	reserved := ModalOverheadLines
	if footer != "" {
		reserved += 2
	}
	if height-reserved < 1 {
		reserved -= ModalOverheadLines - ModalOverheadMinimal
	}

	m.modalView.Width = max(width-ViewportPaddingHorizontal, 10)
	m.modalView.Height = max(height-reserved, 1)
	m.modalView.SetContent(content)

	return m.placeModal(modalBody(title, m.modalView.View(), footer), width, height)
}

// renderViewportModal shows an already sized viewport in a near full screen box
func (m *Model) renderViewportModal(title, view, footer string) string {
	return m.placeModal(modalBody(title, view, footer), m.width-ViewportPaddingHorizontal, m.height-ModalHeightMarginSmall)
}

func modalBody(title, view, footer string) string {
	body := styleTitle.Render(title) + "\n\n" + view
	if footer != "" {
		body += "\n\n" + styleSubtle.Render(footer)
	}
	return body
}

// placeModal frames content and centers it unless it fills the screen
func (m *Model) placeModal(content string, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2).
		Width(width).
		Height(height).
		Render(content)

	if width >= m.width-2 || height >= m.height-1 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
