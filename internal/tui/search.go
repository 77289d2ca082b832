package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// performSearch fuzzy matches the query against the table rows and jumps to
// the best match
func (m *Model) performSearch() {
	m.searchMatches = nil
	m.searchIndex = 0
	if m.searchQuery == "" {
		return
	}

	m.searchMatches = m.matchRows()
	if len(m.searchMatches) > 0 {
		m.cursor = m.searchMatches[0]
		m.ensureCursorVisible()
	}
}

// matchRows returns the indices of rows matching the query, best first
func (m *Model) matchRows() []int {
	texts := make([]string, len(m.rows))
	for i, row := range m.rows {
		texts[i] = row.searchText()
	}

	var matches []int
	for _, match := range fuzzy.Find(m.searchQuery, texts) {
		matches = append(matches, match.Index)
	}
	return matches
}

// jumpMatch moves to the next or previous search match
func (m *Model) jumpMatch(delta int) tea.Cmd {
	if len(m.searchMatches) == 0 {
		return m.setStatusMessage("No search matches")
	}
	n := len(m.searchMatches)
	m.searchIndex = ((m.searchIndex+delta)%n + n) % n
	m.cursor = m.searchMatches[m.searchIndex]
	m.ensureCursorVisible()
	return m.setStatusMessage(fmt.Sprintf("Match %d of %d", m.searchIndex+1, n))
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchIndex = 0
}
