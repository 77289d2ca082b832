package tui

import (
	"sync"
	"unicode"
)

// EditField identifies what an edit prompt writes to
type EditField int

const (
	FieldName EditField = iota
	FieldValue
	FieldOracle
	FieldTestName
	FieldImportPath
	FieldExportPath
)

// Prompt returns the label shown in front of the input
func (f EditField) Prompt() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldValue:
		return "Value"
	case FieldOracle:
		return "Oracle"
	case FieldTestName:
		return "Test name"
	case FieldImportPath:
		return "Import from"
	case FieldExportPath:
		return "Export to"
	}
	return ""
}

// EditState holds the text input of the active edit prompt
// The input is kept as runes so the cursor never splits a character
type EditState struct {
	mu sync.RWMutex

	field     EditField
	row       tableRow // Target row for name and value edits
	signature string   // Target test for oracle and test name edits
	title     string
	input     []rune
	cursor    int
}

// NewEditState creates an empty edit state
func NewEditState() *EditState {
	return &EditState{}
}

// Begin starts editing with the cursor at the end of initial
func (s *EditState) Begin(field EditField, title, initial string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.field = field
	s.title = title
	s.row = tableRow{}
	s.signature = ""
	s.input = []rune(initial)
	s.cursor = len(s.input)
}

// BeginRow starts editing a name or value of a table row
func (s *EditState) BeginRow(field EditField, title string, row tableRow, initial string) {
	s.Begin(field, title, initial)
	s.mu.Lock()
	s.row = row
	s.mu.Unlock()
}

// BeginTest starts editing an annotation of a generated test
func (s *EditState) BeginTest(field EditField, title, signature, initial string) {
	s.Begin(field, title, initial)
	s.mu.Lock()
	s.signature = signature
	s.mu.Unlock()
}

// Field returns the field being edited
func (s *EditState) Field() EditField {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.field
}

// Row returns the row being edited
func (s *EditState) Row() tableRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.row
}

// Signature returns the signature of the test being annotated
func (s *EditState) Signature() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signature
}

// Title returns the prompt title
func (s *EditState) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// GetInput returns the input value
func (s *EditState) GetInput() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.input)
}

// GetCursor returns the cursor position in runes
func (s *EditState) GetCursor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor
}

// Render returns the input with a block cursor
func (s *EditState) Render() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.input[:s.cursor]) + "█" + string(s.input[s.cursor:])
}

// Insert adds text at the cursor
func (s *EditState) Insert(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	runes := []rune(text)
	out := make([]rune, 0, len(s.input)+len(runes))
	out = append(out, s.input[:s.cursor]...)
	out = append(out, runes...)
	out = append(out, s.input[s.cursor:]...)
	s.input = out
	s.cursor += len(runes)
}

// Backspace deletes the rune before the cursor
func (s *EditState) Backspace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == 0 {
		return
	}
	s.input = append(s.input[:s.cursor-1], s.input[s.cursor:]...)
	s.cursor--
}

// Delete deletes the rune at the cursor
func (s *EditState) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.input) {
		return
	}
	s.input = append(s.input[:s.cursor], s.input[s.cursor+1:]...)
}

// DeleteWord deletes the word before the cursor
func (s *EditState) DeleteWord() {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := s.cursor
	for start > 0 && unicode.IsSpace(s.input[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(s.input[start-1]) {
		start--
	}
	s.input = append(s.input[:start], s.input[s.cursor:]...)
	s.cursor = start
}

// ClearBefore deletes everything before the cursor
func (s *EditState) ClearBefore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = append([]rune{}, s.input[s.cursor:]...)
	s.cursor = 0
}

// ClearAfter deletes everything from the cursor on
func (s *EditState) ClearAfter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = s.input[:s.cursor]
}

// MoveLeft moves the cursor one rune left
func (s *EditState) MoveLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveRight moves the cursor one rune right
func (s *EditState) MoveRight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.input) {
		s.cursor++
	}
}

// MoveHome moves the cursor to the start
func (s *EditState) MoveHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = 0
}

// MoveEnd moves the cursor to the end
func (s *EditState) MoveEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = len(s.input)
}

// Reset clears all edit state
func (s *EditState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.field = FieldName
	s.row = tableRow{}
	s.signature = ""
	s.title = ""
	s.input = nil
	s.cursor = 0
}
