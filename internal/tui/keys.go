package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/document"
	"github.com/studiowebux/ispcli/internal/formatter"
	"github.com/studiowebux/ispcli/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if action, ok := m.keybinds.Match(keybinds.ContextGlobal, msg.String()); ok && action == keybinds.ActionQuitForce {
		return tea.Quit
	}

	// Mode-specific handling
	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModeBCC:
		return m.handleBCCKeys(msg)
	case ModePreview:
		return m.handlePreviewKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	}

	return nil
}

// handleNormalKeys handles keys in the table editor
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	// Match key to action using keybinds registry
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextNormal, msg.String())
	if partial || !ok {
		return nil
	}

	if navigate(action, &m.cursor, len(m.rows), m.tableHeight()) {
		m.ensureCursorVisible()
		return nil
	}

	row, hasRow := m.selected()

	switch action {
	case keybinds.ActionQuit:
		if m.sessionMgr.NeedsLeaveConfirmation() {
			prompt := "Quit and discard the current table?"
			if m.sessionMgr.IsDirty() {
				prompt = "The table has unexported changes. Quit anyway?"
			}
			m.askConfirm(confirmQuit, prompt)
			return nil
		}
		return tea.Quit

	case keybinds.ActionAddParameter:
		id := m.sessionMgr.AddParameter()
		return m.editNewRow(tableRow{Kind: RowParameter, ParameterID: id}, "New parameter")

	case keybinds.ActionAddCharacteristic:
		if !hasRow {
			return m.setStatusMessage(fmt.Sprintf("Add a parameter first (%s)", m.bindingHint(keybinds.ContextNormal, keybinds.ActionAddParameter)))
		}
		id, ok := m.sessionMgr.AddCharacteristic(row.ParameterID)
		if !ok {
			return nil
		}
		return m.editNewRow(tableRow{Kind: RowCharacteristic, ParameterID: row.ParameterID, CharacteristicID: id}, "New characteristic")

	case keybinds.ActionAddPartition:
		if !hasRow || row.Kind == RowParameter {
			return m.setStatusMessage("Select a characteristic to add a partition")
		}
		id, ok := m.sessionMgr.AddPartition(row.ParameterID, row.CharacteristicID)
		if !ok {
			return nil
		}
		return m.editNewRow(tableRow{
			Kind:             RowPartition,
			ParameterID:      row.ParameterID,
			CharacteristicID: row.CharacteristicID,
			PartitionID:      id,
		}, "New partition")

	case keybinds.ActionEditName:
		if !hasRow {
			return nil
		}
		m.editState.BeginRow(FieldName, "Rename "+row.Kind.String(), row, row.Name)
		m.enterEdit()

	case keybinds.ActionEditValue:
		if !hasRow || row.Kind != RowPartition {
			return m.setStatusMessage("Only partitions have a value")
		}
		m.editState.BeginRow(FieldValue, "Value of "+row.Label, row, row.Value)
		m.enterEdit()

	case keybinds.ActionSetBase:
		if !hasRow || row.Kind != RowPartition {
			return m.setStatusMessage("Select a partition to use as base choice")
		}
		if m.sessionMgr.SetBase(row.ParameterID, row.CharacteristicID, row.PartitionID) {
			m.refreshRows()
			return m.setStatusMessage(fmt.Sprintf("Base choice set to %s", row.Label))
		}

	case keybinds.ActionClearBase:
		if !hasRow || row.Kind == RowParameter {
			return m.setStatusMessage("Select a characteristic to clear its base choice")
		}
		if m.sessionMgr.ClearBase(row.ParameterID, row.CharacteristicID) {
			m.refreshRows()
			return m.setStatusMessage("Base choice cleared")
		}

	case keybinds.ActionDelete:
		if !hasRow {
			return nil
		}
		if m.deleteRow(row) {
			m.clearSearch()
			m.refreshRows()
			return m.setStatusMessage(fmt.Sprintf("Deleted %s %s", row.Kind, displayName(row.Name)))
		}

	case keybinds.ActionOpenPreview:
		m.openPreview(previewISP)

	case keybinds.ActionOpenBCC:
		m.mode = ModeBCC
		m.bccCursor = 0
		m.bccOffset = 0
		if m.sessionMgr.Readiness() != nil {
			return m.setErrorMessage(bcc.GuidanceMessage)
		}

	case keybinds.ActionCopyISP:
		return copyToClipboard("ISP table", formatter.ISPTableHTML(m.sessionMgr.Document(), m.formatterOptions()))

	case keybinds.ActionExport:
		m.editState.Begin(FieldExportPath, "Export table", m.defaultFilePath())
		m.enterEdit()

	case keybinds.ActionImport:
		m.editState.Begin(FieldImportPath, "Import table", m.defaultFilePath())
		m.enterEdit()

	case keybinds.ActionLoadSample:
		m.sessionMgr.LoadSample()
		m.cursor = 0
		m.offset = 0
		m.clearSearch()
		m.refreshRows()
		return m.setStatusMessage("Sample data loaded")

	case keybinds.ActionClear:
		if !m.sessionMgr.NeedsLeaveConfirmation() {
			return m.setStatusMessage("Table is already empty")
		}
		m.askConfirm(confirmClear, "Clear the whole table? Oracles and test names are discarded too.")

	case keybinds.ActionOpenSearch:
		m.clearSearch()
		m.mode = ModeSearch

	case keybinds.ActionSearchNext:
		return m.jumpMatch(1)

	case keybinds.ActionSearchPrevious:
		return m.jumpMatch(-1)

	case keybinds.ActionOpenHelp:
		m.openHelp()
	}

	return nil
}

// editNewRow selects a freshly added row and opens its name prompt
func (m *Model) editNewRow(target tableRow, title string) tea.Cmd {
	m.refreshRows()
	m.selectRow(target)
	if row, ok := m.selected(); ok && row.sameEntity(target) {
		m.editState.BeginRow(FieldName, title, row, "")
		m.enterEdit()
	}
	return nil
}

// deleteRow removes the entity shown by row
func (m *Model) deleteRow(row tableRow) bool {
	switch row.Kind {
	case RowParameter:
		return m.sessionMgr.DeleteParameter(row.ParameterID)
	case RowCharacteristic:
		return m.sessionMgr.DeleteCharacteristic(row.ParameterID, row.CharacteristicID)
	default:
		return m.sessionMgr.DeletePartition(row.ParameterID, row.CharacteristicID, row.PartitionID)
	}
}

// renameRow writes a new name to the entity shown by row
func (m *Model) renameRow(row tableRow, name string) bool {
	switch row.Kind {
	case RowParameter:
		return m.sessionMgr.UpdateParameter(row.ParameterID, document.ParameterPatch{Name: &name})
	case RowCharacteristic:
		return m.sessionMgr.UpdateCharacteristic(row.ParameterID, row.CharacteristicID, document.CharacteristicPatch{Name: &name})
	default:
		return m.sessionMgr.UpdatePartition(row.ParameterID, row.CharacteristicID, row.PartitionID, document.PartitionPatch{Name: &name})
	}
}

func (m *Model) enterEdit() {
	m.returnMode = m.mode
	m.mode = ModeEdit
}

func (m *Model) askConfirm(action confirmAction, prompt string) {
	m.confirmAction = action
	m.confirmPrompt = prompt
	m.returnMode = m.mode
	m.mode = ModeConfirm
}

// handleEditKeys handles keys while a text prompt is open
func (m *Model) handleEditKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextTextInput, msg.String()); ok {
		switch action {
		case keybinds.ActionTextSubmit:
			return m.commitEdit()
		case keybinds.ActionTextCancel:
			m.editState.Reset()
			m.mode = m.returnMode
		case keybinds.ActionTextBackspace:
			m.editState.Backspace()
		case keybinds.ActionTextDelete:
			m.editState.Delete()
		case keybinds.ActionTextMoveLeft:
			m.editState.MoveLeft()
		case keybinds.ActionTextMoveRight:
			m.editState.MoveRight()
		case keybinds.ActionTextMoveHome:
			m.editState.MoveHome()
		case keybinds.ActionTextMoveEnd:
			m.editState.MoveEnd()
		case keybinds.ActionTextDeleteWord:
			m.editState.DeleteWord()
		case keybinds.ActionTextClearBefore:
			m.editState.ClearBefore()
		case keybinds.ActionTextClearAfter:
			m.editState.ClearAfter()
		case keybinds.ActionTextPaste:
			return pasteFromClipboard()
		}
		return nil
	}

	if text, ok := typedText(msg); ok {
		m.editState.Insert(text)
	}
	return nil
}

// typedText returns the printable text of a key press
func typedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}

// commitEdit applies the prompt input and closes the prompt
func (m *Model) commitEdit() tea.Cmd {
	field := m.editState.Field()
	input := m.editState.GetInput()
	row := m.editState.Row()
	signature := m.editState.Signature()
	m.editState.Reset()
	m.mode = m.returnMode

	switch field {
	case FieldName:
		if m.renameRow(row, input) {
			m.refreshRows()
		}

	case FieldValue:
		if m.sessionMgr.UpdatePartition(row.ParameterID, row.CharacteristicID, row.PartitionID, document.PartitionPatch{Value: &input}) {
			m.refreshRows()
		}

	case FieldOracle:
		m.sessionMgr.SetOracle(signature, input)
		return m.setStatusMessage("Oracle saved")

	case FieldTestName:
		m.sessionMgr.SetTestName(signature, strings.TrimSpace(input))
		return m.setStatusMessage("Test name saved")

	case FieldImportPath:
		path := strings.TrimSpace(input)
		if path == "" {
			return m.setErrorMessage("Path cannot be empty")
		}
		if m.sessionMgr.NeedsLeaveConfirmation() {
			m.pendingImport = path
			m.askConfirm(confirmImport, fmt.Sprintf("Replace the current table with %s?", path))
			return nil
		}
		return loadFile(path)

	case FieldExportPath:
		path := strings.TrimSpace(input)
		if path == "" {
			return m.setErrorMessage("Path cannot be empty")
		}
		return m.exportCmd(path)
	}

	return nil
}

// handleBCCKeys handles keys in the test set view
func (m *Model) handleBCCKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextBCC, msg.String())
	if partial || !ok {
		return nil
	}

	rows := m.sessionMgr.TestRows()
	if navigate(action, &m.bccCursor, len(rows), m.bccListHeight()) {
		m.ensureBCCCursorVisible()
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
		return nil
	case keybinds.ActionOpenHelp:
		m.openHelp()
		return nil
	}

	if len(rows) == 0 {
		return m.setErrorMessage(bcc.GuidanceMessage)
	}
	if m.bccCursor >= len(rows) {
		m.bccCursor = len(rows) - 1
	}
	row := rows[m.bccCursor]

	switch action {
	case keybinds.ActionEditOracle:
		entry := m.sessionMgr.Annotation(row.Signature)
		m.editState.BeginTest(FieldOracle, "Oracle for "+row.Name, row.Signature, entry.Oracle)
		m.enterEdit()

	case keybinds.ActionEditTestName:
		entry := m.sessionMgr.Annotation(row.Signature)
		m.editState.BeginTest(FieldTestName, "Test name for "+row.Name, row.Signature, entry.TestName)
		m.enterEdit()

	case keybinds.ActionCopyBCC:
		html, _ := formatter.BCCTableHTML(rows, m.sessionMgr.Oracles(rows), m.formatterOptions())
		return copyToClipboard("Test table", html)

	case keybinds.ActionCopyBCCMD:
		md, _ := formatter.BCCTableMarkdown(rows, m.sessionMgr.Oracles(rows), m.formatterOptions())
		return copyToClipboard("Markdown test table", md)

	case keybinds.ActionCopySkeleton:
		style, err := formatter.ParseSkeletonStyle(m.settings.SkeletonStyle)
		if err != nil {
			return m.setErrorMessage(err.Error())
		}
		return copyToClipboard("Test skeleton", formatter.TestSkeleton(rows, m.sessionMgr.TestNames(rows), style))

	case keybinds.ActionPreviewExports:
		m.openPreview(previewBCC)
	}

	return nil
}

// handlePreviewKeys handles keys in the export preview
func (m *Model) handlePreviewKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextPreview, msg.String())
	if partial || !ok {
		return nil
	}
	if scrollViewport(&m.previewView, action) {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.mode = m.preview.returnMode
	case keybinds.ActionCycleFormat:
		m.preview.format = (m.preview.format + 1) % len(m.previewFormats())
		m.updatePreviewContent()
		m.previewView.GotoTop()
	case keybinds.ActionCopyPreview:
		format := m.previewFormats()[m.preview.format]
		return copyToClipboard(format.Name, m.previewRaw())
	}
	return nil
}

// handleSearchKeys handles keys while typing a search query
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextSearch, msg.String()); ok {
		switch action {
		case keybinds.ActionTextSubmit:
			m.mode = ModeNormal
			if m.searchQuery == "" {
				return nil
			}
			if len(m.searchMatches) == 0 {
				return m.setStatusMessage(fmt.Sprintf("No rows match %q", m.searchQuery))
			}
			return m.setStatusMessage(fmt.Sprintf("Match 1 of %d", len(m.searchMatches)))
		case keybinds.ActionTextCancel:
			m.clearSearch()
			m.mode = ModeNormal
		case keybinds.ActionTextBackspace:
			if r := []rune(m.searchQuery); len(r) > 0 {
				m.searchQuery = string(r[:len(r)-1])
				m.performSearch()
			}
		case keybinds.ActionTextClearBefore:
			m.searchQuery = ""
			m.performSearch()
		case keybinds.ActionTextPaste:
			return pasteFromClipboard()
		}
		return nil
	}

	if text, ok := typedText(msg); ok {
		m.searchQuery += text
		m.performSearch()
	}
	return nil
}

// handleHelpKeys handles keys in the help viewer
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextHelp, msg.String())
	if partial || !ok {
		return nil
	}
	if scrollViewport(&m.helpView, action) {
		return nil
	}
	if action == keybinds.ActionCloseModal {
		m.mode = m.returnMode
	}
	return nil
}

// handleConfirmKeys handles yes/no prompts
func (m *Model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm:
		m.mode = m.returnMode
		return m.runConfirmed()
	case keybinds.ActionCancel:
		m.mode = m.returnMode
		m.pendingImport = ""
		return m.setStatusMessage("Cancelled")
	}
	return nil
}

func (m *Model) runConfirmed() tea.Cmd {
	switch m.confirmAction {
	case confirmQuit:
		return tea.Quit

	case confirmClear:
		m.sessionMgr.Clear()
		m.cursor = 0
		m.offset = 0
		m.clearSearch()
		m.refreshRows()
		return m.setStatusMessage("Table cleared")

	case confirmImport:
		path := m.pendingImport
		m.pendingImport = ""
		if path == "" {
			return nil
		}
		return loadFile(path)
	}
	return nil
}

// navigate applies a list navigation action to cursor
// It reports whether action was a navigation action
func navigate(action keybinds.Action, cursor *int, count, page int) bool {
	page = max(page, 1)
	half := max(page/2, 1)

	switch action {
	case keybinds.ActionNavigateUp:
		*cursor--
	case keybinds.ActionNavigateDown:
		*cursor++
	case keybinds.ActionPageUp:
		*cursor -= page
	case keybinds.ActionPageDown:
		*cursor += page
	case keybinds.ActionHalfPageUp:
		*cursor -= half
	case keybinds.ActionHalfPageDown:
		*cursor += half
	case keybinds.ActionGoToTop:
		*cursor = 0
	case keybinds.ActionGoToBottom:
		*cursor = count - 1
	default:
		return false
	}

	if *cursor >= count {
		*cursor = count - 1
	}
	if *cursor < 0 {
		*cursor = 0
	}
	return true
}

// scrollViewport applies a navigation action to a viewport
func scrollViewport(vp *viewport.Model, action keybinds.Action) bool {
	half := max(vp.Height/2, 1)

	switch action {
	case keybinds.ActionNavigateUp:
		vp.LineUp(1)
	case keybinds.ActionNavigateDown:
		vp.LineDown(1)
	case keybinds.ActionPageUp:
		vp.ViewUp()
	case keybinds.ActionPageDown:
		vp.ViewDown()
	case keybinds.ActionHalfPageUp:
		vp.LineUp(half)
	case keybinds.ActionHalfPageDown:
		vp.LineDown(half)
	case keybinds.ActionGoToTop:
		vp.GotoTop()
	case keybinds.ActionGoToBottom:
		vp.GotoBottom()
	default:
		return false
	}
	return true
}

// bindingHint returns the first key bound to action for inline hints
func (m *Model) bindingHint(ctx keybinds.Context, action keybinds.Action) string {
	keys := m.keybinds.GetBinding(ctx, action)
	if len(keys) == 0 {
		return "unbound"
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}

func (m *Model) formatterOptions() formatter.Options {
	return formatter.Options{
		HighlightColor:    m.settings.HighlightColor,
		OraclePlaceholder: m.settings.OraclePlaceholder,
	}
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return fmt.Sprintf("%q", name)
}
