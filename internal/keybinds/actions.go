package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal    Context = "global"     // Available everywhere
	ContextNormal    Context = "normal"     // Table editor
	ContextBCC       Context = "bcc"        // Test set view
	ContextPreview   Context = "preview"    // ISP / export preview
	ContextSearch    Context = "search"     // Fuzzy search input
	ContextHelp      Context = "help"       // Help viewer
	ContextTextInput Context = "text_input" // Any text input
	ContextConfirm   Context = "confirm"    // Confirmation dialogs
)

// AllContexts lists the contexts in display order
var AllContexts = []Context{
	ContextGlobal,
	ContextNormal,
	ContextBCC,
	ContextPreview,
	ContextSearch,
	ContextHelp,
	ContextTextInput,
	ContextConfirm,
}

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionQuitForce Action = "quit_force"

	// Navigation actions
	ActionNavigateUp     Action = "navigate_up"
	ActionNavigateDown   Action = "navigate_down"
	ActionPageUp         Action = "page_up"
	ActionPageDown       Action = "page_down"
	ActionHalfPageUp     Action = "half_page_up"
	ActionHalfPageDown   Action = "half_page_down"
	ActionGoToTop        Action = "go_to_top"
	ActionGoToBottom     Action = "go_to_bottom"
	ActionGoToTopPrepare Action = "go_to_top_prepare" // First 'g' in 'gg'

	// Text input actions
	ActionTextBackspace   Action = "text_backspace"
	ActionTextDelete      Action = "text_delete"
	ActionTextMoveLeft    Action = "text_move_left"
	ActionTextMoveRight   Action = "text_move_right"
	ActionTextMoveHome    Action = "text_move_home"
	ActionTextMoveEnd     Action = "text_move_end"
	ActionTextPaste       Action = "text_paste"
	ActionTextDeleteWord  Action = "text_delete_word"
	ActionTextClearBefore Action = "text_clear_before"
	ActionTextClearAfter  Action = "text_clear_after"
	ActionTextSubmit      Action = "text_submit"
	ActionTextCancel      Action = "text_cancel"

	// Modal actions
	ActionCloseModal Action = "close_modal"
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"

	// Table editor actions
	ActionAddParameter      Action = "add_parameter"
	ActionAddCharacteristic Action = "add_characteristic"
	ActionAddPartition      Action = "add_partition"
	ActionEditName          Action = "edit_name"
	ActionEditValue         Action = "edit_value"
	ActionSetBase           Action = "set_base"
	ActionClearBase         Action = "clear_base"
	ActionDelete            Action = "delete"
	ActionOpenPreview       Action = "open_preview"
	ActionOpenBCC           Action = "open_bcc"
	ActionCopyISP           Action = "copy_isp"
	ActionExport            Action = "export"
	ActionImport            Action = "import"
	ActionLoadSample        Action = "load_sample"
	ActionClear             Action = "clear"
	ActionOpenSearch        Action = "open_search"
	ActionSearchNext        Action = "search_next"
	ActionSearchPrevious    Action = "search_previous"
	ActionOpenHelp          Action = "open_help"

	// Test set actions
	ActionEditOracle     Action = "edit_oracle"
	ActionEditTestName   Action = "edit_test_name"
	ActionCopyBCC        Action = "copy_bcc"
	ActionCopyBCCMD      Action = "copy_bcc_markdown"
	ActionCopySkeleton   Action = "copy_skeleton"
	ActionPreviewExports Action = "preview_exports"

	// Preview actions
	ActionCycleFormat Action = "cycle_format"
	ActionCopyPreview Action = "copy_preview"

	ActionNoOp Action = "noop"
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:              {ActionQuit, "Quit", "Global"},
	ActionQuitForce:         {ActionQuitForce, "Force quit", "Global"},
	ActionNavigateUp:        {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:      {ActionNavigateDown, "Move down", "Navigation"},
	ActionPageUp:            {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:          {ActionPageDown, "Page down", "Navigation"},
	ActionHalfPageUp:        {ActionHalfPageUp, "Half page up", "Navigation"},
	ActionHalfPageDown:      {ActionHalfPageDown, "Half page down", "Navigation"},
	ActionGoToTop:           {ActionGoToTop, "Go to top", "Navigation"},
	ActionGoToBottom:        {ActionGoToBottom, "Go to bottom", "Navigation"},
	ActionGoToTopPrepare:    {ActionGoToTopPrepare, "Start 'gg' sequence", "Navigation"},
	ActionTextBackspace:     {ActionTextBackspace, "Delete before cursor", "Text"},
	ActionTextDelete:        {ActionTextDelete, "Delete at cursor", "Text"},
	ActionTextMoveLeft:      {ActionTextMoveLeft, "Cursor left", "Text"},
	ActionTextMoveRight:     {ActionTextMoveRight, "Cursor right", "Text"},
	ActionTextMoveHome:      {ActionTextMoveHome, "Cursor to start", "Text"},
	ActionTextMoveEnd:       {ActionTextMoveEnd, "Cursor to end", "Text"},
	ActionTextPaste:         {ActionTextPaste, "Paste", "Text"},
	ActionTextDeleteWord:    {ActionTextDeleteWord, "Delete word", "Text"},
	ActionTextClearBefore:   {ActionTextClearBefore, "Clear before cursor", "Text"},
	ActionTextClearAfter:    {ActionTextClearAfter, "Clear after cursor", "Text"},
	ActionTextSubmit:        {ActionTextSubmit, "Submit", "Text"},
	ActionTextCancel:        {ActionTextCancel, "Cancel", "Text"},
	ActionCloseModal:        {ActionCloseModal, "Close", "Modal"},
	ActionConfirm:           {ActionConfirm, "Confirm", "Modal"},
	ActionCancel:            {ActionCancel, "Cancel", "Modal"},
	ActionAddParameter:      {ActionAddParameter, "Add parameter", "Table"},
	ActionAddCharacteristic: {ActionAddCharacteristic, "Add characteristic to selected parameter", "Table"},
	ActionAddPartition:      {ActionAddPartition, "Add partition to selected characteristic", "Table"},
	ActionEditName:          {ActionEditName, "Edit name", "Table"},
	ActionEditValue:         {ActionEditValue, "Edit partition value", "Table"},
	ActionSetBase:           {ActionSetBase, "Mark partition as base choice", "Table"},
	ActionClearBase:         {ActionClearBase, "Clear base choice", "Table"},
	ActionDelete:            {ActionDelete, "Delete selected row", "Table"},
	ActionOpenPreview:       {ActionOpenPreview, "Preview ISP table", "Table"},
	ActionOpenBCC:           {ActionOpenBCC, "Open test set", "Table"},
	ActionCopyISP:           {ActionCopyISP, "Copy ISP table (HTML)", "Table"},
	ActionExport:            {ActionExport, "Export snapshot", "File"},
	ActionImport:            {ActionImport, "Import snapshot", "File"},
	ActionLoadSample:        {ActionLoadSample, "Load sample", "File"},
	ActionClear:             {ActionClear, "Clear table", "File"},
	ActionOpenSearch:        {ActionOpenSearch, "Search rows", "Search"},
	ActionSearchNext:        {ActionSearchNext, "Next match", "Search"},
	ActionSearchPrevious:    {ActionSearchPrevious, "Previous match", "Search"},
	ActionOpenHelp:          {ActionOpenHelp, "Help", "Information"},
	ActionEditOracle:        {ActionEditOracle, "Edit oracle", "Test set"},
	ActionEditTestName:      {ActionEditTestName, "Edit test name", "Test set"},
	ActionCopyBCC:           {ActionCopyBCC, "Copy test set (HTML)", "Test set"},
	ActionCopyBCCMD:         {ActionCopyBCCMD, "Copy test set (Markdown)", "Test set"},
	ActionCopySkeleton:      {ActionCopySkeleton, "Copy test skeletons", "Test set"},
	ActionPreviewExports:    {ActionPreviewExports, "Preview exports", "Test set"},
	ActionCycleFormat:       {ActionCycleFormat, "Next format", "Preview"},
	ActionCopyPreview:       {ActionCopyPreview, "Copy shown output", "Preview"},
	ActionNoOp:              {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether the action is handled by the editor
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// IsGlobalAction returns true if the action is available in all contexts
func IsGlobalAction(action Action) bool {
	return action == ActionQuit || action == ActionQuitForce
}
