package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerTextInputBindings(r)
	registerNormalModeBindings(r)
	registerBCCBindings(r)
	registerPreviewBindings(r)
	registerSearchBindings(r)
	registerHelpBindings(r)
	registerConfirmBindings(r)

	return r
}

func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNavigation binds the shared list navigation keys in a context
func registerNavigation(r *Registry, ctx Context) {
	r.RegisterMultiple(ctx, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ctx, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ctx, "pgup", ActionPageUp)
	r.Register(ctx, "pgdown", ActionPageDown)
	r.Register(ctx, "ctrl+u", ActionHalfPageUp)
	r.Register(ctx, "ctrl+d", ActionHalfPageDown)
	r.Register(ctx, "g", ActionGoToTopPrepare)
	r.Register(ctx, "gg", ActionGoToTop)
	r.RegisterMultiple(ctx, []string{"G", "end"}, ActionGoToBottom)
	r.Register(ctx, "home", ActionGoToTop)
}

func registerTextInputBindings(r *Registry) {
	r.Register(ContextTextInput, "backspace", ActionTextBackspace)
	r.Register(ContextTextInput, "delete", ActionTextDelete)
	r.Register(ContextTextInput, "left", ActionTextMoveLeft)
	r.Register(ContextTextInput, "right", ActionTextMoveRight)
	r.RegisterMultiple(ContextTextInput, []string{"home", "ctrl+a"}, ActionTextMoveHome)
	r.RegisterMultiple(ContextTextInput, []string{"end", "ctrl+e"}, ActionTextMoveEnd)
	r.RegisterMultiple(ContextTextInput, []string{"ctrl+v", "shift+insert", "super+v"}, ActionTextPaste)
	r.Register(ContextTextInput, "ctrl+w", ActionTextDeleteWord)
	r.Register(ContextTextInput, "ctrl+u", ActionTextClearBefore)
	r.Register(ContextTextInput, "ctrl+k", ActionTextClearAfter)
	r.Register(ContextTextInput, "enter", ActionTextSubmit)
	r.Register(ContextTextInput, "esc", ActionTextCancel)
}

func registerNormalModeBindings(r *Registry) {
	registerNavigation(r, ContextNormal)

	r.Register(ContextNormal, "q", ActionQuit)
	r.Register(ContextNormal, "?", ActionOpenHelp)

	r.Register(ContextNormal, "P", ActionAddParameter)
	r.Register(ContextNormal, "c", ActionAddCharacteristic)
	r.Register(ContextNormal, "a", ActionAddPartition)
	r.RegisterMultiple(ContextNormal, []string{"enter", "e"}, ActionEditName)
	r.Register(ContextNormal, "v", ActionEditValue)
	r.RegisterMultiple(ContextNormal, []string{" ", "b"}, ActionSetBase)
	r.Register(ContextNormal, "B", ActionClearBase)
	r.Register(ContextNormal, "d", ActionDelete)

	r.Register(ContextNormal, "i", ActionOpenPreview)
	r.Register(ContextNormal, "t", ActionOpenBCC)
	r.Register(ContextNormal, "y", ActionCopyISP)

	r.RegisterMultiple(ContextNormal, []string{"s", "ctrl+s"}, ActionExport)
	r.Register(ContextNormal, "o", ActionImport)
	r.Register(ContextNormal, "S", ActionLoadSample)
	r.Register(ContextNormal, "X", ActionClear)

	r.Register(ContextNormal, "/", ActionOpenSearch)
	r.Register(ContextNormal, "n", ActionSearchNext)
	r.Register(ContextNormal, "N", ActionSearchPrevious)
}

func registerBCCBindings(r *Registry) {
	registerNavigation(r, ContextBCC)

	r.RegisterMultiple(ContextBCC, []string{"esc", "q", "t"}, ActionCloseModal)
	r.Register(ContextBCC, "?", ActionOpenHelp)
	r.RegisterMultiple(ContextBCC, []string{"enter", "o"}, ActionEditOracle)
	r.Register(ContextBCC, "e", ActionEditTestName)
	r.Register(ContextBCC, "y", ActionCopyBCC)
	r.Register(ContextBCC, "Y", ActionCopyBCCMD)
	r.Register(ContextBCC, "s", ActionCopySkeleton)
	r.Register(ContextBCC, "p", ActionPreviewExports)
}

func registerPreviewBindings(r *Registry) {
	registerNavigation(r, ContextPreview)

	r.RegisterMultiple(ContextPreview, []string{"esc", "q", "i"}, ActionCloseModal)
	r.RegisterMultiple(ContextPreview, []string{"tab", "f"}, ActionCycleFormat)
	r.Register(ContextPreview, "y", ActionCopyPreview)
}

func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "enter", ActionTextSubmit)
	r.Register(ContextSearch, "esc", ActionTextCancel)
	r.Register(ContextSearch, "backspace", ActionTextBackspace)
	r.RegisterMultiple(ContextSearch, []string{"ctrl+v", "shift+insert", "super+v"}, ActionTextPaste)
	r.Register(ContextSearch, "ctrl+u", ActionTextClearBefore)
}

func registerHelpBindings(r *Registry) {
	registerNavigation(r, ContextHelp)
	r.RegisterMultiple(ContextHelp, []string{"esc", "q", "?"}, ActionCloseModal)
}

func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc", "q"}, ActionCancel)
}
