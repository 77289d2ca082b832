package keybinds

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestRegistry_MatchFallsBackToGlobal(t *testing.T) {
	r := NewDefaultRegistry()

	if action, ok := r.Match(ContextNormal, "t"); !ok || action != ActionOpenBCC {
		t.Errorf("Expected open_bcc, got %s %v", action, ok)
	}
	if action, ok := r.Match(ContextBCC, "ctrl+c"); !ok || action != ActionQuitForce {
		t.Errorf("Expected global quit_force, got %s %v", action, ok)
	}
	if _, ok := r.Match(ContextConfirm, "t"); ok {
		t.Error("Expected no match for unbound key")
	}
}

func TestRegistry_ContextShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "x", ActionQuit)
	r.Register(ContextNormal, "x", ActionDelete)

	if action, _ := r.Match(ContextNormal, "x"); action != ActionDelete {
		t.Errorf("Expected context binding to win, got %s", action)
	}
	if action, _ := r.Match(ContextBCC, "x"); action != ActionQuit {
		t.Errorf("Expected global binding elsewhere, got %s", action)
	}
}

func TestRegistry_MatchMultiKey(t *testing.T) {
	r := NewDefaultRegistry()

	_, complete, partial := r.MatchMultiKey(ContextNormal, "g")
	if complete || !partial {
		t.Fatal("Expected 'g' to start a sequence")
	}
	action, complete, _ := r.MatchMultiKey(ContextNormal, "g")
	if !complete || action != ActionGoToTop {
		t.Errorf("Expected gg to go to top, got %s %v", action, complete)
	}

	// A broken sequence falls back to the second key
	r.MatchMultiKey(ContextNormal, "g")
	action, complete, _ = r.MatchMultiKey(ContextNormal, "j")
	if !complete || action != ActionNavigateDown {
		t.Errorf("Expected j after g to navigate down, got %s %v", action, complete)
	}

	// Named keys never start a sequence
	action, complete, partial = r.MatchMultiKey(ContextNormal, "enter")
	if partial || !complete || action != ActionEditName {
		t.Errorf("Expected enter to edit, got %s %v %v", action, complete, partial)
	}
}

func TestRegistry_ClearMultiKeyState(t *testing.T) {
	r := NewDefaultRegistry()
	r.MatchMultiKey(ContextNormal, "g")
	r.ClearMultiKeyState(ContextNormal)

	_, complete, partial := r.MatchMultiKey(ContextNormal, "g")
	if complete || !partial {
		t.Error("Expected a fresh sequence after clearing")
	}
}

func TestRegistry_GetBindingString(t *testing.T) {
	r := NewDefaultRegistry()
	// " " sorts before "b" and is shown as space
	if got := r.GetBindingString(ContextNormal, ActionSetBase); got != "space, b" {
		t.Errorf("Unexpected binding string: %q", got)
	}
	if got := r.GetBindingString(ContextNormal, ActionCopyBCC); got != "unbound" {
		t.Errorf("Expected unbound, got %q", got)
	}
	if got := r.GetBindingString(ContextBCC, ActionQuitForce); got != "ctrl+c" {
		t.Errorf("Expected global fallback, got %q", got)
	}
}

func TestApplyConfig(t *testing.T) {
	r := NewDefaultRegistry()
	err := ApplyConfig(r, &Config{
		Normal: map[string]string{"x": "delete", "d": ""},
	})
	if err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}
	if action, _ := r.Match(ContextNormal, "x"); action != ActionDelete {
		t.Errorf("Expected override, got %s", action)
	}
	if _, ok := r.Match(ContextNormal, "d"); ok {
		t.Error("Expected empty action to unbind the key")
	}

	if err := ApplyConfig(NewDefaultRegistry(), &Config{BCC: map[string]string{"z": "nope"}}); err == nil {
		t.Error("Expected unknown action to be rejected")
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	r, err := LoadOrDefault(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got %v", err)
	}
	if !r.HasBinding(ContextNormal, "q") {
		t.Error("Expected default bindings")
	}

	path := filepath.Join(dir, "keybinds.json")
	content := `{
  // remap export
  "version": "1.0",
  "normal": {"w": "export",},
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	r, err = LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if action, _ := r.Match(ContextNormal, "w"); action != ActionExport {
		t.Errorf("Expected user binding, got %s", action)
	}

	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Error("Expected error for malformed file")
	}
}

func TestExportDefaults_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := SaveConfig(ExportDefaults(), path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Normal["t"] != string(ActionOpenBCC) {
		t.Errorf("Expected exported normal bindings, got %v", config.Normal)
	}

	r := NewRegistry()
	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}
	if result := NewValidator().ValidateRegistry(r); result.HasErrors() {
		t.Errorf("Expected exported defaults to validate:\n%s", result.String())
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewDefaultRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Match(ContextNormal, "j")
				r.GetBinding(ContextBCC, ActionCopyBCC)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.MatchMultiKey(ContextHelp, "g")
				r.Register(ContextPreview, "x", ActionCopyPreview)
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	r := NewDefaultRegistry()
	clone := r.Clone()

	clone.Unregister(ContextNormal, "q")
	if _, ok := r.Match(ContextNormal, "q"); !ok {
		t.Error("Unregister on clone should not affect the original")
	}
	if _, ok := clone.Match(ContextNormal, "q"); ok {
		t.Error("Expected 'q' to be unbound on the clone")
	}
}
