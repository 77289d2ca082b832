package keybinds

import (
	"sort"
	"strings"
	"sync"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	mu sync.RWMutex

	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// pending tracks the first key of a multi-key sequence per context
	pending map[Context]string
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
		pending:  make(map[Context]string),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keys for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Unregister removes a key from a context
func (r *Registry) Unregister(context Context, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bindings[context], key)
}

// Match looks a key up in the context, then in the global context
func (r *Registry) Match(context Context, key string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.match(context, key)
}

func (r *Registry) match(context Context, key string) (Action, bool) {
	if action, ok := r.bindings[context][key]; ok {
		return action, true
	}
	if action, ok := r.bindings[ContextGlobal][key]; ok {
		return action, true
	}
	return "", false
}

// MatchMultiKey handles sequences like 'gg'
// Returns the action, whether it's a complete match, and whether it's a partial match
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.pending[context]; ok {
		delete(r.pending, context)
		if action, ok := r.match(context, prev+key); ok {
			return action, true, false
		}
	}

	if r.startsSequence(context, key) {
		r.pending[context] = key
		return "", false, true
	}

	action, ok := r.match(context, key)
	return action, ok, false
}

// startsSequence reports whether some longer plain key in the context
// begins with key
func (r *Registry) startsSequence(context Context, key string) bool {
	if len(key) != 1 {
		return false
	}
	for bound := range r.bindings[context] {
		if len(bound) > 1 && !strings.Contains(bound, "+") && strings.HasPrefix(bound, key) && isSequence(bound) {
			return true
		}
	}
	return false
}

// isSequence reports whether a key string is a run of single characters like
// "gg" rather than a named key like "enter"
func isSequence(key string) bool {
	for i := 1; i < len(key); i++ {
		if key[i] != key[0] {
			return false
		}
	}
	return true
}

// ClearMultiKeyState clears any pending multi-key state for a context
func (r *Registry) ClearMultiKeyState(context Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, context)
}

// GetBinding returns the keys bound to an action in a context, falling back
// to the global context. Keys are sorted with single characters first.
func (r *Registry) GetBinding(context Context, action Action) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := keysFor(r.bindings[context], action)
	if len(keys) == 0 {
		keys = keysFor(r.bindings[ContextGlobal], action)
	}
	return keys
}

func keysFor(bindings map[string]Action, action Action) []string {
	var keys []string
	for key, act := range bindings {
		if act == action {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	for i, k := range keys {
		if k == " " {
			keys[i] = "space"
		}
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns the bindings of a context sorted by key
func (r *Registry) ListBindings(context Context) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bindings []Binding
	for key, action := range r.bindings[context] {
		bindings = append(bindings, Binding{Key: key, Action: action, Context: context})
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Key < bindings[j].Key })
	return bindings
}

// HasBinding checks if a key is bound in a context or globally
func (r *Registry) HasBinding(context Context, key string) bool {
	_, ok := r.Match(context, key)
	return ok
}

// Clone creates a deep copy of the registry
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clone := NewRegistry()
	for context, bindings := range r.bindings {
		for key, action := range bindings {
			clone.Register(context, key, action)
		}
	}
	return clone
}
