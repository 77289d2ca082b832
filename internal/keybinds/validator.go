package keybinds

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Severity tells whether an issue makes a set of bindings unusable
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a set of bindings
type Issue struct {
	Severity Severity
	Kind     string // invalid, unreachable, reserved, shadowed
	Context  Context
	Key      string
	Message  string
}

func (i Issue) Error() string {
	where := string(i.Context)
	if i.Key != "" {
		where += " " + strconv.Quote(i.Key)
	}
	return fmt.Sprintf("%s: %s (%s)", where, i.Message, i.Kind)
}

// ValidationResult collects the issues of one validation run
type ValidationResult struct {
	Issues []Issue
}

func (r *ValidationResult) add(sev Severity, kind string, ctx Context, key, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Kind:     kind,
		Context:  ctx,
		Key:      key,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *ValidationResult) filter(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}

// Errors returns the issues that make the bindings unusable
func (r *ValidationResult) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns the issues worth reporting that do not block startup
func (r *ValidationResult) Warnings() []Issue { return r.filter(SeverityWarning) }

func (r *ValidationResult) HasErrors() bool   { return len(r.Errors()) > 0 }
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings()) > 0 }

// String lists errors before warnings, one issue per line
func (r *ValidationResult) String() string {
	if len(r.Issues) == 0 {
		return "keybinds: no issues"
	}

	lines := make([]string, 0, len(r.Issues))
	for _, sev := range []Severity{SeverityError, SeverityWarning} {
		for _, issue := range r.filter(sev) {
			lines = append(lines, fmt.Sprintf("keybinds %s: %s", sev, issue.Error()))
		}
	}
	return strings.Join(lines, "\n")
}

// Validator checks a registry for bindings that would break the editor
type Validator struct {
	reservedKeys map[string]bool

	// required lists actions each context must keep reachable
	required map[Context][]Action
}

// NewValidator returns a validator with the editor's required actions
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]bool{
			"ctrl+c": true,
		},
		required: map[Context][]Action{
			ContextNormal:    {ActionQuit},
			ContextBCC:       {ActionCloseModal},
			ContextPreview:   {ActionCloseModal},
			ContextHelp:      {ActionCloseModal},
			ContextTextInput: {ActionTextSubmit, ActionTextCancel},
			ContextSearch:    {ActionTextSubmit, ActionTextCancel},
			ContextConfirm:   {ActionConfirm, ActionCancel},
		},
	}
}

// ValidateRegistry checks every context of registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{}

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	v.checkActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkRequired(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// ValidateConfig validates a configuration applied over the defaults
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		result := &ValidationResult{}
		result.add(SeverityError, "invalid", "", "", "%v", err)
		return result
	}
	return v.ValidateRegistry(registry)
}

func sortedKeys(bindings map[string]Action) []string {
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// checkActions reports keys bound to actions the editor does not know
func (v *Validator) checkActions(registry *Registry, result *ValidationResult) {
	for _, context := range AllContexts {
		bindings := registry.bindings[context]
		for _, key := range sortedKeys(bindings) {
			if !IsKnownAction(bindings[key]) {
				result.add(SeverityError, "invalid", context, key, "unknown action %q", bindings[key])
			}
			if err := ValidateKey(key); err != nil {
				result.add(SeverityError, "invalid", context, key, "%v", err)
			}
		}
	}
}

// checkReservedKeys warns when ctrl+c no longer force quits
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for _, context := range AllContexts {
		bindings := registry.bindings[context]
		for _, key := range sortedKeys(bindings) {
			if v.reservedKeys[key] && bindings[key] != ActionQuitForce {
				result.add(SeverityWarning, "reserved", context, key, "reserved key bound to %s", bindings[key])
			}
		}
	}
}

// checkRequired reports contexts a user could not leave
func (v *Validator) checkRequired(registry *Registry, result *ValidationResult) {
	for _, context := range AllContexts {
		for _, action := range v.required[context] {
			if len(keysFor(registry.bindings[context], action)) == 0 &&
				len(keysFor(registry.bindings[ContextGlobal], action)) == 0 {
				result.add(SeverityError, "unreachable", context, "", "no key left for %s", action)
			}
		}
	}
}

// checkShadowing warns about context keys that hide a global binding
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	global := registry.bindings[ContextGlobal]
	for _, context := range AllContexts {
		if context == ContextGlobal {
			continue
		}
		bindings := registry.bindings[context]
		for _, key := range sortedKeys(bindings) {
			if globalAction, ok := global[key]; ok && globalAction != bindings[key] {
				result.add(SeverityWarning, "shadowed", context, key, "hides global %s behind %s", globalAction, bindings[key])
			}
		}
	}
}

// ValidateKey rejects empty keys and bare modifiers
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	for _, mod := range []string{"ctrl+", "alt+", "shift+", "super+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}
	return nil
}
