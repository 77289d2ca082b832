package session

import (
	"fmt"
	"sync"

	"github.com/studiowebux/ispcli/internal/annotation"
	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/document"
	"github.com/studiowebux/ispcli/internal/sample"
	"github.com/studiowebux/ispcli/internal/snapshot"
	"github.com/studiowebux/ispcli/internal/types"
)

// Manager owns the editable document and its test annotations
type Manager struct {
	mu          sync.RWMutex
	doc         types.Document
	ids         *document.IDAllocator
	annotations *annotation.Store
	dirty       bool
}

// NewManager creates a manager holding an empty document
func NewManager() *Manager {
	return &Manager{
		doc:         types.Document{},
		ids:         document.NewIDAllocator(),
		annotations: annotation.NewStore(),
	}
}

// Document returns a copy of the current document
func (m *Manager) Document() types.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.doc.Clone()
}

// SetDocument replaces the whole document and its annotations
func (m *Manager) SetDocument(doc types.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replace(doc)
	m.dirty = true
}

// replace swaps in doc and drops the annotations of the previous table
func (m *Manager) replace(doc types.Document) {
	if doc == nil {
		doc = types.Document{}
	}
	m.doc = doc.Clone()
	m.ids.Observe(m.doc)
	m.annotations.Reset()
}

// LoadSample replaces the document with the built-in demo
func (m *Manager) LoadSample() {
	m.SetDocument(sample.Document())
}

// Clear empties the document and drops every annotation
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = types.Document{}
	m.annotations.Reset()
	m.dirty = false
}

// Import decodes a snapshot and replaces the document with it
// The current document is left untouched when decoding fails
func (m *Manager) Import(data []byte, format snapshot.Format) error {
	doc, err := snapshot.Decode(data, format)
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.replace(doc)
	m.dirty = false
	return nil
}

// Export encodes the current document
func (m *Manager) Export(format snapshot.Format) ([]byte, error) {
	m.mu.RLock()
	doc := m.doc.Clone()
	m.mu.RUnlock()

	data, err := snapshot.Encode(doc, format)
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}
	return data, nil
}

// ImportFile reads a snapshot file and replaces the document with it
func (m *Manager) ImportFile(path string) error {
	doc, err := snapshot.ReadFile(path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.replace(doc)
	m.dirty = false
	return nil
}

// ExportFile writes the document to path and marks it saved
func (m *Manager) ExportFile(path string) error {
	if err := snapshot.WriteFile(path, m.Document()); err != nil {
		return err
	}
	m.MarkSaved()
	return nil
}

// IsEmpty reports whether the document has no parameters
func (m *Manager) IsEmpty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.doc.IsEmpty()
}

// NeedsLeaveConfirmation reports whether leaving should ask the user first
func (m *Manager) NeedsLeaveConfirmation() bool {
	return !m.IsEmpty()
}

// IsDirty reports whether the document changed since the last import or export
func (m *Manager) IsDirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirty
}

// MarkSaved clears the dirty flag
func (m *Manager) MarkSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirty = false
}

// Readiness returns nil when the document can produce a test set
func (m *Manager) Readiness() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return bcc.CheckReady(m.doc)
}

// TestRows derives the test set from the current document
// Annotations of rows that no longer exist are dropped when the document is
// ready; nothing is dropped otherwise
func (m *Manager) TestRows() []types.TestRow {
	m.mu.RLock()
	rows := bcc.Build(m.doc)
	m.mu.RUnlock()

	if len(rows) > 0 {
		m.annotations.Prune(rows)
	}
	return rows
}

// SetOracle stores the oracle text of the row with the given signature
func (m *Manager) SetOracle(signature, oracle string) {
	m.annotations.SetOracle(signature, oracle)
}

// SetTestName stores the generated test name of the row with the given signature
func (m *Manager) SetTestName(signature, name string) {
	m.annotations.SetTestName(signature, name)
}

// Annotation returns what is stored for a row signature
func (m *Manager) Annotation(signature string) annotation.Entry {
	e, _ := m.annotations.Get(signature)
	return e
}

// Oracles returns oracle text keyed by the test names of rows
func (m *Manager) Oracles(rows []types.TestRow) map[string]string {
	return m.annotations.OracleMap(rows)
}

// TestNames returns stored test names keyed by the test names of rows
func (m *Manager) TestNames(rows []types.TestRow) map[string]string {
	return m.annotations.TestNameMap(rows)
}

// ApplyAnnotations stores oracle and name maps keyed by test name against
// the current test set
func (m *Manager) ApplyAnnotations(oracles, names map[string]string) {
	m.annotations.ApplyByTestName(m.TestRows(), oracles, names)
}
