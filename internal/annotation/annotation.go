// Package annotation stores per-test oracle text and test names.
//
// Entries are keyed by row signature rather than test name, so renumbering
// the test set keeps each note attached to the row it was written for.
package annotation

import (
	"sort"
	"sync"

	"github.com/studiowebux/ispcli/internal/types"
)

// Entry holds what the user wrote for one test
type Entry struct {
	Oracle   string `json:"oracle,omitempty" yaml:"oracle,omitempty"`
	TestName string `json:"testName,omitempty" yaml:"testName,omitempty"`
}

// IsEmpty reports whether the entry carries no text
func (e Entry) IsEmpty() bool {
	return e.Oracle == "" && e.TestName == ""
}

// Store maps row signatures to entries
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// SetOracle stores the oracle text for a signature
func (s *Store) SetOracle(signature, oracle string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[signature]
	e.Oracle = oracle
	s.put(signature, e)
}

// SetTestName stores the test name for a signature
func (s *Store) SetTestName(signature, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[signature]
	e.TestName = name
	s.put(signature, e)
}

func (s *Store) put(signature string, e Entry) {
	if e.IsEmpty() {
		delete(s.entries, signature)
		return
	}
	s.entries[signature] = e
}

// Get returns the entry for a signature
func (s *Store) Get(signature string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[signature]
	return e, ok
}

// Len returns the number of stored entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Signatures returns the stored signatures in sorted order
func (s *Store) Signatures() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.entries))
	for sig := range s.entries {
		out = append(out, sig)
	}
	sort.Strings(out)
	return out
}

// Prune drops every entry whose signature is not produced by rows
// It returns the number of dropped entries
func (s *Store) Prune(rows []types.TestRow) int {
	live := make(map[string]bool, len(rows))
	for _, r := range rows {
		live[r.Signature] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for sig := range s.entries {
		if !live[sig] {
			delete(s.entries, sig)
			dropped++
		}
	}
	return dropped
}

// Reset clears all entries
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]Entry)
}

// OracleMap returns oracle text keyed by the test names of rows
func (s *Store) OracleMap(rows []types.TestRow) map[string]string {
	return s.byTestName(rows, func(e Entry) string { return e.Oracle })
}

// TestNameMap returns stored test names keyed by the test names of rows
func (s *Store) TestNameMap(rows []types.TestRow) map[string]string {
	return s.byTestName(rows, func(e Entry) string { return e.TestName })
}

func (s *Store) byTestName(rows []types.TestRow, field func(Entry) string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string)
	for _, r := range rows {
		if v := field(s.entries[r.Signature]); v != "" {
			out[r.Name] = v
		}
	}
	return out
}

// ApplyByTestName stores oracle and test name maps keyed by test name,
// resolving names against rows. Unknown names are ignored.
func (s *Store) ApplyByTestName(rows []types.TestRow, oracles, names map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		e := s.entries[r.Signature]
		if v, ok := oracles[r.Name]; ok {
			e.Oracle = v
		}
		if v, ok := names[r.Name]; ok {
			e.TestName = v
		}
		s.put(r.Signature, e)
	}
}
