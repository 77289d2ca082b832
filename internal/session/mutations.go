package session

import (
	"github.com/studiowebux/ispcli/internal/document"
	"github.com/studiowebux/ispcli/internal/types"
)

// mutate runs fn under the write lock and marks the document dirty when fn
// reports a change
func (m *Manager) mutate(fn func(doc *types.Document) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !fn(&m.doc) {
		return false
	}
	m.dirty = true
	return true
}

// AddParameter appends an empty parameter and returns its id
func (m *Manager) AddParameter() int64 {
	id := m.ids.Next()
	m.mutate(func(doc *types.Document) bool {
		document.AddParameter(doc, id)
		return true
	})
	return id
}

// UpdateParameter merges the patch into a parameter
func (m *Manager) UpdateParameter(id int64, patch document.ParameterPatch) bool {
	return m.mutate(func(doc *types.Document) bool {
		return document.UpdateParameter(doc, id, patch)
	})
}

// DeleteParameter removes a parameter and everything it owns
func (m *Manager) DeleteParameter(id int64) bool {
	return m.mutate(func(doc *types.Document) bool {
		return document.DeleteParameter(doc, id)
	})
}

// AddCharacteristic appends an empty characteristic and returns its id
func (m *Manager) AddCharacteristic(parameterID int64) (int64, bool) {
	id := m.ids.Next()
	ok := m.mutate(func(doc *types.Document) bool {
		return document.AddCharacteristic(doc, parameterID, id)
	})
	return id, ok
}

// UpdateCharacteristic merges the patch into a characteristic
func (m *Manager) UpdateCharacteristic(parameterID, id int64, patch document.CharacteristicPatch) bool {
	return m.mutate(func(doc *types.Document) bool {
		return document.UpdateCharacteristic(doc, parameterID, id, patch)
	})
}

// SetBase selects the base partition of a characteristic
func (m *Manager) SetBase(parameterID, characteristicID, partitionID int64) bool {
	return m.UpdateCharacteristic(parameterID, characteristicID, document.CharacteristicPatch{
		BasePartitionID: &partitionID,
	})
}

// ClearBase removes the base selection of a characteristic
func (m *Manager) ClearBase(parameterID, characteristicID int64) bool {
	return m.mutate(func(doc *types.Document) bool {
		return document.ClearBase(doc, parameterID, characteristicID)
	})
}

// DeleteCharacteristic removes a characteristic and its partitions
func (m *Manager) DeleteCharacteristic(parameterID, id int64) bool {
	return m.mutate(func(doc *types.Document) bool {
		return document.DeleteCharacteristic(doc, parameterID, id)
	})
}

// AddPartition appends an empty partition and returns its id
func (m *Manager) AddPartition(parameterID, characteristicID int64) (int64, bool) {
	id := m.ids.Next()
	ok := m.mutate(func(doc *types.Document) bool {
		return document.AddPartition(doc, parameterID, characteristicID, id)
	})
	return id, ok
}

// UpdatePartition merges the patch into a partition
func (m *Manager) UpdatePartition(parameterID, characteristicID, id int64, patch document.PartitionPatch) bool {
	return m.mutate(func(doc *types.Document) bool {
		return document.UpdatePartition(doc, parameterID, characteristicID, id, patch)
	})
}

// DeletePartition removes a partition, clearing the base if it pointed at it
func (m *Manager) DeletePartition(parameterID, characteristicID, id int64) bool {
	return m.mutate(func(doc *types.Document) bool {
		return document.DeletePartition(doc, parameterID, characteristicID, id)
	})
}
