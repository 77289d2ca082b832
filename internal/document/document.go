package document

import (
	"github.com/studiowebux/ispcli/internal/types"
)

// ParameterPatch holds the parameter fields to overwrite; nil fields are kept
type ParameterPatch struct {
	Name *string
}

// CharacteristicPatch holds the characteristic fields to overwrite; nil fields are kept
// BasePartitionID replaces any previous base selection
type CharacteristicPatch struct {
	Name            *string
	BasePartitionID *int64
}

// PartitionPatch holds the partition fields to overwrite; nil fields are kept
type PartitionPatch struct {
	Name  *string
	Value *string
}

// AddParameter appends an empty parameter with the given id
func AddParameter(doc *types.Document, id int64) {
	*doc = append(*doc, types.Parameter{
		ID:              id,
		Characteristics: []types.Characteristic{},
	})
}

// UpdateParameter merges the patch into the parameter with the given id
func UpdateParameter(doc *types.Document, id int64, patch ParameterPatch) bool {
	param := findParameter(*doc, id)
	if param == nil {
		return false
	}
	if patch.Name != nil {
		param.Name = *patch.Name
	}
	return true
}

// DeleteParameter removes the parameter and everything it owns
func DeleteParameter(doc *types.Document, id int64) bool {
	for i := range *doc {
		if (*doc)[i].ID == id {
			*doc = append((*doc)[:i], (*doc)[i+1:]...)
			return true
		}
	}
	return false
}

// AddCharacteristic appends an empty characteristic to a parameter
func AddCharacteristic(doc *types.Document, parameterID, id int64) bool {
	param := findParameter(*doc, parameterID)
	if param == nil {
		return false
	}
	param.Characteristics = append(param.Characteristics, types.Characteristic{
		ID:         id,
		Partitions: []types.Partition{},
	})
	return true
}

// UpdateCharacteristic merges the patch into a characteristic
// A base selection that does not name one of the characteristic's
// partitions is rejected and nothing is changed
func UpdateCharacteristic(doc *types.Document, parameterID, id int64, patch CharacteristicPatch) bool {
	char := findCharacteristic(*doc, parameterID, id)
	if char == nil {
		return false
	}
	if patch.BasePartitionID != nil && findPartitionIn(char, *patch.BasePartitionID) == nil {
		return false
	}
	if patch.Name != nil {
		char.Name = *patch.Name
	}
	if patch.BasePartitionID != nil {
		base := *patch.BasePartitionID
		char.BasePartitionID = &base
	}
	return true
}

// ClearBase removes the base selection of a characteristic
func ClearBase(doc *types.Document, parameterID, id int64) bool {
	char := findCharacteristic(*doc, parameterID, id)
	if char == nil {
		return false
	}
	char.BasePartitionID = nil
	return true
}

// DeleteCharacteristic removes a characteristic and its partitions
func DeleteCharacteristic(doc *types.Document, parameterID, id int64) bool {
	param := findParameter(*doc, parameterID)
	if param == nil {
		return false
	}
	for i := range param.Characteristics {
		if param.Characteristics[i].ID == id {
			param.Characteristics = append(param.Characteristics[:i], param.Characteristics[i+1:]...)
			return true
		}
	}
	return false
}

// AddPartition appends an empty partition to a characteristic
func AddPartition(doc *types.Document, parameterID, characteristicID, id int64) bool {
	char := findCharacteristic(*doc, parameterID, characteristicID)
	if char == nil {
		return false
	}
	char.Partitions = append(char.Partitions, types.Partition{ID: id})
	return true
}

// UpdatePartition merges the patch into a partition
func UpdatePartition(doc *types.Document, parameterID, characteristicID, id int64, patch PartitionPatch) bool {
	char := findCharacteristic(*doc, parameterID, characteristicID)
	if char == nil {
		return false
	}
	part := findPartitionIn(char, id)
	if part == nil {
		return false
	}
	if patch.Name != nil {
		part.Name = *patch.Name
	}
	if patch.Value != nil {
		part.Value = *patch.Value
	}
	return true
}

// DeletePartition removes a partition and clears the base selection if it pointed at it
func DeletePartition(doc *types.Document, parameterID, characteristicID, id int64) bool {
	char := findCharacteristic(*doc, parameterID, characteristicID)
	if char == nil {
		return false
	}
	for i := range char.Partitions {
		if char.Partitions[i].ID == id {
			char.Partitions = append(char.Partitions[:i], char.Partitions[i+1:]...)
			if char.IsBase(id) {
				char.BasePartitionID = nil
			}
			return true
		}
	}
	return false
}

// FindParameter returns the parameter with the given id, or nil
func FindParameter(doc types.Document, id int64) *types.Parameter {
	return findParameter(doc, id)
}

// FindCharacteristic returns the characteristic under the parameter, or nil
func FindCharacteristic(doc types.Document, parameterID, id int64) *types.Characteristic {
	return findCharacteristic(doc, parameterID, id)
}

func findParameter(doc types.Document, id int64) *types.Parameter {
	for i := range doc {
		if doc[i].ID == id {
			return &doc[i]
		}
	}
	return nil
}

func findCharacteristic(doc types.Document, parameterID, id int64) *types.Characteristic {
	param := findParameter(doc, parameterID)
	if param == nil {
		return nil
	}
	for i := range param.Characteristics {
		if param.Characteristics[i].ID == id {
			return &param.Characteristics[i]
		}
	}
	return nil
}

func findPartitionIn(char *types.Characteristic, id int64) *types.Partition {
	for i := range char.Partitions {
		if char.Partitions[i].ID == id {
			return &char.Partitions[i]
		}
	}
	return nil
}
