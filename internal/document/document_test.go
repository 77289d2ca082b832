package document

import (
	"testing"

	"github.com/studiowebux/ispcli/internal/types"
)

func newWeaponDoc() types.Document {
	return types.Document{
		{
			ID:   1,
			Name: "Weapon",
			Characteristics: []types.Characteristic{
				{
					ID:   10,
					Name: "Damage",
					Partitions: []types.Partition{
						{ID: 100, Name: "0", Value: "0"},
						{ID: 101, Name: "1-10", Value: "5"},
					},
					BasePartitionID: types.Int64Ptr(101),
				},
			},
		},
	}
}

func TestAddParameter(t *testing.T) {
	var doc types.Document
	AddParameter(&doc, 7)

	if len(doc) != 1 {
		t.Fatalf("Expected 1 parameter, got %d", len(doc))
	}
	if doc[0].ID != 7 || doc[0].Name != "" {
		t.Errorf("Unexpected new parameter: %+v", doc[0])
	}
	if doc[0].Characteristics == nil || len(doc[0].Characteristics) != 0 {
		t.Errorf("Expected empty characteristic list, got %v", doc[0].Characteristics)
	}
}

func TestUpdateParameter(t *testing.T) {
	doc := newWeaponDoc()

	if !UpdateParameter(&doc, 1, ParameterPatch{Name: types.StringPtr("Sword")}) {
		t.Fatal("Expected update to find parameter")
	}
	if doc[0].Name != "Sword" {
		t.Errorf("Expected name 'Sword', got %s", doc[0].Name)
	}
	if len(doc[0].Characteristics) != 1 {
		t.Error("Expected characteristics to be preserved")
	}

	// Empty patch keeps everything
	if !UpdateParameter(&doc, 1, ParameterPatch{}) {
		t.Fatal("Expected empty patch to succeed")
	}
	if doc[0].Name != "Sword" {
		t.Errorf("Empty patch changed name to %s", doc[0].Name)
	}

	if UpdateParameter(&doc, 999, ParameterPatch{Name: types.StringPtr("x")}) {
		t.Error("Expected missing id to report not found")
	}
}

func TestUpdateCharacteristic_SetsBase(t *testing.T) {
	doc := newWeaponDoc()

	ok := UpdateCharacteristic(&doc, 1, 10, CharacteristicPatch{BasePartitionID: types.Int64Ptr(100)})
	if !ok {
		t.Fatal("Expected base update to succeed")
	}
	char := doc[0].Characteristics[0]
	if !char.IsBase(100) || char.IsBase(101) {
		t.Errorf("Expected base to move to 100, got %v", *char.BasePartitionID)
	}
	if char.Name != "Damage" {
		t.Errorf("Expected name to be preserved, got %s", char.Name)
	}
}

func TestUpdateCharacteristic_RejectsUnknownBase(t *testing.T) {
	doc := newWeaponDoc()

	if UpdateCharacteristic(&doc, 1, 10, CharacteristicPatch{
		Name:            types.StringPtr("changed"),
		BasePartitionID: types.Int64Ptr(555),
	}) {
		t.Fatal("Expected unknown base partition to be rejected")
	}
	char := doc[0].Characteristics[0]
	if char.Name != "Damage" {
		t.Errorf("Rejected patch must not change the name, got %s", char.Name)
	}
	if !char.IsBase(101) {
		t.Error("Rejected patch must not change the base")
	}
}

func TestClearBase(t *testing.T) {
	doc := newWeaponDoc()
	if !ClearBase(&doc, 1, 10) {
		t.Fatal("Expected clear to find characteristic")
	}
	if doc[0].Characteristics[0].HasBase() {
		t.Error("Expected base to be cleared")
	}
	if ClearBase(&doc, 1, 99) {
		t.Error("Expected missing characteristic to report not found")
	}
}

func TestDeletePartition_ClearsBase(t *testing.T) {
	doc := newWeaponDoc()

	if !DeletePartition(&doc, 1, 10, 101) {
		t.Fatal("Expected delete to find partition")
	}
	char := doc[0].Characteristics[0]
	if len(char.Partitions) != 1 || char.Partitions[0].ID != 100 {
		t.Errorf("Unexpected partitions after delete: %+v", char.Partitions)
	}
	if char.HasBase() {
		t.Error("Expected base to be cleared after deleting the base partition")
	}
}

func TestDeletePartition_KeepsOtherBase(t *testing.T) {
	doc := newWeaponDoc()

	if !DeletePartition(&doc, 1, 10, 100) {
		t.Fatal("Expected delete to find partition")
	}
	if !doc[0].Characteristics[0].IsBase(101) {
		t.Error("Deleting a non-base partition must keep the base")
	}
}

func TestCascadeDeletes(t *testing.T) {
	doc := newWeaponDoc()

	if !DeleteCharacteristic(&doc, 1, 10) {
		t.Fatal("Expected characteristic delete to succeed")
	}
	if len(doc[0].Characteristics) != 0 {
		t.Error("Expected characteristic to be removed")
	}

	doc = newWeaponDoc()
	if !DeleteParameter(&doc, 1) {
		t.Fatal("Expected parameter delete to succeed")
	}
	if len(doc) != 0 {
		t.Error("Expected parameter to be removed")
	}
}

func TestMissingIDsAreNoOps(t *testing.T) {
	tests := []struct {
		name string
		op   func(doc *types.Document) bool
	}{
		{"delete parameter", func(d *types.Document) bool { return DeleteParameter(d, 9) }},
		{"add characteristic", func(d *types.Document) bool { return AddCharacteristic(d, 9, 50) }},
		{"update characteristic", func(d *types.Document) bool {
			return UpdateCharacteristic(d, 1, 9, CharacteristicPatch{Name: types.StringPtr("x")})
		}},
		{"delete characteristic", func(d *types.Document) bool { return DeleteCharacteristic(d, 1, 9) }},
		{"add partition", func(d *types.Document) bool { return AddPartition(d, 1, 9, 50) }},
		{"update partition", func(d *types.Document) bool {
			return UpdatePartition(d, 1, 10, 9, PartitionPatch{Name: types.StringPtr("x")})
		}},
		{"delete partition", func(d *types.Document) bool { return DeletePartition(d, 1, 10, 9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newWeaponDoc()
			before := doc.Clone()
			if tt.op(&doc) {
				t.Error("Expected operation to report not found")
			}
			if doc[0].Characteristics[0].Name != before[0].Characteristics[0].Name ||
				len(doc[0].Characteristics) != len(before[0].Characteristics) ||
				len(doc[0].Characteristics[0].Partitions) != len(before[0].Characteristics[0].Partitions) {
				t.Error("Expected document to be unchanged")
			}
		})
	}
}

func TestAddAndUpdatePartition(t *testing.T) {
	doc := newWeaponDoc()

	if !AddPartition(&doc, 1, 10, 102) {
		t.Fatal("Expected add partition to succeed")
	}
	parts := doc[0].Characteristics[0].Partitions
	if len(parts) != 3 || parts[2].ID != 102 || parts[2].Name != "" || parts[2].Value != "" {
		t.Fatalf("Unexpected partitions: %+v", parts)
	}

	if !UpdatePartition(&doc, 1, 10, 102, PartitionPatch{Name: types.StringPtr("> 10")}) {
		t.Fatal("Expected update partition to succeed")
	}
	if !UpdatePartition(&doc, 1, 10, 102, PartitionPatch{Value: types.StringPtr("15")}) {
		t.Fatal("Expected update partition to succeed")
	}
	got := doc[0].Characteristics[0].Partitions[2]
	if got.Name != "> 10" || got.Value != "15" {
		t.Errorf("Expected merged partition, got %+v", got)
	}
}

func TestIDAllocator(t *testing.T) {
	a := NewIDAllocator()
	if a.Next() != 1 || a.Next() != 2 {
		t.Fatal("Expected sequential ids starting at 1")
	}

	a.Observe(newWeaponDoc())
	if got := a.Next(); got != 102 {
		t.Errorf("Expected next id 102 after observing max 101, got %d", got)
	}

	// Observing a document with smaller ids never moves the counter back
	a.Observe(types.Document{{ID: 3}})
	if got := a.Next(); got != 103 {
		t.Errorf("Expected next id 103, got %d", got)
	}
}

func TestMaxID(t *testing.T) {
	if MaxID(nil) != 0 {
		t.Error("Expected 0 for empty document")
	}
	if got := MaxID(newWeaponDoc()); got != 101 {
		t.Errorf("Expected 101, got %d", got)
	}
}
