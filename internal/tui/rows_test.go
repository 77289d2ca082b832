package tui

import (
	"testing"

	"github.com/studiowebux/ispcli/internal/sample"
	"github.com/studiowebux/ispcli/internal/types"
)

func TestFlattenRows_Sample(t *testing.T) {
	rows := flattenRows(sample.Document())

	// 2 parameters, 4 characteristics, 12 partitions
	if len(rows) != 18 {
		t.Fatalf("Expected 18 rows, got %d", len(rows))
	}

	tests := []struct {
		index int
		kind  RowKind
		label string
		base  bool
	}{
		{0, RowParameter, "Weapon", false},
		{1, RowCharacteristic, "A) Damage", false},
		{2, RowPartition, "A1) 0", false},
		{3, RowPartition, "A2) 1-10", true},
		{5, RowCharacteristic, "B) Weight", false},
		{9, RowParameter, "Shield", false},
		{10, RowCharacteristic, "C) Defense", false},
		{17, RowPartition, "D3) 76-100%", false},
	}
	for _, tt := range tests {
		row := rows[tt.index]
		if row.Kind != tt.kind || row.Label != tt.label || row.IsBase != tt.base {
			t.Errorf("rows[%d] = %s %q base=%v, want %s %q base=%v",
				tt.index, row.Kind, row.Label, row.IsBase, tt.kind, tt.label, tt.base)
		}
	}

	if !rows[1].HasBase {
		t.Error("Expected Damage to report a base choice")
	}
	if rows[3].Value != "5" || rows[3].ParameterID != 1001 || rows[3].CharacteristicID != 1101 {
		t.Errorf("Unexpected partition row: %+v", rows[3])
	}
}

func TestFlattenRows_LettersSkipNothing(t *testing.T) {
	doc := types.Document{
		{ID: 1, Name: "P", Characteristics: []types.Characteristic{
			{ID: 2, Name: "empty"},
			{ID: 3, Name: "full", Partitions: []types.Partition{{ID: 4, Name: "x"}}},
		}},
	}
	rows := flattenRows(doc)

	if rows[1].Label != "A) empty" || !rows[1].Empty {
		t.Errorf("Expected empty characteristic A, got %+v", rows[1])
	}
	if rows[2].Label != "B) full" {
		t.Errorf("Expected letters to run over every characteristic, got %q", rows[2].Label)
	}
	if rows[2].HasBase {
		t.Error("Expected no base on characteristic without selection")
	}
}

func TestIndexOf(t *testing.T) {
	rows := flattenRows(sample.Document())

	target := tableRow{Kind: RowPartition, ParameterID: 2001, CharacteristicID: 2102, PartitionID: 2212}
	if got := indexOf(rows, target); got != 16 {
		t.Errorf("indexOf = %d, want 16", got)
	}
	if got := indexOf(rows, tableRow{Kind: RowParameter, ParameterID: 9}); got != -1 {
		t.Errorf("indexOf missing = %d, want -1", got)
	}
}

func TestTableRow_SearchText(t *testing.T) {
	row := tableRow{Label: "A2) 1-10", Value: "5"}
	AssertModelField(t, "searchText", row.searchText(), "A2) 1-10 5")

	row = tableRow{Label: "Weapon"}
	AssertModelField(t, "searchText", row.searchText(), "Weapon")
}
