package tui

import (
	"fmt"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/types"
)

// RowKind identifies which entity a table row shows
type RowKind int

const (
	RowParameter RowKind = iota
	RowCharacteristic
	RowPartition
)

func (k RowKind) String() string {
	switch k {
	case RowParameter:
		return "parameter"
	case RowCharacteristic:
		return "characteristic"
	default:
		return "partition"
	}
}

// tableRow is one selectable line of the editor
type tableRow struct {
	Kind             RowKind
	ParameterID      int64
	CharacteristicID int64
	PartitionID      int64

	Name    string
	Value   string
	Label   string // "A) Damage", "A2) 1-10"
	IsBase  bool   // Partition rows: selected as base
	HasBase bool   // Characteristic rows: a base is selected
	Empty   bool   // Characteristic rows: no partitions yet
}

// flattenRows lists parameters, characteristics and partitions in document order
// Letters run over every characteristic like the ISP table
func flattenRows(doc types.Document) []tableRow {
	var rows []tableRow
	charIndex := 0

	for _, param := range doc {
		rows = append(rows, tableRow{
			Kind:        RowParameter,
			ParameterID: param.ID,
			Name:        param.Name,
			Label:       param.Name,
		})

		for _, char := range param.Characteristics {
			letter := bcc.Letter(charIndex)
			charIndex++

			rows = append(rows, tableRow{
				Kind:             RowCharacteristic,
				ParameterID:      param.ID,
				CharacteristicID: char.ID,
				Name:             char.Name,
				Label:            fmt.Sprintf("%s) %s", letter, char.Name),
				HasBase:          char.BasePartition() != nil,
				Empty:            len(char.Partitions) == 0,
			})

			for i, part := range char.Partitions {
				rows = append(rows, tableRow{
					Kind:             RowPartition,
					ParameterID:      param.ID,
					CharacteristicID: char.ID,
					PartitionID:      part.ID,
					Name:             part.Name,
					Value:            part.Value,
					Label:            fmt.Sprintf("%s%d) %s", letter, i+1, part.Name),
					IsBase:           char.IsBase(part.ID),
				})
			}
		}
	}

	return rows
}

// searchText is the text fuzzy search matches against
func (r tableRow) searchText() string {
	if r.Value != "" {
		return r.Label + " " + r.Value
	}
	return r.Label
}

// sameEntity reports whether two rows point at the same entity
func (r tableRow) sameEntity(o tableRow) bool {
	return r.Kind == o.Kind &&
		r.ParameterID == o.ParameterID &&
		r.CharacteristicID == o.CharacteristicID &&
		r.PartitionID == o.PartitionID
}

// indexOf returns the position of the row matching target, or -1
func indexOf(rows []tableRow, target tableRow) int {
	for i, r := range rows {
		if r.sameEntity(target) {
			return i
		}
	}
	return -1
}
