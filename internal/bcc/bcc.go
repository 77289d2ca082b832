package bcc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/studiowebux/ispcli/internal/types"
)

// BaseTestName is the name of the first generated row
const BaseTestName = "T1 (base test)"

// BaseSignature identifies the base row in annotation stores
const BaseSignature = "base"

// GuidanceMessage is shown whenever generation yields no rows
const GuidanceMessage = "Please ensure that every characteristic with partitions has a base choice selected."

// ErrNoCharacteristics is returned when no characteristic has partitions
var ErrNoCharacteristics = errors.New("no characteristic has partitions")

// MissingBaseError lists active characteristics without a resolvable base choice
type MissingBaseError struct {
	Characteristics []Column
}

func (e *MissingBaseError) Error() string {
	labels := make([]string, len(e.Characteristics))
	for i, c := range e.Characteristics {
		labels[i] = c.Label()
	}
	return fmt.Sprintf("missing base choice for %s", strings.Join(labels, ", "))
}

// Column is one active characteristic together with its owner and column index
type Column struct {
	Index          int
	ParameterID    int64
	ParameterName  string
	Characteristic types.Characteristic
}

// Letter returns the column letter of the characteristic
func (c Column) Letter() string {
	return Letter(c.Index)
}

// Label returns a short human description like "B (Weapon / Weight)"
func (c Column) Label() string {
	name := c.Characteristic.Name
	if name == "" {
		name = "unnamed"
	}
	if c.ParameterName != "" {
		name = c.ParameterName + " / " + name
	}
	return fmt.Sprintf("%s (%s)", c.Letter(), name)
}

// ActiveCharacteristics flattens the characteristics that have at least one
// partition, in parameter then characteristic order
func ActiveCharacteristics(doc types.Document) []Column {
	var cols []Column
	for _, p := range doc {
		for _, c := range p.Characteristics {
			if len(c.Partitions) == 0 {
				continue
			}
			cols = append(cols, Column{
				Index:          len(cols),
				ParameterID:    p.ID,
				ParameterName:  p.Name,
				Characteristic: c,
			})
		}
	}
	return cols
}

// CheckReady reports why the document cannot produce a test set, or nil
func CheckReady(doc types.Document) error {
	cols := ActiveCharacteristics(doc)
	if len(cols) == 0 {
		return ErrNoCharacteristics
	}

	var missing []Column
	for _, col := range cols {
		if col.Characteristic.BasePartition() == nil {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingBaseError{Characteristics: missing}
	}
	return nil
}

// Build derives the Base Choice Coverage rows for the document
// It returns no rows when the document is not ready
func Build(doc types.Document) []types.TestRow {
	cols := ActiveCharacteristics(doc)
	if len(cols) == 0 {
		return []types.TestRow{}
	}

	baseValues := make([]string, len(cols))
	for i, col := range cols {
		base := col.Characteristic.BasePartition()
		if base == nil {
			return []types.TestRow{}
		}
		baseValues[i] = base.Name
	}

	rows := []types.TestRow{{
		Name:      BaseTestName,
		Values:    append([]string(nil), baseValues...),
		Signature: BaseSignature,
		Varied:    -1,
	}}

	n := 2
	for i, col := range cols {
		char := col.Characteristic
		for _, part := range char.Partitions {
			if char.IsBase(part.ID) {
				continue
			}
			values := append([]string(nil), baseValues...)
			values[i] = part.Name
			rows = append(rows, types.TestRow{
				Name:      fmt.Sprintf("T%d", n),
				Values:    values,
				Signature: Signature(col.ParameterID, char.ID, part.ID),
				Varied:    i,
			})
			n++
		}
	}

	return rows
}

// ExpectedRowCount returns 1 + the number of non-base partitions of the
// active characteristics, or 0 when the document is not ready
func ExpectedRowCount(doc types.Document) int {
	if CheckReady(doc) != nil {
		return 0
	}
	count := 1
	for _, col := range ActiveCharacteristics(doc) {
		count += len(col.Characteristic.Partitions) - 1
	}
	return count
}

// Signature identifies a non-base row by the one partition it varies
func Signature(parameterID, characteristicID, partitionID int64) string {
	return fmt.Sprintf("p%d/c%d/%d", parameterID, characteristicID, partitionID)
}

// Letter returns the spreadsheet style column letter for a zero-based index:
// A..Z, AA, AB, ...
func Letter(index int) string {
	if index < 0 {
		return ""
	}
	var b []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}
