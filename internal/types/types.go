package types

// Partition is one equivalence class of a characteristic
type Partition struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Characteristic is one dimension of variability of a parameter
type Characteristic struct {
	ID              int64       `json:"id" yaml:"id"`
	Name            string      `json:"name" yaml:"name"`
	Partitions      []Partition `json:"partitions" yaml:"partitions"`
	BasePartitionID *int64      `json:"basePartitionId,omitempty" yaml:"basePartitionId,omitempty"`
}

// Parameter is a top-level input variable of the system under test
type Parameter struct {
	ID              int64            `json:"id" yaml:"id"`
	Name            string           `json:"name" yaml:"name"`
	Characteristics []Characteristic `json:"characteristics" yaml:"characteristics"`
}

// Document is the whole editable model
type Document []Parameter

// TestRow is one derived Base Choice Coverage test
type TestRow struct {
	Name      string   `json:"name" yaml:"name"`
	Values    []string `json:"values" yaml:"values"`
	Signature string   `json:"signature" yaml:"signature"`
	Varied    int      `json:"varied" yaml:"varied"` // Active characteristic index that differs from the base row, -1 for the base row
}

// IsBase reports whether the row is the base test
func (r TestRow) IsBase() bool {
	return r.Varied < 0
}

// HasBase reports whether a base partition is selected
func (c *Characteristic) HasBase() bool {
	return c.BasePartitionID != nil
}

// BasePartition returns the selected base partition, or nil when none is set
// or the selection no longer resolves
func (c *Characteristic) BasePartition() *Partition {
	if c.BasePartitionID == nil {
		return nil
	}
	for i := range c.Partitions {
		if c.Partitions[i].ID == *c.BasePartitionID {
			return &c.Partitions[i]
		}
	}
	return nil
}

// IsBase reports whether the partition with the given id is the base choice
func (c *Characteristic) IsBase(partitionID int64) bool {
	return c.BasePartitionID != nil && *c.BasePartitionID == partitionID
}

// IsEmpty reports whether the document holds no parameters
func (d Document) IsEmpty() bool {
	return len(d) == 0
}

// CharacteristicCount returns the number of characteristics across all parameters
func (d Document) CharacteristicCount() int {
	count := 0
	for _, p := range d {
		count += len(p.Characteristics)
	}
	return count
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for i, p := range d {
		out[i] = p.Clone()
	}
	return out
}

// Clone returns a deep copy of the parameter
func (p Parameter) Clone() Parameter {
	out := p
	out.Characteristics = make([]Characteristic, len(p.Characteristics))
	for i, c := range p.Characteristics {
		out.Characteristics[i] = c.Clone()
	}
	return out
}

// Clone returns a deep copy of the characteristic
func (c Characteristic) Clone() Characteristic {
	out := c
	out.Partitions = append([]Partition(nil), c.Partitions...)
	if out.Partitions == nil {
		out.Partitions = []Partition{}
	}
	if c.BasePartitionID != nil {
		id := *c.BasePartitionID
		out.BasePartitionID = &id
	}
	return out
}

// Int64Ptr returns a pointer to v
func Int64Ptr(v int64) *int64 {
	return &v
}

// StringPtr returns a pointer to v
func StringPtr(v string) *string {
	return &v
}
