package sample

import (
	"testing"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/snapshot"
)

func TestDocument_IsReady(t *testing.T) {
	doc := Document()
	if err := bcc.CheckReady(doc); err != nil {
		t.Fatalf("Expected sample to be ready, got %v", err)
	}
	if err := snapshot.Validate(doc); err != nil {
		t.Fatalf("Expected sample to be valid, got %v", err)
	}

	rows := bcc.Build(doc)
	// 1 + 4 characteristics with 2 non-base partitions each
	if len(rows) != 9 {
		t.Errorf("Expected 9 rows, got %d", len(rows))
	}
	want := []string{"1-10", "3-4 kg", "1-5", "51-75%"}
	for i, v := range want {
		if rows[0].Values[i] != v {
			t.Errorf("Base column %d: expected %q, got %q", i, v, rows[0].Values[i])
		}
	}
}

func TestDocument_FreshCopy(t *testing.T) {
	a := Document()
	a[0].Name = "changed"
	a[0].Characteristics[0].Partitions[0].Name = "changed"

	b := Document()
	if b[0].Name != "Weapon" || b[0].Characteristics[0].Partitions[0].Name != "0" {
		t.Error("Expected every call to return an untouched copy")
	}
}
