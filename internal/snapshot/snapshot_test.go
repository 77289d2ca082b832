package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studiowebux/ispcli/internal/formatter"
	"github.com/studiowebux/ispcli/internal/types"
)

func weaponDoc() types.Document {
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
				{ID: 11, Name: "Empty", Partitions: []types.Partition{}},
			},
		},
		{ID: 2, Name: "Nothing", Characteristics: []types.Characteristic{}},
	}
}

func TestDecode_JSON(t *testing.T) {
	data := `[
  {
    "id": 1,
    "name": "Weapon",
    "characteristics": [
      {
        "id": 10,
        "name": "Damage",
        "basePartitionId": 101,
        "partitions": [
          {"id": 100, "name": "0", "value": "0"},
          {"id": 101, "name": "1-10", "value": "5"}
        ]
      }
    ]
  }
]`
	doc, err := Decode([]byte(data), FormatJSON)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(doc) != 1 || doc[0].Characteristics[0].BasePartition().Name != "1-10" {
		t.Errorf("Unexpected document: %+v", doc)
	}
}

func TestDecode_JSONC(t *testing.T) {
	data := `[
  // weapon parameter
  {"id": 1, "name": "Weapon", "characteristics": [],},
]`
	doc, err := Decode([]byte(data), FormatJSON)
	if err != nil {
		t.Fatalf("Expected comments and trailing commas to be accepted: %v", err)
	}
	if len(doc) != 1 || doc[0].Name != "Weapon" {
		t.Errorf("Unexpected document: %+v", doc)
	}
}

func TestDecode_MissingChildListsAreEmpty(t *testing.T) {
	doc, err := Decode([]byte(`[{"id": 1, "name": "P"}]`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc[0].Characteristics == nil {
		t.Error("Expected characteristics to be normalized to an empty list")
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"empty", "", FormatJSON},
		{"whitespace", "  \n", FormatJSON},
		{"null", "null", FormatJSON},
		{"object", `{"id": 1}`, FormatJSON},
		{"truncated", `[{"id": 1,`, FormatJSON},
		{"string id", `[{"id": "one", "name": "x", "characteristics": []}]`, FormatJSON},
		{"duplicate parameter", `[{"id": 1, "name": "a"}, {"id": 1, "name": "b"}]`, FormatJSON},
		{"duplicate partition", `[{"id": 1, "characteristics": [{"id": 2, "partitions": [{"id": 3}, {"id": 3}]}]}]`, FormatJSON},
		{"dangling base", `[{"id": 1, "characteristics": [{"id": 2, "basePartitionId": 9, "partitions": [{"id": 3}]}]}]`, FormatJSON},
		{"yaml mapping", "id: 1\nname: x\n", FormatYAML},
		{"yaml syntax", "- id: [1\n", FormatYAML},
		{"yaml string id", "- id: one\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.data), tt.format)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Expected ErrMalformed, got %v", err)
			}
			if doc != nil {
				t.Errorf("Expected no document on error, got %+v", doc)
			}
		})
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	doc, err := Decode([]byte("[]"), FormatJSON)
	if err != nil {
		t.Fatalf("Expected empty array to be valid: %v", err)
	}
	if doc == nil || len(doc) != 0 {
		t.Errorf("Expected empty document, got %+v", doc)
	}
}

func TestEncode_JSONShape(t *testing.T) {
	data, err := Encode(weaponDoc(), FormatJSON)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "[\n  {\n    \"id\": 1,") {
		t.Errorf("Expected two-space indentation, got\n%s", out)
	}
	if strings.Count(out, "basePartitionId") != 1 {
		t.Error("Expected basePartitionId only where a base is set")
	}
	if !strings.Contains(out, `"partitions": []`) {
		t.Error("Expected empty partition lists to be written")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			original := weaponDoc()
			data, err := Encode(original, format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := Decode(data, format)
			if err != nil {
				t.Fatalf("Decode failed: %v\n%s", err, data)
			}

			want := formatter.ISPTableHTML(original, formatter.DefaultOptions())
			got := formatter.ISPTableHTML(decoded, formatter.DefaultOptions())
			if want != got {
				t.Errorf("Round trip changed the ISP table\nwant:\n%s\ngot:\n%s", want, got)
			}
			if !decoded[0].Characteristics[0].IsBase(101) {
				t.Error("Expected base selection to survive")
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"table-data.json": FormatJSON,
		"table.jsonc":     FormatJSON,
		"table.YAML":      FormatYAML,
		"table.yml":       FormatYAML,
		"table":           FormatJSON,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %s, expected %s", path, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("YML"); err != nil || f != FormatYAML {
		t.Errorf("Expected yaml, got %s %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatJSON {
		t.Errorf("Expected json default, got %s %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "doc.yaml")

	if err := WriteFile(path, weaponDoc()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if !strings.Contains(string(data), "basePartitionId: 101") {
		t.Errorf("Expected YAML output, got\n%s", data)
	}

	doc, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(doc) != 2 {
		t.Errorf("Expected 2 parameters, got %d", len(doc))
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(bad); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed from ReadFile, got %v", err)
	}
}
