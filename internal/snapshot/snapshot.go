// Package snapshot encodes and decodes the exported document format.
//
// A snapshot is an array of parameters with numeric identifiers. JSON is the
// default and accepts comments and trailing commas (JSONC); YAML uses the
// same keys.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/ispcli/internal/config"
	"github.com/studiowebux/ispcli/internal/types"
)

// Format is a snapshot encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrMalformed is wrapped by every decode and validation failure
var ErrMalformed = errors.New("malformed snapshot")

// ParseFormat resolves a format name ("" means json)
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json", "jsonc":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown snapshot format %q", name)
	}
}

// DetectFormat picks the format from a file extension, defaulting to json
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses and validates a snapshot
// The returned document is never partially filled on error
func Decode(data []byte, format Format) (types.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	var doc types.Document
	switch format {
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(node.Content) == 0 || node.Content[0].Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: expected a list of parameters", ErrMalformed)
		}
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		clean := bytes.TrimSpace(jsonc.ToJSON(data))
		if len(clean) == 0 || clean[0] != '[' {
			return nil, fmt.Errorf("%w: expected a JSON array of parameters", ErrMalformed)
		}
		if err := json.Unmarshal(clean, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	if doc == nil {
		doc = types.Document{}
	}
	normalize(doc)
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode renders the document in the given format
func Encode(doc types.Document, format Format) ([]byte, error) {
	if doc == nil {
		doc = types.Document{}
	}
	doc = doc.Clone()
	normalize(doc)

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return data, nil
	}
}

// Validate checks structural invariants of a decoded document
func Validate(doc types.Document) error {
	params := make(map[int64]bool)
	for _, p := range doc {
		if params[p.ID] {
			return fmt.Errorf("%w: duplicate parameter id %d", ErrMalformed, p.ID)
		}
		params[p.ID] = true

		chars := make(map[int64]bool)
		for _, c := range p.Characteristics {
			if chars[c.ID] {
				return fmt.Errorf("%w: duplicate characteristic id %d in parameter %d", ErrMalformed, c.ID, p.ID)
			}
			chars[c.ID] = true

			parts := make(map[int64]bool)
			for _, part := range c.Partitions {
				if parts[part.ID] {
					return fmt.Errorf("%w: duplicate partition id %d in characteristic %d", ErrMalformed, part.ID, c.ID)
				}
				parts[part.ID] = true
			}
			if c.BasePartitionID != nil && !parts[*c.BasePartitionID] {
				return fmt.Errorf("%w: base partition %d not found in characteristic %d", ErrMalformed, *c.BasePartitionID, c.ID)
			}
		}
	}
	return nil
}

// ReadFile decodes the snapshot at path, detecting the format by extension
func ReadFile(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	doc, err := Decode(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}

// WriteFile encodes the document to path, detecting the format by extension
func WriteFile(path string, doc types.Document) error {
	data, err := Encode(doc, DetectFormat(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// normalize replaces nil child lists with empty ones so exports always
// carry the array keys
func normalize(doc types.Document) {
	for i := range doc {
		if doc[i].Characteristics == nil {
			doc[i].Characteristics = []types.Characteristic{}
		}
		for j := range doc[i].Characteristics {
			if doc[i].Characteristics[j].Partitions == nil {
				doc[i].Characteristics[j].Partitions = []types.Partition{}
			}
		}
	}
}
