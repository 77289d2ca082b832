package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/filter"
	"github.com/studiowebux/ispcli/internal/formatter"
	"github.com/studiowebux/ispcli/internal/session"
	"github.com/studiowebux/ispcli/internal/snapshot"
)

// ISPOptions configures the isp command
type ISPOptions struct {
	Output
	File   string
	Format string // html, markdown
}

// ISP prints the ISP table of a snapshot
func ISP(opts ISPOptions) error {
	doc, err := snapshot.ReadFile(opts.File)
	if err != nil {
		return err
	}

	var out string
	switch strings.ToLower(opts.Format) {
	case "", "html":
		out = formatter.ISPTableHTML(doc, FormatterOptions(LoadSettings(opts.stderr())))
	case "markdown", "md":
		out = formatter.ISPTableMarkdown(doc)
	default:
		return fmt.Errorf("unknown format %q (expected html or markdown)", opts.Format)
	}
	return opts.emit(out)
}

// BCCOptions configures the bcc command
type BCCOptions struct {
	Output
	File        string
	Format      string // html, markdown, json, yaml
	OraclesFile string // Mapping of test name to oracle text
	NamesFile   string // Mapping of test name to generated test name
	Query       string // JMESPath expression applied to json output
}

// TestSet is the structured form of a generated test set
type TestSet struct {
	Columns []ColumnInfo `json:"columns" yaml:"columns"`
	Tests   []TestInfo   `json:"tests" yaml:"tests"`
}

// ColumnInfo describes one active characteristic
type ColumnInfo struct {
	Letter         string `json:"letter" yaml:"letter"`
	Parameter      string `json:"parameter" yaml:"parameter"`
	Characteristic string `json:"characteristic" yaml:"characteristic"`
}

// TestInfo is one generated test with its annotations
type TestInfo struct {
	Test      string   `json:"test" yaml:"test"`
	Values    []string `json:"values" yaml:"values"`
	Base      bool     `json:"base" yaml:"base"`
	Oracle    string   `json:"oracle" yaml:"oracle"`
	TestName  string   `json:"testName" yaml:"testName"`
	Signature string   `json:"signature" yaml:"signature"`
}

// BCC prints the test set of a snapshot
func BCC(opts BCCOptions) error {
	if opts.Query != "" && !filter.IsValidJMESPath(opts.Query) {
		return fmt.Errorf("invalid --query expression %q", opts.Query)
	}

	mgr, err := loadManager(opts.File, opts.OraclesFile, opts.NamesFile)
	if err != nil {
		return err
	}

	if err := requireReady(mgr, opts.stderr()); err != nil {
		return err
	}

	settings := LoadSettings(opts.stderr())
	rows := mgr.TestRows()
	oracles := mgr.Oracles(rows)

	format := strings.ToLower(opts.Format)
	if opts.Query != "" && format != "json" {
		return fmt.Errorf("--query requires --format json")
	}

	var out string
	switch format {
	case "", "html":
		out, _ = formatter.BCCTableHTML(rows, oracles, FormatterOptions(settings))
	case "markdown", "md":
		out, _ = formatter.BCCTableMarkdown(rows, oracles, FormatterOptions(settings))
	case "json", "yaml":
		set := buildTestSet(mgr, settings.OraclePlaceholder)
		out, err = encodeTestSet(set, format, opts.Query)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (expected html, markdown, json or yaml)", opts.Format)
	}
	return opts.emit(out)
}

func buildTestSet(mgr *session.Manager, placeholder string) TestSet {
	doc := mgr.Document()
	rows := mgr.TestRows()
	oracles := mgr.Oracles(rows)
	names := mgr.TestNames(rows)

	set := TestSet{Columns: []ColumnInfo{}, Tests: []TestInfo{}}
	for _, col := range bcc.ActiveCharacteristics(doc) {
		set.Columns = append(set.Columns, ColumnInfo{
			Letter:         col.Letter(),
			Parameter:      col.ParameterName,
			Characteristic: col.Characteristic.Name,
		})
	}
	for _, row := range rows {
		oracle := oracles[row.Name]
		if oracle == "" {
			oracle = placeholder
		}
		set.Tests = append(set.Tests, TestInfo{
			Test:      row.Name,
			Values:    row.Values,
			Base:      row.IsBase(),
			Oracle:    oracle,
			TestName:  formatter.TestLabel(row, names),
			Signature: row.Signature,
		})
	}
	return set
}

func encodeTestSet(set TestSet, format, query string) (string, error) {
	if format == "yaml" {
		data, err := yaml.Marshal(set)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return string(data), nil
	}

	out, err := filter.ApplyValue(set, query)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

// SkeletonOptions configures the skeleton command
type SkeletonOptions struct {
	Output
	File      string
	Style     string // junit, go; empty uses the settings
	NamesFile string
}

// Skeleton prints test stubs for the test set of a snapshot
func Skeleton(opts SkeletonOptions) error {
	mgr, err := loadManager(opts.File, "", opts.NamesFile)
	if err != nil {
		return err
	}
	if err := requireReady(mgr, opts.stderr()); err != nil {
		return err
	}

	name := opts.Style
	if name == "" {
		name = LoadSettings(opts.stderr()).SkeletonStyle
	}
	style, err := formatter.ParseSkeletonStyle(name)
	if err != nil {
		return err
	}

	rows := mgr.TestRows()
	return opts.emit(formatter.TestSkeleton(rows, mgr.TestNames(rows), style))
}

// ConvertOptions configures the convert command
type ConvertOptions struct {
	In     string
	Out    string
	Stderr io.Writer
}

// Convert re-encodes a snapshot, picking formats by extension
func Convert(opts ConvertOptions) error {
	doc, err := snapshot.ReadFile(opts.In)
	if err != nil {
		return err
	}
	if err := snapshot.WriteFile(opts.Out, doc); err != nil {
		return err
	}
	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}
	success(w, "Converted %s (%s) to %s (%s)", opts.In, snapshot.DetectFormat(opts.In), opts.Out, snapshot.DetectFormat(opts.Out))
	return nil
}

// loadManager imports a snapshot and optional annotation files
func loadManager(file, oraclesFile, namesFile string) (*session.Manager, error) {
	mgr := session.NewManager()
	if err := mgr.ImportFile(file); err != nil {
		return nil, err
	}

	oracles, err := readMapping(oraclesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load oracles: %w", err)
	}
	names, err := readMapping(namesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load test names: %w", err)
	}
	if len(oracles) > 0 || len(names) > 0 {
		mgr.ApplyAnnotations(oracles, names)
	}
	return mgr, nil
}

// readMapping reads a flat test name to text mapping in YAML or JSON
func readMapping(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string)
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("expected a mapping of test name to text: %w", err)
	}
	return mapping, nil
}

func requireReady(mgr *session.Manager, stderr io.Writer) error {
	if reason := mgr.Readiness(); reason != nil {
		warn(stderr, "%s", bcc.GuidanceMessage)
		return fmt.Errorf("%w: %v", ErrNotReady, reason)
	}
	return nil
}
