package formatter

import (
	"strings"
	"testing"

	"github.com/studiowebux/ispcli/internal/bcc"
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
						{ID: 102, Name: "> 10", Value: "15"},
					},
					BasePartitionID: types.Int64Ptr(101),
				},
				{
					ID:   11,
					Name: "Weight",
					Partitions: []types.Partition{
						{ID: 110, Name: "0-2 kg", Value: "1.5"},
						{ID: 111, Name: "3-4 kg", Value: "3.5"},
						{ID: 112, Name: "> 4 kg", Value: "5"},
					},
					BasePartitionID: types.Int64Ptr(111),
				},
			},
		},
	}
}

func TestISPRows_Spans(t *testing.T) {
	rows := ISPRows(weaponDoc())

	if len(rows) != 6 {
		t.Fatalf("Expected 6 rows, got %d", len(rows))
	}
	if rows[0].Parameter != "Weapon" || rows[0].ParameterSpan != 6 {
		t.Errorf("Expected parameter span 6 on first row, got %+v", rows[0])
	}
	if rows[1].ParameterSpan != 0 {
		t.Error("Expected continuation rows to carry no parameter span")
	}
	if rows[0].Characteristic != "A) Damage" || rows[0].CharacteristicSpan != 3 {
		t.Errorf("Unexpected characteristic cell: %+v", rows[0])
	}
	if rows[3].Characteristic != "B) Weight" || rows[3].CharacteristicSpan != 3 {
		t.Errorf("Unexpected characteristic cell: %+v", rows[3])
	}
	if rows[2].Partition != "A3) > 10" || rows[2].Value != "15" {
		t.Errorf("Unexpected partition cell: %+v", rows[2])
	}
	if !rows[1].IsBase || !rows[4].IsBase || rows[0].IsBase {
		t.Error("Expected exactly the base partitions to be highlighted")
	}
}

func TestISPRows_EmptyEntities(t *testing.T) {
	doc := types.Document{
		{ID: 1, Name: "Lonely"},
		{ID: 2, Name: "Mixed", Characteristics: []types.Characteristic{
			{ID: 20, Name: "Bare"},
			{ID: 21, Name: "Full", Partitions: []types.Partition{{ID: 210, Name: "x", Value: "1"}}},
		}},
	}

	rows := ISPRows(doc)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	lonely := rows[0]
	if lonely.Parameter != "Lonely" || lonely.Characteristic != "-" || lonely.Partition != "-" || lonely.Value != "-" {
		t.Errorf("Expected placeholder row for empty parameter, got %+v", lonely)
	}

	bare := rows[1]
	if bare.ParameterSpan != 2 || bare.Characteristic != "A) Bare" || bare.Partition != "-" || bare.Value != "-" {
		t.Errorf("Expected placeholder row for empty characteristic, got %+v", bare)
	}

	// Letters run over every characteristic, so Full is B even though
	// it is the first active characteristic
	if rows[2].Characteristic != "B) Full" || rows[2].Partition != "B1) x" {
		t.Errorf("Expected full-list lettering, got %+v", rows[2])
	}
}

func TestISPTableHTML(t *testing.T) {
	out := ISPTableHTML(weaponDoc(), DefaultOptions())

	for _, want := range []string{
		"<th>Parameter</th>",
		"<th>Characteristic</th>",
		"<th>Partition</th>",
		"<th>Value</th>",
		`<td rowspan="6">Weapon</td>`,
		`<td rowspan="3">A) Damage</td>`,
		`<td style="background-color: #d3e7c9;">A2) 1-10</td>`,
		`<td style="background-color: #d3e7c9;">B2) 3-4 kg</td>`,
		"<td>A1) 0</td>",
		// Escaped partition name
		"<td>A3) &gt; 10</td>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
	if strings.Count(out, "<tr>") != 7 {
		t.Errorf("Expected header row plus 6 body rows, got %d", strings.Count(out, "<tr>"))
	}
}

func TestISPTableHTML_EmptyParameter(t *testing.T) {
	out := ISPTableHTML(types.Document{{ID: 1, Name: "Lonely"}}, Options{})

	if !strings.Contains(out, `<td rowspan="1">Lonely</td>`) {
		t.Errorf("Expected parameter cell, got\n%s", out)
	}
	if strings.Count(out, "<td>-</td>") != 3 {
		t.Errorf("Expected three placeholder cells, got\n%s", out)
	}
}

func TestISPTableHTML_CustomColor(t *testing.T) {
	out := ISPTableHTML(weaponDoc(), Options{HighlightColor: "yellow"})
	if !strings.Contains(out, `style="background-color: yellow;"`) {
		t.Error("Expected custom highlight color")
	}
}

func TestISPTableMarkdown(t *testing.T) {
	out := ISPTableMarkdown(weaponDoc())
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if len(lines) != 8 {
		t.Fatalf("Expected 8 lines, got %d\n%s", len(lines), out)
	}
	if lines[2] != "| Weapon | A) Damage | A1) 0 | 0 |" {
		t.Errorf("Unexpected first row: %q", lines[2])
	}
	if lines[3] != "|  |  | **A2) 1-10** | 5 |" {
		t.Errorf("Unexpected base row: %q", lines[3])
	}
}

func TestBCCTableHTML(t *testing.T) {
	rows := bcc.Build(weaponDoc())
	out, ok := BCCTableHTML(rows, map[string]string{"T2": "rejected <0>"}, DefaultOptions())
	if !ok {
		t.Fatal("Expected table to be produced")
	}

	for _, want := range []string{
		"<h3>Base Choice Coverage</h3>",
		`<table border="1" cellspacing="0" cellpadding="8">`,
		"<th>Characteristic A</th>",
		"<th>Characteristic B</th>",
		"<th>Oracle</th>",
		"<td>T1 (base test)</td>",
		`<td style="background-color: transparent;">0</td>`,
		`<td style="background-color: #d3e7c9;">3-4 kg</td>`,
		"<td>rejected &lt;0&gt;</td>",
		"<td>expected value/behavior</td>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
	if strings.Count(out, "expected value/behavior") != 4 {
		t.Error("Expected placeholder oracle on the four rows without text")
	}
}

func TestBCCTableHTML_NoRows(t *testing.T) {
	out, ok := BCCTableHTML(nil, nil, DefaultOptions())
	if ok || out != "" {
		t.Errorf("Expected empty result, got %q %v", out, ok)
	}
	out, ok = BCCTableMarkdown([]types.TestRow{}, nil, DefaultOptions())
	if ok || out != "" {
		t.Errorf("Expected empty result, got %q %v", out, ok)
	}
}

func TestBCCTableMarkdown(t *testing.T) {
	rows := bcc.Build(weaponDoc())
	out, ok := BCCTableMarkdown(rows, map[string]string{"T1 (base test)": "ok | done"}, Options{OraclePlaceholder: "tbd"})
	if !ok {
		t.Fatal("Expected table to be produced")
	}

	if !strings.Contains(out, "| Test | Characteristic A | Characteristic B | Oracle |") {
		t.Errorf("Unexpected header\n%s", out)
	}
	if !strings.Contains(out, "|---|---|---|---|") {
		t.Errorf("Unexpected separator\n%s", out)
	}
	if !strings.Contains(out, `| T1 (base test) | **1-10** | **3-4 kg** | ok \| done |`) {
		t.Errorf("Unexpected base row\n%s", out)
	}
	if !strings.Contains(out, "| T2 | 0 | **3-4 kg** | tbd |") {
		t.Errorf("Unexpected T2 row\n%s", out)
	}
}

func TestTestSkeleton_JUnit(t *testing.T) {
	rows := bcc.Build(weaponDoc())
	out := TestSkeleton(rows, map[string]string{"T2": "rejectsZeroDamage"}, StyleJUnit)

	if strings.Count(out, "@Test") != len(rows) {
		t.Errorf("Expected one stub per row\n%s", out)
	}
	for _, want := range []string{
		"// T1 (base test): 1-10, 3-4 kg\n@Test\nvoid T1(basetest)() {\n}\n",
		"void rejectsZeroDamage() {",
		"void T3() {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestTestSkeleton_Go(t *testing.T) {
	rows := bcc.Build(weaponDoc())
	out := TestSkeleton(rows, map[string]string{"T3": "heavy damage!"}, StyleGo)

	for _, want := range []string{
		"func TestT1basetest(t *testing.T) {",
		"func TestHeavydamage(t *testing.T) {",
		"func TestT5(t *testing.T) {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestParseSkeletonStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected SkeletonStyle
		wantErr  bool
	}{
		{"", StyleJUnit, false},
		{"junit", StyleJUnit, false},
		{" GO ", StyleGo, false},
		{"rspec", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSkeletonStyle(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSkeletonStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseSkeletonStyle(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestDefaultTestLabel(t *testing.T) {
	if got := DefaultTestLabel("T1 (base test)"); got != "T1(basetest)" {
		t.Errorf("Expected whitespace stripped, got %q", got)
	}
	if got := TestLabel(types.TestRow{Name: "T4"}, map[string]string{"T4": "   "}); got != "T4" {
		t.Errorf("Expected blank stored name to fall back, got %q", got)
	}
}
