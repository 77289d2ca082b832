package formatter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/studiowebux/ispcli/internal/types"
)

// SkeletonStyle selects the language of generated test stubs
type SkeletonStyle string

const (
	StyleJUnit SkeletonStyle = "junit"
	StyleGo    SkeletonStyle = "go"
)

// ParseSkeletonStyle resolves a style name, defaulting to JUnit for ""
func ParseSkeletonStyle(name string) (SkeletonStyle, error) {
	switch SkeletonStyle(strings.ToLower(strings.TrimSpace(name))) {
	case "", StyleJUnit:
		return StyleJUnit, nil
	case StyleGo:
		return StyleGo, nil
	default:
		return "", fmt.Errorf("unknown skeleton style %q (expected junit or go)", name)
	}
}

// DefaultTestLabel is the test name with all whitespace removed
func DefaultTestLabel(testName string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, testName)
}

// TestLabel returns the stored label for the row or its default
func TestLabel(row types.TestRow, names map[string]string) string {
	if name := strings.TrimSpace(names[row.Name]); name != "" {
		return name
	}
	return DefaultTestLabel(row.Name)
}

// TestSkeleton emits one empty test declaration per row
func TestSkeleton(rows []types.TestRow, names map[string]string, style SkeletonStyle) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		label := TestLabel(row, names)
		inputs := strings.Join(row.Values, ", ")

		switch style {
		case StyleGo:
			sb.WriteString(fmt.Sprintf("// %s: %s\n", row.Name, inputs))
			sb.WriteString(fmt.Sprintf("func Test%s(t *testing.T) {\n}\n", goIdentifier(label)))
		default:
			sb.WriteString(fmt.Sprintf("// %s: %s\n", row.Name, inputs))
			sb.WriteString("@Test\n")
			sb.WriteString(fmt.Sprintf("void %s() {\n}\n", label))
		}
	}
	return sb.String()
}

// goIdentifier keeps letters, digits and underscores and capitalizes the
// first rune so the result is an exported test suffix
func goIdentifier(label string) string {
	var b strings.Builder
	for _, r := range label {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	out := []rune(b.String())
	if len(out) == 0 {
		return "_"
	}
	out[0] = unicode.ToUpper(out[0])
	return string(out)
}
