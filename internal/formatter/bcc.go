package formatter

import (
	"fmt"
	"html"
	"strings"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/types"
)

// BCCTableHTML renders the test set with its oracles as an HTML fragment
// It returns false when there are no rows to render
func BCCTableHTML(rows []types.TestRow, oracles map[string]string, opts Options) (string, bool) {
	if len(rows) == 0 {
		return "", false
	}
	opts = opts.withDefaults()
	base := rows[0].Values

	var sb strings.Builder
	sb.WriteString("<h3>Base Choice Coverage</h3>\n")
	sb.WriteString("<table border=\"1\" cellspacing=\"0\" cellpadding=\"8\">\n")
	sb.WriteString("  <thead>\n")
	sb.WriteString("    <tr>\n")
	sb.WriteString("      <th>Test</th>\n")
	for i := range base {
		sb.WriteString(fmt.Sprintf("      <th>Characteristic %s</th>\n", bcc.Letter(i)))
	}
	sb.WriteString("      <th>Oracle</th>\n")
	sb.WriteString("    </tr>\n")
	sb.WriteString("  </thead>\n")
	sb.WriteString("  <tbody>\n")

	color := html.EscapeString(opts.HighlightColor)
	for _, row := range rows {
		sb.WriteString("    <tr>\n")
		sb.WriteString(fmt.Sprintf("      <td>%s</td>\n", html.EscapeString(row.Name)))
		for i, val := range row.Values {
			bg := "transparent"
			if i < len(base) && base[i] == val {
				bg = color
			}
			sb.WriteString(fmt.Sprintf("      <td style=\"background-color: %s;\">%s</td>\n", bg, html.EscapeString(val)))
		}
		sb.WriteString(fmt.Sprintf("      <td>%s</td>\n", html.EscapeString(oracleFor(row, oracles, opts))))
		sb.WriteString("    </tr>\n")
	}

	sb.WriteString("  </tbody>\n")
	sb.WriteString("</table>\n")
	return sb.String(), true
}

// BCCTableMarkdown renders the test set as a GitHub flavored pipe table
// Values equal to the base row are bold
func BCCTableMarkdown(rows []types.TestRow, oracles map[string]string, opts Options) (string, bool) {
	if len(rows) == 0 {
		return "", false
	}
	opts = opts.withDefaults()
	base := rows[0].Values

	var sb strings.Builder
	sb.WriteString("### Base Choice Coverage\n\n")
	sb.WriteString("| Test |")
	for i := range base {
		sb.WriteString(fmt.Sprintf(" Characteristic %s |", bcc.Letter(i)))
	}
	sb.WriteString(" Oracle |\n")
	sb.WriteString("|---|" + strings.Repeat("---|", len(base)) + "---|\n")

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("| %s |", markdownCell(row.Name)))
		for i, val := range row.Values {
			cell := markdownCell(val)
			if i < len(base) && base[i] == val && cell != "" {
				cell = "**" + cell + "**"
			}
			sb.WriteString(fmt.Sprintf(" %s |", cell))
		}
		sb.WriteString(fmt.Sprintf(" %s |\n", markdownCell(oracleFor(row, oracles, opts))))
	}

	return sb.String(), true
}

func oracleFor(row types.TestRow, oracles map[string]string, opts Options) string {
	if oracle := oracles[row.Name]; oracle != "" {
		return oracle
	}
	return opts.OraclePlaceholder
}
