package formatter

import (
	"fmt"
	"html"
	"strings"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/types"
)

// ISPRow is one flattened line of the ISP table
// Span fields are zero on rows continuing a merged cell
type ISPRow struct {
	Parameter          string
	ParameterSpan      int
	Characteristic     string
	CharacteristicSpan int
	Partition          string
	Value              string
	IsBase             bool
}

// ISPRows flattens the document into table rows
// Characteristic letters are assigned over every characteristic, including
// those without partitions
func ISPRows(doc types.Document) []ISPRow {
	var rows []ISPRow
	charIndex := 0

	for _, param := range doc {
		if len(param.Characteristics) == 0 {
			rows = append(rows, ISPRow{
				Parameter:      param.Name,
				ParameterSpan:  1,
				Characteristic: "-",
				Partition:      "-",
				Value:          "-",
			})
			continue
		}

		paramSpan := 0
		for _, char := range param.Characteristics {
			paramSpan += max(len(char.Partitions), 1)
		}

		first := len(rows)
		for _, char := range param.Characteristics {
			letter := bcc.Letter(charIndex)
			charIndex++
			code := fmt.Sprintf("%s) %s", letter, char.Name)

			if len(char.Partitions) == 0 {
				rows = append(rows, ISPRow{
					Characteristic:     code,
					CharacteristicSpan: 1,
					Partition:          "-",
					Value:              "-",
				})
				continue
			}

			for i, part := range char.Partitions {
				row := ISPRow{
					Partition: fmt.Sprintf("%s%d) %s", letter, i+1, part.Name),
					Value:     part.Value,
					IsBase:    char.IsBase(part.ID),
				}
				if i == 0 {
					row.Characteristic = code
					row.CharacteristicSpan = len(char.Partitions)
				}
				rows = append(rows, row)
			}
		}
		rows[first].Parameter = param.Name
		rows[first].ParameterSpan = paramSpan
	}

	return rows
}

// ISPTableHTML renders the ISP table as an HTML fragment
func ISPTableHTML(doc types.Document, opts Options) string {
	opts = opts.withDefaults()

	var sb strings.Builder
	sb.WriteString("<table>\n")
	sb.WriteString("  <thead>\n")
	sb.WriteString("    <tr>\n")
	for _, h := range []string{"Parameter", "Characteristic", "Partition", "Value"} {
		sb.WriteString(fmt.Sprintf("      <th>%s</th>\n", h))
	}
	sb.WriteString("    </tr>\n")
	sb.WriteString("  </thead>\n")
	sb.WriteString("  <tbody>\n")

	for _, row := range ISPRows(doc) {
		sb.WriteString("    <tr>\n")
		if row.ParameterSpan > 0 {
			sb.WriteString(fmt.Sprintf("      <td rowspan=\"%d\">%s</td>\n", row.ParameterSpan, html.EscapeString(row.Parameter)))
		}
		if row.CharacteristicSpan > 0 {
			sb.WriteString(fmt.Sprintf("      <td rowspan=\"%d\">%s</td>\n", row.CharacteristicSpan, html.EscapeString(row.Characteristic)))
		} else if row.ParameterSpan > 0 && row.Characteristic == "-" {
			sb.WriteString("      <td>-</td>\n")
		}
		style := ""
		if row.IsBase {
			style = fmt.Sprintf(" style=\"background-color: %s;\"", html.EscapeString(opts.HighlightColor))
		}
		sb.WriteString(fmt.Sprintf("      <td%s>%s</td>\n", style, html.EscapeString(row.Partition)))
		sb.WriteString(fmt.Sprintf("      <td>%s</td>\n", html.EscapeString(row.Value)))
		sb.WriteString("    </tr>\n")
	}

	sb.WriteString("  </tbody>\n")
	sb.WriteString("</table>\n")
	return sb.String()
}

// ISPTableMarkdown renders the ISP table as a GitHub flavored pipe table
// Merged cells are written on the first row of their span only
func ISPTableMarkdown(doc types.Document) string {
	var sb strings.Builder
	sb.WriteString("| Parameter | Characteristic | Partition | Value |\n")
	sb.WriteString("|---|---|---|---|\n")

	for _, row := range ISPRows(doc) {
		param := ""
		if row.ParameterSpan > 0 {
			param = row.Parameter
		}
		char := ""
		if row.CharacteristicSpan > 0 || row.Characteristic == "-" {
			char = row.Characteristic
		}
		part := markdownCell(row.Partition)
		if row.IsBase {
			part = "**" + part + "**"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			markdownCell(param), markdownCell(char), part, markdownCell(row.Value)))
	}

	return sb.String()
}

func markdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
