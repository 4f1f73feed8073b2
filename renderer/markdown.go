package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"
)

// cell makes s safe to use inside a Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// Markdown renders the report as a Markdown document.
func Markdown(r *Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Title)
	doc.PlainTextf("Generated on: %s", r.GeneratedAt)
	doc.PlainText("")

	if len(r.Rows) == 0 {
		doc.PlainText(md.Italic("No transactions."))
	} else {
		table := md.TableSet{
			Header: Headers,
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
			},
		}
		for _, row := range r.Rows {
			cells := row.Cells()
			for i := range cells {
				cells[i] = cell(cells[i])
			}
			table.Rows = append(table.Rows, cells)
		}
		doc.Table(table)
	}

	doc.H2("Totals")
	summary := md.TableSet{
		Header:    []string{"", md.Bold(r.Currency)},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	}
	for _, kv := range r.Summary() {
		summary.Rows = append(summary.Rows, []string{kv[0], kv[1]})
	}
	doc.Table(summary)

	return doc.String()
}
