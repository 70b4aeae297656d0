package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/balancegrid"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a computed report as a markdown document: a
// title, the pivot table with one row per category plus the synthetic
// opening and closing rows, the USD grand total and any warnings.
//
// Markdown tables cannot span header cells, so the nested header rows
// are flattened: each leaf column is titled by its path components
// joined top-down.
func ReportMarkdown(title string, r *balancegrid.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if r.NoData {
		doc.PlainText("No movement matches the current filters.")
		appendWarnings(doc, r.Warnings)
		return doc.String()
	}

	header := []string{"Category"}
	for _, c := range r.Grid.Columns {
		header = append(header, columnTitle(c))
	}

	rows := make([][]string, 0, len(r.Rows)+2)
	rows = append(rows, cellsRow("Opening Balance", r.Opening))
	for _, row := range r.Rows {
		rows = append(rows, cellsRow(row.Category.Name, row.Cells))
	}
	rows = append(rows, cellsRow("Closing Balance", r.Closing))
	doc.Table(md.TableSet{Header: header, Rows: rows})

	doc.PlainText(fmt.Sprintf("Total (USD): %s across %d movement(s)",
		r.ClosingUSD.Balance.SignedString(), r.ClosingUSD.Count))

	appendWarnings(doc, r.Warnings)
	return doc.String()
}

// columnTitle flattens a leaf column's path into a single header label.
func columnTitle(c balancegrid.Column) string {
	parts := []string{c.Path.Currency}
	if c.Grain >= balancegrid.GrainAccount {
		parts = append(parts, c.Path.Account)
	}
	switch c.Grain {
	case balancegrid.GrainYear:
		parts = append(parts, fmt.Sprintf("%d", c.Path.Year))
	case balancegrid.GrainMonth, balancegrid.GrainDate:
		parts = append(parts, c.Path.Label())
	}
	return strings.Join(parts, " / ")
}

// cellsRow formats one table row. Cells with no movement behind them
// render empty rather than as a zero amount.
func cellsRow(label string, cells []balancegrid.Cell) []string {
	row := make([]string, 0, len(cells)+1)
	row = append(row, label)
	for _, c := range cells {
		if c.Count == 0 && c.Balance.IsZero() {
			row = append(row, "")
			continue
		}
		row = append(row, c.Balance.SignedString())
	}
	return row
}

func appendWarnings(doc *md.Markdown, w balancegrid.Warnings) {
	if w.Len() == 0 {
		return
	}
	doc.H2("Warnings")
	doc.BulletList(w.Messages()...)
}
