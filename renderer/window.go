package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/balancegrid"
	md "github.com/nao1215/markdown"
)

// WindowMarkdown renders one page of a movement detail view: the packed
// rows of the window under the same flattened column titles as the
// balance table.
func WindowMarkdown(title string, grid *balancegrid.Grid, w *balancegrid.Window) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if w.Total == 0 {
		doc.PlainText("No movement to display.")
		return doc.String()
	}

	header := make([]string, 0, grid.Len())
	for _, c := range grid.Columns {
		header = append(header, columnTitle(c))
	}

	rows := make([][]string, 0, len(w.Rows))
	for _, dr := range w.Rows {
		row := make([]string, 0, len(dr.Cells))
		for _, m := range dr.Cells {
			row = append(row, movementCell(m))
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})

	end := w.Start - 1 + len(w.Rows)
	doc.PlainText(fmt.Sprintf("Rows %d-%d of %d", w.Start, end, w.Total))
	return doc.String()
}

// MovementsMarkdown renders a flat drill-down list, one movement per row.
func MovementsMarkdown(title string, movs []balancegrid.Movement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(movs) == 0 {
		doc.PlainText("No movement to display.")
		return doc.String()
	}

	rows := make([][]string, 0, len(movs))
	for _, m := range movs {
		rows = append(rows, []string{
			m.Date.String(), m.Description, m.AccountLabel(), m.CategoryID, m.Net().SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Account", "Category", "Net"},
		Rows:   rows,
	})
	return doc.String()
}

// movementCell formats one cell of a detail row, empty when no movement
// landed there.
func movementCell(m *balancegrid.Movement) string {
	if m == nil {
		return ""
	}
	if m.Description == "" {
		return fmt.Sprintf("%s %s", m.Date, m.Net().SignedString())
	}
	return fmt.Sprintf("%s %s (%s)", m.Date, m.Net().SignedString(), m.Description)
}
