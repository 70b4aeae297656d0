package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/balancegrid"
	"github.com/etnz/balancegrid/renderer"
	"github.com/google/subcommands"
)

// movementsCmd holds the flags for the 'movements' subcommand.
type movementsCmd struct {
	from, to string
	account  string
	category string
	currency string
	expand   int
	start    int
	size     int
}

func (*movementsCmd) Name() string     { return "movements" }
func (*movementsCmd) Synopsis() string { return "display the movements behind a cell of the grid" }
func (*movementsCmd) Usage() string {
	return `bgr movements [-category <id>] [-account <label>] [-currency <code>] [-from <date>] [-to <date>]

  Drills down into the movements behind one cell of the grid, in
  chronological order. With -size, movements are packed into the grid's
  columns and paginated.

Usage Examples:
# All groceries movements of January.
$ bgr movements -category groceries -from 2025-01-01 -to 2025-01-31

`
}

func (c *movementsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date of the drill-down range.")
	f.StringVar(&c.to, "to", "", "End date of the drill-down range.")
	f.StringVar(&c.account, "account", "", "Account display label to drill into.")
	f.StringVar(&c.category, "category", "", "Category id to drill into.")
	f.StringVar(&c.currency, "currency", "", "Currency code to drill into.")
	f.IntVar(&c.expand, "x", 0, "Number of levels to expand for the paginated layout.")
	f.IntVar(&c.start, "start", 1, "First row of the page (1-based).")
	f.IntVar(&c.size, "size", 0, "Page size; 0 prints the flat chronological list.")
}

func (c *movementsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	dates, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	movs := ledger.DrillDown(balancegrid.DrillDownQuery{
		Dates:    dates,
		Account:  c.account,
		Category: c.category,
		Currency: c.currency,
	})

	if c.size <= 0 {
		printMarkdown(renderer.MovementsMarkdown("Movements", movs))
		return subcommands.ExitSuccess
	}

	sel := balancegrid.NewSelection()
	ix := ledger.Index()
	for i := 0; i < c.expand; i++ {
		if !sel.ExpandOneLevel(ix) {
			break
		}
	}
	grid := balancegrid.NewGrid(ix, sel)
	w := balancegrid.NewWindow(grid, sel, movs, c.start, c.size)
	printMarkdown(renderer.WindowMarkdown("Movements", grid, w))
	return subcommands.ExitSuccess
}
