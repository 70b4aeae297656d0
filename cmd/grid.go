package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/balancegrid"
	"github.com/etnz/balancegrid/renderer"
	"github.com/google/subcommands"
)

// gridCmd holds the flags for the 'grid' subcommand.
type gridCmd struct {
	expand     int
	from, to   string
	currencies string
	accounts   string
	categories string
	countries  string
	companies  string
}

func (*gridCmd) Name() string     { return "grid" }
func (*gridCmd) Synopsis() string { return "display the balance grid" }
func (*gridCmd) Usage() string {
	return `bgr grid [-x <levels>] [-from <date>] [-to <date>] [-currency <codes>] [-category <ids>]

  Displays the period balance grid: one row per category, one column per
  currency, drillable down to accounts, years, months and dates with -x.
  Filters select the rows; balances always cover the whole ledger.

Usage Examples:
# Month-level view of the USD accounts.
$ bgr grid -x 3 -currency USD

`
}

func (c *gridCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.expand, "x", 0, "Number of levels to expand (0 collapses to currencies, 4 shows dates).")
	f.StringVar(&c.from, "from", "", "Start date of the filter range.")
	f.StringVar(&c.to, "to", "", "End date of the filter range.")
	f.StringVar(&c.currencies, "currency", "", "Comma-separated currency codes to filter on.")
	f.StringVar(&c.accounts, "account", "", "Comma-separated account ids to filter on.")
	f.StringVar(&c.categories, "category", "", "Comma-separated category ids to filter on.")
	f.StringVar(&c.countries, "country", "", "Comma-separated country codes to filter on.")
	f.StringVar(&c.companies, "company", "", "Comma-separated company ids to filter on.")
}

func (c *gridCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rates, err := DecodeRateTable()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	epoch, err := Epoch()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	sel := balancegrid.NewSelection()
	ix := ledger.Index()
	for i := 0; i < c.expand; i++ {
		if !sel.ExpandOneLevel(ix) {
			break
		}
	}

	report := balancegrid.NewReport(ledger, rates, filter, sel, epoch)
	printMarkdown(renderer.ReportMarkdown("Balances", report))
	return subcommands.ExitSuccess
}

func (c *gridCmd) filter() (balancegrid.Filter, error) {
	dates, err := parseRange(c.from, c.to)
	if err != nil {
		return balancegrid.Filter{}, err
	}
	return balancegrid.Filter{
		Dates:      dates,
		Currencies: splitList(c.currencies),
		Accounts:   splitList(c.accounts),
		Categories: splitList(c.categories),
		Countries:  splitList(c.countries),
		Companies:  splitList(c.companies),
	}, nil
}

// splitList parses a comma-separated flag value, nil when empty.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseRange parses the optional -from/-to flags into a Range; an empty
// flag leaves that end of the range unbounded.
func parseRange(from, to string) (balancegrid.Range, error) {
	var r balancegrid.Range
	if from == "" && to == "" {
		return r, nil
	}
	var start, end balancegrid.Date
	var err error
	if from != "" {
		if start, err = balancegrid.ParseDate(from); err != nil {
			return r, fmt.Errorf("cannot parse -from: %w", err)
		}
	}
	if to != "" {
		if end, err = balancegrid.ParseDate(to); err != nil {
			return r, fmt.Errorf("cannot parse -to: %w", err)
		}
	}
	return balancegrid.NewRange(start, end), nil
}
