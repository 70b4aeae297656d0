package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/balancegrid"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	format string
	items  string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import movements from a CSV or provider JSON file" }
func (*importCmd) Usage() string {
	return `bgr import [-format csv|feed] <file>

  Imports movements from a file and appends them to the movements file
  in canonical JSONL form. 'csv' expects the fixed-column exchange
  format; 'feed' expects a provider JSON document.

Usage Examples:
# Import a spreadsheet export.
$ bgr import -format csv export.csv

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Input format: csv or feed.")
	f.StringVar(&c.items, "items", "", "Feed only: jsonpath selecting the movement objects (defaults to $.movements[*]).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import expects exactly one input file")
		return subcommands.ExitUsageError
	}
	source := f.Arg(0)
	in, err := os.Open(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var imported *balancegrid.Ledger
	switch c.format {
	case "csv":
		imported, err = balancegrid.ImportMovementsCSV(in)
	case "feed":
		mapping := balancegrid.DefaultFeedMapping()
		if c.items != "" {
			mapping.Items = c.items
		}
		imported, err = balancegrid.DecodeFeed(in, mapping)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", source, err)
		return subcommands.ExitFailure
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var count int
	for _, m := range imported.Movements() {
		ledger.Append(m)
		count++
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully imported %d movement(s) into %s\n", count, *movementsFile)
	return subcommands.ExitSuccess
}
