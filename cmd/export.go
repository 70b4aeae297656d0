package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/balancegrid"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the movements to CSV" }
func (*exportCmd) Usage() string {
	return `bgr export [-o <file>]

  Exports the movements file to the CSV exchange format, suitable for
  spreadsheets. Writes to stdout by default.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file; stdout when empty.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := balancegrid.ExportMovementsCSV(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting movements: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
