package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the movements file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bgr fmt

  Validates and formats the movements file. This command reads all
  movements, sorts them by date, and writes them back in a canonical
  JSONL format.

Usage Examples:
# Rewrites the default movements file.
$ bgr fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if n := ledger.Excluded(); n > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d movement(s) dropped for missing currency or account\n", n)
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully formatted %s (%d movements)\n", *movementsFile, ledger.Len())
	return subcommands.ExitSuccess
}
