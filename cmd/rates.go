package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/balancegrid"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	set string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display or update the exchange rate table" }
func (*ratesCmd) Usage() string {
	return `bgr rates [-set <code>=<rate>]

  Displays the exchange rate table (units per USD), or updates one rate
  and writes the table back.

Usage Examples:
# Declare that one USD is worth 0.91 EUR.
$ bgr rates -set EUR=0.91

`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Rate to set, as <code>=<units per USD>.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, err := DecodeRateTable()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.set != "" {
		code, value, ok := strings.Cut(c.set, "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: -set expects <code>=<rate>")
			return subcommands.ExitUsageError
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing rate %q: %v\n", value, err)
			return subcommands.ExitUsageError
		}
		rates.Set(strings.ToUpper(strings.TrimSpace(code)), rate)

		out, err := os.Create(*ratesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating rates file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := balancegrid.EncodeRates(out, rates); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Successfully updated %s\n", *ratesFile)
		return subcommands.ExitSuccess
	}

	for code := range rates.Currencies() {
		rate, _ := rates.Rate(code)
		fmt.Printf("%s\t%s\n", code, rate)
	}
	return subcommands.ExitSuccess
}
