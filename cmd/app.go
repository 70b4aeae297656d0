// Package cmd implements the CLI application to browse balance grids.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/balancegrid"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&gridCmd{}, "reports")
	c.Register(&movementsCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&fmtCmd{}, "data")
	c.Register(&ratesCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// Environment variables overriding the global flag defaults. They are
// loaded from a .env file when present.
const (
	EnvMovementsFile  = "BGR_MOVEMENTS_FILE"
	EnvRatesFile      = "BGR_RATES_FILE"
	EnvCategoriesFile = "BGR_CATEGORIES_FILE"
	EnvEpoch          = "BGR_EPOCH"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var movementsFile = flag.String("movements-file", envOr(EnvMovementsFile, "movements.jsonl"), "Path to the movements file (JSONL format)")
var ratesFile = flag.String("rates-file", envOr(EnvRatesFile, "rates.json"), "Path to the exchange rates file (JSON object, units per USD)")
var categoriesFile = flag.String("categories-file", envOr(EnvCategoriesFile, "categories.json"), "Path to the categories file (JSON array)")
var epochFlag = flag.String("epoch", envOr(EnvEpoch, balancegrid.DefaultEpoch.String()), "Date before which balances read as zero")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DecodeLedger loads the movements file and attaches the declared
// categories. A missing movements file is an empty ledger, not an error.
func DecodeLedger() (*balancegrid.Ledger, error) {
	ledger := balancegrid.NewLedger()
	f, err := os.Open(*movementsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, movements file %q does not exist, starting empty", *movementsFile)
	} else if err != nil {
		return nil, fmt.Errorf("cannot open movements file %q: %w", *movementsFile, err)
	} else {
		defer f.Close()
		ledger, err = balancegrid.DecodeMovements(f)
		if err != nil {
			return nil, fmt.Errorf("cannot decode movements file %q: %w", *movementsFile, err)
		}
	}

	cats, err := DecodeCategories()
	if err != nil {
		return nil, err
	}
	ledger.SetCategories(cats)
	return ledger, nil
}

// DecodeRateTable loads the exchange rates file. A missing file is an
// empty table: every non-USD total then degrades with a warning.
func DecodeRateTable() (*balancegrid.RateTable, error) {
	f, err := os.Open(*ratesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return balancegrid.NewRateTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open rates file %q: %w", *ratesFile, err)
	}
	defer f.Close()
	t, err := balancegrid.DecodeRates(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode rates file %q: %w", *ratesFile, err)
	}
	return t, nil
}

// DecodeCategories loads the declared categories. A missing file means
// no declarations: ids then resolve to self-named categories.
func DecodeCategories() (*balancegrid.Categories, error) {
	f, err := os.Open(*categoriesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return balancegrid.NewCategories(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open categories file %q: %w", *categoriesFile, err)
	}
	defer f.Close()
	c, err := balancegrid.DecodeCategories(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode categories file %q: %w", *categoriesFile, err)
	}
	return c, nil
}

// Epoch parses the epoch flag.
func Epoch() (balancegrid.Date, error) {
	on, err := balancegrid.ParseDate(*epochFlag)
	if err != nil {
		return balancegrid.Date{}, fmt.Errorf("cannot parse epoch: %w", err)
	}
	return on, nil
}

// EncodeLedger writes the ledger back to the movements file in
// canonical JSONL form.
func EncodeLedger(l *balancegrid.Ledger) error {
	f, err := os.Create(*movementsFile)
	if err != nil {
		return fmt.Errorf("cannot create movements file %q: %w", *movementsFile, err)
	}
	defer f.Close()
	if err := balancegrid.EncodeMovements(f, l); err != nil {
		return fmt.Errorf("cannot write movements file %q: %w", *movementsFile, err)
	}
	return nil
}
