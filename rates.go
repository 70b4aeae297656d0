package balancegrid

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// RateTable maps a currency code to the number of units of that currency
// per one USD, as of a single reference date. Conversion to USD is a
// division by that rate.
type RateTable struct {
	perUSD map[string]decimal.Decimal
}

// NewRateTable creates an empty rate table.
func NewRateTable() *RateTable {
	return &RateTable{perUSD: make(map[string]decimal.Decimal)}
}

// Set declares the units-per-USD rate for a currency.
func (t *RateTable) Set(currency string, unitsPerUSD decimal.Decimal) {
	t.perUSD[currency] = unitsPerUSD
}

// Rate returns the units-per-USD rate for a currency.
func (t *RateTable) Rate(currency string) (decimal.Decimal, bool) {
	r, ok := t.perUSD[currency]
	return r, ok
}

// Currencies iterates over the currencies with a declared rate, sorted.
func (t *RateTable) Currencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range slices.Sorted(maps.Keys(t.perUSD)) {
			if !yield(c) {
				return
			}
		}
	}
}

// ToUSD converts an amount into USD. USD amounts pass through unchanged.
// A missing or zero rate is a recoverable degradation: the amount is
// returned unchanged (never zeroed) along with a non-nil error that
// callers surface as a warning.
//
// The function is pure: for a fixed table the same input always yields
// the same output.
func (t *RateTable) ToUSD(m Money) (Money, error) {
	if m.Currency() == "USD" {
		return m, nil
	}
	rate, ok := t.perUSD[m.Currency()]
	if !ok || rate.IsZero() {
		return m, fmt.Errorf("no usable USD rate for %q: amount kept in original currency", m.Currency())
	}
	return m.DivRate(rate, "USD"), nil
}

// Warnings accumulates the recoverable degradations of a computation
// pass: excluded movements, missing rates. It is surfaced with the
// pass's output, never logged from inside the engine.
type Warnings struct {
	messages []string
}

// Addf records a warning.
func (w *Warnings) Addf(format string, args ...any) {
	w.messages = append(w.messages, fmt.Sprintf(format, args...))
}

// Messages returns the recorded warnings in order.
func (w *Warnings) Messages() []string { return w.messages }

// Len returns the number of recorded warnings.
func (w *Warnings) Len() int { return len(w.messages) }
