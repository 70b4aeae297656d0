package balancegrid

import (
	"fmt"
	"strings"
)

// Grain is the level of the dimensional hierarchy at which a value is
// displayed or aggregated.
type Grain int

const (
	GrainCurrency Grain = iota
	GrainAccount
	GrainYear
	GrainMonth
	GrainDate
)

func (g Grain) String() string {
	switch g {
	case GrainCurrency:
		return "currency"
	case GrainAccount:
		return "account"
	case GrainYear:
		return "year"
	case GrainMonth:
		return "month"
	case GrainDate:
		return "date"
	default:
		return "grain"
	}
}

// Deeper returns the next finer grain. Deeper(GrainDate) is GrainDate.
func (g Grain) Deeper() Grain {
	if g >= GrainDate {
		return GrainDate
	}
	return g + 1
}

// Coarser returns the next coarser grain. Coarser(GrainCurrency) is GrainCurrency.
func (g Grain) Coarser() Grain {
	if g <= GrainCurrency {
		return GrainCurrency
	}
	return g - 1
}

func ParseGrain(s string) (Grain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "currency":
		return GrainCurrency, nil
	case "account", "bank":
		return GrainAccount, nil
	case "year":
		return GrainYear, nil
	case "month":
		return GrainMonth, nil
	case "date", "day":
		return GrainDate, nil
	default:
		return GrainCurrency, fmt.Errorf("unknown grain %q", s)
	}
}
