package balancegrid

import "github.com/shopspring/decimal"

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for tests to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// mov is a helper for tests to create a USD movement on BankA in one line.
// A positive amount is a credit, a negative amount a debit.
func mov(id, day, category string, amount float64) Movement {
	m := Movement{
		ID:         id,
		Date:       MustParseDate(day),
		CategoryID: category,
		Currency:   "USD",
		Bank:       "BankA",
	}
	if amount >= 0 {
		m.Credit = decimal.NewFromFloat(amount)
	} else {
		m.Debit = decimal.NewFromFloat(-amount)
	}
	return m
}

// at is a helper for tests to relocate a movement on another currency and bank.
func at(m Movement, currency, bank string) Movement {
	m.Currency = currency
	m.Bank = bank
	return m
}
