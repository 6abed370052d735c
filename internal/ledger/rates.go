package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ReferenceCurrency is the currency all ledger totals are denominated in,
// regardless of the transaction's original currency.
const ReferenceCurrency = "GBP"

// ErrUnknownCurrency is returned when no conversion rate is known for a
// transaction's currency.
var ErrUnknownCurrency = errors.New("no conversion rate for currency")

// RateTable maps a currency code to its conversion rate into the reference
// currency. The table is pluggable; the default covers the one supported
// alternate currency.
type RateTable map[string]decimal.Decimal

// DefaultRates returns the standard rate table: GBP at par and USD at the
// given rate (1 USD = rate GBP).
func DefaultRates(usdToGBP decimal.Decimal) RateTable {
	return RateTable{
		ReferenceCurrency: decimal.NewFromInt(1),
		"USD":             usdToGBP,
	}
}

// Convert normalizes an amount into the reference currency.
func (t RateTable) Convert(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	rate, ok := t[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}
	return amount.Mul(rate), nil
}
