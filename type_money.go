package barbershop

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a display currency.
//
// The ledger itself is currency agnostic: amounts are stored as plain numbers
// and the currency is only a presentation setting.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the Money for value in currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// String returns the string representation of the money value, e.g. "$1,234.50".
// Unknown currencies are printed as a plain number followed by the code.
func (m Money) String() string {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		if m.cur == "" {
			return m.value.StringFixed(2)
		}
		return m.value.StringFixed(2) + " " + m.cur
	}
	fraction := int32(cur.Fraction)
	minor := m.value.Round(fraction).Shift(fraction)
	return cur.Formatter().Format(minor.IntPart())
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w: unknown currency %q", ErrValidation, code)
	}
	return nil
}
