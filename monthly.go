package barbershop

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/barbershop/date"
	"github.com/shopspring/decimal"
)

// MonthlyEarnings manages the amounts earned per month. The same month can be
// entered several times, entries are never merged.
type MonthlyEarnings struct {
	l *Ledger
}

// MonthTotal is the sum of the monthly earnings of a month.
type MonthTotal struct {
	Month  date.Month
	Amount decimal.Decimal
}

// Add appends an amount for month.
func (m *MonthlyEarnings) Add(month, amount string) (MonthlyEarning, error) {
	mon, err := date.ParseMonth(month)
	if err != nil {
		return MonthlyEarning{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	a, err := parseAmount("amount", amount)
	if err != nil {
		return MonthlyEarning{}, err
	}
	entry := MonthlyEarning{Month: mon, Amount: a}
	m.l.monthlyEarnings = append(m.l.monthlyEarnings, entry)
	return entry, nil
}

// RemoveMatching removes the first entry for month with an equal amount.
func (m *MonthlyEarnings) RemoveMatching(month, amount string) error {
	mon, err := date.ParseMonth(month)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	a, err := parseAmount("amount", amount)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(m.l.monthlyEarnings, func(x MonthlyEarning) bool {
		return x.Month == mon && x.Amount.Equal(a)
	})
	if i < 0 {
		return fmt.Errorf("%w: no %s earning of %s", ErrNotFound, mon, a)
	}
	m.l.monthlyEarnings = slices.Delete(m.l.monthlyEarnings, i, i+1)
	return nil
}

// Total returns the sum of all the entries.
func (m *MonthlyEarnings) Total() decimal.Decimal {
	return sum(m.l.monthlyEarnings, func(x MonthlyEarning) decimal.Decimal { return x.Amount })
}

// ByMonth returns the sum per month, in calendar order, for months with at
// least one entry.
func (m *MonthlyEarnings) ByMonth() []MonthTotal {
	var totals []MonthTotal
	for _, mon := range date.Months {
		var found bool
		total := decimal.Zero
		for _, x := range m.l.monthlyEarnings {
			if x.Month == mon {
				found = true
				total = total.Add(x.Amount)
			}
		}
		if found {
			totals = append(totals, MonthTotal{Month: mon, Amount: total})
		}
	}
	return totals
}

// All returns an iterator over the entries in insertion order.
func (m *MonthlyEarnings) All() iter.Seq2[int, MonthlyEarning] {
	return slices.All(m.l.monthlyEarnings)
}

// Len returns the number of entries.
func (m *MonthlyEarnings) Len() int { return len(m.l.monthlyEarnings) }
