package barbershop

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/etnz/barbershop/date"
	"github.com/shopspring/decimal"
)

// Earnings manages the log of sales. Entries are stamped when recorded and
// never change afterwards.
type Earnings struct {
	l   *Ledger
	now func() time.Time
}

// Add records an earning of amount now and returns the new total.
func (e *Earnings) Add(amount string) (decimal.Decimal, error) {
	a, err := parseAmount("amount", amount)
	if err != nil {
		return e.Total(), err
	}
	e.record(a)
	return e.Total(), nil
}

func (e *Earnings) record(amount decimal.Decimal) Earning {
	earning := Earning{Date: date.At(e.now()), Amount: amount}
	e.l.earnings = append(e.l.earnings, earning)
	return earning
}

// RemoveAt removes the earning at row index and returns the new total.
func (e *Earnings) RemoveAt(index int) (decimal.Decimal, error) {
	if index < 0 || index >= len(e.l.earnings) {
		return e.Total(), fmt.Errorf("%w: earning #%d (%d earnings)", ErrOutOfRange, index, len(e.l.earnings))
	}
	e.l.earnings = slices.Delete(e.l.earnings, index, index+1)
	return e.Total(), nil
}

// RemoveAll clears the log. Callers are expected to have asked for a
// confirmation first.
func (e *Earnings) RemoveAll() decimal.Decimal {
	e.l.earnings = make([]Earning, 0)
	return decimal.Zero
}

// Total returns the sum of all the earnings.
func (e *Earnings) Total() decimal.Decimal {
	return sum(e.l.earnings, func(x Earning) decimal.Decimal { return x.Amount })
}

// Between returns an iterator over the earnings recorded within r.
func (e *Earnings) Between(r date.Range) iter.Seq2[int, Earning] {
	return func(yield func(int, Earning) bool) {
		for i, x := range e.l.earnings {
			if !r.Contains(x.Date.Date()) {
				continue
			}
			if !yield(i, x) {
				return
			}
		}
	}
}

// TotalOn returns the sum of the earnings recorded within r.
func (e *Earnings) TotalOn(r date.Range) decimal.Decimal {
	total := decimal.Zero
	for _, x := range e.Between(r) {
		total = total.Add(x.Amount)
	}
	return total
}

// All returns an iterator over the earnings in insertion order.
func (e *Earnings) All() iter.Seq2[int, Earning] { return slices.All(e.l.earnings) }

// Len returns the number of earnings.
func (e *Earnings) Len() int { return len(e.l.earnings) }
