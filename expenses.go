package barbershop

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Expenses manages the money spent.
type Expenses struct {
	l *Ledger
}

// Add appends an expense.
func (e *Expenses) Add(description, amount string) (Expense, error) {
	description, err := requireText("description", description)
	if err != nil {
		return Expense{}, err
	}
	a, err := parseAmount("amount", amount)
	if err != nil {
		return Expense{}, err
	}
	expense := Expense{Description: description, Amount: a}
	e.l.expenses = append(e.l.expenses, expense)
	return expense, nil
}

// RemoveMatching removes every expense with this description and an equal
// amount, and returns how many were removed.
func (e *Expenses) RemoveMatching(description, amount string) (int, error) {
	description = strings.TrimSpace(description)
	a, err := parseAmount("amount", amount)
	if err != nil {
		return 0, err
	}
	before := len(e.l.expenses)
	e.l.expenses = slices.DeleteFunc(e.l.expenses, func(x Expense) bool {
		return x.Description == description && x.Amount.Equal(a)
	})
	removed := before - len(e.l.expenses)
	if removed == 0 {
		return 0, fmt.Errorf("%w: no expense %q of %s", ErrNotFound, description, a)
	}
	return removed, nil
}

// Total returns the sum of all the expenses.
func (e *Expenses) Total() decimal.Decimal {
	return sum(e.l.expenses, func(x Expense) decimal.Decimal { return x.Amount })
}

// All returns an iterator over the expenses in insertion order.
func (e *Expenses) All() iter.Seq2[int, Expense] { return slices.All(e.l.expenses) }

// Len returns the number of expenses.
func (e *Expenses) Len() int { return len(e.l.expenses) }
