package barbershop

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book wires a single Ledger into its collection managers.
//
// All the managers share the same Ledger: a change made through one of them is
// immediately visible to the others.
type Book struct {
	Packages        *Packages
	Inventory       *Inventory
	Customers       *Customers
	Earnings        *Earnings
	MonthlyEarnings *MonthlyEarnings
	Expenses        *Expenses

	ledger *Ledger
}

// NewBook returns the managers of l. Earnings are stamped with the wall clock.
func NewBook(l *Ledger) *Book {
	earnings := &Earnings{l: l, now: time.Now}
	return &Book{
		Packages:        &Packages{l: l, checkout: &Coordinator{earnings: earnings}},
		Inventory:       &Inventory{l: l},
		Customers:       &Customers{l: l},
		Earnings:        earnings,
		MonthlyEarnings: &MonthlyEarnings{l: l},
		Expenses:        &Expenses{l: l},
		ledger:          l,
	}
}

// Ledger returns the ledger managed by this book.
func (b *Book) Ledger() *Ledger { return b.ledger }

// Summary is an overview of the whole ledger.
type Summary struct {
	Packages  int
	Stock     int // number of inventory items
	Units     int // sum of the inventory quantities
	Customers int
	Visits    int

	Earnings        decimal.Decimal
	MonthlyEarnings decimal.Decimal
	Expenses        decimal.Decimal
	ByMonth         []MonthTotal
}

// Summary computes the overview of the ledger.
func (b *Book) Summary() Summary {
	s := Summary{
		Packages:        b.Packages.Len(),
		Stock:           b.Inventory.Len(),
		Customers:       b.Customers.Len(),
		Earnings:        b.Earnings.Total(),
		MonthlyEarnings: b.MonthlyEarnings.Total(),
		Expenses:        b.Expenses.Total(),
		ByMonth:         b.MonthlyEarnings.ByMonth(),
	}
	for _, it := range b.Inventory.All() {
		s.Units += it.Quantity
	}
	for _, c := range b.Customers.All() {
		s.Visits += c.Visits
	}
	return s
}
