package barbershop

import (
	"errors"
	"fmt"

	"github.com/etnz/barbershop/date"
	"github.com/shopspring/decimal"
)

// Package is a sellable service offering, e.g. a haircut.
type Package struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// InventoryItem is a stock component. Price is optional.
type InventoryItem struct {
	Component string              `json:"component"`
	Quantity  int                 `json:"quantity"`
	Price     decimal.NullDecimal `json:"price"`

	nullPrice bool // read as "price": null, written back the same way
}

// Customer is a known customer and the number of visits.
type Customer struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Visits int    `json:"visits"`
}

// Earning is a single sale, stamped when it was recorded.
type Earning struct {
	Date   date.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyEarning is an amount earned over a month.
type MonthlyEarning struct {
	Month  date.Month      `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// Expense is money spent.
type Expense struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Ledger is the whole record of the shop: six ordered collections.
//
// A Ledger is loaded once, mutated through the managers of a Book and saved
// once. It is not safe for concurrent use.
type Ledger struct {
	packages        []Package
	inventory       []InventoryItem
	customers       []Customer
	earnings        []Earning
	monthlyEarnings []MonthlyEarning
	expenses        []Expense
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		packages:        make([]Package, 0),
		inventory:       make([]InventoryItem, 0),
		customers:       make([]Customer, 0),
		earnings:        make([]Earning, 0),
		monthlyEarnings: make([]MonthlyEarning, 0),
		expenses:        make([]Expense, 0),
	}
}

// IsEmpty reports whether all the collections are empty.
func (l *Ledger) IsEmpty() bool {
	return len(l.packages) == 0 && len(l.inventory) == 0 && len(l.customers) == 0 &&
		len(l.earnings) == 0 && len(l.monthlyEarnings) == 0 && len(l.expenses) == 0
}

// validate checks the invariants of a decoded ledger and returns all violations.
func (l *Ledger) validate() error {
	var errs error
	for i, p := range l.packages {
		if p.Price.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("package #%d %q has a negative price %s", i, p.Description, p.Price))
		}
	}
	for i, item := range l.inventory {
		if item.Quantity < 0 {
			errs = errors.Join(errs, fmt.Errorf("inventory #%d %q has a negative quantity %d", i, item.Component, item.Quantity))
		}
		if item.Price.Valid && item.Price.Decimal.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("inventory #%d %q has a negative price %s", i, item.Component, item.Price.Decimal))
		}
	}
	for i, c := range l.customers {
		if c.Visits < 0 {
			errs = errors.Join(errs, fmt.Errorf("customer #%d %q has a negative visit count %d", i, c.Name, c.Visits))
		}
	}
	for i, m := range l.monthlyEarnings {
		if !m.Month.IsValid() {
			errs = errors.Join(errs, fmt.Errorf("monthly earning #%d has no month", i))
		}
	}
	return errs
}

// sum folds amounts.
func sum[T any](entries []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(amount(e))
	}
	return total
}
