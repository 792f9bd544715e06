package barbershop

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Customers manages the customers of a Ledger.
//
// Unlike stock quantities, visit counts are clamped at zero rather than
// rejected.
type Customers struct {
	l *Ledger
}

// Add appends a customer with no visits. Name and mobile are required.
func (c *Customers) Add(name, mobile string) (Customer, error) {
	name, err := requireText("name", name)
	if err != nil {
		return Customer{}, err
	}
	mobile, err = requireText("mobile", mobile)
	if err != nil {
		return Customer{}, err
	}
	customer := Customer{Name: name, Mobile: mobile}
	c.l.customers = append(c.l.customers, customer)
	return customer, nil
}

// Remove removes every customer with this exact name and returns how many were removed.
func (c *Customers) Remove(name string) (int, error) {
	name = strings.TrimSpace(name)
	before := len(c.l.customers)
	c.l.customers = slices.DeleteFunc(c.l.customers, func(x Customer) bool { return x.Name == name })
	removed := before - len(c.l.customers)
	if removed == 0 {
		return 0, fmt.Errorf("%w: no customer %q", ErrNotFound, name)
	}
	return removed, nil
}

// AdjustVisits adds delta to the visits of the first customer with this name.
// The count never goes below zero. A delta that would overflow the count is
// rejected.
func (c *Customers) AdjustVisits(name string, delta int) (Customer, error) {
	name = strings.TrimSpace(name)
	i := slices.IndexFunc(c.l.customers, func(x Customer) bool { return x.Name == name })
	if i < 0 {
		return Customer{}, fmt.Errorf("%w: no customer %q", ErrNotFound, name)
	}
	customer := &c.l.customers[i]
	if delta > 0 && customer.Visits > math.MaxInt-delta {
		return *customer, fmt.Errorf("%w: %d more visits overflow the count of %q", ErrValidation, delta, name)
	}
	customer.Visits = max(customer.Visits+delta, 0)
	return *customer, nil
}

// Search returns the customers whose name contains substring, ignoring case.
// An empty substring matches everyone.
func (c *Customers) Search(substring string) []Customer {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(substring))
	var found []Customer
	for _, x := range c.l.customers {
		if strings.Contains(fold.String(x.Name), needle) {
			found = append(found, x)
		}
	}
	return found
}

// All returns an iterator over the customers in insertion order.
func (c *Customers) All() iter.Seq2[int, Customer] { return slices.All(c.l.customers) }

// Len returns the number of customers.
func (c *Customers) Len() int { return len(c.l.customers) }
