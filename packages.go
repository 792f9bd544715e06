package barbershop

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Receipt is what a checkout hands to the presentation layer to print.
type Receipt struct {
	Description string
	Price       decimal.Decimal
}

// Packages manages the sellable packages of a Ledger.
type Packages struct {
	l        *Ledger
	checkout *Coordinator
}

// Add appends a new package.
// The description must not be empty and the price must be a non-negative number.
func (p *Packages) Add(description, price string) (Package, error) {
	description, err := requireText("description", description)
	if err != nil {
		return Package{}, err
	}
	amount, err := parsePrice("price", price)
	if err != nil {
		return Package{}, err
	}
	pkg := Package{Description: description, Price: amount}
	p.l.packages = append(p.l.packages, pkg)
	return pkg, nil
}

// Remove removes every package with this exact description and returns how
// many were removed.
func (p *Packages) Remove(description string) (int, error) {
	description = strings.TrimSpace(description)
	before := len(p.l.packages)
	p.l.packages = slices.DeleteFunc(p.l.packages, func(pkg Package) bool { return pkg.Description == description })
	removed := before - len(p.l.packages)
	if removed == 0 {
		return 0, fmt.Errorf("%w: no package %q", ErrNotFound, description)
	}
	return removed, nil
}

// Find returns the first package with this exact description.
func (p *Packages) Find(description string) (Package, bool) {
	description = strings.TrimSpace(description)
	i := slices.IndexFunc(p.l.packages, func(pkg Package) bool { return pkg.Description == description })
	if i < 0 {
		return Package{}, false
	}
	return p.l.packages[i], true
}

// Checkout sells the first package with this exact description: an earning
// of its price is recorded and the receipt is returned. The package is kept.
func (p *Packages) Checkout(description string) (Receipt, error) {
	pkg, ok := p.Find(description)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: no package %q", ErrNotFound, strings.TrimSpace(description))
	}
	return p.sell(pkg)
}

// CheckoutAt sells the package at row index.
func (p *Packages) CheckoutAt(index int) (Receipt, error) {
	if index < 0 || index >= len(p.l.packages) {
		return Receipt{}, fmt.Errorf("%w: package #%d (%d packages)", ErrOutOfRange, index, len(p.l.packages))
	}
	return p.sell(p.l.packages[index])
}

func (p *Packages) sell(pkg Package) (Receipt, error) {
	if _, err := p.checkout.OnCheckout(pkg); err != nil {
		return Receipt{}, fmt.Errorf("checkout of %q failed: %w", pkg.Description, err)
	}
	return Receipt{Description: pkg.Description, Price: pkg.Price}, nil
}

// All returns an iterator over the packages in insertion order.
func (p *Packages) All() iter.Seq2[int, Package] { return slices.All(p.l.packages) }

// Len returns the number of packages.
func (p *Packages) Len() int { return len(p.l.packages) }
