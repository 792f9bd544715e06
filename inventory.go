package barbershop

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Inventory manages the stock components of a Ledger.
//
// Quantities are never negative: an adjustment that would go below zero is
// rejected.
type Inventory struct {
	l *Ledger
}

// Add appends a stock item. The price is optional: an empty price is not set.
func (inv *Inventory) Add(component, quantity, price string) (InventoryItem, error) {
	component, err := requireText("component", component)
	if err != nil {
		return InventoryItem{}, err
	}
	n, err := parseCount("quantity", quantity)
	if err != nil {
		return InventoryItem{}, err
	}
	item := InventoryItem{Component: component, Quantity: n}
	if strings.TrimSpace(price) != "" {
		p, err := parsePrice("price", price)
		if err != nil {
			return InventoryItem{}, err
		}
		item.Price = decimal.NewNullDecimal(p)
	}
	inv.l.inventory = append(inv.l.inventory, item)
	return item, nil
}

// Remove removes every item of this exact component and returns how many were removed.
func (inv *Inventory) Remove(component string) (int, error) {
	component = strings.TrimSpace(component)
	before := len(inv.l.inventory)
	inv.l.inventory = slices.DeleteFunc(inv.l.inventory, func(it InventoryItem) bool { return it.Component == component })
	removed := before - len(inv.l.inventory)
	if removed == 0 {
		return 0, fmt.Errorf("%w: no component %q", ErrNotFound, component)
	}
	return removed, nil
}

// AdjustQuantity adds delta to the quantity of the first item of this
// component. It fails without any change if the quantity would become negative
// or overflow.
func (inv *Inventory) AdjustQuantity(component string, delta int) (InventoryItem, error) {
	i := inv.index(component)
	if i < 0 {
		return InventoryItem{}, fmt.Errorf("%w: no component %q", ErrNotFound, strings.TrimSpace(component))
	}
	item := &inv.l.inventory[i]
	if delta > 0 && item.Quantity > math.MaxInt-delta {
		return *item, fmt.Errorf("%w: %d more %q overflow the quantity", ErrValidation, delta, item.Component)
	}
	if item.Quantity+delta < 0 {
		return *item, fmt.Errorf("%w: cannot take %d %q out of %d in stock", ErrValidation, -delta, item.Component, item.Quantity)
	}
	item.Quantity += delta
	return *item, nil
}

// Item returns the first item of this exact component.
func (inv *Inventory) Item(component string) (InventoryItem, bool) {
	i := inv.index(component)
	if i < 0 {
		return InventoryItem{}, false
	}
	return inv.l.inventory[i], true
}

func (inv *Inventory) index(component string) int {
	component = strings.TrimSpace(component)
	return slices.IndexFunc(inv.l.inventory, func(it InventoryItem) bool { return it.Component == component })
}

// LowStock returns an iterator over the items with a quantity at or below threshold.
func (inv *Inventory) LowStock(threshold int) iter.Seq2[int, InventoryItem] {
	return func(yield func(int, InventoryItem) bool) {
		for i, it := range inv.l.inventory {
			if it.Quantity > threshold {
				continue
			}
			if !yield(i, it) {
				return
			}
		}
	}
}

// All returns an iterator over the items in insertion order.
func (inv *Inventory) All() iter.Seq2[int, InventoryItem] { return slices.All(inv.l.inventory) }

// Len returns the number of items.
func (inv *Inventory) Len() int { return len(inv.l.inventory) }
