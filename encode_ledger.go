package barbershop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ledgerFile is the persisted layout of a Ledger. A missing collection decodes
// as nil and is defaulted to an empty one.
type ledgerFile struct {
	Packages        []Package        `json:"packages"`
	Inventory       []InventoryItem  `json:"inventory"`
	Customers       []Customer       `json:"customers"`
	Earnings        []Earning        `json:"earnings"`
	MonthlyEarnings []MonthlyEarning `json:"monthly_earnings"`
	Expenses        []Expense        `json:"expenses"`
}

// MarshalJSON omits the price when it is not set, unless it was read as null.
func (it InventoryItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("component", it.Component)
	w.Append("quantity", it.Quantity)
	w.AppendIf(it.Price.Valid, "price", it.Price.Decimal)
	w.AppendIf(!it.Price.Valid && it.nullPrice, "price", nil)
	return w.MarshalJSON()
}

// UnmarshalJSON remembers an explicit null price.
func (it *InventoryItem) UnmarshalJSON(data []byte) error {
	type item InventoryItem // without methods
	if err := json.Unmarshal(data, (*item)(it)); err != nil {
		return err
	}
	var price struct {
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &price); err != nil {
		return err
	}
	it.nullPrice = string(bytes.TrimSpace(price.Price)) == "null"
	return nil
}

// DecodeLedger decodes a whole ledger document from r.
//
// Collections missing from the document are empty. It fails if the document
// is not valid JSON, does not match the layout, or breaks an invariant (e.g. a
// negative quantity).
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty ledger document")
	}

	var doc ledgerFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger document: %w", err)
	}

	ledger := &Ledger{
		packages:        orEmpty(doc.Packages),
		inventory:       orEmpty(doc.Inventory),
		customers:       orEmpty(doc.Customers),
		earnings:        orEmpty(doc.Earnings),
		monthlyEarnings: orEmpty(doc.MonthlyEarnings),
		expenses:        orEmpty(doc.Expenses),
	}
	if err := ledger.validate(); err != nil {
		return nil, fmt.Errorf("invalid ledger document: %w", err)
	}
	return ledger, nil
}

// EncodeLedger writes the whole ledger to w as an indented JSON document.
// All six collections are always present.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	doc := ledgerFile{
		Packages:        orEmpty(ledger.packages),
		Inventory:       orEmpty(ledger.inventory),
		Customers:       orEmpty(ledger.customers),
		Earnings:        orEmpty(ledger.earnings),
		MonthlyEarnings: orEmpty(ledger.monthlyEarnings),
		Expenses:        orEmpty(ledger.expenses),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	return nil
}

// orEmpty returns s or an empty slice if s is nil, so that it encodes as [].
func orEmpty[T any](s []T) []T {
	if s == nil {
		return make([]T, 0)
	}
	return s
}
