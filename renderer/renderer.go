// Package renderer renders the ledger collections, receipts and summaries as
// markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"iter"
	"strings"
	"text/template"

	"github.com/etnz/barbershop"
	"github.com/shopspring/decimal"
)

//go:embed *.md
var templates embed.FS

// Row is an entry of a collection and its row index.
type Row[T any] struct {
	Index int
	Item  T
}

// rows collects an iterator into rows.
func rows[T any](all iter.Seq2[int, T]) []Row[T] {
	var r []Row[T]
	for i, x := range all {
		r = append(r, Row[T]{Index: i, Item: x})
	}
	return r
}

// table is the data of a collection template.
type table[T any] struct {
	Title string
	Rows  []Row[T]
	Total decimal.Decimal
}

// Packages renders the packages as a table.
func Packages(all iter.Seq2[int, barbershop.Package], currency string) string {
	return renderTemplate("packages.md", currency, table[barbershop.Package]{Title: "Packages", Rows: rows(all)})
}

// Inventory renders stock items as a table.
func Inventory(title string, all iter.Seq2[int, barbershop.InventoryItem], currency string) string {
	return renderTemplate("inventory.md", currency, table[barbershop.InventoryItem]{Title: title, Rows: rows(all)})
}

// Customers renders customers as a table.
func Customers(title string, all iter.Seq2[int, barbershop.Customer]) string {
	return renderTemplate("customers.md", "", table[barbershop.Customer]{Title: title, Rows: rows(all)})
}

// Earnings renders earnings and their total.
func Earnings(title string, all iter.Seq2[int, barbershop.Earning], total decimal.Decimal, currency string) string {
	return renderTemplate("earnings.md", currency, table[barbershop.Earning]{Title: title, Rows: rows(all), Total: total})
}

// MonthlyEarnings renders the monthly earnings and their total.
func MonthlyEarnings(all iter.Seq2[int, barbershop.MonthlyEarning], total decimal.Decimal, currency string) string {
	return renderTemplate("monthly.md", currency, table[barbershop.MonthlyEarning]{Title: "Monthly earnings", Rows: rows(all), Total: total})
}

// Expenses renders the expenses and their total.
func Expenses(all iter.Seq2[int, barbershop.Expense], total decimal.Decimal, currency string) string {
	return renderTemplate("expenses.md", currency, table[barbershop.Expense]{Title: "Expenses", Rows: rows(all), Total: total})
}

// Receipt renders the receipt of a checkout, ready to be printed.
func Receipt(r barbershop.Receipt, currency string) string {
	return renderTemplate("receipt.md", currency, r)
}

// Summary renders the overview of the ledger.
func Summary(s barbershop.Summary, currency string) string {
	return renderTemplate("summary.md", currency, s)
}

// funcs returns the template functions for a currency.
func funcs(currency string) template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string { return barbershop.M(d, currency).String() },
		"price": func(d decimal.NullDecimal) string {
			if !d.Valid {
				return "-"
			}
			return barbershop.M(d.Decimal, currency).String()
		},
		// cell escapes text for a markdown table cell.
		"cell": func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
	}
}

// renderTemplate is a generic utility to render an embedded template.
func renderTemplate(file, currency string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(file).Funcs(funcs(currency)).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}
