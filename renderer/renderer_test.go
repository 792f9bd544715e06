package renderer

import (
	"slices"
	"strings"
	"testing"

	"github.com/etnz/barbershop"
	"github.com/etnz/barbershop/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tableRows parses markdown and returns the number of body rows of each table.
func tableRows(t *testing.T, md string) []int {
	t.Helper()
	source := []byte(md)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var counts []int
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case east.KindTable:
			counts = append(counts, 0)
		case east.KindTableRow:
			counts[len(counts)-1]++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return counts
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPackages(t *testing.T) {
	packages := []barbershop.Package{
		{Description: "Haircut", Price: dec("15")},
		{Description: "Cut | Shave", Price: dec("20")},
	}
	got := Packages(slices.All(packages), "USD")

	if rows := tableRows(t, got); len(rows) != 1 || rows[0] != 2 {
		t.Errorf("Packages() tables = %v, want one table of 2 rows:\n%s", rows, got)
	}
	for _, want := range []string{"## Packages", "$15.00", `Cut \| Shave`} {
		if !strings.Contains(got, want) {
			t.Errorf("Packages() does not contain %q:\n%s", want, got)
		}
	}
}

func TestEmptyCollections(t *testing.T) {
	testCases := map[string]string{
		"packages":  Packages(slices.All([]barbershop.Package(nil)), "USD"),
		"inventory": Inventory("Stock", slices.All([]barbershop.InventoryItem(nil)), "USD"),
		"customers": Customers("Customers", slices.All([]barbershop.Customer(nil))),
		"earnings":  Earnings("Earnings", slices.All([]barbershop.Earning(nil)), decimal.Zero, "USD"),
		"monthly":   MonthlyEarnings(slices.All([]barbershop.MonthlyEarning(nil)), decimal.Zero, "USD"),
		"expenses":  Expenses(slices.All([]barbershop.Expense(nil)), decimal.Zero, "USD"),
	}
	for name, got := range testCases {
		t.Run(name, func(t *testing.T) {
			if strings.Contains(got, "error") {
				t.Fatalf("rendering failed: %s", got)
			}
			if rows := tableRows(t, got); len(rows) != 0 {
				t.Errorf("empty collection rendered a table:\n%s", got)
			}
			if !strings.Contains(got, "_No ") {
				t.Errorf("empty collection is not reported:\n%s", got)
			}
		})
	}
}

func TestInventory(t *testing.T) {
	items := []barbershop.InventoryItem{
		{Component: "Shampoo", Quantity: 7, Price: decimal.NewNullDecimal(dec("5"))},
		{Component: "Towel", Quantity: 12},
	}
	got := Inventory("Stock", slices.All(items), "USD")
	if rows := tableRows(t, got); len(rows) != 1 || rows[0] != 2 {
		t.Errorf("Inventory() tables = %v, want one table of 2 rows:\n%s", rows, got)
	}
	if !strings.Contains(got, "| 1 | Towel | 12 | - |") {
		t.Errorf("Inventory() does not render a missing price as '-':\n%s", got)
	}
}

func TestEarnings(t *testing.T) {
	earnings := []barbershop.Earning{
		{Date: date.MustParseTime("2025-08-01 10:30:00"), Amount: dec("15")},
		{Date: date.MustParseTime("2025-08-01 11:00:00"), Amount: dec("7.5")},
	}
	got := Earnings("Earnings", slices.All(earnings), dec("22.5"), "USD")
	for _, want := range []string{"| 0 | 2025-08-01 10:30:00 | $15.00 |", "**Total: $22.50**"} {
		if !strings.Contains(got, want) {
			t.Errorf("Earnings() does not contain %q:\n%s", want, got)
		}
	}
}

func TestMonthlyAndExpenses(t *testing.T) {
	monthly := []barbershop.MonthlyEarning{{Month: 3, Amount: dec("1000")}}
	got := MonthlyEarnings(slices.All(monthly), dec("1000"), "USD")
	if !strings.Contains(got, "| 0 | March | $1,000.00 |") {
		t.Errorf("MonthlyEarnings() =\n%s", got)
	}

	expenses := []barbershop.Expense{{Description: "Rent", Amount: dec("500")}}
	got = Expenses(slices.All(expenses), dec("500"), "EUR")
	if !strings.Contains(got, "| 0 | Rent |") || !strings.Contains(got, "**Total:") {
		t.Errorf("Expenses() =\n%s", got)
	}
}

func TestCustomers(t *testing.T) {
	customers := []barbershop.Customer{{Name: "Ali", Mobile: "0555", Visits: 3}}
	got := Customers("Customers", slices.All(customers))
	if !strings.Contains(got, "| 0 | Ali | 0555 | 3 |") {
		t.Errorf("Customers() =\n%s", got)
	}
}

func TestReceipt(t *testing.T) {
	got := Receipt(barbershop.Receipt{Description: "Haircut", Price: dec("15")}, "USD")
	for _, want := range []string{"# Receipt", "| Haircut | $15.00 |", "**Total: $15.00**"} {
		if !strings.Contains(got, want) {
			t.Errorf("Receipt() does not contain %q:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	s := barbershop.Summary{
		Packages:        2,
		Earnings:        dec("22.5"),
		MonthlyEarnings: dec("1200"),
		Expenses:        dec("500"),
		ByMonth:         []barbershop.MonthTotal{{Month: 1, Amount: dec("1200")}},
	}
	got := Summary(s, "USD")
	if rows := tableRows(t, got); len(rows) != 3 {
		t.Errorf("Summary() tables = %v, want 3 tables:\n%s", rows, got)
	}
	if !strings.Contains(got, "| January | $1,200.00 |") {
		t.Errorf("Summary() has no monthly breakdown:\n%s", got)
	}

	s.ByMonth = nil
	if rows := tableRows(t, Summary(s, "USD")); len(rows) != 2 {
		t.Errorf("Summary() without monthly earnings has %d tables, want 2", len(rows))
	}
}
