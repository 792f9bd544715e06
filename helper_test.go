package barbershop

import (
	"testing"
	"time"

	"github.com/etnz/barbershop/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

// ledgerCmp compares ledgers by value: decimals and times by equality, nil
// and empty collections alike.
var ledgerCmp = []cmp.Option{
	cmp.AllowUnexported(Ledger{}, InventoryItem{}),
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Time) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
}

// dec is a helper for test to create decimals from const.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testClock is the fixed time used to stamp earnings in tests.
var testClock = time.Date(2025, time.August, 1, 10, 30, 0, 0, time.Local)

// newTestBook returns a book over an empty ledger with a fixed clock.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook(NewLedger())
	b.Earnings.now = func() time.Time { return testClock }
	return b
}
