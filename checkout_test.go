package barbershop

import (
	"errors"
	"testing"

	"github.com/etnz/barbershop/date"
)

func TestCoordinator_OnCheckout(t *testing.T) {
	b := newTestBook(t)
	c := b.Packages.checkout

	earning, err := c.OnCheckout(Package{Description: "Haircut", Price: dec("15")})
	if err != nil {
		t.Fatalf("OnCheckout() failed: %v", err)
	}
	if !earning.Amount.Equal(dec("15")) || !earning.Date.Equal(date.At(testClock)) {
		t.Errorf("OnCheckout() = %+v", earning)
	}
	if got := b.Earnings.Total(); !got.Equal(dec("15")) {
		t.Errorf("Earnings.Total() = %s, want 15", got)
	}
}

func TestCoordinator_RejectsNegativePrice(t *testing.T) {
	b := newTestBook(t)
	// Bypass Add validation, as a hand edited ledger could.
	b.Ledger().packages = append(b.Ledger().packages, Package{Description: "Refund", Price: dec("-5")})

	if _, err := b.Packages.Checkout("Refund"); !errors.Is(err, ErrValidation) {
		t.Fatalf("Checkout() error = %v, want ErrValidation", err)
	}
	if b.Earnings.Len() != 0 {
		t.Errorf("failed checkout recorded %d earnings", b.Earnings.Len())
	}
}
