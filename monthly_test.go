package barbershop

import (
	"errors"
	"testing"

	"github.com/etnz/barbershop/date"
)

func TestMonthlyEarnings_Add(t *testing.T) {
	b := newTestBook(t)
	if _, err := b.MonthlyEarnings.Add("January", "1000"); err != nil {
		t.Fatal(err)
	}
	e, err := b.MonthlyEarnings.Add("jan", "1000")
	if err != nil {
		t.Fatalf("Add(jan) failed: %v", err)
	}
	if e.Month != 1 {
		t.Errorf("Add(jan) month = %v, want January", e.Month)
	}
	if b.MonthlyEarnings.Len() != 2 {
		t.Errorf("duplicates were merged: Len() = %d, want 2", b.MonthlyEarnings.Len())
	}

	if _, err := b.MonthlyEarnings.Add("Smarch", "1"); !errors.Is(err, ErrValidation) {
		t.Errorf("Add(Smarch) error = %v, want ErrValidation", err)
	}
	if _, err := b.MonthlyEarnings.Add("May", "lots"); !errors.Is(err, ErrValidation) {
		t.Errorf("Add(May, lots) error = %v, want ErrValidation", err)
	}
	if got := b.MonthlyEarnings.Total(); !got.Equal(dec("2000")) {
		t.Errorf("Total() = %s, want 2000", got)
	}
}

func TestMonthlyEarnings_RemoveMatching(t *testing.T) {
	b := newTestBook(t)
	b.MonthlyEarnings.Add("March", "100")
	b.MonthlyEarnings.Add("April", "100")
	b.MonthlyEarnings.Add("March", "100")

	if err := b.MonthlyEarnings.RemoveMatching("March", "100.00"); err != nil {
		t.Fatalf("RemoveMatching() failed: %v", err)
	}
	if b.MonthlyEarnings.Len() != 2 {
		t.Errorf("RemoveMatching() removed %d entries, want only the first match", 3-b.MonthlyEarnings.Len())
	}
	if first := b.Ledger().monthlyEarnings[0]; first.Month != 4 {
		t.Errorf("first remaining entry = %v, want April", first.Month)
	}

	if err := b.MonthlyEarnings.RemoveMatching("March", "99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveMatching(March, 99) error = %v, want ErrNotFound", err)
	}
	if err := b.MonthlyEarnings.RemoveMatching("June", "100"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveMatching(June, 100) error = %v, want ErrNotFound", err)
	}
}

func TestMonthlyEarnings_ByMonth(t *testing.T) {
	b := newTestBook(t)
	b.MonthlyEarnings.Add("December", "5")
	b.MonthlyEarnings.Add("February", "10")
	b.MonthlyEarnings.Add("December", "7")

	got := b.MonthlyEarnings.ByMonth()
	want := []MonthTotal{
		{Month: date.Month(2), Amount: dec("10")},
		{Month: date.Month(12), Amount: dec("12")},
	}
	if len(got) != len(want) {
		t.Fatalf("ByMonth() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Month != want[i].Month || !got[i].Amount.Equal(want[i].Amount) {
			t.Errorf("ByMonth()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
