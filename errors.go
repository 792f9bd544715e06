package barbershop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by the ledger and its managers. Use errors.Is to
// test for them, the returned errors carry the details.
var (
	// ErrValidation reports a bad or missing user input. Nothing was changed.
	ErrValidation = errors.New("barbershop: invalid input")
	// ErrNotFound reports that no entry matched the given key.
	ErrNotFound = errors.New("barbershop: not found")
	// ErrOutOfRange reports a row index outside of a collection.
	ErrOutOfRange = errors.New("barbershop: index out of range")
	// ErrPersistence reports a failure to read or write the ledger file.
	ErrPersistence = errors.New("barbershop: persistence failure")
)

// requireText returns the trimmed text or a validation error if it is empty.
func requireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return s, nil
}

// parseAmount parses a decimal number, possibly negative.
func parseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q is not a number", ErrValidation, field, s)
	}
	return d, nil
}

// parsePrice parses a non-negative decimal number.
func parsePrice(field, s string) (decimal.Decimal, error) {
	d, err := parseAmount(field, s)
	if err != nil {
		return d, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %s is negative", ErrValidation, field, d)
	}
	return d, nil
}

// parseCount parses a non-negative integer.
func parseCount(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrValidation, field, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s %d is negative", ErrValidation, field, n)
	}
	return n, nil
}
