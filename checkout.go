package barbershop

import "fmt"

// Coordinator holds the only rule spanning two collections: selling a package
// records an earning.
type Coordinator struct {
	earnings *Earnings
}

// OnCheckout records an earning of the package price. The earning is appended
// before OnCheckout returns, so a nil error means the sale is in the ledger.
func (c *Coordinator) OnCheckout(pkg Package) (Earning, error) {
	if pkg.Price.IsNegative() {
		return Earning{}, fmt.Errorf("%w: package %q has a negative price %s", ErrValidation, pkg.Description, pkg.Price)
	}
	return c.earnings.record(pkg.Price), nil
}
