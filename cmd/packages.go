package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barbershop"
	"github.com/etnz/barbershop/renderer"
	"github.com/google/subcommands"
)

type packageAddCmd struct {
	description string
	price       string
}

func (*packageAddCmd) Name() string     { return "package-add" }
func (*packageAddCmd) Synopsis() string { return "add a sellable package" }
func (*packageAddCmd) Usage() string {
	return `package-add -d <description> -p <price>

  Adds a package to the list of services on sale:
  - description: what the customer buys (e.g. "Haircut + Beard").
  - price: a non-negative number (e.g. "25.50").
`
}

func (c *packageAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Package description (required)")
	f.StringVar(&c.price, "p", "", "Package price (required)")
}

func (c *packageAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		p, err := b.Packages.Add(c.description, c.price)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Added package %q at %s\n", p.Description, barbershop.M(p.Price, cfg.Currency))
		return nil
	})
}

type packageRemoveCmd struct {
	description string
}

func (*packageRemoveCmd) Name() string     { return "package-rm" }
func (*packageRemoveCmd) Synopsis() string { return "remove packages by description" }
func (*packageRemoveCmd) Usage() string {
	return `package-rm -d <description>

  Removes every package whose description is exactly <description>.
`
}

func (c *packageRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Package description (required)")
}

func (c *packageRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		n, err := b.Packages.Remove(c.description)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Removed %d package(s)\n", n)
		return nil
	})
}

type packagesCmd struct{}

func (*packagesCmd) Name() string             { return "packages" }
func (*packagesCmd) Synopsis() string         { return "list the packages on sale" }
func (*packagesCmd) Usage() string            { return "packages\n" }
func (*packagesCmd) SetFlags(f *flag.FlagSet) {}

func (c *packagesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return inspect(func(b *barbershop.Book) error {
		printMarkdown(renderer.Packages(b.Packages.All(), cfg.Currency))
		return nil
	})
}

type checkoutCmd struct {
	description string
	index       int
}

func (*checkoutCmd) Name() string     { return "checkout" }
func (*checkoutCmd) Synopsis() string { return "sell a package and record the earning" }
func (*checkoutCmd) Usage() string {
	return `checkout -d <description> | -i <row>

  Sells a package, identified either by its description (first match) or by
  its row number in the "packages" list. The price is recorded as an earning
  and a receipt is printed. The package stays on sale.
`
}

func (c *checkoutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Package description")
	f.IntVar(&c.index, "i", -1, "Package row number, as listed by \"packages\"")
}

func (c *checkoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.description == "") == (c.index < 0) {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -d or -i is required.")
		return subcommands.ExitUsageError
	}
	return update(func(b *barbershop.Book) error {
		var (
			r   barbershop.Receipt
			err error
		)
		if c.description != "" {
			r, err = b.Packages.Checkout(c.description)
		} else {
			r, err = b.Packages.CheckoutAt(c.index)
		}
		if err != nil {
			return err
		}
		printMarkdown(renderer.Receipt(r, cfg.Currency))
		return nil
	})
}
