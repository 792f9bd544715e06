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

type stockAddCmd struct {
	component string
	quantity  string
	price     string
}

func (*stockAddCmd) Name() string     { return "stock-add" }
func (*stockAddCmd) Synopsis() string { return "add a component to the inventory" }
func (*stockAddCmd) Usage() string {
	return `stock-add -c <component> -q <quantity> [-p <price>]

  Adds a stock line:
  - component: the product kept in stock (e.g. "Shaving foam").
  - quantity: a non-negative whole number.
  - price: optional unit price, a non-negative number.
`
}

func (c *stockAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.component, "c", "", "Component name (required)")
	f.StringVar(&c.quantity, "q", "", "Quantity in stock (required)")
	f.StringVar(&c.price, "p", "", "Unit price (optional)")
}

func (c *stockAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		item, err := b.Inventory.Add(c.component, c.quantity, c.price)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Added %d x %q to the inventory\n", item.Quantity, item.Component)
		return nil
	})
}

type stockRemoveCmd struct {
	component string
}

func (*stockRemoveCmd) Name() string     { return "stock-rm" }
func (*stockRemoveCmd) Synopsis() string { return "remove inventory lines by component" }
func (*stockRemoveCmd) Usage() string {
	return `stock-rm -c <component>

  Removes every inventory line whose component is exactly <component>.
`
}

func (c *stockRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.component, "c", "", "Component name (required)")
}

func (c *stockRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		n, err := b.Inventory.Remove(c.component)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Removed %d inventory line(s)\n", n)
		return nil
	})
}

type stockAdjustCmd struct {
	component string
	delta     int
}

func (*stockAdjustCmd) Name() string     { return "stock-adjust" }
func (*stockAdjustCmd) Synopsis() string { return "increase or decrease a component quantity" }
func (*stockAdjustCmd) Usage() string {
	return `stock-adjust -c <component> -n <delta>

  Adds <delta> (which can be negative) to the quantity of the first line
  matching <component>. The stock can't go below zero.
`
}

func (c *stockAdjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.component, "c", "", "Component name (required)")
	f.IntVar(&c.delta, "n", 0, "Quantity to add, negative to remove")
}

func (c *stockAdjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.delta == 0 {
		fmt.Fprintln(os.Stderr, "Error: -n is required and can't be zero.")
		return subcommands.ExitUsageError
	}
	return update(func(b *barbershop.Book) error {
		item, err := b.Inventory.AdjustQuantity(c.component, c.delta)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%q: %d in stock\n", item.Component, item.Quantity)
		return nil
	})
}

type stockCmd struct {
	low int
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "list the inventory" }
func (*stockCmd) Usage() string {
	return `stock [-low <threshold>]

  Lists the inventory. With -low, only the components whose quantity is at
  or below the threshold are listed.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.low, "low", -1, "Only list components with at most this quantity")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return inspect(func(b *barbershop.Book) error {
		if c.low >= 0 {
			printMarkdown(renderer.Inventory(fmt.Sprintf("Low Stock (≤ %d)", c.low), b.Inventory.LowStock(c.low), cfg.Currency))
			return nil
		}
		printMarkdown(renderer.Inventory("Inventory", b.Inventory.All(), cfg.Currency))
		return nil
	})
}
