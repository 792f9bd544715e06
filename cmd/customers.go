package cmd

import (
	"context"
	"flag"
	"fmt"
	"slices"

	"github.com/etnz/barbershop"
	"github.com/etnz/barbershop/renderer"
	"github.com/google/subcommands"
)

type customerAddCmd struct {
	name   string
	mobile string
}

func (*customerAddCmd) Name() string     { return "customer-add" }
func (*customerAddCmd) Synopsis() string { return "register a customer" }
func (*customerAddCmd) Usage() string {
	return `customer-add -n <name> -m <mobile>

  Registers a customer with no visits yet.
`
}

func (c *customerAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Customer name (required)")
	f.StringVar(&c.mobile, "m", "", "Customer mobile number (required)")
}

func (c *customerAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		cu, err := b.Customers.Add(c.name, c.mobile)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Added customer %q\n", cu.Name)
		return nil
	})
}

type customerRemoveCmd struct {
	name string
}

func (*customerRemoveCmd) Name() string     { return "customer-rm" }
func (*customerRemoveCmd) Synopsis() string { return "remove customers by name" }
func (*customerRemoveCmd) Usage() string {
	return `customer-rm -n <name>

  Removes every customer whose name is exactly <name>.
`
}

func (c *customerRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Customer name (required)")
}

func (c *customerRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		n, err := b.Customers.Remove(c.name)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Removed %d customer(s)\n", n)
		return nil
	})
}

type visitCmd struct {
	name  string
	delta int
}

func (*visitCmd) Name() string     { return "visit" }
func (*visitCmd) Synopsis() string { return "count a customer visit" }
func (*visitCmd) Usage() string {
	return `visit -n <name> [-delta <n>]

  Adds one visit (or <n>, possibly negative to correct a mistake) to the first
  customer named <name>. The count never goes below zero.
`
}

func (c *visitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Customer name (required)")
	f.IntVar(&c.delta, "delta", 1, "Number of visits to add")
}

func (c *visitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		cu, err := b.Customers.AdjustVisits(c.name, c.delta)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%q: %d visit(s)\n", cu.Name, cu.Visits)
		return nil
	})
}

type customersCmd struct {
	search string
}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list or search the customers" }
func (*customersCmd) Usage() string {
	return `customers [-search <text>]

  Lists the customers. With -search, only the customers whose name contains
  <text>, ignoring case.
`
}

func (c *customersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Only list names containing this text")
}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return inspect(func(b *barbershop.Book) error {
		if c.search != "" {
			found := b.Customers.Search(c.search)
			printMarkdown(renderer.Customers(fmt.Sprintf("Customers matching %q", c.search), slices.All(found)))
			return nil
		}
		printMarkdown(renderer.Customers("Customers", b.Customers.All()))
		return nil
	})
}
