package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/barbershop"
	"github.com/etnz/barbershop/renderer"
	"github.com/google/subcommands"
)

type expenseAddCmd struct {
	description string
	amount      string
}

func (*expenseAddCmd) Name() string     { return "expense-add" }
func (*expenseAddCmd) Synopsis() string { return "record an expense" }
func (*expenseAddCmd) Usage() string {
	return `expense-add -d <description> -a <amount>

  Records an expense (e.g. "Rent", "Electricity").
`
}

func (c *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Expense description (required)")
	f.StringVar(&c.amount, "a", "", "Amount spent (required)")
}

func (c *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		e, err := b.Expenses.Add(c.description, c.amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Added expense %q of %s\n", e.Description, barbershop.M(e.Amount, cfg.Currency))
		return nil
	})
}

type expenseRemoveCmd struct {
	description string
	amount      string
}

func (*expenseRemoveCmd) Name() string     { return "expense-rm" }
func (*expenseRemoveCmd) Synopsis() string { return "remove matching expenses" }
func (*expenseRemoveCmd) Usage() string {
	return `expense-rm -d <description> -a <amount>

  Removes every expense with exactly this description and amount.
`
}

func (c *expenseRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Expense description (required)")
	f.StringVar(&c.amount, "a", "", "Amount (required)")
}

func (c *expenseRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		n, err := b.Expenses.RemoveMatching(c.description, c.amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Removed %d expense(s)\n", n)
		return nil
	})
}

type expensesCmd struct{}

func (*expensesCmd) Name() string             { return "expenses" }
func (*expensesCmd) Synopsis() string         { return "list the expenses" }
func (*expensesCmd) Usage() string            { return "expenses\n" }
func (*expensesCmd) SetFlags(f *flag.FlagSet) {}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return inspect(func(b *barbershop.Book) error {
		printMarkdown(renderer.Expenses(b.Expenses.All(), b.Expenses.Total(), cfg.Currency))
		return nil
	})
}
