package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/barbershop"
	"github.com/etnz/barbershop/renderer"
	"github.com/google/subcommands"
)

type monthlyAddCmd struct {
	month  string
	amount string
}

func (*monthlyAddCmd) Name() string     { return "monthly-add" }
func (*monthlyAddCmd) Synopsis() string { return "record an earning for a month" }
func (*monthlyAddCmd) Usage() string {
	return `monthly-add -month <month> -a <amount>

  Records an amount earned during a month (e.g. "March", "mar" or "3").
`
}

func (c *monthlyAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month name (required)")
	f.StringVar(&c.amount, "a", "", "Amount earned (required)")
}

func (c *monthlyAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		e, err := b.MonthlyEarnings.Add(c.month, c.amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Added %s for %s\n", barbershop.M(e.Amount, cfg.Currency), e.Month)
		return nil
	})
}

type monthlyRemoveCmd struct {
	month  string
	amount string
}

func (*monthlyRemoveCmd) Name() string     { return "monthly-rm" }
func (*monthlyRemoveCmd) Synopsis() string { return "remove a monthly earning" }
func (*monthlyRemoveCmd) Usage() string {
	return `monthly-rm -month <month> -a <amount>

  Removes the first monthly earning of <month> equal to <amount>.
`
}

func (c *monthlyRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month name (required)")
	f.StringVar(&c.amount, "a", "", "Amount (required)")
}

func (c *monthlyRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		if err := b.MonthlyEarnings.RemoveMatching(c.month, c.amount); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Total monthly earnings: %s\n", barbershop.M(b.MonthlyEarnings.Total(), cfg.Currency))
		return nil
	})
}

type monthlyCmd struct{}

func (*monthlyCmd) Name() string             { return "monthly" }
func (*monthlyCmd) Synopsis() string         { return "list the monthly earnings" }
func (*monthlyCmd) Usage() string            { return "monthly\n" }
func (*monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return inspect(func(b *barbershop.Book) error {
		printMarkdown(renderer.MonthlyEarnings(b.MonthlyEarnings.All(), b.MonthlyEarnings.Total(), cfg.Currency))
		return nil
	})
}
