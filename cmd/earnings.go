package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barbershop"
	"github.com/etnz/barbershop/date"
	"github.com/etnz/barbershop/renderer"
	"github.com/google/subcommands"
)

type earningAddCmd struct {
	amount string
}

func (*earningAddCmd) Name() string     { return "earning-add" }
func (*earningAddCmd) Synopsis() string { return "record an earning now" }
func (*earningAddCmd) Usage() string {
	return `earning-add -a <amount>

  Records an earning stamped with the current time and prints the new total.
`
}

func (c *earningAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount earned (required)")
}

func (c *earningAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return update(func(b *barbershop.Book) error {
		total, err := b.Earnings.Add(c.amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Total earnings: %s\n", barbershop.M(total, cfg.Currency))
		return nil
	})
}

type earningRemoveCmd struct {
	index int
}

func (*earningRemoveCmd) Name() string     { return "earning-rm" }
func (*earningRemoveCmd) Synopsis() string { return "remove an earning by row number" }
func (*earningRemoveCmd) Usage() string {
	return `earning-rm -i <row>

  Removes the earning at <row>, as listed by "earnings", and prints the new total.
`
}

func (c *earningRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Earning row number (required)")
}

func (c *earningRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index < 0 {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}
	return update(func(b *barbershop.Book) error {
		total, err := b.Earnings.RemoveAt(c.index)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Total earnings: %s\n", barbershop.M(total, cfg.Currency))
		return nil
	})
}

type earningClearCmd struct {
	yes bool
}

func (*earningClearCmd) Name() string     { return "earning-clear" }
func (*earningClearCmd) Synopsis() string { return "remove all the earnings" }
func (*earningClearCmd) Usage() string {
	return `earning-clear -yes

  Removes every earning. This can't be undone, -yes confirms it.
`
}

func (c *earningClearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the removal of all earnings")
}

func (c *earningClearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error: all earnings would be removed, run again with -yes to confirm.")
		return subcommands.ExitUsageError
	}
	return update(func(b *barbershop.Book) error {
		total := b.Earnings.RemoveAll()
		fmt.Fprintf(stdout, "Total earnings: %s\n", barbershop.M(total, cfg.Currency))
		return nil
	})
}

type earningsCmd struct {
	day string
}

func (*earningsCmd) Name() string     { return "earnings" }
func (*earningsCmd) Synopsis() string { return "list the earnings" }
func (*earningsCmd) Usage() string {
	return `earnings [-d <day>]

  Lists the earnings and their total. With -d, only the takings of that day
  (YYYY-MM-DD, "today" or "yesterday").
`
}

func (c *earningsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Only list the earnings of this day")
}

func (c *earningsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on date.Range
	if c.day != "" {
		day, err := date.ParseDay(c.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		on = date.Day(day)
	}
	return inspect(func(b *barbershop.Book) error {
		if c.day != "" {
			printMarkdown(renderer.Earnings("Earnings on "+on.From.String(), b.Earnings.Between(on), b.Earnings.TotalOn(on), cfg.Currency))
			return nil
		}
		printMarkdown(renderer.Earnings("Earnings", b.Earnings.All(), b.Earnings.Total(), cfg.Currency))
		return nil
	})
}
