package cmd

import (
	"context"
	"flag"

	"github.com/etnz/barbershop"
	"github.com/etnz/barbershop/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "overview of the shop records" }
func (*summaryCmd) Usage() string {
	return `summary

  Prints the record counts, the money totals and the monthly earnings per month.
`
}
func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return inspect(func(b *barbershop.Book) error {
		printMarkdown(renderer.Summary(b.Summary(), cfg.Currency))
		return nil
	})
}
