package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barbershop"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the ledger" }
func (*queryCmd) Usage() string {
	return `query <jsonpath>

  Prints, as JSON, the result of a JSONPath expression evaluated over the ledger
  document. For instance:

    barber query '$.inventory[?(@.quantity < 3)].component'
    barber query '$.expenses[*].amount'
`
}
func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required.")
		return subcommands.ExitUsageError
	}
	return inspect(func(b *barbershop.Book) error {
		v, err := b.Ledger().Query(f.Arg(0))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}
