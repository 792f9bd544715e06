// Package cmd implements the CLI application to keep the barbershop records.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/barbershop"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&packageAddCmd{}, "packages")
	c.Register(&packageRemoveCmd{}, "packages")
	c.Register(&packagesCmd{}, "packages")
	c.Register(&checkoutCmd{}, "packages")

	c.Register(&stockAddCmd{}, "inventory")
	c.Register(&stockRemoveCmd{}, "inventory")
	c.Register(&stockAdjustCmd{}, "inventory")
	c.Register(&stockCmd{}, "inventory")

	c.Register(&customerAddCmd{}, "customers")
	c.Register(&customerRemoveCmd{}, "customers")
	c.Register(&visitCmd{}, "customers")
	c.Register(&customersCmd{}, "customers")

	c.Register(&earningAddCmd{}, "earnings")
	c.Register(&earningRemoveCmd{}, "earnings")
	c.Register(&earningClearCmd{}, "earnings")
	c.Register(&earningsCmd{}, "earnings")

	c.Register(&monthlyAddCmd{}, "monthly earnings")
	c.Register(&monthlyRemoveCmd{}, "monthly earnings")
	c.Register(&monthlyCmd{}, "monthly earnings")

	c.Register(&expenseAddCmd{}, "expenses")
	c.Register(&expenseRemoveCmd{}, "expenses")
	c.Register(&expensesCmd{}, "expenses")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Config is the application configuration. Environment variables provide the
// defaults, global flags override them.
// The same variables are set for extensions, see RunExtension.
type Config struct {
	LedgerFile string `env:"BARBER_LEDGER_FILE" envDefault:"barbershop.json"`
	Currency   string `env:"BARBER_CURRENCY" envDefault:"USD"`
	Verbose    bool   `env:"BARBER_VERBOSE"`
}

var cfg Config

// Setup reads the configuration from the environment and declares the global flags in f.
func Setup(f *flag.FlagSet) error {
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	f.StringVar(&cfg.LedgerFile, "ledger-file", cfg.LedgerFile, "Path to the ledger file (JSON), $BARBER_LEDGER_FILE")
	f.StringVar(&cfg.Currency, "currency", cfg.Currency, "Currency used to display amounts, $BARBER_CURRENCY")
	f.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose logs, $BARBER_VERBOSE")
	return nil
}

// openBook loads the ledger file into a new Book.
func openBook() (*barbershop.Book, error) {
	if err := barbershop.ValidateCurrency(cfg.Currency); err != nil {
		return nil, err
	}
	ledger, err := barbershop.LoadLedger(cfg.LedgerFile)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		log.Printf("loaded ledger %q", cfg.LedgerFile)
	}
	return barbershop.NewBook(ledger), nil
}

// update runs a single action on the ledger and saves it.
// Nothing is saved if the action fails: a rejected action changes nothing.
func update(action func(b *barbershop.Book) error) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := action(b); err != nil {
		return report(err)
	}
	if err := barbershop.SaveLedger(cfg.LedgerFile, b.Ledger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if cfg.Verbose {
		log.Printf("saved ledger %q", cfg.LedgerFile)
	}
	return subcommands.ExitSuccess
}

// inspect runs a read-only action on the ledger. The file is never written.
func inspect(action func(b *barbershop.Book) error) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := action(b); err != nil {
		return report(err)
	}
	return subcommands.ExitSuccess
}

// report prints an action error.
func report(err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, barbershop.ErrValidation):
		fmt.Fprintf(os.Stderr, "Input error: %v\n", err)
	case errors.Is(err, barbershop.ErrNotFound), errors.Is(err, barbershop.ErrOutOfRange):
		fmt.Fprintf(os.Stderr, "Not found: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}
