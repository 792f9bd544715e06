package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvLedgerFile = "BARBER_LEDGER_FILE"
	EnvCurrency   = "BARBER_CURRENCY"
	EnvVerbose    = "BARBER_VERBOSE"
)

// RunExtension attempts to find and execute an external barber-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The global configuration is passed down as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "barber-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		if cfg.Verbose {
			log.Printf("external command %q not found in PATH: %v", name, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+cfg.LedgerFile,
		EnvCurrency+"="+cfg.Currency,
		EnvVerbose+"="+strconv.FormatBool(cfg.Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
