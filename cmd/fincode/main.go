// Command fincode is a small command line client for the fincode API.
//
// The API key and environment are read from FINCODE_* variables, optionally
// from a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/joshuawatkins04/fincode-go"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitUsage      = 2
	ExitConfig     = 3
	ExitValidation = 4
	ExitProvider   = 5
	ExitTransport  = 6
	ExitInterrupt  = 130
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd(defaultEnv())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}
	if isCobraUsageError(err) {
		return ExitUsage
	}

	var (
		cfgErr *fincode.ConfigurationError
		valErr *fincode.ValidationError
		ferr   fincode.Error
	)
	switch {
	case errors.As(err, &cfgErr):
		return ExitConfig
	case errors.As(err, &valErr):
		return ExitValidation
	case errors.As(err, &ferr):
		if ferr.Kind() == fincode.KindProvider {
			return ExitProvider
		}
		return ExitTransport
	default:
		return ExitGeneral
	}
}

// Cobra doesn't expose typed errors, so usage errors are recognised by
// message.
var cobraUsageErrorPatterns = []string{
	"required flag",
	"unknown flag",
	"unknown shorthand",
	"flag needs an argument",
	"invalid argument",
	"unknown command",
	"accepts ",
	"requires at least",
}

func isCobraUsageError(err error) bool {
	msg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
