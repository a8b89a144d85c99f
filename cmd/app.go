// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dlemos/finance"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Commands lists every subcommand known to the CLI, in help order.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&txCmd{},
	&rmCmd{},
	&investCmd{},
	&investmentsCmd{},
	&revalueCmd{},
	&goalCmd{},
	&goalsCmd{},
	&contributeCmd{},
	&billCmd{},
	&billsCmd{},
	&payCmd{},
	&cardsCmd{},
	&summaryCmd{},
	&historyCmd{},
	&topicCmd{},
	&suggestCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store-dir", defaultStoreDir(), "Path to the finance store directory")

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finance"
	}
	return filepath.Join(home, ".finance")
}

// OpenStore opens the finance store from the app store directory.
func OpenStore() (*finance.Store, error) {
	return finance.Open(*storeDir, finance.NewLogger())
}

// newID returns a fresh record id. Ids are opaque to the store; the CLI
// always mints them here.
func newID() string { return uuid.NewString() }

// parseAmount parses a positive monetary amount from a flag value.
func parseAmount(s string) (finance.Money, error) {
	if s == "" {
		return finance.M(0), fmt.Errorf("missing amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return finance.M(0), fmt.Errorf("invalid amount %q: %w", s, err)
	}
	m := finance.M(d)
	if err := finance.ValidateAmount(m); err != nil {
		return finance.M(0), err
	}
	return m, nil
}

// parseOptionalAmount is like parseAmount but accepts zero and an
// empty value.
func parseOptionalAmount(s string) (finance.Money, error) {
	if s == "" {
		return finance.M(0), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return finance.M(0), fmt.Errorf("invalid amount %q: %w", s, err)
	}
	m := finance.M(d)
	if m.IsNegative() {
		return finance.M(0), fmt.Errorf("amount must not be negative, got %s", m)
	}
	return m, nil
}

// parseDay parses a date flag, defaulting to today when empty.
func parseDay(s string) (finance.Date, error) {
	if s == "" {
		return finance.Today(), nil
	}
	return finance.ParseDate(s)
}
