package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dlemos/finance/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	months int
	date   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show monthly income and expenses" }
func (*historyCmd) Usage() string {
	return `pft history [-n <months>] [-d <date>]

  Shows income, expenses and balance per month over the trailing window.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "n", 6, "Number of trailing months.")
	f.StringVar(&c.date, "d", "", "Last day of the window (YYYY-MM-DD). Defaults to today.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n must be at least 1.")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.History(store.MonthlyHistory(day, c.months)))
	return subcommands.ExitSuccess
}
