package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dlemos/finance/renderer"
	"github.com/google/subcommands"
)

type billsCmd struct {
	date string
}

func (*billsCmd) Name() string     { return "bills" }
func (*billsCmd) Synopsis() string { return "list payments with their status" }
func (*billsCmd) Usage() string {
	return `pft bills [-d <date>]

  Lists payments with their status derived for the given day, today by
  default.
`
}

func (c *billsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference day for the status (YYYY-MM-DD). Defaults to today.")
}

func (c *billsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.Payments(store.Payments(), day))
	return subcommands.ExitSuccess
}
