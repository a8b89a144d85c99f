package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type revalueCmd struct {
	amount string
}

func (*revalueCmd) Name() string     { return "revalue" }
func (*revalueCmd) Synopsis() string { return "mark an investment to its current value" }
func (*revalueCmd) Usage() string {
	return `pft revalue -a <current value> <investment id>

  Updates an investment's current value. Growth is recomputed from the
  invested principal; it is never set directly.
`
}

func (c *revalueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Current market value.")
}

func (c *revalueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one investment id is required.")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	inv, ok := store.UpdateInvestmentValue(f.Arg(0), amount)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no investment with id %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	fmt.Printf("Revalued %q to %s (%s)\n", inv.Name, inv.CurrentValue, inv.Growth.SignedString())
	return subcommands.ExitSuccess
}
