package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type contributeCmd struct {
	amount string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "add a contribution to a goal" }
func (*contributeCmd) Usage() string {
	return `pft contribute -a <amount> <goal id>

  Adds the amount to the goal's saved total.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Contribution amount.")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one goal id is required.")
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

	goal, ok := store.Goal(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no goal with id %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	goal = goal.Contributed(amount)
	if !store.UpdateGoal(goal) {
		fmt.Fprintf(os.Stderr, "Error: goal %q disappeared.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	if goal.Completed() {
		fmt.Printf("Goal %q reached! %s of %s\n", goal.Name, goal.CurrentAmount, goal.TargetAmount)
	} else {
		fmt.Printf("Goal %q: %s of %s (%s)\n", goal.Name, goal.CurrentAmount, goal.TargetAmount, goal.Progress())
	}
	return subcommands.ExitSuccess
}
