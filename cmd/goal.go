package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dlemos/finance"
	"github.com/google/subcommands"
)

type goalCmd struct {
	target  string
	initial string
	monthly string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "create a savings goal" }
func (*goalCmd) Usage() string {
	return `pft goal -target <amount> [-initial <amount>] [-monthly <amount>] <name>

  Creates a savings goal. The monthly contribution is used to estimate
  how long the goal still needs.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "", "Target amount.")
	f.StringVar(&c.initial, "initial", "0", "Amount already saved.")
	f.StringVar(&c.monthly, "monthly", "0", "Planned monthly contribution.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: a name is required.")
		return subcommands.ExitUsageError
	}
	target, err := parseAmount(c.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	initial, err := parseOptionalAmount(c.initial)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	monthly, err := parseOptionalAmount(c.monthly)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	goal := finance.NewGoal(newID(), name, target, initial, monthly, time.Now().UTC())
	if err := store.AddGoal(goal); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created goal %q: %s of %s (%s)\n", name, initial, target, goal.ID)
	return subcommands.ExitSuccess
}
