package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	kind string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record by id" }
func (*rmCmd) Usage() string {
	return `pft rm [-k <tx|investment|goal|payment|card>] <id>

  Deletes a record. Deleting an unknown id is a no-op.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "tx", "Kind of record to delete: tx, investment, goal, payment or card.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one id is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch c.kind {
	case "tx":
		store.DeleteTransaction(id)
	case "investment":
		store.DeleteInvestment(id)
	case "goal":
		store.DeleteGoal(id)
	case "payment":
		store.DeletePayment(id)
	case "card":
		store.DeleteCard(id)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q.\n", c.kind)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Deleted %s %s (if it existed)\n", c.kind, id)
	return subcommands.ExitSuccess
}
