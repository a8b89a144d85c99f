package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "toggle a payment's paid flag" }
func (*payCmd) Usage() string {
	return `pft pay <payment id>

  Marks a payment as paid, or back as unpaid if it already was.
`
}

func (*payCmd) SetFlags(f *flag.FlagSet) {}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one payment id is required.")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	payment, ok := store.TogglePaymentPaid(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no payment with id %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	state := "unpaid"
	if payment.IsPaid {
		state = "paid"
	}
	fmt.Printf("Payment %q is now %s\n", payment.Description, state)
	return subcommands.ExitSuccess
}
