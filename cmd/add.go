package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dlemos/finance"
	"github.com/google/subcommands"
)

type addCmd struct {
	typ      string
	amount   string
	category string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `pft add -t <income|expense> -a <amount> [-c <category>] [-d <date>] <description>

  Records a transaction. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "expense", "Transaction type: income or expense.")
	f.StringVar(&c.amount, "a", "", "Amount, always positive; the type carries the sign.")
	f.StringVar(&c.category, "c", "Outros", "Category for the expense breakdown.")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.TrimSpace(strings.Join(f.Args(), " "))
	if description == "" {
		fmt.Fprintln(os.Stderr, "Error: a description is required.")
		return subcommands.ExitUsageError
	}

	typ, err := finance.ParseTransactionType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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

	tx := finance.NewTransaction(newID(), description, amount, day, c.category, typ)
	if err := store.AddTransaction(tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s on %s (%s)\n", typ, amount, day, tx.ID)
	return subcommands.ExitSuccess
}
