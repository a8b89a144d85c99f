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

type investCmd struct {
	typ    string
	amount string
	date   string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record a new investment" }
func (*investCmd) Usage() string {
	return `pft invest -a <amount> [-t <type>] [-d <date>] <name>

  Records an investment. Its current value starts at the invested amount.
  Types: ` + strings.Join(finance.InvestmentTypes, ", ") + `
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "Outro", "Instrument type.")
	f.StringVar(&c.amount, "a", "", "Invested amount.")
	f.StringVar(&c.date, "d", "", "Initial date (YYYY-MM-DD). Defaults to today.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: a name is required.")
		return subcommands.ExitUsageError
	}
	if err := finance.ValidateInvestmentType(c.typ); err != nil {
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

	inv := finance.NewInvestment(newID(), name, c.typ, amount, day)
	if err := store.AddInvestment(inv); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded investment %q of %s (%s)\n", name, amount, inv.ID)
	return subcommands.ExitSuccess
}
