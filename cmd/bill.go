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

type billCmd struct {
	amount       string
	dueDay       int
	recurring    bool
	card         string
	installments int
	current      int
}

func (*billCmd) Name() string     { return "bill" }
func (*billCmd) Synopsis() string { return "record a payment to track" }
func (*billCmd) Usage() string {
	return `pft bill -a <amount> -due <day> [-r] [-card <name>] [-n <total> [-i <current>]] <description>

  Records a bill due on a fixed day of the month. With -card the card is
  created on first use; card names are matched ignoring case. With -n the
  bill is one slice of an installment plan.
`
}

func (c *billCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount due.")
	f.IntVar(&c.dueDay, "due", 0, "Day of the month the bill is due (1..31).")
	f.BoolVar(&c.recurring, "r", false, "The bill repeats every month.")
	f.StringVar(&c.card, "card", "", "Card the bill is charged on.")
	f.IntVar(&c.installments, "n", 0, "Total installments of the plan.")
	f.IntVar(&c.current, "i", 1, "Current installment within the plan.")
}

func (c *billCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.TrimSpace(strings.Join(f.Args(), " "))
	if description == "" {
		fmt.Fprintln(os.Stderr, "Error: a description is required.")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := finance.ValidateDueDay(c.dueDay); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.installments > 0 {
		if err := finance.ValidateInstallments(c.current, c.installments); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cardName := strings.TrimSpace(c.card)
	if cardName != "" {
		card, err := store.CreateCardIfNotExists(newID(), cardName)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		// keep the canonical spelling of an existing card.
		cardName = card.Name
	}

	payment := finance.Payment{
		ID:          newID(),
		Description: description,
		Amount:      amount,
		DueDay:      c.dueDay,
		IsRecurring: c.recurring,
		CreatedAt:   time.Now().UTC(),
		CardName:    cardName,
	}
	if c.installments > 0 {
		payment.IsInstallment = true
		payment.TotalInstallments = c.installments
		payment.CurrentInstallment = c.current
	}

	if err := store.AddPayment(payment); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded bill %q of %s due on day %d (%s)\n", description, amount, c.dueDay, payment.ID)
	return subcommands.ExitSuccess
}
