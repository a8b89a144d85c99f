package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dlemos/finance"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type suggestCmd struct {
	model string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "ask the AI assistant for saving suggestions" }
func (*suggestCmd) Usage() string {
	return `pft suggest [-model <name>]

  Sends an anonymous snapshot of the aggregates to Gemini and prints its
  saving suggestions. Requires the GEMINI_API_KEY environment variable.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Model to ask.")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := suggestPrompt(store)
	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking the assistant:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}

// suggestPrompt builds the assistant prompt from the aggregates only.
// No descriptions or ids leave the machine.
func suggestPrompt(store *finance.Store) string {
	day := finance.Today()
	sum := store.Summarize(day)

	var b strings.Builder
	fmt.Fprintln(&b, "You are a personal finance advisor. Based on the snapshot below,")
	fmt.Fprintln(&b, "give three short, concrete suggestions to save more. Answer in markdown.")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Income: %s\n", sum.Income)
	fmt.Fprintf(&b, "Expenses: %s\n", sum.Expenses)
	fmt.Fprintf(&b, "Balance: %s\n", sum.Balance)
	fmt.Fprintf(&b, "Savings rate: %s\n", sum.SavingsRate)
	fmt.Fprintf(&b, "Invested: %s\n", sum.TotalInvestments)
	fmt.Fprintf(&b, "Pending payments: %d\n", sum.PendingPayments)
	fmt.Fprintln(&b, "Expenses by category:")
	for _, c := range store.ExpensesByCategory() {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", c.Category, c.Total, c.Share)
	}
	return b.String()
}
