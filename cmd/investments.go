package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dlemos/finance/renderer"
	"github.com/google/subcommands"
)

type investmentsCmd struct{}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "list the investment portfolio" }
func (*investmentsCmd) Usage() string {
	return `pft investments

  Lists every investment with its current value and growth.
`
}

func (*investmentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *investmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Investments(store.Investments(), store.TotalInvestments(), store.CurrentPortfolioValue()))
	return subcommands.ExitSuccess
}
