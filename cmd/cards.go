package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dlemos/finance/renderer"
	"github.com/google/subcommands"
)

type cardsCmd struct {
	add string
}

func (*cardsCmd) Name() string     { return "cards" }
func (*cardsCmd) Synopsis() string { return "list cards, optionally creating one" }
func (*cardsCmd) Usage() string {
	return `pft cards [-add <name>]

  Lists cards. With -add, creates the card first unless one with the
  same name already exists, compared ignoring case.
`
}

func (c *cardsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create a card with this name.")
}

func (c *cardsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.add != "" {
		card, err := store.CreateCardIfNotExists(newID(), c.add)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Card %q (%s)\n", card.Name, card.ID)
	}

	printMarkdown(renderer.Cards(store.Cards()))
	return subcommands.ExitSuccess
}
