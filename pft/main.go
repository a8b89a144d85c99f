package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/dlemos/finance"
	"github.com/dlemos/finance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It exits the
// process when invoked in a completion context, so it must run before
// flag parsing.
func completion() {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["add"].Flags = map[string]complete.Predictor{
		"t": predict.Set{"income", "expense"},
	}
	sub["invest"].Flags = map[string]complete.Predictor{
		"t": predict.Set(finance.InvestmentTypes),
	}
	sub["rm"].Flags = map[string]complete.Predictor{
		"k": predict.Set{"tx", "investment", "goal", "payment", "card"},
	}

	app := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"store-dir": predict.Dirs("*"),
		},
	}
	app.Complete("pft")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
