package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fireplan/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion for the subcommands and the plan file flag. This
	// returns immediately unless invoked by the completion machinery.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"project":    {Flags: map[string]complete.Predictor{"value": predict.Nothing, "d": predict.Nothing, "theme": predict.Set{"light", "dark"}}},
			"split":      {},
			"debt":       {Flags: map[string]complete.Predictor{"debts": predict.Files("*.json")}},
			"firenumber": {},
			"rate":       {},
			"topic":      {},
			"assist":     {},
		},
		Flags: map[string]complete.Predictor{
			"plan-file": predict.Files("*.json"),
		},
	}
	completer.Complete("fireplan")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
