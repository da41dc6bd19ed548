package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fundflow/fundflow/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI surface for shell completion. Install with:
//
//	COMP_INSTALL=1 ffl
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"file": predict.Files("*.json"),
	},
	Sub: map[string]*complete.Command{
		"income":     {Flags: map[string]complete.Predictor{"source": predict.Nothing, "amount": predict.Nothing}},
		"rm-income":  {},
		"bucket":     {Flags: map[string]complete.Predictor{"name": predict.Nothing}},
		"allocate":   {Flags: map[string]complete.Predictor{"id": predict.Nothing, "amount": predict.Nothing}},
		"rm-bucket":  {},
		"expense":    {Flags: map[string]complete.Predictor{"desc": predict.Nothing, "amount": predict.Nothing}},
		"rm-expense": {},
		"clear":      {Flags: map[string]complete.Predictor{"levy": predict.Set{"tithe", "offering", "charity"}}},
		"summary":    {},
		"report":     {Flags: map[string]complete.Predictor{"o": predict.Files("*.md")}},
		"get":        {},
		"watch":      {},
		"export":     {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
		"import":     {Args: predict.Files("*.json")},
		"topic":      {Args: predict.Set{"manual", "levies", "data-format"}},
	},
}

func main() {
	completion.Complete("ffl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
