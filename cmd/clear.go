package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundflow/fundflow"
	"github.com/fundflow/fundflow/renderer"
	"github.com/google/subcommands"
)

type clearCmd struct {
	levy string
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "mark the outstanding amount of a levy as settled" }
func (*clearCmd) Usage() string {
	return `ffl clear -levy <tithe|offering|charity>

  Clears the full outstanding amount of the levy. The outstanding figure
  drops to zero; the mandatory-deductions total is unchanged (the money was
  owed and is now paid, not returned).
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.levy, "levy", "", "Levy to clear: tithe, offering or charity (required)")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	levy, err := fundflow.ParseLevy(c.levy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	out := store.Summary().Outstanding(levy)
	if out <= 0 {
		fmt.Printf("Nothing outstanding for %s.\n", levy)
		return subcommands.ExitSuccess
	}

	if err := store.ClearLevy(levy); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing %s: %v\n", levy, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cleared %s of %s\n", renderer.Currency(out), levy)
	return subcommands.ExitSuccess
}
