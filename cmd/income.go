package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type incomeCmd struct {
	source string
	amount float64
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "log a new income entry" }
func (*incomeCmd) Usage() string {
	return `ffl income -source <source> -amount <amount>

  Logs an income entry. Each of the three levies (tithe, offering, charity)
  immediately owes 10% of the amount.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.source, "source", "", "Where the money came from, e.g. \"Salary\" (required)")
	f.Float64Var(&c.amount, "amount", 0, "Amount received (required)")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.source == "" || c.amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: -source and -amount are required.")
		return subcommands.ExitUsageError
	}

	inc, err := openStore().AddIncome(c.source, c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error logging income: %v\n", err)
		return subcommands.ExitFailure
	}
	if inc.ID == "" {
		// Rejected by the store's own validation.
		fmt.Fprintln(os.Stderr, "Error: invalid income entry, nothing was logged.")
		return subcommands.ExitUsageError
	}

	fmt.Printf("Logged income %q (%s) as %s\n", inc.Source, inc.Date, inc.ID)
	return subcommands.ExitSuccess
}

type rmIncomeCmd struct{}

func (*rmIncomeCmd) Name() string     { return "rm-income" }
func (*rmIncomeCmd) Synopsis() string { return "delete an income entry" }
func (*rmIncomeCmd) Usage() string {
	return `ffl rm-income <id>

  Deletes the income entry with the given id. Use 'ffl get' to find ids.
`
}

func (*rmIncomeCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one income id is required.")
		return subcommands.ExitUsageError
	}

	if err := openStore().DeleteIncome(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting income: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted income %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
