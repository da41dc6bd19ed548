package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type expenseCmd struct {
	desc   string
	amount float64
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "log an expense" }
func (*expenseCmd) Usage() string {
	return `ffl expense -desc <description> -amount <amount>

  Logs an expense entry, subtracted from the available remainder.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "", "What the money was spent on (required)")
	f.Float64Var(&c.amount, "amount", 0, "Amount spent (required)")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.desc == "" || c.amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: -desc and -amount are required.")
		return subcommands.ExitUsageError
	}

	e, err := openStore().AddExpense(c.desc, c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error logging expense: %v\n", err)
		return subcommands.ExitFailure
	}
	if e.ID == "" {
		fmt.Fprintln(os.Stderr, "Error: invalid expense entry, nothing was logged.")
		return subcommands.ExitUsageError
	}

	fmt.Printf("Logged expense %q (%s) as %s\n", e.Description, e.Date, e.ID)
	return subcommands.ExitSuccess
}

type rmExpenseCmd struct{}

func (*rmExpenseCmd) Name() string     { return "rm-expense" }
func (*rmExpenseCmd) Synopsis() string { return "delete an expense entry" }
func (*rmExpenseCmd) Usage() string {
	return `ffl rm-expense <id>

  Deletes the expense entry with the given id.
`
}

func (*rmExpenseCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one expense id is required.")
		return subcommands.ExitUsageError
	}

	if err := openStore().DeleteExpense(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting expense: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted expense %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
