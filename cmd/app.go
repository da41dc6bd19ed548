// Package cmd implements the CLI application to manage a fundflow document.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/fundflow/fundflow"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "ledger")
	c.Register(&rmIncomeCmd{}, "ledger")
	c.Register(&bucketCmd{}, "ledger")
	c.Register(&allocateCmd{}, "ledger")
	c.Register(&rmBucketCmd{}, "ledger")
	c.Register(&expenseCmd{}, "ledger")
	c.Register(&rmExpenseCmd{}, "ledger")
	c.Register(&clearCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&getCmd{}, "reports")
	c.Register(&watchCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "docs")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var documentFile = flag.String("file", fundflow.DefaultDocumentFile, "Path to the fundflow document (JSON)")

// openStore is the central function to open the document store.
func openStore() *fundflow.Store {
	return fundflow.NewStore(fundflow.NewFileBackend(*documentFile))
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
