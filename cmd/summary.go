package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundflow/fundflow/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the derived financial summary" }
func (*summaryCmd) Usage() string {
	return `ffl summary

  Displays total income, the owed and outstanding levies, allocated savings,
  expenses, and the available remainder.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sum := openStore().Summary()
	printMarkdown(renderer.SummaryMarkdown(&sum))
	return subcommands.ExitSuccess
}

type reportCmd struct {
	outputFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate the full financial report" }
func (*reportCmd) Usage() string {
	return `ffl report [-o <file>]

  Generates the multi-section financial report: summary, income breakdown,
  savings buckets and expense history. Without -o the report is rendered to
  the terminal; with -o the markdown is written to the given file.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write the markdown report to this file instead of the terminal")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	doc := store.Get()
	sum := store.Summary()

	md := renderer.ReportMarkdown(&doc, &sum)

	if c.outputFile == "" {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	if err := os.WriteFile(c.outputFile, []byte(md), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report to %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote report to %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
