package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fundflow/fundflow"
	"github.com/google/subcommands"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the document as pretty-printed JSON" }
func (*exportCmd) Usage() string {
	return `ffl export [-o <file>]

  Writes the full migrated document as pretty-printed JSON. The default file
  name carries the current date, e.g. fundflow-2026-08-31.json.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Destination file (defaults to a dated name in the current directory)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Export()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting document: %v\n", err)
		return subcommands.ExitFailure
	}

	name := c.outputFile
	if name == "" {
		name = fundflow.ExportFileName(time.Now())
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export to %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported document to %s\n", name)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the document with a previously exported one" }
func (*importCmd) Usage() string {
	return `ffl import <file>

  Replaces the entire stored document with the one in the given file. A
  malformed file is rejected and the current document is left untouched.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file to import is required.")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	if err := openStore().Import(data); err != nil {
		fmt.Fprintf(os.Stderr, "Import failed, document unchanged: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported document from %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
