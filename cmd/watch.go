package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fundflow/fundflow"
	"github.com/fundflow/fundflow/renderer"
	"github.com/google/subcommands"
)

type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "re-render the summary on every document change" }
func (*watchCmd) Usage() string {
	return `ffl watch

  Subscribes to document changes and re-renders the summary each time the
  document is written, including writes made by another process. Interrupt
  (Ctrl-C) to stop.
`
}

func (*watchCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	unsubscribe := store.Subscribe(func(doc fundflow.Document) {
		sum := fundflow.Summarize(doc)
		printMarkdown(renderer.SummaryMarkdown(&sum))
		fmt.Println("Watching for changes... (Ctrl-C to stop)")
	})
	defer unsubscribe()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	select {
	case <-interrupt:
	case <-ctx.Done():
	}
	return subcommands.ExitSuccess
}
