package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type bucketCmd struct {
	name string
}

func (*bucketCmd) Name() string     { return "bucket" }
func (*bucketCmd) Synopsis() string { return "create a new savings bucket" }
func (*bucketCmd) Usage() string {
	return `ffl bucket -name <name>

  Creates a named savings bucket with a zero balance. Money moves in and out
  with 'ffl allocate'.
`
}

func (c *bucketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Bucket name, e.g. \"Car\" (required)")
}

func (c *bucketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	bucket, err := openStore().AddContainer(c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating bucket: %v\n", err)
		return subcommands.ExitFailure
	}
	if bucket.ID == "" {
		fmt.Fprintln(os.Stderr, "Error: invalid bucket name, nothing was created.")
		return subcommands.ExitUsageError
	}

	fmt.Printf("Created bucket %q as %s\n", bucket.Name, bucket.ID)
	return subcommands.ExitSuccess
}

type allocateCmd struct {
	id     string
	amount float64
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "move money into (or out of) a savings bucket" }
func (*allocateCmd) Usage() string {
	return `ffl allocate -id <bucket-id> -amount <amount>

  Adds the amount to the bucket's balance. A negative amount withdraws.
  Allocated money is subtracted from the available remainder.
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Bucket id (required)")
	f.Float64Var(&c.amount, "amount", 0, "Amount to add; negative to withdraw (required)")
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and -amount are required.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	doc := store.Get()
	if doc.FindContainer(c.id) == nil {
		fmt.Fprintf(os.Stderr, "Error: no bucket with id %q.\n", c.id)
		return subcommands.ExitFailure
	}
	if err := store.Allocate(c.id, c.amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error allocating to bucket: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Allocated %.2f to bucket %s\n", c.amount, c.id)
	return subcommands.ExitSuccess
}

type rmBucketCmd struct{}

func (*rmBucketCmd) Name() string     { return "rm-bucket" }
func (*rmBucketCmd) Synopsis() string { return "delete a savings bucket" }
func (*rmBucketCmd) Usage() string {
	return `ffl rm-bucket <id>

  Deletes the bucket with the given id. Its balance returns to the available
  remainder.
`
}

func (*rmBucketCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmBucketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one bucket id is required.")
		return subcommands.ExitUsageError
	}

	if err := openStore().DeleteContainer(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting bucket: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted bucket %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
