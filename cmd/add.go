package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashcook"
	"github.com/google/subcommands"
)

type addCmd struct {
	draftFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction to the ledger" }
func (*addCmd) Usage() string {
	return `cashcook add -d <description> -a <amount> [-t give|take] [-c <category>] [-n <notes>]

  Adds a transaction dated now. Description and amount are required.

Usage Examples:
$ cashcook add -d "Groceries" -a 1250 -c Food
$ cashcook add -d "Salary" -a 50000 -t take

`
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var d cashcook.Draft
	if err := c.apply(f, &d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !d.Complete() {
		fmt.Fprintln(os.Stderr, "Error: description (-d) and amount (-a) are required")
		return subcommands.ExitUsageError
	}

	return withSession(func(s *session) subcommands.ExitStatus {
		tx, _ := s.Ledger.Add(d)
		fmt.Fprintf(out, "Added transaction %d\n", tx.ID)
		return subcommands.ExitSuccess
	})
}
