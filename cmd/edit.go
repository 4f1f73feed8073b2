package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editCmd struct {
	draftFlags
	id int64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the fields of a transaction" }
func (*editCmd) Usage() string {
	return `cashcook edit -id <id> [-d <description>] [-a <amount>] [-t give|take] [-c <category>] [-n <notes>]

  Changes the given fields of a transaction and keeps the others.
  Its id, date and position never change. Use -c "" to unset the category.

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.draftFlags.SetFlags(f)
	f.Int64Var(&c.id, "id", 0, "Id of the transaction to edit")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	return withSession(func(s *session) subcommands.ExitStatus {
		tx, ok := s.Ledger.Get(c.id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no transaction with id %d\n", c.id)
			return subcommands.ExitFailure
		}
		d := tx.Draft()
		if err := c.apply(f, &d); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if _, ok := s.Ledger.Update(c.id, d); !ok {
			fmt.Fprintln(os.Stderr, "Error: description and amount cannot be empty")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(out, "Updated transaction %d\n", c.id)
		return subcommands.ExitSuccess
	})
}
