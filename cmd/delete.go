package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int64
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `cashcook delete -id <id>

  Removes a transaction from the ledger.

`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the transaction to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	return withSession(func(s *session) subcommands.ExitStatus {
		if _, ok := s.Ledger.Get(c.id); !ok {
			fmt.Fprintf(os.Stderr, "Warning: no transaction with id %d\n", c.id)
		}
		s.Ledger.Delete(c.id)
		fmt.Fprintf(out, "%d transactions left\n", s.Ledger.Len())
		return subcommands.ExitSuccess
	})
}

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all transactions" }
func (*clearCmd) Usage() string {
	return `cashcook clear [-f]

  Removes every transaction from the ledger, after confirmation.

`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Do not ask for confirmation")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(func(s *session) subcommands.ExitStatus {
		if !c.force && !confirm(fmt.Sprintf("Delete all %d transactions?", s.Ledger.Len())) {
			fmt.Fprintln(out, "Cancelled.")
			return subcommands.ExitSuccess
		}
		s.Ledger.Clear()
		fmt.Fprintln(out, "All transactions deleted.")
		return subcommands.ExitSuccess
	})
}

// confirm asks a yes/no question on the command streams. No is the default.
func confirm(question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
