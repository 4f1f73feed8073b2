package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cashcook"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the saved ledger into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `cashcook fmt

  Validates the saved ledger and writes it back in its canonical form.
  An unreadable ledger is reported and left untouched.

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(func(s *session) subcommands.ExitStatus {
		text, ok, err := s.store.Load(cashcook.Key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		if ok {
			// Open started empty if the ledger is unreadable: saving now would wipe it.
			if _, err := cashcook.DecodeTransactions(strings.NewReader(text)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid ledger: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		if err := s.Ledger.Save(); err != nil {
			return subcommands.ExitFailure // reported by Close
		}
		fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d transactions.\n", s.Ledger.Len())
		return subcommands.ExitSuccess
	})
}
