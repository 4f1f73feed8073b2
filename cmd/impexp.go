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

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a JSONL file" }
func (*importCmd) Usage() string {
	return `cashcook import [-i <file>]

  Appends the transactions read one per line from the file, or the standard
  input. Transactions already in the ledger, or without description or
  amount, are skipped. Malformed lines are reported and skipped.

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input file (default standard input)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openInput(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	txs, err := cashcook.ImportJSONL(r)
	if err != nil && txs == nil {
		fmt.Fprintf(os.Stderr, "Error reading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "Warning: skipped %s\n", line)
		}
	}

	return withSession(func(s *session) subcommands.ExitStatus {
		n := s.Ledger.Import(txs...)
		fmt.Fprintf(out, "Imported %d of %d transactions\n", n, len(txs))
		return subcommands.ExitSuccess
	})
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions to a JSONL file" }
func (*exportCmd) Usage() string {
	return `cashcook export [-o <file>]

  Writes one transaction per line, in the ledger order, to the file or the
  standard output.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "-", "Output file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(func(s *session) subcommands.ExitStatus {
		w, err := openOutput(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := cashcook.ExportJSONL(w, s.Ledger.Transactions()); err != nil {
			w.Close()
			fmt.Fprintf(os.Stderr, "Error exporting transactions: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := w.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting transactions: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}
