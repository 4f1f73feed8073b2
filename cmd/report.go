package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashcook/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type reportCmd struct {
	format string
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate a transactions report" }
func (*reportCmd) Usage() string {
	return `cashcook report [-format pdf|html|md|xlsx|csv] [-o <file>]

  Renders every transaction and the totals. The report is written to
  CashCook_Transactions_Report.<ext> unless -o is given; -o - writes to the
  standard output.

Usage Examples:
$ cashcook report
$ cashcook report -format html -o may.html

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Report format (default report.format)")
	f.StringVar(&c.output, "o", "", "Output file")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(func(s *session) subcommands.ExitStatus {
		name := c.format
		if name == "" {
			name = s.Config.Report.Format
		}
		format, err := renderer.ParseFormat(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		rates, err := s.Config.ConversionRates()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

		output := c.output
		if output == "" {
			output = format.Filename()
		}
		w, err := openOutput(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating report: %v\n", err)
			return subcommands.ExitFailure
		}
		r := renderer.NewReport(s.Ledger.Transactions(), renderer.Options{Currency: s.Config.Currency, Rates: rates})
		if err := renderer.Write(format, w, r); err != nil {
			w.Close()
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := w.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		s.Logger.Info("report generated", zap.String("file", output), zap.Int("transactions", len(r.Rows)))
		if output != "-" {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", output)
		}
		return subcommands.ExitSuccess
	})
}
