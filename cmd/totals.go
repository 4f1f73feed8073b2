package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/etnz/cashcook"
	"github.com/etnz/cashcook/renderer"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type totalsCmd struct {
	byCategory bool
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display total give, total take and balance" }
func (*totalsCmd) Usage() string {
	return `cashcook totals [-by-category]

  Sums the amounts by type and converts the totals to KD and USD.

`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.byCategory, "by-category", false, "Also break the totals down by category")
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(func(s *session) subcommands.ExitStatus {
		rates, err := s.Config.ConversionRates()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		r := renderer.NewReport(s.Ledger.Transactions(), renderer.Options{Currency: s.Config.Currency, Rates: rates})
		printMarkdown(totalsTable(r, s.Ledger, c.byCategory))
		return subcommands.ExitSuccess
	})
}

func totalsTable(r *renderer.Report, l *cashcook.Ledger, byCategory bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	summary := md.TableSet{
		Header:    []string{"Totals", r.Currency},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	}
	for _, kv := range r.Summary() {
		summary.Rows = append(summary.Rows, []string{kv[0], kv[1]})
	}
	doc.Table(summary)

	if byCategory {
		doc.PlainText("")
		table := md.TableSet{
			Header:    []string{"Category", "Give", "Take", "Balance"},
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		}
		totals := l.ByCategory()
		for _, c := range slices.Sorted(maps.Keys(totals)) {
			t := totals[c]
			name := string(c)
			if c == cashcook.Unset {
				name = md.Italic("none")
			}
			table.Rows = append(table.Rows, []string{name, r.Money(t.Give), r.Money(t.Take), r.Money(t.Balance())})
		}
		doc.Table(table)
	}
	return doc.String()
}
