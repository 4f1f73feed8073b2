package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/cashcook"
	"github.com/etnz/cashcook/date"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type listCmd struct {
	search string
	from   string
	to     string
	jsonl  bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions" }
func (*listCmd) Usage() string {
	return `cashcook list [-q <text>] [-from <day>] [-to <day>] [-jsonl]

  Lists the transactions in the ledger order. -q keeps only those whose
  description contains the text, ignoring case. -from and -to keep only those
  dated within the days, both included.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Only list transactions whose description contains this text")
	f.StringVar(&c.from, "from", "", "Only list transactions dated on or after this day (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Only list transactions dated on or before this day (YYYY-MM-DD)")
	f.BoolVar(&c.jsonl, "jsonl", false, "Print one JSON transaction per line")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := date.ParseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withSession(func(s *session) subcommands.ExitStatus {
		txs := s.Ledger.Filter(c.search)
		if !r.IsOpen() {
			txs = slices.DeleteFunc(txs, func(tx cashcook.Transaction) bool { return !r.Contains(tx.Date) })
		}
		if c.jsonl {
			if err := cashcook.ExportJSONL(out, txs); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing transactions: %v\n", err)
				return subcommands.ExitFailure
			}
			return subcommands.ExitSuccess
		}
		printMarkdown(transactionsTable(txs, s.Config.Currency, time.Local))
		return subcommands.ExitSuccess
	})
}

// transactionsTable renders txs as a Markdown table.
func transactionsTable(txs []cashcook.Transaction, currency string, loc *time.Location) string {
	if len(txs) == 0 {
		return md.Italic("No transactions.") + "\n"
	}
	table := md.TableSet{
		Header: []string{"ID", "Type", "Description", "Amount", "Category", "Date"},
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(tx.ID, 10),
			string(tx.Type),
			escape(tx.Description),
			cashcook.FormatAmount(tx.Amount, currency),
			string(tx.Category),
			tx.Date.Display(loc),
		})
	}
	var buf bytes.Buffer
	md.NewMarkdown(&buf).Table(table).Build()
	return buf.String()
}

func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}

type sortCmd struct{}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "reorder the ledger" }
func (*sortCmd) Usage() string {
	return `cashcook sort date|amount|type|category

  Reorders the ledger and saves the new order, in ascending order.
  Amounts that are not numbers go last. Unknown keys sort by date.

`
}

func (*sortCmd) SetFlags(f *flag.FlagSet) {}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: sort takes exactly one key")
		return subcommands.ExitUsageError
	}
	key := cashcook.ParseSortKey(f.Arg(0))
	if string(key) != strings.ToLower(f.Arg(0)) {
		fmt.Fprintf(os.Stderr, "Warning: unknown sort key %q, sorting by %s\n", f.Arg(0), key)
	}
	return withSession(func(s *session) subcommands.ExitStatus {
		s.Ledger.Sort(key)
		fmt.Fprintf(out, "Sorted %d transactions by %s\n", s.Ledger.Len(), key)
		return subcommands.ExitSuccess
	})
}
