// Package renderer turns a snapshot of the ledger into report documents.
//
// A Report is built once from the transactions and then written in any of the
// supported formats: Markdown, HTML, PDF, XLSX and CSV.
package renderer

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/etnz/cashcook"
	"github.com/etnz/cashcook/date"
	"github.com/shopspring/decimal"
)

// Title is the title of every report.
const Title = "CashCook Transactions Report"

// ErrUnknownFormat is returned by Write for unsupported formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Headers are the column titles of the transactions table.
var Headers = []string{"Type", "Description", "Amount", "Category", "Notes", "Date"}

// Options controls how a report is built.
type Options struct {
	Currency    string         // ledger currency code, e.g. "INR"
	Rates       cashcook.Rates // conversion divisors for the totals
	GeneratedAt time.Time      // defaults to now
	Location    *time.Location // display time zone, defaults to local time
}

// Row is one transaction as displayed in a report.
type Row struct {
	Type        string
	Description string
	Amount      string // formatted with the currency
	Category    string
	Notes       string
	Date        string // localized display

	Value decimal.Decimal // parsed amount, zero if not Valid
	Valid bool
}

// Cells returns the row cells in the order of Headers.
func (r Row) Cells() []string {
	return []string{r.Type, r.Description, r.Amount, r.Category, r.Notes, r.Date}
}

// Report is a read-only snapshot of the ledger ready to be rendered.
type Report struct {
	Title       string
	GeneratedAt string
	Currency    string
	Rows        []Row

	Totals cashcook.Totals
	Give   cashcook.Converted
	Take   cashcook.Converted
}

// NewReport builds the report of txs, in the given order.
func NewReport(txs []cashcook.Transaction, opts Options) *Report {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	r := &Report{
		Title:       Title,
		GeneratedAt: opts.GeneratedAt.In(loc).Format(date.DisplayLayout),
		Currency:    opts.Currency,
		Rows:        make([]Row, 0, len(txs)),
		Totals:      cashcook.Sum(txs),
	}
	r.Give, r.Take = r.Totals.Convert(opts.Rates)

	for _, tx := range txs {
		v, err := tx.Amount.Decimal()
		r.Rows = append(r.Rows, Row{
			Type:        strings.ToUpper(string(tx.Type)),
			Description: tx.Description,
			Amount:      cashcook.FormatAmount(tx.Amount, opts.Currency),
			Category:    string(tx.Category),
			Notes:       tx.Notes,
			Date:        tx.Date.Display(loc),
			Value:       v,
			Valid:       err == nil,
		})
	}
	return r
}

// Money formats v in the report currency.
func (r *Report) Money(v decimal.Decimal) string {
	return cashcook.M(v, r.Currency).String()
}

// Summary returns the totals as label/value pairs.
func (r *Report) Summary() [][2]string {
	res := [][2]string{
		{"Total Give", r.Money(r.Totals.Give)},
		{"Total Take", r.Money(r.Totals.Take)},
		{"Balance", r.Money(r.Totals.Balance())},
		{"Give (KD)", r.Give.KD.StringFixed(2)},
		{"Take (KD)", r.Take.KD.StringFixed(2)},
		{"Give (USD)", r.Give.USD.StringFixed(2)},
		{"Take (USD)", r.Take.USD.StringFixed(2)},
	}
	if r.Totals.Skipped > 0 {
		res = append(res, [2]string{"Amounts not counted", fmt.Sprint(r.Totals.Skipped)})
	}
	return res
}

// Format names an output format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatXLSX     Format = "xlsx"
	FormatCSV      Format = "csv"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatPDF, FormatMarkdown, FormatHTML, FormatXLSX, FormatCSV}
}

// ParseFormat returns the format named s. "markdown" is accepted for md.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "markdown" {
		f = FormatMarkdown
	}
	if !slices.Contains(Formats(), f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Filename returns the default file name of a report in format f,
// e.g. "CashCook_Transactions_Report.pdf".
func (f Format) Filename() string {
	return "CashCook_Transactions_Report." + string(f)
}

// Write renders r to w in format f.
func Write(f Format, w io.Writer, r *Report) error {
	switch f {
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatHTML:
		return HTML(w, r)
	case FormatPDF:
		return PDF(w, r)
	case FormatXLSX:
		return XLSX(w, r)
	case FormatCSV:
		return CSV(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
