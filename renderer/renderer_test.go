package renderer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/cashcook"
	"github.com/etnz/cashcook/date"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func testReport() *Report {
	txs := []cashcook.Transaction{
		{
			ID:          1,
			Description: "Groceries | market",
			Amount:      "1250",
			Type:        cashcook.Give,
			Date:        date.MustParse("2024-05-01T10:00:00Z"),
			Category:    cashcook.Food,
			Notes:       "weekly\nshop",
		},
		{
			ID:          2,
			Description: "Refund",
			Amount:      "abc",
			Type:        cashcook.Take,
			Date:        date.MustParse("2024-05-02T08:30:00Z"),
		},
	}
	return NewReport(txs, Options{
		Currency:    "INR",
		Rates:       cashcook.DefaultRates,
		GeneratedAt: time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC),
		Location:    time.UTC,
	})
}

func TestNewReport(t *testing.T) {
	r := testReport()
	if r.Title != "CashCook Transactions Report" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.GeneratedAt != "5/3/2024, 12:00:00 PM" {
		t.Errorf("GeneratedAt = %q", r.GeneratedAt)
	}
	want := [][]string{
		{"GIVE", "Groceries | market", "₹1,250.00", "Food", "weekly\nshop", "5/1/2024, 10:00:00 AM"},
		{"TAKE", "Refund", "INR abc", "", "", "5/2/2024, 8:30:00 AM"},
	}
	var got [][]string
	for _, row := range r.Rows {
		got = append(got, row.Cells())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if !r.Rows[0].Valid || r.Rows[1].Valid {
		t.Errorf("Valid = %v, %v; want true, false", r.Rows[0].Valid, r.Rows[1].Valid)
	}
	if r.Totals.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", r.Totals.Skipped)
	}
}

func TestMarkdown(t *testing.T) {
	want := `# CashCook Transactions Report
Generated on: 5/3/2024, 12:00:00 PM

| Type | Description | Amount | Category | Notes | Date |
|:--------|:--------|--------:|:--------|:--------|:--------|
| GIVE | Groceries \| market | ₹1,250.00 | Food | weekly shop | 5/1/2024, 10:00:00 AM |
| TAKE | Refund | INR abc |  |  | 5/2/2024, 8:30:00 AM |

## Totals
|  | **INR** |
|:--------|--------:|
| Total Give | ₹1,250.00 |
| Total Take | ₹0.00 |
| Balance | -₹1,250.00 |
| Give (KD) | 4.48 |
| Take (KD) | 0.00 |
| Give (USD) | 14.50 |
| Take (USD) | 0.00 |
| Amounts not counted | 1 |
`
	if diff := cmp.Diff(want, Markdown(testReport())); diff != "" {
		t.Errorf("Markdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	got := Markdown(NewReport(nil, Options{Currency: "USD"}))
	for _, want := range []string{"# CashCook Transactions Report", "*No transactions.*", "| Total Give | $0.00 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestHTML(t *testing.T) {
	var b bytes.Buffer
	if err := HTML(&b, testReport()); err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	got := b.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>CashCook Transactions Report</title>",
		"<h1>CashCook Transactions Report</h1>",
		"<table>",
		">Groceries | market</td>",
		"<h2>Totals</h2>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() does not contain %q", want)
		}
	}
}

func TestPDF(t *testing.T) {
	var b bytes.Buffer
	if err := PDF(&b, testReport()); err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("%PDF-")) {
		t.Errorf("PDF() output does not start with a PDF header: %q", b.Bytes()[:min(b.Len(), 16)])
	}

	// enough rows to span several pages.
	var txs []cashcook.Transaction
	for i := 0; i < 120; i++ {
		txs = append(txs, cashcook.Transaction{
			ID:          int64(i),
			Description: strings.Repeat("very long description ", 5),
			Amount:      "10",
			Type:        cashcook.Give,
		})
	}
	b.Reset()
	if err := PDF(&b, NewReport(txs, Options{Currency: "KWD"})); err != nil {
		t.Fatalf("PDF() on many rows error = %v", err)
	}
}

func TestXLSX(t *testing.T) {
	var b bytes.Buffer
	if err := XLSX(&b, testReport()); err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}
	f, err := excelize.OpenReader(&b)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) < 3 {
		t.Fatalf("GetRows() = %d rows, want at least 3", len(rows))
	}
	if diff := cmp.Diff(Headers, rows[0]); diff != "" {
		t.Errorf("header row mismatch (-want +got):\n%s", diff)
	}
	if got := rows[1][2]; got != "1250" {
		t.Errorf("numeric amount cell = %q, want %q", got, "1250")
	}
	if got := rows[2][2]; got != "INR abc" {
		t.Errorf("unparsable amount cell = %q, want %q", got, "INR abc")
	}
	found := false
	for _, row := range rows {
		if len(row) > 2 && row[0] == "Total Give" {
			found = true
			if row[2] != "₹1,250.00" {
				t.Errorf("Total Give = %q, want %q", row[2], "₹1,250.00")
			}
		}
	}
	if !found {
		t.Error("XLSX() has no totals")
	}
}

func TestCSV(t *testing.T) {
	var b bytes.Buffer
	if err := CSV(&b, testReport()); err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	want := `Type,Description,Amount,Category,Notes,Date
GIVE,Groceries | market,1250,Food,"weekly
shop","5/1/2024, 10:00:00 AM"
TAKE,Refund,INR abc,,,"5/2/2024, 8:30:00 AM"
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("CSV() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	r := testReport()
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			var b bytes.Buffer
			if err := Write(f, &b, r); err != nil {
				t.Fatalf("Write(%q) error = %v", f, err)
			}
			if b.Len() == 0 {
				t.Errorf("Write(%q) wrote nothing", f)
			}
		})
	}

	if err := Write("docx", &bytes.Buffer{}, r); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write(docx) error = %v, want ErrUnknownFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "pdf", want: FormatPDF},
		{in: "PDF", want: FormatPDF},
		{in: "markdown", want: FormatMarkdown},
		{in: " md ", want: FormatMarkdown},
		{in: "xlsx", want: FormatXLSX},
		{in: "doc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := FormatPDF.Filename(); got != "CashCook_Transactions_Report.pdf" {
		t.Errorf("Filename() = %q", got)
	}
}
