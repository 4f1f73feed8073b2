package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// column widths in mm, they fill the A4 page between 10mm margins.
var pdfWidths = []float64{18, 45, 28, 28, 35, 36}

const (
	pdfFont      = "Helvetica"
	pdfRowHeight = 7
)

// PDF renders the report as an A4 document with a grid table.
//
// The standard PDF fonts only cover cp1252, so amounts are prefixed with the
// currency code instead of its symbol.
func PDF(w io.Writer, r *Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(r.Title, true)
	pdf.SetCreator("cashcook", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		pdf.SetFont(pdfFont, "B", 10)
		pdf.SetFillColor(0, 123, 255)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range Headers {
			pdf.CellFormat(pdfWidths[i], pdfRowHeight+1, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 9)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 18)
	pdf.CellFormat(0, 10, tr(r.Title), "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
	pdf.CellFormat(0, 6, tr("Generated on: "+r.GeneratedAt), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	header()
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for i, row := range r.Rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		cells := row.Cells()
		cells[2] = pdfAmount(row, r.Currency)
		fill := i%2 == 1
		pdf.SetFillColor(240, 240, 240)
		for j, c := range cells {
			align := "L"
			if j == 2 {
				align = "R"
			}
			pdf.CellFormat(pdfWidths[j], pdfRowHeight, fit(pdf, tr(flatten(c)), pdfWidths[j]), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(r.Rows) == 0 {
		pdf.SetFont(pdfFont, "I", 9)
		pdf.CellFormat(0, pdfRowHeight, "No transactions.", "1", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, 8, "Totals", "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
	for _, kv := range pdfSummary(r) {
		pdf.CellFormat(50, 6, tr(kv[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(kv[1]), "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not write PDF report: %w", err)
	}
	return nil
}

// pdfAmount formats the amount of row with the currency code.
func pdfAmount(row Row, currency string) string {
	if !row.Valid {
		return row.Amount
	}
	return strings.TrimSpace(currency + " " + row.Value.StringFixed(2))
}

// pdfSummary is Report.Summary with code-prefixed amounts.
func pdfSummary(r *Report) [][2]string {
	res := r.Summary()
	money := []string{
		r.Totals.Give.StringFixed(2),
		r.Totals.Take.StringFixed(2),
		r.Totals.Balance().StringFixed(2),
	}
	for i, v := range money {
		res[i][1] = strings.TrimSpace(r.Currency + " " + v)
	}
	return res
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// fit truncates the cp1252 encoded s so that it fits in a cell of width w.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	const padding = 2
	if pdf.GetStringWidth(s) <= w-padding {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w-padding {
		s = s[:len(s)-1]
	}
	return s + "..."
}
