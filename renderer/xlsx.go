package renderer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the transactions in XLSX reports.
const SheetName = "Transactions"

// XLSX renders the report as a spreadsheet. Parsable amounts are written as numbers.
func XLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("could not create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"007BFF"}},
	})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}
	altStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F0F0"}},
	})
	if err != nil {
		return fmt.Errorf("could not create row style: %w", err)
	}

	for i, h := range Headers {
		f.SetCellValue(SheetName, cellName(i+1, 1), h)
	}
	f.SetCellStyle(SheetName, cellName(1, 1), cellName(len(Headers), 1), headerStyle)

	for i, row := range r.Rows {
		line := i + 2
		for j, c := range row.Cells() {
			if j == 2 && row.Valid {
				f.SetCellFloat(SheetName, cellName(j+1, line), row.Value.InexactFloat64(), -1, 64)
				continue
			}
			f.SetCellValue(SheetName, cellName(j+1, line), c)
		}
		if i%2 == 1 {
			f.SetCellStyle(SheetName, cellName(1, line), cellName(len(Headers), line), altStyle)
		}
	}

	line := len(r.Rows) + 3
	for _, kv := range r.Summary() {
		f.SetCellValue(SheetName, cellName(1, line), kv[0])
		f.SetCellValue(SheetName, cellName(3, line), kv[1])
		line++
	}

	f.SetColWidth(SheetName, "A", "A", 8)
	f.SetColWidth(SheetName, "B", "B", 30)
	f.SetColWidth(SheetName, "C", "D", 14)
	f.SetColWidth(SheetName, "E", "E", 30)
	f.SetColWidth(SheetName, "F", "F", 22)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write XLSX report: %w", err)
	}
	return nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
