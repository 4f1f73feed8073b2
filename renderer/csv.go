package renderer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV renders the transactions table, one record per row, headers first.
// Parsable amounts are written as plain numbers, without currency.
func CSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	cw.Write(Headers)
	for _, row := range r.Rows {
		cells := row.Cells()
		if row.Valid {
			cells[2] = row.Value.String()
		}
		cw.Write(cells)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not write CSV report: %w", err)
	}
	return nil
}
