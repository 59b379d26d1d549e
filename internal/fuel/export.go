package fuel

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

const ticketsSheet = "Tickets"

var exportHeaders = []string{
	"Date",
	"Time",
	"Ticket Number",
	"Station",
	"Quantity (L)",
	"Unit Price",
	"Total Amount",
	"Source",
	"Missing Fields",
}

var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "B", 12}, // date, time
	{"C", "C", 16}, // ticket number
	{"D", "D", 28}, // station
	{"E", "G", 14}, // amounts
	{"H", "I", 40}, // source, missing
}

// WriteXLSX writes drafts as a "Tickets" workbook. Unset fields are left as
// empty cells.
func WriteXLSX(w io.Writer, drafts []*Draft) error {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet instead of adding a second one
	if err := f.SetSheetName(f.GetSheetName(0), ticketsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ticketsSheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, d := range drafts {
		row := i + 2
		values := []any{
			d.Fields.Date,
			d.Fields.Time,
			d.Fields.TicketNumber,
			string(d.Fields.Station),
			d.Fields.QuantityPurchased,
			d.Fields.UnitPrice,
			d.Fields.TotalAmount,
			d.Source,
			strings.Join(d.Missing, ", "),
		}
		for col, v := range values {
			if p, ok := v.(*float64); ok {
				if p == nil {
					continue
				}
				v = *p
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(ticketsSheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
		}
	}

	for _, cw := range columnWidths {
		if err := f.SetColWidth(ticketsSheet, cw.from, cw.to, cw.width); err != nil {
			return fmt.Errorf("setting width of columns %s-%s: %w", cw.from, cw.to, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}

	slog.Info("Exported tickets", "rows", len(drafts))
	return nil
}
