package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Column layout in mm, matching the proportions of the original export.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"Employee", 45},
	{"Date", 25},
	{"Check In", 22},
	{"Check Out", 22},
	{"Status", 20},
	{"Work Description", 56},
}

// WritePDF renders the report as a single-table A4 PDF.
func WritePDF(w io.Writer, r *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, r.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s - %s", r.PeriodStart, r.PeriodEnd))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("Jan 2, 2006 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.title, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range r.Rows {
		values := []string{row.EmployeeName, row.Date, row.CheckIn, row.CheckOut, row.Status, row.WorkDescription}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, truncate(values[i], 40), "", 0, "L", false, 0, "")
		}
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
