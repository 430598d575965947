package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

var excelHeaders = []string{"Employee Name", "Date", "Check In", "Check Out", "Status", "Work Description"}

// WriteExcel renders the report as an xlsx workbook with a header block
// above the table, like the spreadsheet the mobile app produced.
func WriteExcel(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := [][]interface{}{
		{r.Title},
		{fmt.Sprintf("Period: %s - %s", r.PeriodStart, r.PeriodEnd)},
		{fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("Jan 2, 2006 15:04"))},
		{},
	}
	for i, row := range header {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
	}

	headerRow := make([]interface{}, len(excelHeaders))
	for i, h := range excelHeaders {
		headerRow[i] = h
	}
	cell, _ := excelize.CoordinatesToCellName(1, len(header)+1)
	if err := f.SetSheetRow(sheetName, cell, &headerRow); err != nil {
		return fmt.Errorf("failed to write column headers: %w", err)
	}

	for i, row := range r.Rows {
		values := []interface{}{row.EmployeeName, row.Date, row.CheckIn, row.CheckOut, row.Status, row.WorkDescription}
		cell, _ := excelize.CoordinatesToCellName(1, len(header)+2+i)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
