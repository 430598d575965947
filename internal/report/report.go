// Package report renders attendance reports for the admin export tab.
package report

import (
	"time"

	"nat.service/internal/core/model"
	"nat.service/internal/core/session"
)

// Format of the generated report file.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

// Report is the assembled input for either renderer.
type Report struct {
	Title       string
	PeriodStart string // yyyy-MM-dd
	PeriodEnd   string
	GeneratedAt time.Time
	Rows        []Row
}

// Row is one line of the report table, matching the columns of the original
// export: Employee, Date, Check In, Check Out, Status, Work Description.
type Row struct {
	EmployeeName    string
	Date            string
	CheckIn         string
	CheckOut        string
	Status          string
	WorkDescription string
}

// Build flattens joined attendance records into report rows. Times are
// rendered in IST, missing timestamps as a dash.
func Build(records []model.AttendanceWithEmployee, start, end string, generatedAt time.Time) *Report {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			EmployeeName:    rec.EmployeeName,
			Date:            rec.Date,
			CheckIn:         formatClock(rec.CheckIn),
			CheckOut:        formatClock(rec.CheckOut),
			Status:          string(rec.Status),
			WorkDescription: dashIfEmpty(rec.WorkDescription),
		})
	}
	return &Report{
		Title:       "NAT Attendance Report",
		PeriodStart: start,
		PeriodEnd:   end,
		GeneratedAt: generatedAt.In(session.IST),
		Rows:        rows,
	}
}

// FileName mirrors the original export naming scheme.
func (r *Report) FileName(format Format) string {
	ext := "pdf"
	if format == FormatExcel {
		ext = "xlsx"
	}
	return "NAT_Attendance_" + r.PeriodStart + "_to_" + r.PeriodEnd + "." + ext
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.In(session.IST).Format("15:04")
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
