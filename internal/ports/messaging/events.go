package messaging

import "time"

// CheckOutEvent is the JSON payload sent to the payroll queue when an
// attendance session closes.
type CheckOutEvent struct {
	AttendanceID string    `json:"attendanceId"`
	EmployeeID   string    `json:"employeeId"`
	Date         string    `json:"date"`
	HoursWorked  float64   `json:"hoursWorked"`
	ClockOutTime time.Time `json:"clockOutTime"`
}

// EmailEvent is the JSON payload sent to the email queue for the
// checkout-summary mail.
type EmailEvent struct {
	AttendanceID string    `json:"attendanceId"`
	EmployeeID   string    `json:"employeeId"`
	HoursWorked  float64   `json:"hoursWorked"`
	OccurredAt   time.Time `json:"occurredAt"`
}
