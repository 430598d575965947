package model

// ProcessingStatus tracks the asynchronous post-checkout jobs (payroll
// forwarding, summary email) for one attendance record.
type ProcessingStatus string

const (
	ProcessingPending   ProcessingStatus = "PENDING"
	ProcessingCompleted ProcessingStatus = "COMPLETED"
	ProcessingFailed    ProcessingStatus = "FAILED"
)

// JobState is the worker-side view of an attendance record: which of the
// post-checkout jobs have run and how often they were retried.
type JobState struct {
	AttendanceID      string           `json:"attendanceId"`
	PayrollStatus     ProcessingStatus `json:"payrollStatus"`
	PayrollRetryCount int              `json:"payrollRetryCount"`
	EmailStatus       ProcessingStatus `json:"emailStatus"`
	EmailRetryCount   int              `json:"emailRetryCount"`
}
