package model

import (
	"time"
)

// Gender of an employee as captured at onboarding.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AttendanceStatus is the stored classification of an attendance record.
// "absent" is never stored; it is inferred at display time for dates with
// no record at all.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusPartial AttendanceStatus = "partial"
	StatusAbsent  AttendanceStatus = "absent"
)

// ResetRequestStatus tracks the admin decision on an account reset request.
type ResetRequestStatus string

const (
	ResetPending  ResetRequestStatus = "pending"
	ResetApproved ResetRequestStatus = "approved"
	ResetRejected ResetRequestStatus = "rejected"
)

// NotePriority for admin notes.
type NotePriority string

const (
	PriorityLow    NotePriority = "low"
	PriorityMedium NotePriority = "medium"
	PriorityHigh   NotePriority = "high"
)

// JobRoles is the fixed role list offered at onboarding. Free text is also
// accepted, so this is a suggestion set rather than an enum.
var JobRoles = []string{
	"SENIOR ARCHITECT",
	"INTERIOR DESIGNER",
	"ARCHITECT",
	"ACCOUNTANT",
	"SITE SUPERVISOR",
	"DRIVER",
	"OTHER",
}

type Employee struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Gender          Gender    `json:"gender"`
	JobRole         string    `json:"jobRole"`
	ProfilePhotoURL string    `json:"profilePhotoUrl,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AttendanceRecord is one employee-day of attendance. Date is the IST
// calendar day (yyyy-MM-dd) fixed at check-in time; (EmployeeID, Date) is
// the natural key and is unique. CheckOut unset means the session is open.
type AttendanceRecord struct {
	ID              string           `json:"id"`
	EmployeeID      string           `json:"employeeId"`
	Date            string           `json:"date"`
	CheckIn         *time.Time       `json:"checkIn,omitempty"`
	CheckOut        *time.Time       `json:"checkOut,omitempty"`
	WorkDescription string           `json:"workDescription,omitempty"`
	CompletionNotes string           `json:"completionNotes,omitempty"`
	Status          AttendanceStatus `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// AttendanceWithEmployee joins a record with its owner for admin listings.
type AttendanceWithEmployee struct {
	AttendanceRecord
	EmployeeName string `json:"employeeName"`
}

type Task struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ResetRequest struct {
	ID            string             `json:"id"`
	EmployeeID    string             `json:"employeeId"`
	Reason        string             `json:"reason"`
	Status        ResetRequestStatus `json:"status"`
	AdminResponse string             `json:"adminResponse,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	ProcessedAt   *time.Time         `json:"processedAt,omitempty"`
}

type AdminNote struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Priority    NotePriority `json:"priority"`
	IsImportant bool         `json:"isImportant"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
