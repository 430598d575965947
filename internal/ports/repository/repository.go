package repository

import (
	"context"
	"errors"
	"time"

	"nat.service/internal/core/model"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicateRecord is returned when an insert violates the
	// (employee_id, date) natural key. The session engine maps this to an
	// invalid transition so a concurrent double check-in loses cleanly.
	ErrDuplicateRecord = errors.New("repository: duplicate record")
)

// AttendanceRepository persists attendance records keyed by (employee, date).
type AttendanceRepository interface {
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*model.AttendanceRecord, error)
	// FindOpenByEmployee returns the most recent record with no check-out.
	// Check-out targets this record, so a session opened at 23:58 IST is
	// still the one closed at 00:02 the next day.
	FindOpenByEmployee(ctx context.Context, employeeID string) (*model.AttendanceRecord, error)
	Create(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error)
	CloseSession(ctx context.Context, id string, checkOut time.Time, completionNotes string) (*model.AttendanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error)
	ListByDate(ctx context.Context, date string) ([]model.AttendanceWithEmployee, error)
	ListByDateRange(ctx context.Context, start, end string) ([]model.AttendanceWithEmployee, error)
}

// EmployeeRepository persists employee profiles.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) (*model.Employee, error)
	FindByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, emp *model.Employee) (*model.Employee, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// TaskRepository persists employee tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) (*model.Task, error)
	Delete(ctx context.Context, id string) error
}

// AdminRepository persists reset requests and admin notes.
type AdminRepository interface {
	CreateResetRequest(ctx context.Context, req *model.ResetRequest) (*model.ResetRequest, error)
	FindResetRequest(ctx context.Context, id string) (*model.ResetRequest, error)
	ListResetRequests(ctx context.Context) ([]model.ResetRequest, error)
	UpdateResetRequest(ctx context.Context, req *model.ResetRequest) (*model.ResetRequest, error)

	CreateNote(ctx context.Context, note *model.AdminNote) (*model.AdminNote, error)
	FindNote(ctx context.Context, id string) (*model.AdminNote, error)
	ListNotes(ctx context.Context) ([]model.AdminNote, error)
	UpdateNote(ctx context.Context, note *model.AdminNote) (*model.AdminNote, error)
	DeleteNote(ctx context.Context, id string) error
}
