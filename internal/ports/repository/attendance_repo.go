package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"nat.service/internal/core/model"
)

// AttendanceRepo is the concrete implementation for a PostgreSQL database.
// The attendance table carries a UNIQUE (employee_id, date) constraint; a
// violation surfaces as ErrDuplicateRecord so the caller can treat a lost
// double check-in race as an invalid transition.
type AttendanceRepo struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &AttendanceRepo{DB: db}
}

const attendanceColumns = `id, employee_id, date, check_in, check_out, work_description, completion_notes, status, created_at, updated_at`

func (r *AttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*model.AttendanceRecord, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employeeId", employeeID))

	query := `SELECT ` + attendanceColumns + `
              FROM attendance
              WHERE employee_id = $1 AND date = $2`

	rec, err := scanAttendance(r.DB.QueryRowContext(ctx, query, employeeID, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *AttendanceRepo) FindOpenByEmployee(ctx context.Context, employeeID string) (*model.AttendanceRecord, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employeeId", employeeID))

	query := `SELECT ` + attendanceColumns + `
              FROM attendance
              WHERE employee_id = $1 AND check_out IS NULL
              ORDER BY check_in DESC
              LIMIT 1`

	rec, err := scanAttendance(r.DB.QueryRowContext(ctx, query, employeeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *AttendanceRepo) Create(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employeeId", rec.EmployeeID))

	query := `INSERT INTO attendance (id, employee_id, date, check_in, work_description, status)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING ` + attendanceColumns

	created, err := scanAttendance(r.DB.QueryRowContext(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.CheckIn, rec.WorkDescription, rec.Status))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateRecord
		}
		return nil, err
	}
	return created, nil
}

func (r *AttendanceRepo) CloseSession(ctx context.Context, id string, checkOut time.Time, completionNotes string) (*model.AttendanceRecord, error) {
	query := `UPDATE attendance
              SET check_out = $1,
                  completion_notes = $2,
                  updated_at = now()
              WHERE id = $3 AND check_out IS NULL
              RETURNING ` + attendanceColumns

	rec, err := scanAttendance(r.DB.QueryRowContext(ctx, query, checkOut, completionNotes, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *AttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employeeId", employeeID))

	query := `SELECT ` + attendanceColumns + `
              FROM attendance
              WHERE employee_id = $1
              ORDER BY date DESC`

	rows, err := r.DB.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *AttendanceRepo) ListByDate(ctx context.Context, date string) ([]model.AttendanceWithEmployee, error) {
	return r.listJoined(ctx, `WHERE a.date = $1 ORDER BY a.check_in ASC`, date)
}

func (r *AttendanceRepo) ListByDateRange(ctx context.Context, start, end string) ([]model.AttendanceWithEmployee, error) {
	return r.listJoined(ctx, `WHERE a.date >= $1 AND a.date <= $2 ORDER BY a.date DESC, e.name ASC`, start, end)
}

func (r *AttendanceRepo) listJoined(ctx context.Context, tail string, args ...any) ([]model.AttendanceWithEmployee, error) {
	query := `SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
                     a.work_description, a.completion_notes, a.status,
                     a.created_at, a.updated_at, e.name
              FROM attendance a
              JOIN employees e ON e.id = a.employee_id ` + tail

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceWithEmployee
	for rows.Next() {
		var (
			rec             model.AttendanceWithEmployee
			checkIn         sql.NullTime
			checkOut        sql.NullTime
			workDescription sql.NullString
			completionNotes sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &checkIn, &checkOut,
			&workDescription, &completionNotes, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName); err != nil {
			return nil, err
		}
		applyNullables(&rec.AttendanceRecord, checkIn, checkOut, workDescription, completionNotes)
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row rowScanner) (*model.AttendanceRecord, error) {
	var (
		rec             model.AttendanceRecord
		checkIn         sql.NullTime
		checkOut        sql.NullTime
		workDescription sql.NullString
		completionNotes sql.NullString
	)
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &checkIn, &checkOut,
		&workDescription, &completionNotes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	applyNullables(&rec, checkIn, checkOut, workDescription, completionNotes)
	return &rec, nil
}

func applyNullables(rec *model.AttendanceRecord, checkIn, checkOut sql.NullTime, workDescription, completionNotes sql.NullString) {
	if checkIn.Valid {
		t := checkIn.Time
		rec.CheckIn = &t
	}
	if checkOut.Valid {
		t := checkOut.Time
		rec.CheckOut = &t
	}
	rec.WorkDescription = workDescription.String
	rec.CompletionNotes = completionNotes.String
}
