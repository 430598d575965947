package repository

import (
	"context"
	"database/sql"
	"errors"

	"nat.service/internal/core/model"
)

// JobRepository is how the workers read and advance the post-checkout job
// columns on the attendance table.
type JobRepository interface {
	GetJobState(ctx context.Context, attendanceID string) (*model.JobState, error)
	UpdatePayrollStatus(ctx context.Context, attendanceID string, status model.ProcessingStatus, retryCount int) error
	UpdateEmailStatus(ctx context.Context, attendanceID string, status model.ProcessingStatus, retryCount int) error
}

// JobRepo is the PostgreSQL implementation.
type JobRepo struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) JobRepository {
	return &JobRepo{DB: db}
}

func (r *JobRepo) GetJobState(ctx context.Context, attendanceID string) (*model.JobState, error) {
	query := `SELECT id, payroll_status, payroll_retry_count, email_status, email_retry_count
              FROM attendance WHERE id = $1`

	state := &model.JobState{}
	err := r.DB.QueryRowContext(ctx, query, attendanceID).Scan(
		&state.AttendanceID, &state.PayrollStatus, &state.PayrollRetryCount,
		&state.EmailStatus, &state.EmailRetryCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (r *JobRepo) UpdatePayrollStatus(ctx context.Context, attendanceID string, status model.ProcessingStatus, retryCount int) error {
	query := `UPDATE attendance
              SET payroll_status = $1,
                  payroll_retry_count = $2
              WHERE id = $3`

	_, err := r.DB.ExecContext(ctx, query, status, retryCount, attendanceID)
	return err
}

func (r *JobRepo) UpdateEmailStatus(ctx context.Context, attendanceID string, status model.ProcessingStatus, retryCount int) error {
	query := `UPDATE attendance SET email_status = $1, email_retry_count = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, status, retryCount, attendanceID)
	return err
}
