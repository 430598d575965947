package repository

import (
	"context"
	"database/sql"
	"errors"

	"nat.service/internal/core/model"
)

// AdminRepo is the PostgreSQL store for reset requests and admin notes.
type AdminRepo struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &AdminRepo{DB: db}
}

const resetColumns = `id, employee_id, reason, status, admin_response, created_at, processed_at`

func (r *AdminRepo) CreateResetRequest(ctx context.Context, req *model.ResetRequest) (*model.ResetRequest, error) {
	query := `INSERT INTO reset_requests (id, employee_id, reason, status, created_at)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING ` + resetColumns

	return scanResetRequest(r.DB.QueryRowContext(ctx, query,
		req.ID, req.EmployeeID, req.Reason, req.Status, req.CreatedAt))
}

func (r *AdminRepo) FindResetRequest(ctx context.Context, id string) (*model.ResetRequest, error) {
	query := `SELECT ` + resetColumns + ` FROM reset_requests WHERE id = $1`

	req, err := scanResetRequest(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return req, err
}

func (r *AdminRepo) ListResetRequests(ctx context.Context) ([]model.ResetRequest, error) {
	query := `SELECT ` + resetColumns + ` FROM reset_requests ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.ResetRequest
	for rows.Next() {
		req, err := scanResetRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *AdminRepo) UpdateResetRequest(ctx context.Context, req *model.ResetRequest) (*model.ResetRequest, error) {
	query := `UPDATE reset_requests
              SET status = $1, admin_response = $2, processed_at = $3
              WHERE id = $4
              RETURNING ` + resetColumns

	updated, err := scanResetRequest(r.DB.QueryRowContext(ctx, query,
		req.Status, nullIfEmpty(req.AdminResponse), req.ProcessedAt, req.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return updated, err
}

const noteColumns = `id, title, content, priority, is_important, created_at, updated_at`

func (r *AdminRepo) CreateNote(ctx context.Context, note *model.AdminNote) (*model.AdminNote, error) {
	query := `INSERT INTO admin_notes (id, title, content, priority, is_important, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING ` + noteColumns

	return scanNote(r.DB.QueryRowContext(ctx, query,
		note.ID, note.Title, note.Content, note.Priority, note.IsImportant,
		note.CreatedAt, note.UpdatedAt))
}

func (r *AdminRepo) FindNote(ctx context.Context, id string) (*model.AdminNote, error) {
	query := `SELECT ` + noteColumns + ` FROM admin_notes WHERE id = $1`

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return note, err
}

func (r *AdminRepo) ListNotes(ctx context.Context) ([]model.AdminNote, error) {
	// Important notes first, then newest.
	query := `SELECT ` + noteColumns + `
              FROM admin_notes
              ORDER BY is_important DESC, updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.AdminNote
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	return notes, rows.Err()
}

func (r *AdminRepo) UpdateNote(ctx context.Context, note *model.AdminNote) (*model.AdminNote, error) {
	query := `UPDATE admin_notes
              SET title = $1, content = $2, priority = $3, is_important = $4, updated_at = $5
              WHERE id = $6
              RETURNING ` + noteColumns

	updated, err := scanNote(r.DB.QueryRowContext(ctx, query,
		note.Title, note.Content, note.Priority, note.IsImportant, note.UpdatedAt, note.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return updated, err
}

func (r *AdminRepo) DeleteNote(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM admin_notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanResetRequest(row rowScanner) (*model.ResetRequest, error) {
	var (
		req         model.ResetRequest
		response    sql.NullString
		processedAt sql.NullTime
	)
	err := row.Scan(&req.ID, &req.EmployeeID, &req.Reason, &req.Status,
		&response, &req.CreatedAt, &processedAt)
	if err != nil {
		return nil, err
	}
	req.AdminResponse = response.String
	if processedAt.Valid {
		t := processedAt.Time
		req.ProcessedAt = &t
	}
	return &req, nil
}

func scanNote(row rowScanner) (*model.AdminNote, error) {
	var note model.AdminNote
	err := row.Scan(&note.ID, &note.Title, &note.Content, &note.Priority,
		&note.IsImportant, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &note, nil
}
