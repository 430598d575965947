package repository

import (
	"context"
	"database/sql"
	"errors"

	"nat.service/internal/core/model"
)

// EmployeeRepo is the PostgreSQL employee store.
type EmployeeRepo struct {
	DB *sql.DB
}

func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &EmployeeRepo{DB: db}
}

const employeeColumns = `id, name, gender, job_role, profile_photo_url, is_active, created_at, updated_at`

func (r *EmployeeRepo) Create(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	query := `INSERT INTO employees (id, name, gender, job_role, profile_photo_url, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING ` + employeeColumns

	return scanEmployee(r.DB.QueryRowContext(ctx, query,
		emp.ID, emp.Name, emp.Gender, emp.JobRole, nullIfEmpty(emp.ProfilePhotoURL),
		emp.IsActive, emp.CreatedAt, emp.UpdatedAt))
}

func (r *EmployeeRepo) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return emp, err
}

func (r *EmployeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepo) Update(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	query := `UPDATE employees
              SET name = $1, gender = $2, job_role = $3, profile_photo_url = $4, updated_at = $5
              WHERE id = $6
              RETURNING ` + employeeColumns

	updated, err := scanEmployee(r.DB.QueryRowContext(ctx, query,
		emp.Name, emp.Gender, emp.JobRole, nullIfEmpty(emp.ProfilePhotoURL), emp.UpdatedAt, emp.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return updated, err
}

func (r *EmployeeRepo) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE employees SET is_active = $1, updated_at = now() WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, active, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanEmployee(row rowScanner) (*model.Employee, error) {
	var (
		emp   model.Employee
		photo sql.NullString
	)
	err := row.Scan(&emp.ID, &emp.Name, &emp.Gender, &emp.JobRole, &photo,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	emp.ProfilePhotoURL = photo.String
	return &emp, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
