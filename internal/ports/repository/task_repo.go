package repository

import (
	"context"
	"database/sql"
	"errors"

	"nat.service/internal/core/model"
)

// TaskRepo is the PostgreSQL task store.
type TaskRepo struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &TaskRepo{DB: db}
}

const taskColumns = `id, employee_id, title, description, date, completed, created_at`

func (r *TaskRepo) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	query := `INSERT INTO tasks (id, employee_id, title, description, date, completed, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING ` + taskColumns

	return scanTask(r.DB.QueryRowContext(ctx, query,
		task.ID, task.EmployeeID, task.Title, nullIfEmpty(task.Description),
		task.Date, task.Completed, task.CreatedAt))
}

func (r *TaskRepo) FindByID(ctx context.Context, id string) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return task, err
}

func (r *TaskRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + `
              FROM tasks
              WHERE employee_id = $1
              ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	query := `UPDATE tasks
              SET title = $1, description = $2, completed = $3
              WHERE id = $4
              RETURNING ` + taskColumns

	updated, err := scanTask(r.DB.QueryRowContext(ctx, query,
		task.Title, nullIfEmpty(task.Description), task.Completed, task.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return updated, err
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanTask(row rowScanner) (*model.Task, error) {
	var (
		task        model.Task
		description sql.NullString
	)
	err := row.Scan(&task.ID, &task.EmployeeID, &task.Title, &description,
		&task.Date, &task.Completed, &task.CreatedAt)
	if err != nil {
		return nil, err
	}
	task.Description = description.String
	return &task, nil
}
