package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"nat.service/internal/core/model"
	"nat.service/internal/core/session"
	"nat.service/internal/ports/repository"
)

// TaskService is the daily task list. Tasks are independent of attendance;
// the owning employee creates, edits, toggles and deletes them freely.
type TaskService struct {
	repo  repository.TaskRepository
	clock session.Clock
}

func NewTaskService(repo repository.TaskRepository, clock session.Clock) *TaskService {
	if clock == nil {
		clock = session.NewISTClock()
	}
	return &TaskService{repo: repo, clock: clock}
}

func (s *TaskService) Create(ctx context.Context, employeeID, title, description string) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title: %w", ErrValidation)
	}

	now := s.clock.Now()
	task := &model.Task{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Date:        session.DayKey(now),
		CreatedAt:   now,
	}
	return s.repo.Create(ctx, task)
}

func (s *TaskService) ListByEmployee(ctx context.Context, employeeID string) ([]model.Task, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

func (s *TaskService) Update(ctx context.Context, id, title, description string) (*model.Task, error) {
	task, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title: %w", ErrValidation)
	}
	task.Title = title
	task.Description = strings.TrimSpace(description)
	return s.repo.Update(ctx, task)
}

// Toggle flips the completed flag.
func (s *TaskService) Toggle(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *TaskService) find(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}
