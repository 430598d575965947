package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nat.service/internal/core/model"
	"nat.service/internal/core/session"
	"nat.service/internal/ports/repository"
)

// AdminService handles the two admin-owned entity flows: account reset
// requests filed by employees and free-form dashboard notes.
type AdminService struct {
	repo  repository.AdminRepository
	clock session.Clock
}

func NewAdminService(repo repository.AdminRepository, clock session.Clock) *AdminService {
	if clock == nil {
		clock = session.NewISTClock()
	}
	return &AdminService{repo: repo, clock: clock}
}

// FileResetRequest is the employee side: a reason is required, the request
// starts pending.
func (s *AdminService) FileResetRequest(ctx context.Context, employeeID, reason string) (*model.ResetRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("reason: %w", ErrValidation)
	}

	req := &model.ResetRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Reason:     reason,
		Status:     model.ResetPending,
		CreatedAt:  s.clock.Now(),
	}
	return s.repo.CreateResetRequest(ctx, req)
}

func (s *AdminService) ListResetRequests(ctx context.Context) ([]model.ResetRequest, error) {
	return s.repo.ListResetRequests(ctx)
}

// ProcessResetRequest applies the one-shot pending -> approved|rejected
// transition. A processed request is terminal.
func (s *AdminService) ProcessResetRequest(ctx context.Context, id string, status model.ResetRequestStatus, adminResponse string) (*model.ResetRequest, error) {
	if status != model.ResetApproved && status != model.ResetRejected {
		return nil, fmt.Errorf("status: %w", ErrValidation)
	}

	req, err := s.repo.FindResetRequest(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.Status != model.ResetPending {
		return nil, ErrAlreadyProcessed
	}

	now := s.clock.Now()
	req.Status = status
	req.AdminResponse = strings.TrimSpace(adminResponse)
	req.ProcessedAt = &now

	updated, err := s.repo.UpdateResetRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("request_id", id).
		Str("status", string(status)).
		Msg("reset request processed")
	return updated, nil
}

// NoteInput carries the editable fields of an admin note.
type NoteInput struct {
	Title       string
	Content     string
	Priority    model.NotePriority
	IsImportant bool
}

func (s *AdminService) CreateNote(ctx context.Context, in NoteInput) (*model.AdminNote, error) {
	if err := validateNote(&in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	note := &model.AdminNote{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Content:     strings.TrimSpace(in.Content),
		Priority:    in.Priority,
		IsImportant: in.IsImportant,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.CreateNote(ctx, note)
}

func (s *AdminService) ListNotes(ctx context.Context) ([]model.AdminNote, error) {
	return s.repo.ListNotes(ctx)
}

func (s *AdminService) UpdateNote(ctx context.Context, id string, in NoteInput) (*model.AdminNote, error) {
	if err := validateNote(&in); err != nil {
		return nil, err
	}

	note, err := s.repo.FindNote(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	note.Title = strings.TrimSpace(in.Title)
	note.Content = strings.TrimSpace(in.Content)
	note.Priority = in.Priority
	note.IsImportant = in.IsImportant
	note.UpdatedAt = s.clock.Now()
	return s.repo.UpdateNote(ctx, note)
}

func (s *AdminService) DeleteNote(ctx context.Context, id string) error {
	if err := s.repo.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateNote(in *NoteInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title: %w", ErrValidation)
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	switch in.Priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return nil
	default:
		return fmt.Errorf("priority: %w", ErrValidation)
	}
}
