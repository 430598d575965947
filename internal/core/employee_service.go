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

// EmployeeService covers onboarding, profile reads/edits and the admin-only
// activation toggle and delete. Exactly one profile is current on a device;
// the device keeps the id and passes it with every call.
type EmployeeService struct {
	repo  repository.EmployeeRepository
	clock session.Clock
}

func NewEmployeeService(repo repository.EmployeeRepository, clock session.Clock) *EmployeeService {
	if clock == nil {
		clock = session.NewISTClock()
	}
	return &EmployeeService{repo: repo, clock: clock}
}

// OnboardInput is what the onboarding form submits.
type OnboardInput struct {
	Name            string
	Gender          model.Gender
	JobRole         string
	ProfilePhotoURL string
}

func (s *EmployeeService) Onboard(ctx context.Context, in OnboardInput) (*model.Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name: %w", ErrValidation)
	}
	if !validGender(in.Gender) {
		return nil, fmt.Errorf("gender: %w", ErrValidation)
	}
	jobRole := strings.TrimSpace(in.JobRole)
	if jobRole == "" {
		return nil, fmt.Errorf("jobRole: %w", ErrValidation)
	}

	now := s.clock.Now()
	emp := &model.Employee{
		ID:              uuid.NewString(),
		Name:            name,
		Gender:          in.Gender,
		JobRole:         jobRole,
		ProfilePhotoURL: strings.TrimSpace(in.ProfilePhotoURL),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return s.repo.Create(ctx, emp)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return emp, nil
}

// List returns all employees newest-first for the admin dashboard.
func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.repo.List(ctx)
}

// UpdateProfileInput carries the editable profile fields; nil means leave
// unchanged.
type UpdateProfileInput struct {
	Name            *string
	Gender          *model.Gender
	JobRole         *string
	ProfilePhotoURL *string
}

func (s *EmployeeService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*model.Employee, error) {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("name: %w", ErrValidation)
		}
		emp.Name = name
	}
	if in.Gender != nil {
		if !validGender(*in.Gender) {
			return nil, fmt.Errorf("gender: %w", ErrValidation)
		}
		emp.Gender = *in.Gender
	}
	if in.JobRole != nil {
		jobRole := strings.TrimSpace(*in.JobRole)
		if jobRole == "" {
			return nil, fmt.Errorf("jobRole: %w", ErrValidation)
		}
		emp.JobRole = jobRole
	}
	if in.ProfilePhotoURL != nil {
		emp.ProfilePhotoURL = strings.TrimSpace(*in.ProfilePhotoURL)
	}

	emp.UpdatedAt = s.clock.Now()
	return s.repo.Update(ctx, emp)
}

// SetActive is the admin deactivate/reactivate toggle. Employees never
// delete themselves; a deactivated profile keeps its history.
func (s *EmployeeService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes the profile entirely. Admin only.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validGender(g model.Gender) bool {
	switch g {
	case model.GenderMale, model.GenderFemale, model.GenderOther:
		return true
	default:
		return false
	}
}
