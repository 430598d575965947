package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"nat.service/internal/core/model"
	"nat.service/internal/ports/repository"
)

type fakeEmployeeRepo struct {
	employees map[string]*model.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp *model.Employee) (*model.Employee, error) {
	clone := *emp
	r.employees[emp.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*model.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *emp
	return &clone, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp *model.Employee) (*model.Employee, error) {
	if _, ok := r.employees[emp.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	clone := *emp
	r.employees[emp.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeEmployeeRepo) SetActive(_ context.Context, id string, active bool) error {
	emp, ok := r.employees[id]
	if !ok {
		return repository.ErrNotFound
	}
	emp.IsActive = active
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

func TestOnboardCreatesActiveEmployee(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	svc := NewEmployeeService(newFakeEmployeeRepo(), &stubClock{now: now})

	emp, err := svc.Onboard(context.Background(), OnboardInput{
		Name:    "  Asha Verma  ",
		Gender:  model.GenderFemale,
		JobRole: "SITE SUPERVISOR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.ID == "" {
		t.Error("expected generated id")
	}
	if emp.Name != "Asha Verma" {
		t.Errorf("expected trimmed name, got %q", emp.Name)
	}
	if !emp.IsActive {
		t.Error("new employee should start active")
	}
}

func TestOnboardValidation(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), &stubClock{now: time.Now()})

	cases := []struct {
		name  string
		input OnboardInput
	}{
		{name: "empty name", input: OnboardInput{Name: " ", Gender: model.GenderMale, JobRole: "DRIVER"}},
		{name: "bad gender", input: OnboardInput{Name: "X", Gender: "robot", JobRole: "DRIVER"}},
		{name: "empty job role", input: OnboardInput{Name: "X", Gender: model.GenderMale, JobRole: "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Onboard(context.Background(), tc.input); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	clock := &stubClock{now: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)}
	svc := NewEmployeeService(newFakeEmployeeRepo(), clock)

	emp, err := svc.Onboard(context.Background(), OnboardInput{
		Name:    "Ravi",
		Gender:  model.GenderMale,
		JobRole: "DRIVER",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.now = clock.now.Add(time.Hour)
	newRole := "ACCOUNTANT"
	updated, err := svc.UpdateProfile(context.Background(), emp.ID, UpdateProfileInput{JobRole: &newRole})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.JobRole != "ACCOUNTANT" {
		t.Errorf("expected job role updated, got %s", updated.JobRole)
	}
	if updated.Name != "Ravi" {
		t.Errorf("untouched field changed: %s", updated.Name)
	}
	if !updated.UpdatedAt.Equal(clock.now) {
		t.Errorf("expected updatedAt advanced, got %v", updated.UpdatedAt)
	}
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), &stubClock{now: time.Now()})

	emp, err := svc.Onboard(context.Background(), OnboardInput{
		Name:    "Ravi",
		Gender:  model.GenderMale,
		JobRole: "DRIVER",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := "  "
	if _, err := svc.UpdateProfile(context.Background(), emp.ID, UpdateProfileInput{Name: &empty}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSetActiveToggle(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, &stubClock{now: time.Now()})

	emp, err := svc.Onboard(context.Background(), OnboardInput{
		Name:    "Ravi",
		Gender:  model.GenderMale,
		JobRole: "DRIVER",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.SetActive(context.Background(), emp.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), emp.ID)
	if stored.IsActive {
		t.Error("expected employee deactivated")
	}
}

func TestEmployeeNotFound(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), &stubClock{now: time.Now()})

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.SetActive(context.Background(), "missing", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
