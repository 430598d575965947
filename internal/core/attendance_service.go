package core

import (
	"context"

	"nat.service/internal/core/model"
	"nat.service/internal/core/session"
	"nat.service/internal/ports/repository"
)

// AttendanceService is the read side of attendance: the employee calendar
// feed and the admin listings. Writes go through the session engine only.
type AttendanceService struct {
	repo  repository.AttendanceRepository
	clock session.Clock
}

func NewAttendanceService(repo repository.AttendanceRepository, clock session.Clock) *AttendanceService {
	if clock == nil {
		clock = session.NewISTClock()
	}
	return &AttendanceService{repo: repo, clock: clock}
}

// History returns the employee's records with the display status recomputed
// on every read. The stored status field is set at check-in and never
// rewritten, so an open record from a prior day surfaces as partial here
// without a second write.
func (s *AttendanceService) History(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error) {
	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	for i := range records {
		records[i].Status = session.StatusFor(&records[i], now)
	}
	return records, nil
}

// ByDate is the admin attendance tab: every record for one IST day, joined
// with the employee name.
func (s *AttendanceService) ByDate(ctx context.Context, date string) ([]model.AttendanceWithEmployee, error) {
	records, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	for i := range records {
		records[i].Status = session.StatusFor(&records[i].AttendanceRecord, now)
	}
	return records, nil
}

// ByDateRange feeds the report exporters.
func (s *AttendanceService) ByDateRange(ctx context.Context, start, end string) ([]model.AttendanceWithEmployee, error) {
	records, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	for i := range records {
		records[i].Status = session.StatusFor(&records[i].AttendanceRecord, now)
	}
	return records, nil
}
