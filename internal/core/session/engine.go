package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nat.service/internal/core/model"
	"nat.service/internal/ports/messaging"
	"nat.service/internal/ports/repository"
)

// GatingDuration is the minimum interval between check-in and an eligible
// check-out.
const GatingDuration = 10 * time.Minute

// Engine validates and applies the two legal session transitions:
//
//	NoSession --CheckIn--> Open --CheckOut (time-gated)--> Closed
//
// Closed is terminal for the day. Either a transition passes validation and
// the full mutation is persisted, or nothing changes; no optimistic state is
// kept without store confirmation.
type Engine struct {
	repo     repository.AttendanceRepository
	producer messaging.Producer
	clock    Clock
}

// NewEngine wires the engine. producer may be nil when no event queue is
// configured; clock defaults to the IST wall clock.
func NewEngine(repo repository.AttendanceRepository, producer messaging.Producer, clock Clock) *Engine {
	if clock == nil {
		clock = NewISTClock()
	}
	return &Engine{repo: repo, producer: producer, clock: clock}
}

// CurrentState resolves today's session for the employee. Read-only and
// idempotent.
func (e *Engine) CurrentState(ctx context.Context, employeeID string) (State, *model.AttendanceRecord, error) {
	rec, err := e.todayRecord(ctx, employeeID)
	if err != nil {
		return StateNoSession, nil, err
	}
	return stateOf(rec), rec, nil
}

// CheckIn opens today's session. Fails with ErrInvalidTransition if a record
// already exists for today and with ErrValidation if the work description is
// blank.
func (e *Engine) CheckIn(ctx context.Context, employeeID, description string) (*model.AttendanceRecord, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrValidation
	}

	existing, err := e.todayRecord(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrInvalidTransition
	}

	now := e.clock.Now()
	rec := &model.AttendanceRecord{
		ID:              uuid.NewString(),
		EmployeeID:      employeeID,
		Date:            DayKey(now),
		CheckIn:         &now,
		WorkDescription: description,
		Status:          model.StatusPresent,
	}

	created, err := e.repo.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			// Lost a concurrent check-in race; the natural-key constraint
			// keeps the day single-record.
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("employee_id", employeeID).
		Str("date", created.Date).
		Msg("session opened")
	return created, nil
}

// CheckOut closes today's open session. The check-in description is kept;
// the closing notes go to the completion-notes field. Fails with
// *TooEarlyError while the gating duration has not elapsed.
func (e *Engine) CheckOut(ctx context.Context, employeeID, completionNotes string) (*model.AttendanceRecord, error) {
	completionNotes = strings.TrimSpace(completionNotes)
	if completionNotes == "" {
		return nil, ErrValidation
	}

	rec, err := e.openRecord(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if stateOf(rec) != StateOpen {
		return nil, ErrInvalidTransition
	}

	now := e.clock.Now()
	if remaining := remainingWait(*rec.CheckIn, now); remaining > 0 {
		return nil, &TooEarlyError{RemainingMinutes: remaining}
	}

	closed, err := e.repo.CloseSession(ctx, rec.ID, now, completionNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	e.publishCheckOut(ctx, closed)
	return closed, nil
}

// remainingWait reports the whole minutes left before check-out unlocks,
// ceiling of the remaining milliseconds. Zero means the gate has elapsed.
func remainingWait(checkIn, now time.Time) int {
	elapsed := now.Sub(checkIn)
	if elapsed >= GatingDuration {
		return 0
	}
	remainingMs := (GatingDuration - elapsed).Milliseconds()
	return int((remainingMs + 59999) / 60000)
}

func (e *Engine) todayRecord(ctx context.Context, employeeID string) (*model.AttendanceRecord, error) {
	rec, err := e.repo.FindByEmployeeAndDate(ctx, employeeID, DayKey(e.clock.Now()))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query today's attendance: %w", err)
	}
	return rec, nil
}

// openRecord finds the record check-out will close. The record's date is
// fixed at check-in time, so this is the open session even when the clock
// has crossed the IST midnight since.
func (e *Engine) openRecord(ctx context.Context, employeeID string) (*model.AttendanceRecord, error) {
	rec, err := e.repo.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query open session: %w", err)
	}
	return rec, nil
}

// publishCheckOut hands the closed session to the payroll and email queues.
// The store is the source of truth, so publish failures are logged and never
// fail the check-out.
func (e *Engine) publishCheckOut(ctx context.Context, rec *model.AttendanceRecord) {
	if e.producer == nil || rec.CheckIn == nil || rec.CheckOut == nil {
		return
	}

	hours := rec.CheckOut.Sub(*rec.CheckIn).Hours()

	if err := e.producer.PublishPayroll(ctx, messaging.CheckOutEvent{
		AttendanceID: rec.ID,
		EmployeeID:   rec.EmployeeID,
		Date:         rec.Date,
		HoursWorked:  hours,
		ClockOutTime: *rec.CheckOut,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("attendance_id", rec.ID).Msg("failed to publish payroll event")
	}

	if err := e.producer.PublishEmail(ctx, messaging.EmailEvent{
		AttendanceID: rec.ID,
		EmployeeID:   rec.EmployeeID,
		HoursWorked:  hours,
		OccurredAt:   *rec.CheckOut,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("attendance_id", rec.ID).Msg("failed to publish email event")
	}
}
