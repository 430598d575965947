package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"nat.service/internal/core/model"
	"nat.service/internal/ports/messaging"
	"nat.service/internal/ports/repository"
	"nat.service/internal/worker"
	"nat.service/internal/worker/payrollapi"
)

// PayrollProcessor handles jobs from the payroll queue, which involves calling
// the external payroll API. It uses a circuit breaker to avoid hammering the
// payroll system if it's having issues.
type PayrollProcessor struct {
	repo   repository.JobRepository
	client payrollapi.Client
	cb     *gobreaker.CircuitBreaker
}

// NewProcessor creates a new processor for the payroll queue. It sets up a
// circuit breaker to protect the payroll API from being overwhelmed.
func NewProcessor(repo repository.JobRepository, client payrollapi.Client) *PayrollProcessor {
	settings := gobreaker.Settings{
		Name:        "Payroll-API",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate is bigger then 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &PayrollProcessor{
		repo:   repo,
		client: client,
		cb:     gobreaker.NewCircuitBreaker(settings),
	}
}

// Process is the core logic for handling a message from the payroll queue.
// It calls the payroll API through a circuit breaker and handles retries with
// exponential backoff.
func (p *PayrollProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.CheckOutEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal payroll event")
		return false, 0, err // Do not retry on malformed message
	}

	log.Ctx(ctx).Info().
		Str("employee_id", event.EmployeeID).
		Float64("hours", event.HoursWorked).
		Msg("Processing check-out for payroll")

	state, err := p.repo.GetJobState(ctx, event.AttendanceID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to get job state from db: %w", err)
	}

	if state.PayrollStatus == model.ProcessingCompleted {
		return false, 0, nil
	}

	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.client.RecordCheckOut(ctx, event)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			log.Ctx(ctx).Warn().Msg("Circuit breaker is OPEN; skipping payroll API call")
		}
		newCount := state.PayrollRetryCount + 1
		p.repo.UpdatePayrollStatus(ctx, event.AttendanceID, model.ProcessingPending, newCount)

		delay := worker.Backoff(newCount)
		return true, delay, err
	}

	err = p.repo.UpdatePayrollStatus(ctx, event.AttendanceID, model.ProcessingCompleted, 0)
	return false, 0, err
}
