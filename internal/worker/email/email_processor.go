package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"

	"nat.service/internal/core"
	"nat.service/internal/core/model"
	"nat.service/internal/ports/messaging"
	"nat.service/internal/ports/repository"
	"nat.service/internal/worker"
)

type EmailProcessor struct {
	emailService core.EmailService
	repo         repository.JobRepository
	domain       string
}

// NewProcessor sets up a new processor for handling email jobs. It needs an
// email service to send the checkout summary and a repository to update the
// job status.
func NewProcessor(emailService core.EmailService, repo repository.JobRepository, domain string) *EmailProcessor {
	return &EmailProcessor{
		emailService: emailService,
		repo:         repo,
		domain:       domain,
	}
}

// Process is the main entry point for handling a message from the email queue.
// It tries to send an email and will tell the worker to retry if something
// goes wrong.
func (p *EmailProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.EmailEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal email event")
		return false, 0, err // Do not retry on malformed message
	}

	state, err := p.repo.GetJobState(ctx, event.AttendanceID)
	if err != nil {
		// If we can't get the record, retry after a short delay.
		return true, 10, fmt.Errorf("failed to get job state for email processing: %w", err)
	}

	if state.EmailStatus == model.ProcessingCompleted {
		log.Ctx(ctx).Info().Str("attendance_id", event.AttendanceID).Msg("Email already sent. Skipping.")
		return false, 0, nil
	}

	err = p.emailService.SendCheckOutSummary(ctx, event.EmployeeID+"@"+p.domain, event.HoursWorked)
	if err != nil {
		newCount := state.EmailRetryCount + 1
		p.repo.UpdateEmailStatus(ctx, event.AttendanceID, model.ProcessingPending, newCount)

		delay := worker.Backoff(newCount)
		return true, delay, err
	}

	err = p.repo.UpdateEmailStatus(ctx, event.AttendanceID, model.ProcessingCompleted, 0)
	return false, 0, err
}
