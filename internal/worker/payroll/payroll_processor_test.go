package payroll

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"nat.service/internal/core/model"
	"nat.service/internal/ports/messaging"
	"nat.service/internal/ports/repository"
)

type fakeJobRepo struct {
	states map[string]*model.JobState

	payrollUpdates []model.ProcessingStatus
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{states: make(map[string]*model.JobState)}
}

func (r *fakeJobRepo) GetJobState(_ context.Context, attendanceID string) (*model.JobState, error) {
	state, ok := r.states[attendanceID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *state
	return &clone, nil
}

func (r *fakeJobRepo) UpdatePayrollStatus(_ context.Context, attendanceID string, status model.ProcessingStatus, retryCount int) error {
	if state, ok := r.states[attendanceID]; ok {
		state.PayrollStatus = status
		state.PayrollRetryCount = retryCount
	}
	r.payrollUpdates = append(r.payrollUpdates, status)
	return nil
}

func (r *fakeJobRepo) UpdateEmailStatus(_ context.Context, attendanceID string, status model.ProcessingStatus, retryCount int) error {
	if state, ok := r.states[attendanceID]; ok {
		state.EmailStatus = status
		state.EmailRetryCount = retryCount
	}
	return nil
}

type fakeClient struct {
	err   error
	calls int
}

func (c *fakeClient) RecordCheckOut(context.Context, messaging.CheckOutEvent) error {
	c.calls++
	return c.err
}

func message(body string) types.Message {
	return types.Message{Body: aws.String(body)}
}

const eventBody = `{"attendanceId":"att-1","employeeId":"emp-1","date":"2026-03-09","hoursWorked":8.5}`

func TestProcessMarksCompleted(t *testing.T) {
	repo := newFakeJobRepo()
	repo.states["att-1"] = &model.JobState{AttendanceID: "att-1", PayrollStatus: model.ProcessingPending}
	client := &fakeClient{}
	p := NewProcessor(repo, client)

	retry, delay, err := p.Process(context.Background(), message(eventBody))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retry || delay != 0 {
		t.Errorf("expected no retry, got retry=%v delay=%d", retry, delay)
	}
	if client.calls != 1 {
		t.Errorf("expected one API call, got %d", client.calls)
	}
	if repo.states["att-1"].PayrollStatus != model.ProcessingCompleted {
		t.Errorf("expected completed status, got %s", repo.states["att-1"].PayrollStatus)
	}
}

func TestProcessSkipsCompletedJob(t *testing.T) {
	repo := newFakeJobRepo()
	repo.states["att-1"] = &model.JobState{AttendanceID: "att-1", PayrollStatus: model.ProcessingCompleted}
	client := &fakeClient{}
	p := NewProcessor(repo, client)

	retry, _, err := p.Process(context.Background(), message(eventBody))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retry {
		t.Error("completed job should not retry")
	}
	if client.calls != 0 {
		t.Errorf("completed job should not call the API, got %d calls", client.calls)
	}
}

func TestProcessRetriesOnAPIFailure(t *testing.T) {
	repo := newFakeJobRepo()
	repo.states["att-1"] = &model.JobState{AttendanceID: "att-1", PayrollStatus: model.ProcessingPending, PayrollRetryCount: 1}
	client := &fakeClient{err: errors.New("payroll down")}
	p := NewProcessor(repo, client)

	retry, delay, err := p.Process(context.Background(), message(eventBody))
	if err == nil {
		t.Fatal("expected error")
	}
	if !retry {
		t.Error("expected retry on API failure")
	}
	if delay != 40 {
		t.Errorf("expected backoff 40s for second retry, got %d", delay)
	}
	if repo.states["att-1"].PayrollRetryCount != 2 {
		t.Errorf("expected retry count 2, got %d", repo.states["att-1"].PayrollRetryCount)
	}
}

func TestProcessDoesNotRetryMalformedMessage(t *testing.T) {
	p := NewProcessor(newFakeJobRepo(), &fakeClient{})

	retry, _, err := p.Process(context.Background(), message(`{broken`))
	if err == nil {
		t.Fatal("expected error")
	}
	if retry {
		t.Error("malformed message should not retry")
	}
}

func TestProcessRetriesWhenStateMissing(t *testing.T) {
	p := NewProcessor(newFakeJobRepo(), &fakeClient{})

	retry, delay, err := p.Process(context.Background(), message(eventBody))
	if err == nil {
		t.Fatal("expected error")
	}
	if !retry || delay != 10 {
		t.Errorf("expected short retry, got retry=%v delay=%d", retry, delay)
	}
}
