package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"nat.service/internal/core"
	"nat.service/internal/core/model"
	"nat.service/internal/core/session"
	"nat.service/internal/ports/repository"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

type fakeAttendanceRepo struct {
	byKey map[string]*model.AttendanceRecord // employeeID|date
	byID  map[string]*model.AttendanceRecord
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		byKey: make(map[string]*model.AttendanceRecord),
		byID:  make(map[string]*model.AttendanceRecord),
	}
}

func cloneRecord(rec *model.AttendanceRecord) *model.AttendanceRecord {
	clone := *rec
	return &clone
}

func (r *fakeAttendanceRepo) FindByEmployeeAndDate(_ context.Context, employeeID, date string) (*model.AttendanceRecord, error) {
	rec, ok := r.byKey[employeeID+"|"+date]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneRecord(rec), nil
}

func (r *fakeAttendanceRepo) FindOpenByEmployee(_ context.Context, employeeID string) (*model.AttendanceRecord, error) {
	var latest *model.AttendanceRecord
	for _, rec := range r.byID {
		if rec.EmployeeID != employeeID || rec.CheckOut != nil {
			continue
		}
		if latest == nil || rec.CheckIn.After(*latest.CheckIn) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return cloneRecord(latest), nil
}

func (r *fakeAttendanceRepo) Create(_ context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	key := rec.EmployeeID + "|" + rec.Date
	if _, ok := r.byKey[key]; ok {
		return nil, repository.ErrDuplicateRecord
	}
	clone := cloneRecord(rec)
	r.byKey[key] = clone
	r.byID[rec.ID] = clone
	return cloneRecord(clone), nil
}

func (r *fakeAttendanceRepo) CloseSession(_ context.Context, id string, checkOut time.Time, completionNotes string) (*model.AttendanceRecord, error) {
	rec, ok := r.byID[id]
	if !ok || rec.CheckOut != nil {
		return nil, repository.ErrNotFound
	}
	rec.CheckOut = &checkOut
	rec.CompletionNotes = completionNotes
	return cloneRecord(rec), nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	for _, rec := range r.byID {
		if rec.EmployeeID == employeeID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByDate(_ context.Context, date string) ([]model.AttendanceWithEmployee, error) {
	var out []model.AttendanceWithEmployee
	for _, rec := range r.byID {
		if rec.Date == date {
			out = append(out, model.AttendanceWithEmployee{AttendanceRecord: *rec})
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByDateRange(_ context.Context, start, end string) ([]model.AttendanceWithEmployee, error) {
	var out []model.AttendanceWithEmployee
	for _, rec := range r.byID {
		if rec.Date >= start && rec.Date <= end {
			out = append(out, model.AttendanceWithEmployee{AttendanceRecord: *rec})
		}
	}
	return out, nil
}

func newTestHandler(clock session.Clock) (*AttendanceHandler, *fakeAttendanceRepo) {
	repo := newFakeAttendanceRepo()
	engine := session.NewEngine(repo, nil, clock)
	return &AttendanceHandler{
		Engine:     engine,
		Attendance: core.NewAttendanceService(repo, clock),
	}, repo
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string, vars map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req = mux.SetURLVars(req, vars)
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestCheckInReturnsCreated(t *testing.T) {
	clock := &stubClock{now: time.Date(2026, 3, 9, 3, 30, 0, 0, time.UTC)}
	h, _ := newTestHandler(clock)

	rr := postJSON(t, h.CheckIn, "/api/v1/employees/emp-1/checkin",
		`{"workDescription":"site visit"}`, map[string]string{"employeeId": "emp-1"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var rec model.AttendanceRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if rec.Date != "2026-03-09" {
		t.Errorf("expected IST date 2026-03-09, got %s", rec.Date)
	}
	if rec.WorkDescription != "site visit" {
		t.Errorf("unexpected work description: %s", rec.WorkDescription)
	}
}

func TestCheckInEmptyDescriptionReturns400(t *testing.T) {
	h, _ := newTestHandler(&stubClock{now: time.Now()})

	rr := postJSON(t, h.CheckIn, "/api/v1/employees/emp-1/checkin",
		`{"workDescription":"  "}`, map[string]string{"employeeId": "emp-1"})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCheckInMalformedBodyReturns400(t *testing.T) {
	h, _ := newTestHandler(&stubClock{now: time.Now()})

	rr := postJSON(t, h.CheckIn, "/api/v1/employees/emp-1/checkin",
		`{not json`, map[string]string{"employeeId": "emp-1"})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCheckOutTooEarlyReturns409WithRemaining(t *testing.T) {
	clock := &stubClock{now: time.Date(2026, 3, 9, 3, 30, 0, 0, time.UTC)}
	h, _ := newTestHandler(clock)

	rr := postJSON(t, h.CheckIn, "/checkin",
		`{"workDescription":"site visit"}`, map[string]string{"employeeId": "emp-1"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("check-in failed: %d", rr.Code)
	}

	clock.now = clock.now.Add(4 * time.Minute)
	rr = postJSON(t, h.CheckOut, "/checkout",
		`{"completionNotes":"done"}`, map[string]string{"employeeId": "emp-1"})

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}

	var body struct {
		Error            string `json:"error"`
		RemainingMinutes int    `json:"remainingMinutes"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.RemainingMinutes != 6 {
		t.Errorf("expected remainingMinutes 6, got %d", body.RemainingMinutes)
	}
}

func TestCheckOutWithoutSessionReturns409(t *testing.T) {
	h, _ := newTestHandler(&stubClock{now: time.Now()})

	rr := postJSON(t, h.CheckOut, "/checkout",
		`{"completionNotes":"done"}`, map[string]string{"employeeId": "emp-1"})

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestTodayReportsSessionState(t *testing.T) {
	clock := &stubClock{now: time.Date(2026, 3, 9, 3, 30, 0, 0, time.UTC)}
	h, _ := newTestHandler(clock)

	req := httptest.NewRequest(http.MethodGet, "/today", nil)
	req = mux.SetURLVars(req, map[string]string{"employeeId": "emp-1"})
	rr := httptest.NewRecorder()
	h.Today(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.State != "no_session" {
		t.Errorf("expected no_session, got %s", body.State)
	}
}
