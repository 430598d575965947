package session

import (
	"testing"
	"time"

	"nat.service/internal/core/model"
)

func TestDayKeyUsesISTBoundary(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"noon IST", time.Date(2026, 3, 9, 12, 0, 0, 0, IST), "2026-03-09"},
		{"just before IST midnight", time.Date(2026, 3, 9, 23, 59, 59, 0, IST), "2026-03-09"},
		{"19:00 UTC is next day in IST", time.Date(2026, 3, 9, 19, 0, 0, 0, time.UTC), "2026-03-10"},
		{"18:29 UTC is still same day in IST", time.Date(2026, 3, 9, 18, 29, 0, 0, time.UTC), "2026-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.at); got != tt.want {
				t.Errorf("DayKey(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, IST)
	checkIn := now.Add(-time.Hour)
	checkOut := now.Add(-10 * time.Minute)

	open := model.AttendanceRecord{ID: "a1", EmployeeID: "emp-1", Date: "2026-03-09", CheckIn: &checkIn}
	closed := open
	closed.CheckOut = &checkOut
	yesterday := model.AttendanceRecord{ID: "a0", EmployeeID: "emp-1", Date: "2026-03-08", CheckIn: &checkIn}

	tests := []struct {
		name      string
		records   []model.AttendanceRecord
		wantState State
		wantID    string
	}{
		{"no records", nil, StateNoSession, ""},
		{"only prior days", []model.AttendanceRecord{yesterday}, StateNoSession, ""},
		{"open today", []model.AttendanceRecord{yesterday, open}, StateOpen, "a1"},
		{"closed today", []model.AttendanceRecord{closed, yesterday}, StateClosed, "a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, rec := Resolve(tt.records, now)
			if state != tt.wantState {
				t.Errorf("state = %q, want %q", state, tt.wantState)
			}
			if tt.wantID == "" && rec != nil {
				t.Errorf("record = %+v, want nil", rec)
			}
			if tt.wantID != "" && (rec == nil || rec.ID != tt.wantID) {
				t.Errorf("record = %+v, want id %q", rec, tt.wantID)
			}
		})
	}
}

func TestResolveIsOrderIndependent(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, IST)
	checkIn := now.Add(-time.Hour)
	records := []model.AttendanceRecord{
		{ID: "a0", EmployeeID: "emp-1", Date: "2026-03-07", CheckIn: &checkIn},
		{ID: "a1", EmployeeID: "emp-1", Date: "2026-03-09", CheckIn: &checkIn},
		{ID: "a2", EmployeeID: "emp-1", Date: "2026-03-08", CheckIn: &checkIn},
	}
	reversed := []model.AttendanceRecord{records[2], records[1], records[0]}

	for _, set := range [][]model.AttendanceRecord{records, reversed} {
		state, rec := Resolve(set, now)
		if state != StateOpen || rec == nil || rec.ID != "a1" {
			t.Errorf("Resolve = (%q, %+v), want (open, a1)", state, rec)
		}
	}
}

func TestStatusFor(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, IST)
	checkIn := now.Add(-time.Hour)
	checkOut := now.Add(-10 * time.Minute)

	tests := []struct {
		name string
		rec  *model.AttendanceRecord
		want model.AttendanceStatus
	}{
		{"no record is absent", nil, model.StatusAbsent},
		{
			"both timestamps is present",
			&model.AttendanceRecord{Date: "2026-03-08", CheckIn: &checkIn, CheckOut: &checkOut},
			model.StatusPresent,
		},
		{
			"open prior day is partial",
			&model.AttendanceRecord{Date: "2026-03-08", CheckIn: &checkIn},
			model.StatusPartial,
		},
		{
			"open today is present",
			&model.AttendanceRecord{Date: "2026-03-09", CheckIn: &checkIn},
			model.StatusPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.rec, now); got != tt.want {
				t.Errorf("StatusFor = %q, want %q", got, tt.want)
			}
		})
	}
}
