package session

import (
	"time"

	"nat.service/internal/core/model"
)

// State of today's attendance session.
type State string

const (
	// StateNoSession: no record exists for today.
	StateNoSession State = "no_session"
	// StateOpen: today's record has a check-in but no check-out.
	StateOpen State = "open"
	// StateClosed: today's record has both timestamps; terminal for the day.
	StateClosed State = "closed"
)

// Resolve finds the record whose date equals the IST day of now and derives
// the session state from it. Pure; record order is irrelevant and repeated
// calls return the same answer.
func Resolve(records []model.AttendanceRecord, now time.Time) (State, *model.AttendanceRecord) {
	today := DayKey(now)
	for i := range records {
		if records[i].Date != today {
			continue
		}
		return stateOf(&records[i]), &records[i]
	}
	return StateNoSession, nil
}

func stateOf(rec *model.AttendanceRecord) State {
	switch {
	case rec == nil || rec.CheckIn == nil:
		return StateNoSession
	case rec.CheckOut == nil:
		return StateOpen
	default:
		return StateClosed
	}
}

// StatusFor classifies a record for calendar display:
// present when both timestamps are set, partial when a record from a prior
// day was never closed. A nil record is absent; that value is inferred at
// display time, never stored.
func StatusFor(rec *model.AttendanceRecord, now time.Time) model.AttendanceStatus {
	if rec == nil || rec.CheckIn == nil {
		return model.StatusAbsent
	}
	if rec.CheckOut != nil {
		return model.StatusPresent
	}
	if rec.Date == DayKey(now) {
		// Still open today; counted as present until the day elapses.
		return model.StatusPresent
	}
	return model.StatusPartial
}
