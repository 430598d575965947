package session

import "time"

// All day boundaries in this domain are fixed to Indian Standard Time,
// regardless of where the server runs.
var IST = time.FixedZone("IST", 5*3600+1800)

// Clock supplies wall-clock time so the engine can be tested with a frozen
// clock.
type Clock interface {
	Now() time.Time
}

type istClock struct{}

func (istClock) Now() time.Time {
	return time.Now().In(IST)
}

// NewISTClock returns the production clock, pinned to IST.
func NewISTClock() Clock {
	return istClock{}
}

// DayKey renders the IST calendar day of t as yyyy-MM-dd. This is the date
// half of the (employee, date) natural key.
func DayKey(t time.Time) string {
	return t.In(IST).Format("2006-01-02")
}
