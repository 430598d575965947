package session

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation means a required text field was empty after trimming.
	// No mutation occurred; the caller should re-prompt.
	ErrValidation = errors.New("session: required field is empty")

	// ErrInvalidTransition means the requested transition is not legal from
	// the current state: check-in while a record already exists for today,
	// or check-out without an open session.
	ErrInvalidTransition = errors.New("session: invalid transition")

	// ErrEmployeeNotFound is returned when the employee id does not resolve.
	ErrEmployeeNotFound = errors.New("session: employee not found")
)

// TooEarlyError signals a check-out attempt before the gating duration has
// elapsed. It is a normal disabled-state signal rather than a hard failure;
// RemainingMinutes is what a caller shows as "available in N minutes".
type TooEarlyError struct {
	RemainingMinutes int
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("session: check-out available in %d minute(s)", e.RemainingMinutes)
}
