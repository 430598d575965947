package core

import "errors"

var (
	// ErrValidation covers missing or malformed input fields. Nothing is
	// persisted; the caller re-prompts.
	ErrValidation = errors.New("core: invalid input")

	// ErrNotFound is returned when the referenced entity does not exist.
	ErrNotFound = errors.New("core: not found")

	// ErrAlreadyProcessed is returned when a reset request is processed a
	// second time; pending -> approved|rejected is a one-shot transition.
	ErrAlreadyProcessed = errors.New("core: request already processed")

	// ErrUnauthorized is returned for a bad admin password or an expired
	// session token.
	ErrUnauthorized = errors.New("core: unauthorized")
)
