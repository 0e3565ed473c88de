package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Session errors
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// Guard errors (violations disable actions client-side; requests that
	// arrive anyway are rejected with these)
	ErrNoDaysSelected   = errors.New("no days selected")
	ErrRecordCancelled  = errors.New("registration already cancelled")
	ErrEmailMissing     = errors.New("login email missing")
	ErrUnknownDay       = errors.New("unknown exhibition day")
	ErrInvalidAttendees = errors.New("attendee count below 1")

	// Confirmation errors
	ErrConfirmationNotFound = errors.New("confirmation not found")
	ErrConfirmationExpired  = errors.New("confirmation expired")

	// Backend errors
	ErrBackendUnreachable = errors.New("backend unreachable")
	ErrPriceComputation   = errors.New("price computation failed")

	// Document errors
	ErrNoDocument = errors.New("no confirmation document available")
)
