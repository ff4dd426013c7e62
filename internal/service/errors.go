package service

import (
	"errors"
	"strings"
)

var (
	// ErrBotCheck means the Turnstile token was missing or rejected.
	ErrBotCheck = errors.New("bot verification failed")
	// ErrDuplicate means the email is already present in the target tab.
	// A legitimate business outcome, not a fault.
	ErrDuplicate = errors.New("duplicate signup")
	// ErrStorage means the storage collaborator failed. The underlying
	// cause is logged, never propagated to HTTP callers.
	ErrStorage = errors.New("storage failure")
)

// ValidationError lists every violated field of a submission, one
// human-readable string per violation.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}
