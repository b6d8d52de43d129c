package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrParseFailure is returned when no array-shaped structure can be
	// recovered from a provider reply. It triggers provider fallback and
	// is never surfaced to the end user directly.
	ErrParseFailure = errors.New("provider response not parseable")
	// ErrGenerationFailed is returned when every configured provider has
	// been tried and failed. Terminal; no partial question list.
	ErrGenerationFailed = errors.New("question generation failed")
	// ErrResultNotFound indicates the requested result id does not exist.
	ErrResultNotFound = errors.New("result not found")
	// ErrSessionNotFound indicates the test session has expired or never existed.
	ErrSessionNotFound = errors.New("test session not found")
)

// ValidationError reports a malformed request payload. Surfaced
// immediately; no provider call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
