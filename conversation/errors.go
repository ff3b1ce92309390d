package conversation

import "fmt"

// ValidationError represents an invalid engine construction parameter
// (mismatched seed lists, oversized seed set, bad capacity). It is raised
// before any turn runs and never retried.
type ValidationError struct {
	Field   string `json:"field"`   // Field that failed validation
	Value   any    `json:"value"`   // Value that was provided
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ResolutionError indicates the turn selector returned a username with no
// registered speaker. This is an internal consistency failure between the
// selector and the registry; it should never occur when construction
// validated correctly.
type ResolutionError struct {
	Username string
}

// Error implements the error interface for ResolutionError.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no registered speaker for selected username %q", e.Username)
}

// SpeakerError wraps an opaque failure from an external speaker invocation.
// The engine performs no retry and no partial recovery; the wrapped error is
// reachable via errors.Unwrap for callers that inspect provider failures.
type SpeakerError struct {
	Speaker string
	Err     error
}

// Error implements the error interface for SpeakerError.
func (e *SpeakerError) Error() string {
	return fmt.Sprintf("speaker %q invocation failed: %v", e.Speaker, e.Err)
}

// Unwrap returns the underlying invocation error.
func (e *SpeakerError) Unwrap() error { return e.Err }
