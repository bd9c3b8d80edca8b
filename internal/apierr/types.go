// Package apierr classifies backend failures and extracts the single
// human-readable message every screen surfaces. Classification exists so that
// callers can distinguish transient infrastructure failures from definitive
// rejections; no operation in this client retries automatically either way.
package apierr

import (
	"errors"
	"fmt"
)

// Category describes whether a failure could plausibly succeed on a manual
// re-trigger.
type Category int

const (
	// Transient failures: 5xx, timeouts, connection errors.
	Transient Category = iota

	// Permanent failures: 4xx rejections that will not change on retry.
	Permanent
)

func (c Category) String() string {
	switch c {
	case Transient:
		return "transient"
	case Permanent:
		return "permanent"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// Error wraps a backend or network failure with its category, the HTTP status
// (0 for non-HTTP errors) and the message extracted from the error payload.
type Error struct {
	Category   Category
	StatusCode int
	Message    string // backend-provided message, empty when none was sent
	Underlying error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

func (e *Error) Unwrap() error { return e.Underlying }

// IsPermanent reports whether err is or wraps a definitive rejection.
func IsPermanent(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Category == Permanent
	}
	return false
}
