package mindly

import (
	"errors"

	"github.com/mindly/mindly-client/internal/apierr"
	"github.com/mindly/mindly-client/internal/types"
)

var errEmptyBaseURL = errors.New("base URL cannot be empty")

// ErrNotFound is returned when the backend reports 404 for a resource.
// Re-exported so callers compare against a single symbol.
var ErrNotFound = types.ErrNotFound

// IsPermanent reports whether err is a definitive backend rejection (4xx)
// that a manual re-trigger will not fix, as opposed to a transient failure.
func IsPermanent(err error) bool { return apierr.IsPermanent(err) }

// UserMessage returns the single human-readable message a screen should
// display for err: the backend-provided message when one was sent, the
// generic localized fallback otherwise.
func UserMessage(err error) string { return apierr.UserMessage(err) }
