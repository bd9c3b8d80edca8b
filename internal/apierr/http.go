package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// GenericMessage is the localized fallback shown when the backend did not
// provide a usable message.
const GenericMessage = "Não foi possível completar a operação. Tente novamente mais tarde."

// FromStatus builds an Error for a non-success HTTP response, extracting the
// backend's message from the body when one is present.
func FromStatus(operation string, statusCode int, body []byte) *Error {
	return &Error{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Message:    extractMessage(body),
		Underlying: fmt.Errorf("%s: status %d", operation, statusCode),
	}
}

// FromTransport builds an Error for a network-level failure. Those are always
// transient: the request may never have reached the server.
func FromTransport(operation string, err error) *Error {
	return &Error{
		Category:   Transient,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

func categoryFor(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Transient
		default:
			return Permanent
		}
	default:
		// 5xx and anything unexpected.
		return Transient
	}
}

// extractMessage pulls the human-readable message out of the backend's error
// payload. The backend uses {"message": ...}; older endpoints used
// {"error": ...} or {"mensagem": ...}.
func extractMessage(body []byte) string {
	var payload struct {
		Message  string `json:"message"`
		Error    string `json:"error"`
		Mensagem string `json:"mensagem"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, m := range []string{payload.Message, payload.Mensagem, payload.Error} {
		if s := strings.TrimSpace(m); s != "" {
			return s
		}
	}
	return ""
}

// UserMessage returns the message a screen should display for err: the
// backend-provided one when available, even through wrapping, the generic
// fallback otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return GenericMessage
}
