// Package api holds the raw HTTP calls behind the Client methods. Each
// function is self-contained: it builds the request, performs it with the
// supplied *http.Client and maps non-success responses through apierr so the
// backend's error message survives to the caller.
package api

import (
	"io"
	"net/http"
)

// readBody drains a response body for status/message extraction. Failures are
// tolerated: an unreadable error body just means no backend message.
func readBody(resp *http.Response) []byte {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	return b
}
