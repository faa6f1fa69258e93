// ABOUTME: Error classification for backend responses
// ABOUTME: Extracts server-provided messages with an HTTP status fallback

package api

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNotAuthenticated is returned when an operation needs a signed-in
// account and none is present. Callers short-circuit locally instead of
// issuing a request that would fail server-side.
var ErrNotAuthenticated = errors.New("not authenticated")

// Error is a non-2xx response from the backend. Message carries the
// server-provided detail when present, else a generic HTTP label.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// newError classifies an error response body. The backend reports
// failures as JSON with an optional detail or message string field;
// anything else falls back to an "HTTP <status>" label.
func newError(status int, body []byte) *Error {
	if msg := gjson.GetBytes(body, "detail").String(); msg != "" {
		return &Error{Status: status, Message: msg}
	}
	if msg := gjson.GetBytes(body, "message").String(); msg != "" {
		return &Error{Status: status, Message: msg}
	}
	return &Error{Status: status, Message: fmt.Sprintf("HTTP %d", status)}
}
