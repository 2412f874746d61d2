package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the uniform failure result for every API call: network failures,
// timeouts, and non-2xx statuses all surface as *Error. Status 0 means no
// server response was received.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Unauthorized reports a rejected-credential failure: the server was
// reachable but the token was invalid or expired.
func (e *Error) Unauthorized() bool { return e.Status == http.StatusUnauthorized }

// Network reports that no server response was received (connection failure
// or timeout).
func (e *Error) Network() bool { return e.Status == 0 }

// AsError unwraps err to an *Error when it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a rejected-credential failure.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Unauthorized()
}

// Message returns the short human-readable message for display. Server
// messages pass through verbatim.
func Message(err error) string {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
