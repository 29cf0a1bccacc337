package apix

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure reported by the backend. The server's JSON error body
// carries a single "error" message; the HTTP status code distinguishes the
// failure classes the client cares about.
type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.StatusCode)
}

// IsUnauthorized reports whether err is a backend rejection of the bearer
// token. Callers use this to drop a session the server no longer accepts.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is a backend 409.
func IsConflict(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// parseErrorResponse turns a non-2xx response body into a typed *Error.
// Returns nil for success responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &Error{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Message != "" {
		return apiErr
	}

	// Fallback: the body was not the expected error shape.
	apiErr.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	return apiErr
}
