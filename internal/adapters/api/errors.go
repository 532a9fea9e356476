package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Error is a non-2xx answer from the collaborator.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Details    string
	Timestamp  time.Time

	notFound error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: status %d", e.Method, e.Path, e.StatusCode)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Details != "" {
		fmt.Fprintf(&b, " (%s)", e.Details)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.notFound
}

type errorResponse struct {
	Error     string    `json:"error"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func decodeError(method, path string, status int, payload []byte) *Error {
	apiErr := &Error{Method: method, Path: path, StatusCode: status}

	var body errorResponse
	if err := json.Unmarshal(payload, &body); err == nil {
		apiErr.Message = body.Error
		apiErr.Details = body.Details
		apiErr.Timestamp = body.Timestamp
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// IsTransient reports whether err is worth retrying later: server errors,
// throttling, timeouts and lost connectivity. Client errors and caller
// cancellation are not.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError ||
			apiErr.StatusCode == http.StatusRequestTimeout ||
			apiErr.StatusCode == http.StatusTooManyRequests
	}

	return true
}

func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
