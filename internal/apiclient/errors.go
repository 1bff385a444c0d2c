package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized = errors.New("api: unauthorized")
	ErrNotFound     = errors.New("api: not found")
	ErrValidation   = errors.New("api: validation failed")
	ErrTransport    = errors.New("api: transport failure")
	ErrDecode       = errors.New("api: undecodable response")
)

// APIError is returned for any non-2xx response. Body is the raw payload the
// server sent back.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, strings.TrimSpace(e.Body))
}

// Is maps status codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	}
	return false
}

// Message renders the payload for an admin error banner. A `detail` field is
// preferred when present, otherwise the raw body is returned.
func (e *APIError) Message() string {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(e.Body), &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}
	if body := strings.TrimSpace(e.Body); body != "" {
		return body
	}
	return http.StatusText(e.Status)
}

// Describe converts any client error into text suitable for a notification.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	if errors.Is(err, ErrTransport) {
		return "The server could not be reached. Please try again."
	}
	return err.Error()
}
