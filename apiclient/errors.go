package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx platform response. Message carries the server's
// "error" field verbatim so handlers can surface it to the user unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsAuthError reports whether err is a 401/403 platform response.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// ServerMessage extracts the server-reported error message, or a generic
// fallback for transport-level failures that never reached the platform.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "request failed, please try again"
}
