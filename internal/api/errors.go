package api

import (
	"errors"
	"fmt"

	"github.com/clarketm/json"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// HTTPError represents a response with a non-success status code.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	Body       []byte
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d for %s %s", e.StatusCode, e.Method, e.URL)
}

// Is implements errors.Is for sentinel error matching.
func (e *HTTPError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// APIError represents a success response whose body lacks the data envelope
// the API contract promises. Body holds the entire decoded response.
type APIError struct {
	Message string
	Body    map[string]any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	return "API response has no data field"
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// newHTTPError builds an HTTPError, lifting the service's reported detail
// string into Message when the body has the documented errors shape.
func newHTTPError(method, url string, statusCode int, body []byte) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Body:       body,
	}

	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err == nil {
		httpErr.Message = errorDetails(envelope)
	}

	return httpErr
}

// errorDetails extracts the first details string from a body shaped like
// {"errors": [{"id": ..., "code": ..., "details": ...}]}.
func errorDetails(body map[string]any) string {
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) == 0 {
		return ""
	}
	first, ok := errs[0].(map[string]any)
	if !ok {
		return ""
	}
	details, _ := first["details"].(string)
	return details
}
