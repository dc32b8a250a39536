package hunter

import (
	"errors"
	"fmt"

	"github.com/hunterio/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingCompany is returned when a method needs a domain or a company
	// name to identify its target and neither was supplied.
	ErrMissingCompany = errors.New("a domain or a company name is required")

	// ErrMissingName is returned when the email finder is called without a
	// first and last name or a full name.
	ErrMissingName = errors.New("a first and last name, or a full name, is required")

	// ErrMissingArgument is returned, wrapped with the argument name, when a
	// required argument with no dedicated error kind is missing.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// HunterError is implemented by all SDK errors.
type HunterError interface {
	error
	HunterError() // marker method
}

// HTTPError reports a response with a non-success status code. It carries the
// status and raw body of the response; Message holds the detail string the
// service reported, when it reported one. URL never includes the api_key
// parameter.
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

// HunterError implements the HunterError interface.
func (e *HTTPError) HunterError() {}

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

// APIError reports a success response whose body lacks the data envelope the
// API contract promises. The service reports application-level failures such
// as an invalid key or an exhausted quota this way; Body holds the entire
// decoded response for inspection.
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

// HunterError implements the HunterError interface.
func (e *APIError) HunterError() {}

// NetworkError reports a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HunterError implements the HunterError interface.
func (e *NetworkError) HunterError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return &HTTPError{
			StatusCode: httpErr.StatusCode,
			Method:     httpErr.Method,
			URL:        httpErr.URL,
			Message:    httpErr.Message,
			Body:       httpErr.Body,
		}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Message: apiErr.Message,
			Body:    apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
