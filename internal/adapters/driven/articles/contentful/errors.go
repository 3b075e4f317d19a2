package contentful

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// RateLimitError is returned when the API answers 429.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("contentful: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError represents a Contentful error response.
type APIError struct {
	StatusCode int
	// ErrorID is the sys.id of the error body, e.g. "AccessTokenInvalid".
	ErrorID string
	Message string
	URL     string
}

func (e *APIError) Error() string {
	if e.ErrorID != "" {
		return fmt.Sprintf("contentful: API error %d %s: %s (URL: %s)", e.StatusCode, e.ErrorID, e.Message, e.URL)
	}
	return fmt.Sprintf("contentful: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates the space, environment or
// content type does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates a rejected access token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}
