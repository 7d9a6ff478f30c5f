package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for metadata operations
var (
	// ErrUnavailable indicates the metadata service could not be reached
	ErrUnavailable = errors.New("movie service is unreachable")

	// ErrHTTPStatus indicates the service answered with a non-2xx status
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrInvalidAPIKey indicates the service rejected the configured key
	ErrInvalidAPIKey = errors.New("API key rejected")

	// ErrNoResults indicates the service answered Response "False"
	ErrNoResults = errors.New("no movies found")

	// ErrMalformedResponse indicates a body that does not match the documented shape
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoActiveSearch indicates a page change was requested without a query
	ErrNoActiveSearch = errors.New("no active search")

	// ErrInvalidPage indicates a page number below 1
	ErrInvalidPage = errors.New("page must be at least 1")
)

// ServiceError carries the message the metadata service attached to a
// Response "False" answer. It unwraps to ErrNoResults.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return ErrNoResults.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return ErrNoResults
}

// UserMessage normalises any metadata error into the single line shown to
// the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var svcErr *ServiceError
	switch {
	case errors.As(err, &svcErr):
		return svcErr.Error()
	case errors.Is(err, ErrNoResults):
		return "No movies found"
	case errors.Is(err, ErrInvalidAPIKey):
		return "The OMDb API key was rejected. Check your configuration."
	case errors.Is(err, ErrUnavailable):
		return "Could not reach the movie service. Check your connection."
	case errors.Is(err, ErrHTTPStatus):
		return "The movie service returned an error. Try again shortly."
	case errors.Is(err, ErrMalformedResponse):
		return "The movie service sent an unexpected response."
	default:
		msg := strings.TrimSpace(err.Error())
		if msg == "" {
			return "Something went wrong"
		}
		return msg
	}
}
