package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"service message", fmt.Errorf("search: %w", &ServiceError{Message: "Too many results."}), "Too many results."},
		{"empty service message", &ServiceError{}, "no movies found"},
		{"bare no results", ErrNoResults, "No movies found"},
		{"unreachable", fmt.Errorf("%w: dial tcp", ErrUnavailable), "Could not reach the movie service. Check your connection."},
		{"status", fmt.Errorf("%w 503: Service Unavailable", ErrHTTPStatus), "The movie service returned an error. Try again shortly."},
		{"bad key", ErrInvalidAPIKey, "The OMDb API key was rejected. Check your configuration."},
		{"malformed", fmt.Errorf("%w: eof", ErrMalformedResponse), "The movie service sent an unexpected response."},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestServiceErrorUnwrapsToNoResults(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ServiceError{Message: "Movie not found!"})
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestMovieDisplayTitle(t *testing.T) {
	assert.Equal(t, "Heat (1995)", Movie{Title: "Heat", Year: "1995"}.DisplayTitle())
	assert.Equal(t, "Heat", Movie{Title: "Heat"}.DisplayTitle())
	assert.Equal(t, "Series", MediaTypeSeries.Label())
}
