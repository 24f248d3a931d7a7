package printforge_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	printforge "github.com/printforge/go-printforge"
	"github.com/stretchr/testify/assert"
)

func TestIsTokenMalformedError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "sentinel",
			err:      printforge.ErrTokenMalformed,
			expected: true,
		},
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("%w: bad segment", printforge.ErrTokenMalformed),
			expected: true,
		},
		{
			name:     "legacy string match",
			err:      errors.New("some wrapper: token is malformed"),
			expected: true,
		},
		{
			name:     "different error",
			err:      errors.New("invalid token"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, printforge.IsTokenMalformedError(tt.err))
		})
	}
}

func TestAPIErrorPredicates(t *testing.T) {
	unauthorized := &printforge.APIError{Status: http.StatusUnauthorized, Message: "expired"}
	notFound := &printforge.APIError{Status: http.StatusNotFound, Message: "gone"}

	assert.True(t, printforge.IsUnauthorizedError(unauthorized))
	assert.True(t, printforge.IsUnauthorizedError(fmt.Errorf("request: %w", unauthorized)))
	assert.False(t, printforge.IsUnauthorizedError(notFound))
	assert.False(t, printforge.IsUnauthorizedError(nil))

	assert.True(t, printforge.IsNotFoundError(notFound))
	assert.False(t, printforge.IsNotFoundError(unauthorized))

	assert.Equal(t, "api error 404: gone", notFound.Error())
}

func TestIsUnexpectedFormatError(t *testing.T) {
	assert.True(t, printforge.IsUnexpectedFormatError(printforge.ErrUnexpectedFormat))
	assert.True(t, printforge.IsUnexpectedFormatError(fmt.Errorf("login: %w", printforge.ErrUnexpectedFormat)))
	assert.False(t, printforge.IsUnexpectedFormatError(errors.New("other")))
	assert.False(t, printforge.IsUnexpectedFormatError(nil))
}
