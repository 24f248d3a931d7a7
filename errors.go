package printforge

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoToken is returned by a TokenStore when no token is stored.
var ErrNoToken = errors.New("no token stored")

// ErrTokenMalformed is returned when a token cannot be decoded into claims.
var ErrTokenMalformed = errors.New("token is malformed")

// ErrUnexpectedFormat is returned when no extraction strategy recognizes an
// authentication response body. It signals a backend/client contract
// mismatch, not a user error.
var ErrUnexpectedFormat = errors.New("unexpected response format from server")

// ErrNotAuthenticated is returned by operations that need a stored token
// when the store is empty or the token does not decode.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError carries the status and backend-supplied message of a non-2xx
// response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsTokenMalformedError will check for token decode errors.
func IsTokenMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTokenMalformed) ||
		strings.Contains(err.Error(), "token is malformed")
}

// IsUnexpectedFormatError will check for response-shape failures.
func IsUnexpectedFormatError(err error) bool {
	return errors.Is(err, ErrUnexpectedFormat)
}

// IsUnauthorizedError reports whether err is a 401 from the backend.
func IsUnauthorizedError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFoundError reports whether err is a 404 from the backend.
func IsNotFoundError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
