package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNoteNotFound is returned when no note exists for a well-formed id.
	ErrNoteNotFound = errors.New("note not found")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidID is returned when an identifier is not in the store's accepted format.
	ErrInvalidID = errors.New("malformed id")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username must be unique")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrTokenMissing is returned when the request carries no bearer token.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid is returned when a bearer token fails verification or
	// does not resolve to a user.
	ErrTokenInvalid = errors.New("token invalid")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrNoteNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOTE_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrInvalidID:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ID")
	case ErrDuplicateUsername:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_USERNAME")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrTokenMissing:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_MISSING")
	case ErrTokenInvalid:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_INVALID")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
