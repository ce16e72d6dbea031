// Package errors provides standardized error definitions for the Jamstream server.
package errors

import (
	"fmt"
	"net/http"
)

// Error represents a structured application error.
type Error struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"` // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error.
func (e *Error) WithDetails(details interface{}) *Error {
	return &Error{
		Code:       e.Code,
		Message:    e.Message,
		HTTPStatus: e.HTTPStatus,
		Details:    details,
		Err:        e.Err,
	}
}

// WithError wraps another error.
func (e *Error) WithError(err error) *Error {
	return &Error{
		Code:       e.Code,
		Message:    e.Message,
		HTTPStatus: e.HTTPStatus,
		Details:    e.Details,
		Err:        err,
	}
}

// New creates a new Error.
func New(code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an existing error with error code and message.
func Wrap(err error, code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Common error codes
const (
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeBadRequest     = "BAD_REQUEST"

	// Authentication errors
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"

	// Registration errors
	ErrCodeCountryDisallowed = "COUNTRY_DISALLOWED"
	ErrCodeProfileExists     = "PROFILE_ALREADY_EXISTS"

	// Resource errors
	ErrCodePlaylistNotFound = "PLAYLIST_NOT_FOUND"
	ErrCodeMusicNotFound    = "MUSIC_NOT_FOUND"

	// Validation errors
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeMissingField     = "MISSING_FIELD"

	// Service errors
	ErrCodeDatabaseError = "DATABASE_ERROR"
	ErrCodeCacheError    = "CACHE_ERROR"
	ErrCodeGeoIPError    = "GEOIP_ERROR"
)

// Predefined errors
var (
	ErrInternal       = New(ErrCodeInternal, "Internal server error", http.StatusInternalServerError)
	ErrInvalidRequest = New(ErrCodeInvalidRequest, "Invalid request", http.StatusBadRequest)
	ErrNotFound       = New(ErrCodeNotFound, "Resource not found", http.StatusNotFound)
	ErrConflict       = New(ErrCodeConflict, "Resource conflict", http.StatusConflict)
	ErrForbidden      = New(ErrCodeForbidden, "Access forbidden", http.StatusForbidden)
	ErrUnauthorized   = New(ErrCodeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	ErrBadRequest     = New(ErrCodeBadRequest, "Bad request", http.StatusBadRequest)
)

var (
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
	ErrTokenExpired       = New(ErrCodeTokenExpired, "Token has expired", http.StatusUnauthorized)
	ErrTokenInvalid       = New(ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized)
)

var (
	ErrCountryDisallowed = New(ErrCodeCountryDisallowed, "Registration is not available in your country", http.StatusForbidden)
	ErrProfileExists     = New(ErrCodeProfileExists, "Profile already exists", http.StatusConflict)
)

var (
	ErrValidationFailed = New(ErrCodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrInvalidInput     = New(ErrCodeInvalidInput, "Invalid input", http.StatusBadRequest)
	ErrMissingField     = New(ErrCodeMissingField, "Required field missing", http.StatusBadRequest)
)

var (
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error", http.StatusInternalServerError)
	ErrCacheError    = New(ErrCodeCacheError, "Cache error", http.StatusInternalServerError)
	ErrGeoIPError    = New(ErrCodeGeoIPError, "GeoIP lookup failed", http.StatusInternalServerError)
)

// IsError checks if an error is a specific application error.
func IsError(err error, target *Error) bool {
	if err == nil {
		return false
	}
	appErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return appErr.Code == target.Code
}

// GetHTTPStatus returns the HTTP status code for an error.
// If the error is not an *Error, returns 500.
func GetHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	appErr, ok := err.(*Error)
	if !ok {
		return http.StatusInternalServerError
	}
	return appErr.HTTPStatus
}

// GetCode returns the error code for an error.
// If the error is not an *Error, returns INTERNAL_ERROR.
func GetCode(err error) string {
	if err == nil {
		return ""
	}
	appErr, ok := err.(*Error)
	if !ok {
		return ErrCodeInternal
	}
	return appErr.Code
}
