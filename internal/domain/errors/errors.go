package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int      // HTTP status code
	ErrorCode() string  // Business error code
	Message() string    // User-friendly error message
	PayloadKey() string // JSON field the message is returned under ("error" or "message")
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode   int
	errorCode  string
	message    string
	payloadKey string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, payloadKey string) *BaseError {
	return &BaseError{
		httpCode:   httpCode,
		errorCode:  errorCode,
		message:    message,
		payloadKey: payloadKey,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// PayloadKey returns the JSON field name used for the message on the wire.
// The signup endpoint reports failures under "error", the login endpoint
// under "message"; both shapes are part of the public contract.
func (e *BaseError) PayloadKey() string {
	return e.payloadKey
}

// Predefined error types.
//
// The two login failures deliberately share one message: an unknown email
// and a wrong password must be indistinguishable to the caller, which
// prevents account enumeration. Do not split them.
var (
	// ErrMissingFields is returned when any signup field is absent or empty.
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"All fields are required",
		"error",
	)

	// ErrEmailExists is returned when the signup email is already registered.
	ErrEmailExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_EXISTS",
		"Email already exists",
		"error",
	)

	// ErrRegistrationFailed covers every other signup failure, including
	// phone uniqueness collisions and transient store errors. Internal
	// detail is logged server-side only.
	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"Registration failed",
		"error",
	)

	// ErrInvalidCredentials conflates "no such email" and "wrong password".
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"message",
	)

	// ErrLoginFailed covers store failures during login.
	ErrLoginFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGIN_FAILED",
		"Error logging in. Please try again later.",
		"message",
	)
)
