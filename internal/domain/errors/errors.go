package errors

import (
	"net/http"

	"staffing/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	category  bool // a category error is matched by every error sharing its HTTP code
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func newCategoryError(httpCode int, errorCode, message string) *BaseError {
	err := NewBaseError(httpCode, errorCode, message, "")
	err.category = true

	return err
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		category:  e.category,
	}
}

// Is lets errors.Is match the same error code, or the category error for the
// HTTP status: errors.Is(ErrShiftNotFound, ErrNotFound) is true.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	if t.errorCode == e.errorCode {
		return true
	}

	return t.category && t.httpCode == e.httpCode
}

// Predefined error types
var (
	// Request-level errors
	ErrUnauthenticated = newCategoryError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
	)

	ErrValidationFailed = newCategoryError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
	)

	ErrForbidden = newCategoryError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
	)

	ErrNotFound = newCategoryError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
	)

	ErrConflict = newCategoryError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
	)

	ErrRateLimited = newCategoryError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, slow down",
	)

	ErrServiceUnavailable = newCategoryError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Service temporarily unavailable",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Could not issue access token",
		"",
	)

	// Shift errors
	ErrShiftNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIFT_NOT_FOUND",
		"Shift not found",
		"",
	)

	ErrShiftAlreadyCompleted = NewBaseError(
		http.StatusConflict,
		"SHIFT_ALREADY_COMPLETED",
		"Shift has already been completed",
		"",
	)

	ErrShiftNotCompleted = NewBaseError(
		http.StatusConflict,
		"SHIFT_NOT_COMPLETED",
		"Shift must be completed before it can be rated",
		"",
	)

	ErrCancellationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CANCELLATION_FAILED",
		"Failed to cancel shift",
		"",
	)

	// Profile errors
	ErrWorkerNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKER_NOT_FOUND",
		"Worker profile not found",
		"",
	)

	ErrHotelNotFound = NewBaseError(
		http.StatusNotFound,
		"HOTEL_NOT_FOUND",
		"Hotel profile not found",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = newCategoryError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
