// Package errors defines the application error taxonomy shared by all layers.
package errors

import (
	"net/http"

	"backoffice/internal/errors"
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
	}
}

// Predefined error types
var (
	// Validation catches missing or malformed input before any network or
	// database call is made.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"A valid session is required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	// Identity-related errors
	ErrIdentityConflict = NewBaseError(
		http.StatusConflict,
		"IDENTITY_CONFLICT",
		"This email is already registered",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Resource errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	// Attachment errors
	ErrAttachmentLimit = NewBaseError(
		http.StatusBadRequest,
		"ATTACHMENT_LIMIT",
		"Attachment limit exceeded",
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
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// RemoteProcedureError represents a non-2xx response from a privileged
// function. The message is the error body passed through from the function.
type RemoteProcedureError struct {
	statusCode int
	message    string
}

// NewRemoteProcedureError creates a remote procedure failure carrying the
// function's own error message.
func NewRemoteProcedureError(statusCode int, message string) AppError {
	if message == "" {
		message = "Privileged function call failed"
	}

	return &RemoteProcedureError{
		statusCode: statusCode,
		message:    message,
	}
}

// Error implements the error interface
func (e *RemoteProcedureError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *RemoteProcedureError) HTTPCode() int {
	if e.statusCode >= 400 && e.statusCode < 600 {
		return e.statusCode
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteProcedureError) ErrorCode() string {
	return "REMOTE_PROCEDURE_FAILED"
}

// Message returns the user-friendly error message
func (e *RemoteProcedureError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *RemoteProcedureError) Details() string {
	return ""
}

// DatastoreExecuteError represents a database execution error, implementing
// the AppError interface
type DatastoreExecuteError struct {
	err     error
	details string
}

// NewDatastoreExecuteError creates a datastore-related error
func NewDatastoreExecuteError(err error, details string) AppError {
	return &DatastoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatastoreExecuteError) Error() string {
	return errors.Wrap(e.err, "datastore execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatastoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatastoreExecuteError) ErrorCode() string {
	return "DATASTORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatastoreExecuteError) Message() string {
	return "Datastore execution failed"
}

// Details returns detailed error information
func (e *DatastoreExecuteError) Details() string {
	return e.details
}
