package errors

import (
	"net/http"

	"storefront/internal/errors"
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
	// Cart and command validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_EMPTY",
		"The cart is empty",
		"",
	)

	// Order submission errors
	ErrOrderSubmissionFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_SUBMISSION_FAILED",
		"Failed to place the order",
		"",
	)

	ErrPaymentInitiationFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_INITIATION_FAILED",
		"Failed to start the payment session",
		"",
	)

	// Order tracking errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ORDER_ACCESS_DENIED",
		"You do not have access to this order",
		"",
	)

	// Transport and session errors
	ErrNetworkFailure = NewBaseError(
		http.StatusServiceUnavailable,
		"NETWORK_FAILURE",
		"Could not reach the server",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Your session has expired, please sign in again",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// LocalStateError represents a durable local storage failure, implementing
// the AppError interface
type LocalStateError struct {
	err     error
	details string
}

// NewLocalStateError creates a local-storage-related error
func NewLocalStateError(err error, details string) AppError {
	return &LocalStateError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *LocalStateError) Error() string {
	return errors.Wrap(e.err, "local state access failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *LocalStateError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *LocalStateError) ErrorCode() string {
	return "LOCAL_STATE_FAILED"
}

// Message returns the user-friendly error message
func (e *LocalStateError) Message() string {
	return "Failed to persist local state"
}

// Details returns detailed error information
func (e *LocalStateError) Details() string {
	return e.details
}
