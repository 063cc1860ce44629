package errors

import (
	"fmt"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is makes copies produced by WithDetails match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Session-related errors
	ErrSignInRequired = NewBaseError(
		http.StatusUnauthorized,
		"SIGN_IN_REQUIRED",
		"Please sign in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// Cart-related errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Your cart is empty",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"That item is no longer in your cart",
		"",
	)

	// Checkout-related errors
	ErrReceiptRequired = NewBaseError(
		http.StatusBadRequest,
		"RECEIPT_REQUIRED",
		"Please upload your payment receipt",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"File upload failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the highlighted fields",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have access to this page",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)
)

// APIError is a non-2xx answer of the remote REST API. Message is the response body text,
// or a generic status message when the body is empty, and is meant for direct display.
type APIError struct {
	Status int
	Body   string
}

// NewAPIError builds the error for a failed remote call.
func NewAPIError(status int, body string) *APIError {
	return &APIError{Status: status, Body: body}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message()
}

// HTTPCode returns the upstream status code
func (e *APIError) HTTPCode() int {
	return e.Status
}

// ErrorCode returns the business error code
func (e *APIError) ErrorCode() string {
	return "REMOTE_REQUEST_FAILED"
}

// Message returns the server-provided text or the generic status message
func (e *APIError) Message() string {
	if e.Body != "" {
		return e.Body
	}

	return fmt.Sprintf("Request failed with status %d", e.Status)
}

// Details returns detailed error information
func (e *APIError) Details() string {
	return ""
}

// LoginRequiredError is returned when a guest action must first go through the auth page.
// ReturnTo is the location stored for the post-login redirect.
type LoginRequiredError struct {
	ReturnTo    string
	RedirectURL string
}

// Error implements the error interface
func (e *LoginRequiredError) Error() string {
	return "login required, redirecting to " + e.RedirectURL
}

// HTTPCode returns the HTTP status code
func (e *LoginRequiredError) HTTPCode() int {
	return http.StatusUnauthorized
}

// ErrorCode returns the business error code
func (e *LoginRequiredError) ErrorCode() string {
	return "LOGIN_REQUIRED"
}

// Message returns the user-friendly error message
func (e *LoginRequiredError) Message() string {
	return "Please sign in to save items to your wishlist"
}

// Details carries the redirect target for the presentation layer
func (e *LoginRequiredError) Details() string {
	return e.RedirectURL
}

// DatabaseExecuteError represents a failure talking to the database-as-a-service tables
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Could not reach the store, please try again"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// UserMessage returns the text to show in a notice for any error.
func UserMessage(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}
