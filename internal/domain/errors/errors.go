package errors

import (
	"net/http"

	"folio/internal/errors"
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

// Is matches on the business error code so copies produced by WithDetails
// still compare equal to their sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email address is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Access-control errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"you do not have permission to perform this action",
		"",
	)

	ErrEntitlementRequired = NewBaseError(
		http.StatusForbidden,
		"ENTITLEMENT_REQUIRED",
		"an active purchase is required to access this content",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrProductAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_EXISTS",
		"a product with this slug already exists",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"no active order found for this user and product",
		"",
	)

	// Content-related errors
	ErrPortfolioNotFound = NewBaseError(
		http.StatusNotFound,
		"PORTFOLIO_NOT_FOUND",
		"no active portfolio has been published",
		"",
	)

	ErrInvalidHoldings = NewBaseError(
		http.StatusBadRequest,
		"INVALID_HOLDINGS",
		"portfolio holdings are invalid",
		"",
	)

	ErrAnalysisNotFound = NewBaseError(
		http.StatusNotFound,
		"ANALYSIS_NOT_FOUND",
		"analysis not found",
		"",
	)

	// Webhook-related errors
	ErrWebhookSignatureInvalid = NewBaseError(
		http.StatusBadRequest,
		"WEBHOOK_SIGNATURE_INVALID",
		"webhook signature verification failed",
		"",
	)

	ErrWebhookPayloadInvalid = NewBaseError(
		http.StatusBadRequest,
		"WEBHOOK_PAYLOAD_INVALID",
		"webhook payload could not be parsed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Rate-limiting errors
	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"too many requests, please try again later",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// UpstreamError represents a failure in an external dependency (payment
// processor, message broker, blob store), implementing the AppError interface.
// The wrapped cause is logged server-side and never echoed to the client.
type UpstreamError struct {
	err     error
	details string
}

// NewUpstreamError creates an error for an external dependency failure
func NewUpstreamError(err error, details string) AppError {
	return &UpstreamError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrap(e.err, "upstream dependency failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "an upstream dependency failed"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.details
}
