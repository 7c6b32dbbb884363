package errors

import (
	"fmt"
	"net/http"

	"stampcard/internal/errors"
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

// Is matches BaseErrors by error code so detailed copies compare equal to
// the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// ErrConfiguration covers a missing issuer id or service-account credentials.
	// Never retried automatically.
	ErrConfiguration = NewBaseError(
		http.StatusServiceUnavailable,
		"CONFIGURATION_ERROR",
		"Wallet provider is not configured",
		"",
	)

	// ErrValidation is the caller's fault, e.g. a missing card id.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Invalid input",
		"",
	)

	ErrCardNotFound = NewBaseError(
		http.StatusNotFound,
		"CARD_NOT_FOUND",
		"Loyalty card not found",
		"",
	)

	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"Business not found",
		"",
	)

	// ErrLinkInProgress is returned when another sync holds the first-link lease.
	ErrLinkInProgress = NewBaseError(
		http.StatusConflict,
		"LINK_IN_PROGRESS",
		"Card is being linked by another request",
		"",
	)

	ErrRenderFailed = NewBaseError(
		http.StatusInternalServerError,
		"RENDER_FAILED",
		"Failed to render strip image",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// ProviderError is a non-2xx answer from a wallet provider or its token endpoint.
// The raw body is kept so the dashboard can show the provider's own message.
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Reason     string
	Body       string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Provider, e.Operation, e.StatusCode, e.Message())
}

// HTTPCode returns 502: the upstream, not this service, rejected the call.
func (e *ProviderError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ProviderError) ErrorCode() string {
	return "PROVIDER_ERROR"
}

// Message returns the provider's reason, or the raw body when none was parsed.
func (e *ProviderError) Message() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Body != "" {
		return e.Body
	}

	return http.StatusText(e.StatusCode)
}

// Details returns the raw provider body
func (e *ProviderError) Details() string {
	return e.Body
}

// Retryable reports whether the provider status is worth retrying.
func (e *ProviderError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// AssetFetchError is a failed image download. Packaging degrades by omitting
// the asset, so this error is logged rather than returned to callers.
type AssetFetchError struct {
	URL        string
	StatusCode int
	err        error
}

// NewAssetFetchError creates an asset fetch error
func NewAssetFetchError(url string, statusCode int, err error) *AssetFetchError {
	return &AssetFetchError{URL: url, StatusCode: statusCode, err: err}
}

// Error implements the error interface
func (e *AssetFetchError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("fetch asset %s: %v", e.URL, e.err)
	}

	return fmt.Sprintf("fetch asset %s: status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any
func (e *AssetFetchError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *AssetFetchError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *AssetFetchError) ErrorCode() string {
	return "ASSET_FETCH_FAILED"
}

// Message returns the user-friendly error message
func (e *AssetFetchError) Message() string {
	return "Failed to download pass asset"
}

// Details returns the asset URL
func (e *AssetFetchError) Details() string {
	return e.URL
}

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

// Unwrap returns the driver error
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
