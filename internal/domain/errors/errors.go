// Package errors defines the application error taxonomy rendered by the HTTP layer.
package errors

import (
	"net/http"

	"gadgetshop/internal/errors"
)

// AppError is an error the HTTP layer knows how to render.
// Details are shown to clients only for 4xx other than 401 and 403.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError carries a fixed status and business code. Sentinels below are
// compared by code, so a copy made with WithDetails still matches errors.Is.
type BaseError struct {
	status  int
	code    string
	message string
	details string
}

// NewBaseError builds a BaseError. Most callers want one of the sentinels.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{status: httpCode, code: errorCode, message: message, details: details}
}

func sentinel(status int, code, message string) *BaseError {
	return NewBaseError(status, code, message, "")
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage annotates e with a stack and context for the server log.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy of e carrying client-facing details.
func (e *BaseError) WithDetails(details string) *BaseError {
	dup := *e
	dup.details = details

	return &dup
}

func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.code == e.code
}

// Request shape
var (
	ErrValidationFailed = sentinel(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidID        = sentinel(http.StatusBadRequest, "INVALID_ID", "Malformed identifier")
)

// Accounts and access
var (
	ErrUserNotFound      = sentinel(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists = sentinel(http.StatusConflict, "USER_ALREADY_EXISTS", "User already exists")
	ErrRoleNotAllowed    = sentinel(http.StatusBadRequest, "ROLE_NOT_ALLOWED", "This role cannot be chosen at registration")
	ErrUnauthorized      = sentinel(http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized access")
	ErrForbidden         = sentinel(http.StatusForbidden, "FORBIDDEN", "Forbidden access")
	ErrTokenIssueFailed  = sentinel(http.StatusInternalServerError, "TOKEN_ISSUE_FAILED", "Failed to issue access token")
)

// Catalog, sales and orders
var (
	ErrProductNotFound   = sentinel(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrFlashSaleNotFound = sentinel(http.StatusNotFound, "FLASH_SALE_NOT_FOUND", "Flash sale not found")
	ErrInvalidSaleWindow = sentinel(http.StatusBadRequest, "INVALID_SALE_WINDOW", "Flash sale must end after it starts")
	ErrOrderNotFound     = sentinel(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrEmptyOrder        = sentinel(http.StatusBadRequest, "EMPTY_ORDER", "An order needs at least one product")
)

var ErrInternalError = sentinel(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")

// DatabaseExecuteError reports a failed store operation. The cause stays
// reachable through Unwrap but never reaches the client.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
