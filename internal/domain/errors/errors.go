package errors

import (
	"net/http"

	"ticketdesk/internal/errors"
)

// Kind classifies an application error so callers can branch without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
	KindConfig
	KindStore
	KindInvalidToken
	KindRateLimited
)

var kindNames = map[Kind]string{
	KindInternal:     "internal",
	KindValidation:   "validation",
	KindConflict:     "conflict",
	KindAuth:         "auth",
	KindNotFound:     "not_found",
	KindConfig:       "config",
	KindStore:        "store",
	KindInvalidToken: "invalid_token",
	KindRateLimited:  "rate_limited",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Closed classification of the failure
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
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
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches another BaseError by business code, so copies made by WithDetails
// compare equal to the predefined sentinel they came from. Every token failure
// also matches ErrInvalidToken.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	if t == ErrInvalidToken {
		return e.kind == KindInvalidToken
	}

	return e.errorCode == t.errorCode
}

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Predefined error types
var (
	// Identity errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"user already exists",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"email already registered",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid credentials",
		"",
	)

	ErrUnauthorized = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password does not meet the password policy",
		"",
	)

	// Token errors
	ErrInvalidToken = NewBaseError(
		KindInvalidToken,
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		KindInvalidToken,
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"invalid or expired token",
		"",
	)

	ErrTokenSignatureInvalid = NewBaseError(
		KindInvalidToken,
		http.StatusUnauthorized,
		"TOKEN_SIGNATURE_INVALID",
		"invalid or expired token",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		KindInvalidToken,
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"invalid or expired token",
		"",
	)

	// Configuration errors
	ErrConfig = NewBaseError(
		KindConfig,
		http.StatusInternalServerError,
		"CONFIG_ERROR",
		"service is misconfigured",
		"",
	)

	ErrMissingSigningSecret = NewBaseError(
		KindConfig,
		http.StatusInternalServerError,
		"SIGNING_SECRET_MISSING",
		"service is misconfigured",
		"",
	)

	// Ticket errors
	ErrTicketNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"TICKET_NOT_FOUND",
		"ticket not found",
		"",
	)

	ErrInvalidTicketStatus = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_TICKET_STATUS",
		"status must be one of Open, In Progress, Closed",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrRateLimited = NewBaseError(
		KindRateLimited,
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many requests",
		"",
	)

	// ErrStore hides storage failures behind the generic 500 message while keeping KindStore.
	ErrStore = NewBaseError(
		KindStore,
		http.StatusInternalServerError,
		"STORE_ERROR",
		"internal server error",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
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

// Unwrap exposes the driver error for logging. It never reaches a client.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns KindStore
func (e *DatabaseExecuteError) Kind() Kind {
	return KindStore
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
	return "internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
