package shared

import "errors"

// ErrorKind classifies a domain error into the closed taxonomy the HTTP
// layer translates to status codes (400/403/404/409).
type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "VALIDATION"
	ErrorKindNotFound   ErrorKind = "NOT_FOUND"
	ErrorKindForbidden  ErrorKind = "FORBIDDEN"
	ErrorKindConflict   ErrorKind = "CONFLICT"
)

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewValidationError creates a domain error for invalid input or a violated
// domain precondition.
func NewValidationError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindValidation, Code: code, Message: message}
}

// NewNotFoundError creates a domain error for a missing entity.
func NewNotFoundError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindNotFound, Code: code, Message: message}
}

// NewForbiddenError creates a domain error for an operation not permitted in
// the current state or for the current operator.
func NewForbiddenError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindForbidden, Code: code, Message: message}
}

// NewConflictError creates a domain error for a concurrent-modification
// conflict.
func NewConflictError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindConflict, Code: code, Message: message}
}

// KindOf returns the error kind of err, or an empty kind when err is not a
// DomainError.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsValidation reports whether err is a validation domain error.
func IsValidation(err error) bool { return KindOf(err) == ErrorKindValidation }

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool { return KindOf(err) == ErrorKindNotFound }

// IsForbidden reports whether err is a forbidden domain error.
func IsForbidden(err error) bool { return KindOf(err) == ErrorKindForbidden }

// IsConflict reports whether err is a concurrency-conflict domain error.
func IsConflict(err error) bool { return KindOf(err) == ErrorKindConflict }

// Common domain errors
var (
	ErrNotFound            = NewNotFoundError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewConflictError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewValidationError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewConflictError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrForbidden           = NewForbiddenError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInsufficientStock   = NewValidationError("INSUFFICIENT_STOCK", "Insufficient stock available")
)
