package domain

import (
	"errors"
	"fmt"
)

// Predefined domain errors.
var (
	// ErrNotFound means the resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists means the resource already exists.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidInput means the input failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict means a resource version conflict.
	ErrConflict = errors.New("resource conflict")
	// ErrUnauthorized means the caller is not authenticated.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller may not access the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInternal is an internal processing error.
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code plus a user-safe message.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (for logs and internal propagation).
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal detail.
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a resource-not-found error.
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewAlreadyExistsError creates a resource-already-exists error.
func NewAlreadyExistsError(resourceType, name string) error {
	return &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s '%s' already exists", resourceType, name),
		Err:     ErrAlreadyExists,
	}
}

// NewInvalidInputError creates an invalid-input error.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewConflictError creates a resource-conflict error.
func NewConflictError(message string) error {
	return &DomainError{
		Code:    "CONFLICT",
		Message: message,
		Err:     ErrConflict,
	}
}

// NewInternalError creates an internal error. The message describes the
// failed operation without exposing the underlying cause to users.
func NewInternalError(message string, err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a resource-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalidInput reports whether err is an invalid-input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInternalError reports whether err is an internal error.
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
