package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeInvalidType indicates a field carried a value of the wrong kind
	ErrorTypeInvalidType ErrorType = "INVALID_TYPE"

	// ErrorTypeInvalidValue indicates a field value violates a constraint
	ErrorTypeInvalidValue ErrorType = "INVALID_VALUE"

	// ErrorTypeReference indicates a referenced entity does not exist
	ErrorTypeReference ErrorType = "REFERENCE"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeConflict indicates a conflict with existing data
	ErrorTypeConflict ErrorType = "CONFLICT"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewTypeError creates an error for a wrongly-typed field value
func NewTypeError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidType,
		Message: message,
	}
}

// NewValueError creates an error for a field value violating a constraint
func NewValueError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidValue,
		Message: message,
	}
}

// NewReferenceError creates an error for a dangling entity reference
func NewReferenceError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeReference,
		Message: message,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// TypeOf returns the ErrorType of err, or ErrorTypeInternal when err is
// not an AppError
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsNotFound reports whether err is a not-found AppError
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

// IsConflict reports whether err is a conflict AppError
func IsConflict(err error) bool {
	return TypeOf(err) == ErrorTypeConflict
}

// IsValidation reports whether err is a type- or value-validation AppError
func IsValidation(err error) bool {
	t := TypeOf(err)
	return t == ErrorTypeInvalidType || t == ErrorTypeInvalidValue
}
