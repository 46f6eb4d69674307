package service

import (
	"errors"
	"fmt"
)

// Common service-level errors.
var (
	// ErrWordNotFound indicates that the word does not exist.
	ErrWordNotFound = errors.New("word not found")

	// ErrLessonNotFound indicates that the lesson does not exist.
	ErrLessonNotFound = errors.New("lesson not found")
)

// ServiceError wraps errors from services with additional context. This
// allows consumers to differentiate between different types of service
// errors using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "get_or_create_word")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError with the given operation, message, and wrapped error.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
