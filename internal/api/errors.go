package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/service"
	"github.com/yardenlev/mikra-api/internal/service/lessonwalk"
	"github.com/yardenlev/mikra-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrWordNotFound),
		errors.Is(err, store.ErrLessonNotFound),
		errors.Is(err, store.ErrKnowledgeNotFound),
		errors.Is(err, store.ErrTranslationNotFound),
		errors.Is(err, service.ErrWordNotFound),
		errors.Is(err, service.ErrLessonNotFound),
		errors.Is(err, lessonwalk.ErrSessionNotFound):
		return http.StatusNotFound

	// Walk state conflicts
	case errors.Is(err, lessonwalk.ErrWalkFinished),
		errors.Is(err, lessonwalk.ErrWalkNotFinished):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidKnowledgeLevel),
		errors.Is(err, domain.ErrInvalidScore),
		errors.Is(err, domain.ErrWordTextEmpty),
		errors.Is(err, domain.ErrWordTextNotHebrew):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrWordNotFound),
		errors.Is(err, service.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrLessonNotFound),
		errors.Is(err, service.ErrLessonNotFound):
		return "Lesson not found"

	case errors.Is(err, store.ErrKnowledgeNotFound):
		return "Knowledge record not found"

	case errors.Is(err, store.ErrTranslationNotFound):
		return "Translation not found"

	case errors.Is(err, lessonwalk.ErrSessionNotFound):
		return "Walk session not found"

	// Walk state conflicts
	case errors.Is(err, lessonwalk.ErrWalkFinished):
		return "Walk is already finished"

	case errors.Is(err, lessonwalk.ErrWalkNotFinished):
		return "Walk is not finished yet"

	// Bad request errors
	case errors.Is(err, domain.ErrWordTextEmpty),
		errors.Is(err, domain.ErrWordTextNotHebrew):
		return "Invalid Hebrew word"

	case errors.Is(err, domain.ErrInvalidScore):
		return "Score must be between 0 and 100"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidKnowledgeLevel):
		return "Invalid request data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'WalkRequest.StudentID' Error:Field validation for 'StudentID' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return "value too small"
	case "max":
		return "value too large"
	case "oneof":
		return "value not allowed"
	default:
		return "invalid value"
	}
}
