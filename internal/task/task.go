// Package task provides a small in-process worker pool for background
// work. The only producer today is the translation-request side channel:
// the lesson walk emits an event, the handler wraps it in a task, and a
// worker persists the pending request off the request path.
package task

import (
	"context"

	"github.com/google/uuid"
)

// Task type constants
const (
	// TypeTranslationRequest represents the task type for persisting a
	// learner's translation request.
	TypeTranslationRequest = "translation_request"
)

// Task represents a unit of background work to be processed.
type Task interface {
	// ID returns the task's unique identifier
	ID() uuid.UUID

	// Type returns the task type identifier
	Type() string

	// Execute runs the task logic
	Execute(ctx context.Context) error
}
