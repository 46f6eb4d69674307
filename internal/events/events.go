package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TranslationRequestedEvent represents a learner's request for a human
// translation of a word, made from a lesson walk. It carries everything the
// handler needs to persist the pending request without any dependency on
// the session that produced it.
type TranslationRequestedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// StudentID identifies the requesting student
	StudentID uuid.UUID `json:"student_id"`

	// WordID identifies the word a translation is wanted for
	WordID uuid.UUID `json:"word_id"`

	// LessonID optionally ties the request to the lesson it was made from
	LessonID *uuid.UUID `json:"lesson_id,omitempty"`

	// RequestedAt is the timestamp when the learner made the request
	RequestedAt time.Time `json:"requested_at"`
}

// NewTranslationRequestedEvent creates an event for the given student and
// word, stamped with the current time.
func NewTranslationRequestedEvent(studentID, wordID uuid.UUID, lessonID *uuid.UUID) *TranslationRequestedEvent {
	return &TranslationRequestedEvent{
		ID:          uuid.New(),
		StudentID:   studentID,
		WordID:      wordID,
		LessonID:    lessonID,
		RequestedAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TranslationRequestedEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *TranslationRequestedEvent) error
}
