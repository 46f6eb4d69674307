package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Translation-specific validation errors
var (
	// ErrTranslationWordIDEmpty is returned when a translation has no word ID.
	ErrTranslationWordIDEmpty = errors.New("translation word ID cannot be empty")

	// ErrTranslationLanguageEmpty is returned when a translation has no language.
	ErrTranslationLanguageEmpty = errors.New("translation language cannot be empty")

	// ErrTranslationTextEmpty is returned when a translation has no text.
	ErrTranslationTextEmpty = errors.New("translation text cannot be empty")
)

// Translation is a human-provided rendering of a word in a target language.
// A translation may be scoped to one lesson (idiomatic readings differ by
// context) or apply generally when LessonID is nil.
type Translation struct {
	ID          uuid.UUID  `json:"id"`
	WordID      uuid.UUID  `json:"word_id"`
	Language    string     `json:"language"`
	Translation string     `json:"translation"`
	LessonID    *uuid.UUID `json:"lesson_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Validate checks if the Translation has valid data.
func (t *Translation) Validate() error {
	if t.ID == uuid.Nil {
		return ErrInvalidID
	}

	if t.WordID == uuid.Nil {
		return ErrTranslationWordIDEmpty
	}

	if t.Language == "" {
		return ErrTranslationLanguageEmpty
	}

	if t.Translation == "" {
		return ErrTranslationTextEmpty
	}

	return nil
}

// TranslationRequestStatus represents the state of a pending request.
type TranslationRequestStatus string

// Possible translation request statuses.
const (
	TranslationRequestPending  TranslationRequestStatus = "pending"
	TranslationRequestAnswered TranslationRequestStatus = "answered"
)

// TranslationRequest is a student's fire-and-forget ask for a human
// translation of a word. A responder answers it out of band; the engine
// never waits on one.
type TranslationRequest struct {
	ID        uuid.UUID                `json:"id"`
	StudentID uuid.UUID                `json:"student_id"`
	WordID    uuid.UUID                `json:"word_id"`
	LessonID  *uuid.UUID               `json:"lesson_id,omitempty"`
	Status    TranslationRequestStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

// NewTranslationRequest creates a pending request for the given student and
// word, optionally tied to the lesson the request was made from.
func NewTranslationRequest(studentID, wordID uuid.UUID, lessonID *uuid.UUID) (*TranslationRequest, error) {
	req := &TranslationRequest{
		ID:        uuid.New(),
		StudentID: studentID,
		WordID:    wordID,
		LessonID:  lessonID,
		Status:    TranslationRequestPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks if the TranslationRequest has valid data.
func (r *TranslationRequest) Validate() error {
	if r.ID == uuid.Nil {
		return ErrInvalidID
	}

	if r.StudentID == uuid.Nil {
		return ErrEmptyKnowledgeStudentID
	}

	if r.WordID == uuid.Nil {
		return ErrTranslationWordIDEmpty
	}

	return nil
}
