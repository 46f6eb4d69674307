package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
)

// TranslationStore defines read access to human-provided translations.
type TranslationStore interface {
	// Lookup returns the best translation of a word for the target
	// language, preferring a lesson-specific entry when lessonID is
	// non-nil, then falling back to a general one. Returns
	// ErrTranslationNotFound when neither exists; callers surface that as
	// "not available" rather than an error.
	Lookup(ctx context.Context, wordID uuid.UUID, language string, lessonID *uuid.UUID) (*domain.Translation, error)
}

// TranslationRequestStore defines persistence for pending translation
// requests awaiting a human responder.
type TranslationRequestStore interface {
	// Create saves a new pending request.
	Create(ctx context.Context, req *domain.TranslationRequest) error

	// ListPending returns pending requests in creation order, capped at limit.
	ListPending(ctx context.Context, limit int) ([]*domain.TranslationRequest, error)
}
