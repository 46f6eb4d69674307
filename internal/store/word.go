package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
)

// WordStore defines the interface for canonical word persistence.
type WordStore interface {
	// GetOrCreate looks up a word by its exact Hebrew text, creating it
	// with freshly computed gematria values when absent. The operation is
	// idempotent: concurrent calls for the same text converge on a single
	// row and return the same ID.
	GetOrCreate(ctx context.Context, hebrewText string) (*domain.Word, error)

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// GetByText retrieves a word by its exact Hebrew text without creating it.
	// Returns ErrWordNotFound if the word does not exist.
	GetByText(ctx context.Context, hebrewText string) (*domain.Word, error)
}
