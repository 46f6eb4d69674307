package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
)

// LessonStore defines the interface for lesson content persistence. The
// engine only ever reads lesson content; authoring happens elsewhere.
type LessonStore interface {
	// GetByID retrieves a lesson by its unique ID.
	// Returns ErrLessonNotFound if the lesson does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)

	// Create saves a new lesson. Used by seeding and tests; the engine
	// itself never authors lessons.
	Create(ctx context.Context, lesson *domain.Lesson) error

	// RecordProgress records a completed lesson walk and its quiz score,
	// overwriting any prior completion for the same (student, lesson) pair.
	RecordProgress(ctx context.Context, progress *domain.LessonProgress) error
}
