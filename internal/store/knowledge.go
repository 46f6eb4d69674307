package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
)

// KnowledgeUpsert carries the fields of a single drill result applied to a
// student's knowledge of one word. The timestamps are decided by the caller
// (level and schedule together) so the store can write them atomically.
type KnowledgeUpsert struct {
	StudentID      uuid.UUID
	WordID         uuid.UUID
	Level          domain.KnowledgeLevel
	WasCorrect     bool
	LastReviewedAt time.Time
	NextReviewAt   time.Time
}

// KnowledgeStore defines the interface for per-student per-word knowledge
// persistence.
type KnowledgeStore interface {
	// Upsert applies one drill result. If no record exists for the
	// (student, word) pair one is created with reviewCount 1; otherwise
	// reviewCount is incremented, correctCount is incremented when the
	// answer was correct, and level and the review timestamps are
	// overwritten. The whole update is a single atomic statement, so
	// concurrent drills of the same word serialize on the row and no
	// increment is lost.
	Upsert(ctx context.Context, up KnowledgeUpsert) (*domain.WordKnowledge, error)

	// Get retrieves the knowledge record for a (student, word) pair.
	// Returns ErrKnowledgeNotFound if no record exists; callers treat that
	// as "no prior knowledge", not as a failure.
	Get(ctx context.Context, studentID, wordID uuid.UUID) (*domain.WordKnowledge, error)

	// WordsDueForReview returns the student's records whose next review
	// time has passed, ordered by next review time ascending, capped at
	// limit.
	WordsDueForReview(ctx context.Context, studentID uuid.UUID, limit int) ([]*domain.WordKnowledge, error)

	// CountByLevel returns the number of the student's words at each
	// knowledge level. Levels with no words are absent from the map.
	CountByLevel(ctx context.Context, studentID uuid.UUID) (map[domain.KnowledgeLevel]int, error)
}
