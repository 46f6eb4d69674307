package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// KnowledgeLevel represents a learner's familiarity with one vocabulary item.
type KnowledgeLevel string

// The closed set of knowledge levels, in order of increasing familiarity.
// Progression is not monotonic: a word can regress to learning when the
// learner misses it during a drill.
const (
	KnowledgeUnknown  KnowledgeLevel = "unknown"
	KnowledgeLearning KnowledgeLevel = "learning"
	KnowledgeKnown    KnowledgeLevel = "known"
	KnowledgeMastered KnowledgeLevel = "mastered"
)

// Valid reports whether l is one of the defined knowledge levels.
func (l KnowledgeLevel) Valid() bool {
	switch l {
	case KnowledgeUnknown, KnowledgeLearning, KnowledgeKnown, KnowledgeMastered:
		return true
	default:
		return false
	}
}

// Next returns the level a word moves to after one drill at level l. A
// correct answer promotes unknown and learning words to known, promotes an
// already-known word to mastered, and leaves mastered words where they
// are. A miss always puts the word back into learning, whatever its
// current level.
func (l KnowledgeLevel) Next(known bool) KnowledgeLevel {
	if !known {
		return KnowledgeLearning
	}
	switch l {
	case KnowledgeKnown, KnowledgeMastered:
		return KnowledgeMastered
	default:
		return KnowledgeKnown
	}
}

// Common validation errors for WordKnowledge
var (
	ErrEmptyKnowledgeStudentID = errors.New("word knowledge student ID cannot be empty")
	ErrEmptyKnowledgeWordID    = errors.New("word knowledge word ID cannot be empty")
	ErrNegativeReviewCount     = errors.New("review count must be greater than or equal to 0")
	ErrCorrectExceedsReviews   = errors.New("correct count cannot exceed review count")
	ErrNextReviewBeforeLast    = errors.New("next review cannot precede last review")
)

// WordKnowledge tracks one student's knowledge state for one word: the
// current level, drill counters and the spaced-repetition schedule. A
// record is created lazily on the first drill and only ever updated after
// that, never deleted.
type WordKnowledge struct {
	StudentID      uuid.UUID      `json:"student_id"`
	WordID         uuid.UUID      `json:"word_id"`
	Level          KnowledgeLevel `json:"level"`
	ReviewCount    int            `json:"review_count"`
	CorrectCount   int            `json:"correct_count"`
	LastReviewedAt time.Time      `json:"last_reviewed_at"`
	NextReviewAt   time.Time      `json:"next_review_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewWordKnowledge creates an initial knowledge record for a student and
// word pair. The word starts at the unknown level with zero counters and is
// immediately eligible for review.
func NewWordKnowledge(studentID, wordID uuid.UUID) (*WordKnowledge, error) {
	now := time.Now().UTC()
	k := &WordKnowledge{
		StudentID:      studentID,
		WordID:         wordID,
		Level:          KnowledgeUnknown,
		ReviewCount:    0,
		CorrectCount:   0,
		LastReviewedAt: time.Time{},
		NextReviewAt:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := k.Validate(); err != nil {
		return nil, err
	}

	return k, nil
}

// Validate checks if the WordKnowledge has valid data.
// Returns an error if any field fails validation.
func (k *WordKnowledge) Validate() error {
	if k.StudentID == uuid.Nil {
		return ErrEmptyKnowledgeStudentID
	}

	if k.WordID == uuid.Nil {
		return ErrEmptyKnowledgeWordID
	}

	if !k.Level.Valid() {
		return ErrInvalidKnowledgeLevel
	}

	if k.ReviewCount < 0 {
		return ErrNegativeReviewCount
	}

	if k.CorrectCount > k.ReviewCount {
		return ErrCorrectExceedsReviews
	}

	if !k.LastReviewedAt.IsZero() && k.NextReviewAt.Before(k.LastReviewedAt) {
		return ErrNextReviewBeforeLast
	}

	return nil
}
