package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/domain/srs"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/store"
)

// ReviewItem pairs a due knowledge record with the word it tracks, so
// callers can render a review queue without a second round of lookups.
type ReviewItem struct {
	Knowledge *domain.WordKnowledge `json:"knowledge"`
	Word      *domain.Word          `json:"word"`
}

// Progress summarizes a student's vocabulary by knowledge level.
type Progress struct {
	TotalWords int                           `json:"total_words"`
	ByLevel    map[domain.KnowledgeLevel]int `json:"by_level"`
	DueCount   int                           `json:"due_count"`
}

// ReviewService owns the drill feedback loop: which words are due, what
// happens to a word's knowledge level when the student answers, and when
// the word comes back.
type ReviewService interface {
	// DueWords returns up to limit review items whose next review time has
	// passed, soonest first. An empty queue is returned as an empty slice,
	// not an error.
	DueWords(ctx context.Context, studentID uuid.UUID, limit int) ([]*ReviewItem, error)

	// SubmitAnswer records one drill result for a (student, word) pair.
	// The word's level moves according to whether the student knew it, the
	// next review time is scheduled from the new level, and the counters
	// are updated atomically. A pair with no prior record starts from
	// unknown.
	SubmitAnswer(ctx context.Context, studentID, wordID uuid.UUID, known bool) (*domain.WordKnowledge, error)

	// Progress returns the per-level word counts and the size of the due
	// queue for a student.
	Progress(ctx context.Context, studentID uuid.UUID) (*Progress, error)
}

// reviewService is the standard implementation of ReviewService.
type reviewService struct {
	knowledge store.KnowledgeStore
	words     store.WordStore
	scheduler srs.Scheduler
	nowFn     func() time.Time
	logger    *slog.Logger
}

// NewReviewService creates a ReviewService with the default clock.
func NewReviewService(
	knowledge store.KnowledgeStore,
	words store.WordStore,
	scheduler srs.Scheduler,
	log *slog.Logger,
) ReviewService {
	if knowledge == nil {
		panic("knowledge store cannot be nil")
	}
	if words == nil {
		panic("words store cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &reviewService{
		knowledge: knowledge,
		words:     words,
		scheduler: scheduler,
		nowFn:     func() time.Time { return time.Now().UTC() },
		logger:    log.With(slog.String("component", "review_service")),
	}
}

// DueWords implements ReviewService.DueWords.
func (s *reviewService) DueWords(ctx context.Context, studentID uuid.UUID, limit int) ([]*ReviewItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := s.knowledge.WordsDueForReview(ctx, studentID, limit)
	if err != nil {
		return nil, NewServiceError("due_words", "failed to list due knowledge records", err)
	}

	items := make([]*ReviewItem, 0, len(records))
	for _, rec := range records {
		word, err := s.words.GetByID(ctx, rec.WordID)
		if err != nil {
			if errors.Is(err, store.ErrWordNotFound) {
				// A knowledge row pointing at a deleted word; skip it
				// rather than failing the whole queue.
				log.Warn("due knowledge record references missing word",
					slog.String("student_id", studentID.String()),
					slog.String("word_id", rec.WordID.String()))
				continue
			}
			return nil, NewServiceError("due_words", "failed to load word for due record", err)
		}
		items = append(items, &ReviewItem{Knowledge: rec, Word: word})
	}

	return items, nil
}

// SubmitAnswer implements ReviewService.SubmitAnswer.
func (s *reviewService) SubmitAnswer(ctx context.Context, studentID, wordID uuid.UUID, known bool) (*domain.WordKnowledge, error) {
	if studentID == uuid.Nil {
		return nil, NewServiceError("submit_answer", "student ID cannot be empty", domain.ErrInvalidID)
	}
	if wordID == uuid.Nil {
		return nil, NewServiceError("submit_answer", "word ID cannot be empty", domain.ErrInvalidID)
	}

	prior := domain.KnowledgeUnknown
	current, err := s.knowledge.Get(ctx, studentID, wordID)
	switch {
	case err == nil:
		prior = current.Level
	case errors.Is(err, store.ErrKnowledgeNotFound):
		// First drill of this word for this student.
	default:
		return nil, NewServiceError("submit_answer", "failed to load current knowledge", err)
	}

	level := prior.Next(known)
	now := s.nowFn()
	nextReview, err := s.scheduler.Schedule(level, now)
	if err != nil {
		return nil, NewServiceError("submit_answer", "failed to schedule next review", err)
	}

	updated, err := s.knowledge.Upsert(ctx, store.KnowledgeUpsert{
		StudentID:      studentID,
		WordID:         wordID,
		Level:          level,
		WasCorrect:     known,
		LastReviewedAt: now,
		NextReviewAt:   nextReview,
	})
	if err != nil {
		return nil, NewServiceError("submit_answer", "failed to persist drill result", err)
	}

	return updated, nil
}

// Progress implements ReviewService.Progress.
func (s *reviewService) Progress(ctx context.Context, studentID uuid.UUID) (*Progress, error) {
	counts, err := s.knowledge.CountByLevel(ctx, studentID)
	if err != nil {
		return nil, NewServiceError("progress", "failed to count words by level", err)
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	due, err := s.knowledge.WordsDueForReview(ctx, studentID, progressDueLimit)
	if err != nil {
		return nil, NewServiceError("progress", "failed to count due words", err)
	}

	return &Progress{
		TotalWords: total,
		ByLevel:    counts,
		DueCount:   len(due),
	}, nil
}

// progressDueLimit caps the due-queue scan used for the progress summary.
const progressDueLimit = 500
