package lessonwalk

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/events"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/service"
	"github.com/yardenlev/mikra-api/internal/store"
)

// walkService is the standard implementation of Service.
type walkService struct {
	lessons  store.LessonStore
	words    service.WordService
	reviews  service.ReviewService
	emitter  events.EventEmitter
	registry *sessionRegistry
	logger   *slog.Logger
}

// NewService creates a walk Service backed by an in-memory session
// registry.
func NewService(
	lessons store.LessonStore,
	words service.WordService,
	reviews service.ReviewService,
	emitter events.EventEmitter,
	log *slog.Logger,
) Service {
	if lessons == nil {
		panic("lesson store cannot be nil")
	}
	if words == nil {
		panic("word service cannot be nil")
	}
	if reviews == nil {
		panic("review service cannot be nil")
	}
	if emitter == nil {
		panic("event emitter cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &walkService{
		lessons:  lessons,
		words:    words,
		reviews:  reviews,
		emitter:  emitter,
		registry: newSessionRegistry(),
		logger:   log.With(slog.String("component", "lessonwalk_service")),
	}
}

// Start implements Service.Start.
func (s *walkService) Start(ctx context.Context, studentID, lessonID uuid.UUID) (*StartResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if studentID == uuid.Nil {
		return nil, service.NewServiceError("start_walk", "student ID cannot be empty", domain.ErrInvalidID)
	}

	lesson, err := s.lessons.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, store.ErrLessonNotFound) {
			return nil, service.ErrLessonNotFound
		}
		return nil, service.NewServiceError("start_walk", "failed to load lesson", err)
	}

	wordList, err := s.words.ProcessLessonText(ctx, lesson.Content)
	if err != nil {
		return nil, service.NewServiceError("start_walk", "failed to canonicalize lesson words", err)
	}

	sess := newSession(studentID, lessonID, wordList)
	s.registry.add(sess)

	log.Info("walk session started",
		slog.String("session_id", sess.ID.String()),
		slog.String("lesson_id", lessonID.String()),
		slog.Int("word_count", len(wordList)))

	return &StartResult{
		SessionID:   sess.ID,
		WordCount:   len(wordList),
		State:       sess.State(),
		CurrentWord: sess.CurrentWord(),
	}, nil
}

// Respond implements Service.Respond. The current word is claimed and the
// cursor advanced atomically, then the answer is forwarded to the review
// service; a failed knowledge write travels back on RespondResult without
// rolling the cursor back.
func (s *walkService) Respond(ctx context.Context, sessionID uuid.UUID, known bool) (*RespondResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sess, ok := s.registry.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	st, ok := sess.claimStep()
	if !ok {
		return nil, ErrWalkFinished
	}

	knowledge, err := s.reviews.SubmitAnswer(ctx, sess.StudentID, st.word.ID, known)
	if err != nil {
		log.Warn("knowledge write failed during walk, advancing anyway",
			slog.String("session_id", sessionID.String()),
			slog.String("word_id", st.word.ID.String()),
			slog.String("error", err.Error()))
	}

	return &RespondResult{
		Knowledge:    knowledge,
		KnowledgeErr: err,
		NextWord:     st.next,
		State:        st.state,
		Position:     st.position,
		WordCount:    len(sess.Words),
	}, nil
}

// RequestTranslation implements Service.RequestTranslation.
func (s *walkService) RequestTranslation(ctx context.Context, sessionID uuid.UUID) error {
	sess, ok := s.registry.get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}

	word := sess.CurrentWord()
	if word == nil {
		return ErrWalkFinished
	}

	lessonID := sess.LessonID
	event := events.NewTranslationRequestedEvent(sess.StudentID, word.ID, &lessonID)
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		return service.NewServiceError("request_translation", "failed to emit translation request", err)
	}

	return nil
}

// Complete implements Service.Complete.
func (s *walkService) Complete(ctx context.Context, sessionID uuid.UUID, score int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sess, ok := s.registry.get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	if sess.State() != StateQuizPending {
		return ErrWalkNotFinished
	}

	progress, err := domain.NewLessonProgress(sess.StudentID, sess.LessonID, score)
	if err != nil {
		return service.NewServiceError("complete_walk", "invalid lesson progress", err)
	}

	if err := s.lessons.RecordProgress(ctx, progress); err != nil {
		return service.NewServiceError("complete_walk", "failed to record lesson progress", err)
	}

	sess.mu.Lock()
	sess.state = StateCompleted
	sess.mu.Unlock()
	s.registry.remove(sessionID)

	log.Info("walk session completed",
		slog.String("session_id", sessionID.String()),
		slog.String("lesson_id", sess.LessonID.String()),
		slog.Int("score", score))

	return nil
}

// Get implements Service.Get.
func (s *walkService) Get(sessionID uuid.UUID) (*Session, error) {
	sess, ok := s.registry.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

var _ Service = (*walkService)(nil)
