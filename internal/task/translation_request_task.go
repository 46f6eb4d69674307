package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/events"
	"github.com/yardenlev/mikra-api/internal/store"
)

// TranslationRequestTask persists one learner's translation request as a
// pending record for a human responder.
type TranslationRequestTask struct {
	id       uuid.UUID
	request  *domain.TranslationRequest
	requests store.TranslationRequestStore
	logger   *slog.Logger
}

// NewTranslationRequestTask creates a task that saves the given request.
func NewTranslationRequestTask(
	request *domain.TranslationRequest,
	requests store.TranslationRequestStore,
	logger *slog.Logger,
) (*TranslationRequestTask, error) {
	if requests == nil {
		panic("requests store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("invalid translation request: %w", err)
	}

	return &TranslationRequestTask{
		id:       uuid.New(),
		request:  request,
		requests: requests,
		logger:   logger.With(slog.String("component", "translation_request_task")),
	}, nil
}

// ID implements Task.ID.
func (t *TranslationRequestTask) ID() uuid.UUID {
	return t.id
}

// Type implements Task.Type.
func (t *TranslationRequestTask) Type() string {
	return TypeTranslationRequest
}

// Execute implements Task.Execute. A replayed event writes a second
// pending row; responders dismiss duplicates out of band.
func (t *TranslationRequestTask) Execute(ctx context.Context) error {
	if err := t.requests.Create(ctx, t.request); err != nil {
		return fmt.Errorf("failed to persist translation request: %w", err)
	}

	t.logger.Info("translation request persisted",
		slog.String("request_id", t.request.ID.String()),
		slog.String("student_id", t.request.StudentID.String()),
		slog.String("word_id", t.request.WordID.String()))
	return nil
}

// TranslationRequestEventHandler implements events.EventHandler, turning
// TranslationRequestedEvents into queued TranslationRequestTasks.
type TranslationRequestEventHandler struct {
	requests store.TranslationRequestStore
	runner   *Runner
	logger   *slog.Logger
}

// NewTranslationRequestEventHandler creates an event handler that persists
// translation requests through the given runner.
func NewTranslationRequestEventHandler(
	requests store.TranslationRequestStore,
	runner *Runner,
	logger *slog.Logger,
) *TranslationRequestEventHandler {
	if requests == nil {
		panic("requests store cannot be nil")
	}
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TranslationRequestEventHandler{
		requests: requests,
		runner:   runner,
		logger:   logger.With(slog.String("component", "translation_request_event_handler")),
	}
}

// Ensure TranslationRequestEventHandler implements events.EventHandler
var _ events.EventHandler = (*TranslationRequestEventHandler)(nil)

// HandleEvent implements events.EventHandler.HandleEvent.
func (h *TranslationRequestEventHandler) HandleEvent(ctx context.Context, event *events.TranslationRequestedEvent) error {
	req := &domain.TranslationRequest{
		ID:        event.ID,
		StudentID: event.StudentID,
		WordID:    event.WordID,
		LessonID:  event.LessonID,
		Status:    domain.TranslationRequestPending,
		CreatedAt: event.RequestedAt,
	}

	t, err := NewTranslationRequestTask(req, h.requests, h.logger)
	if err != nil {
		h.logger.Error("failed to create translation request task",
			"error", err,
			"event_id", event.ID)
		return err
	}

	if err := h.runner.Submit(t); err != nil {
		h.logger.Error("failed to submit translation request task",
			"error", err,
			"event_id", event.ID)
		return fmt.Errorf("failed to submit task: %w", err)
	}

	h.logger.Debug("translation request task submitted",
		"task_id", t.ID(),
		"event_id", event.ID)
	return nil
}
