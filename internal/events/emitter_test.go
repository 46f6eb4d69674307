package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardenlev/mikra-api/internal/events"
)

// recordingHandler captures the events it receives and optionally fails.
type recordingHandler struct {
	received []*events.TranslationRequestedEvent
	err      error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *events.TranslationRequestedEvent) error {
	h.received = append(h.received, event)
	return h.err
}

func TestNewTranslationRequestedEvent(t *testing.T) {
	t.Parallel()

	studentID := uuid.New()
	wordID := uuid.New()
	lessonID := uuid.New()

	event := events.NewTranslationRequestedEvent(studentID, wordID, &lessonID)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, studentID, event.StudentID)
	assert.Equal(t, wordID, event.WordID)
	require.NotNil(t, event.LessonID)
	assert.Equal(t, lessonID, *event.LessonID)
	assert.False(t, event.RequestedAt.IsZero())
}

func TestEmitEvent(t *testing.T) {
	t.Parallel()

	t.Run("no handlers is not an error", func(t *testing.T) {
		t.Parallel()
		emitter := events.NewInMemoryEventEmitter(nil)
		event := events.NewTranslationRequestedEvent(uuid.New(), uuid.New(), nil)
		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
	})

	t.Run("all handlers receive the event", func(t *testing.T) {
		t.Parallel()
		emitter := events.NewInMemoryEventEmitter(nil)
		first := &recordingHandler{}
		second := &recordingHandler{}
		emitter.RegisterHandler(first)
		emitter.RegisterHandler(second)

		event := events.NewTranslationRequestedEvent(uuid.New(), uuid.New(), nil)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		require.Len(t, first.received, 1)
		require.Len(t, second.received, 1)
		assert.Equal(t, event.ID, first.received[0].ID)
		assert.Equal(t, event.ID, second.received[0].ID)
	})

	t.Run("failing handler does not block the others", func(t *testing.T) {
		t.Parallel()
		emitter := events.NewInMemoryEventEmitter(nil)
		failure := errors.New("handler exploded")
		failing := &recordingHandler{err: failure}
		healthy := &recordingHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(healthy)

		event := events.NewTranslationRequestedEvent(uuid.New(), uuid.New(), nil)
		err := emitter.EmitEvent(context.Background(), event)

		assert.ErrorIs(t, err, failure)
		assert.Len(t, healthy.received, 1)
	})
}
