package task

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/events"
)

// fakeRequestStore records created translation requests in memory.
type fakeRequestStore struct {
	mu      sync.Mutex
	created []*domain.TranslationRequest
	err     error
}

func (s *fakeRequestStore) Create(_ context.Context, req *domain.TranslationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, req)
	return nil
}

func (s *fakeRequestStore) ListPending(_ context.Context, limit int) ([]*domain.TranslationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.created) {
		limit = len(s.created)
	}
	return s.created[:limit], nil
}

func (s *fakeRequestStore) createdRequests() []*domain.TranslationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.TranslationRequest, len(s.created))
	copy(out, s.created)
	return out
}

func TestTranslationRequestTask(t *testing.T) {
	t.Parallel()

	t.Run("persists the request", func(t *testing.T) {
		t.Parallel()
		requests := &fakeRequestStore{}
		req, err := domain.NewTranslationRequest(uuid.New(), uuid.New(), nil)
		require.NoError(t, err)

		task, err := NewTranslationRequestTask(req, requests, nil)
		require.NoError(t, err)
		assert.Equal(t, TypeTranslationRequest, task.Type())

		require.NoError(t, task.Execute(context.Background()))
		created := requests.createdRequests()
		require.Len(t, created, 1)
		assert.Equal(t, req.ID, created[0].ID)
	})

	t.Run("rejects an invalid request", func(t *testing.T) {
		t.Parallel()
		_, err := NewTranslationRequestTask(&domain.TranslationRequest{}, &fakeRequestStore{}, nil)
		assert.Error(t, err)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		t.Parallel()
		storeErr := errors.New("insert failed")
		requests := &fakeRequestStore{err: storeErr}
		req, err := domain.NewTranslationRequest(uuid.New(), uuid.New(), nil)
		require.NoError(t, err)

		task, err := NewTranslationRequestTask(req, requests, nil)
		require.NoError(t, err)
		assert.ErrorIs(t, task.Execute(context.Background()), storeErr)
	})
}

func TestTranslationRequestEventHandler(t *testing.T) {
	t.Parallel()

	requests := &fakeRequestStore{}
	runner := NewRunner(RunnerConfig{WorkerCount: 1, QueueSize: 5, TaskTimeout: time.Second}, nil)
	runner.Start()

	handler := NewTranslationRequestEventHandler(requests, runner, nil)

	lessonID := uuid.New()
	event := events.NewTranslationRequestedEvent(uuid.New(), uuid.New(), &lessonID)
	require.NoError(t, handler.HandleEvent(context.Background(), event))

	// Stop drains the queue, so the write has happened by the time it returns.
	runner.Stop()

	created := requests.createdRequests()
	require.Len(t, created, 1)
	assert.Equal(t, event.StudentID, created[0].StudentID)
	assert.Equal(t, event.WordID, created[0].WordID)
	assert.Equal(t, domain.TranslationRequestPending, created[0].Status)
	require.NotNil(t, created[0].LessonID)
	assert.Equal(t, lessonID, *created[0].LessonID)
}
