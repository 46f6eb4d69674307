package task

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTask is a minimal Task for queue and runner tests.
type stubTask struct {
	id      uuid.UUID
	execute func(ctx context.Context) error
}

func newStubTask(execute func(ctx context.Context) error) *stubTask {
	return &stubTask{id: uuid.New(), execute: execute}
}

func (t *stubTask) ID() uuid.UUID { return t.id }

func (t *stubTask) Type() string { return "stub" }

func (t *stubTask) Execute(ctx context.Context) error {
	if t.execute == nil {
		return nil
	}
	return t.execute(ctx)
}

func TestQueueEnqueue(t *testing.T) {
	t.Parallel()

	t.Run("accepts tasks up to capacity", func(t *testing.T) {
		t.Parallel()
		q := NewQueue(2, nil)
		require.NoError(t, q.Enqueue(newStubTask(nil)))
		require.NoError(t, q.Enqueue(newStubTask(nil)))
		assert.ErrorIs(t, q.Enqueue(newStubTask(nil)), ErrQueueFull)
	})

	t.Run("rejects after close", func(t *testing.T) {
		t.Parallel()
		q := NewQueue(2, nil)
		q.Close()
		assert.ErrorIs(t, q.Enqueue(newStubTask(nil)), ErrQueueClosed)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()
		q := NewQueue(1, nil)
		q.Close()
		assert.NotPanics(t, q.Close)
	})

	t.Run("buffered tasks remain consumable after close", func(t *testing.T) {
		t.Parallel()
		q := NewQueue(2, nil)
		first := newStubTask(nil)
		require.NoError(t, q.Enqueue(first))
		q.Close()

		got, ok := <-q.Channel()
		require.True(t, ok)
		assert.Equal(t, first.ID(), got.ID())

		_, ok = <-q.Channel()
		assert.False(t, ok)
	})
}
