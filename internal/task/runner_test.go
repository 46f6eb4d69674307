package task

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerExecutesSubmittedTasks(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 2, QueueSize: 10, TaskTimeout: time.Second}, nil)
	runner.Start()

	var mu sync.Mutex
	executed := 0
	for i := 0; i < 5; i++ {
		err := runner.Submit(newStubTask(func(ctx context.Context) error {
			mu.Lock()
			executed++
			mu.Unlock()
			return nil
		}))
		require.NoError(t, err)
	}

	// Stop drains the queue before returning.
	runner.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, executed)
}

func TestRunnerReportsTaskErrors(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 1, QueueSize: 5, TaskTimeout: time.Second}, nil)

	var mu sync.Mutex
	var failedIDs []string
	runner.SetErrorHandler(func(task Task, err error) {
		mu.Lock()
		failedIDs = append(failedIDs, task.ID().String())
		mu.Unlock()
	})
	runner.Start()

	failing := newStubTask(func(ctx context.Context) error {
		return errors.New("boom")
	})
	require.NoError(t, runner.Submit(failing))
	runner.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, failedIDs, 1)
	assert.Equal(t, failing.ID().String(), failedIDs[0])
}

func TestRunnerTaskContextHasTimeout(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 1, QueueSize: 1, TaskTimeout: time.Second}, nil)
	runner.Start()

	deadlines := make(chan bool, 1)
	require.NoError(t, runner.Submit(newStubTask(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		deadlines <- ok
		return nil
	})))
	runner.Stop()

	assert.True(t, <-deadlines)
}

func TestRunnerSubmitAfterStop(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 1, QueueSize: 1, TaskTimeout: time.Second}, nil)
	runner.Start()
	runner.Stop()

	assert.ErrorIs(t, runner.Submit(newStubTask(nil)), ErrQueueClosed)
}

func TestNewRunnerSanitizesConfig(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 0, QueueSize: 1}, nil)
	assert.Equal(t, 1, runner.config.WorkerCount)
	assert.Equal(t, 30*time.Second, runner.config.TaskTimeout)
}
