package task

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RunnerConfig holds configuration for the task runner.
type RunnerConfig struct {
	// WorkerCount determines how many concurrent workers process tasks
	WorkerCount int

	// QueueSize determines the buffer size for the in-memory task queue
	QueueSize int

	// TaskTimeout bounds the execution of a single task
	TaskTimeout time.Duration
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount: 2,
		QueueSize:   100,
		TaskTimeout: 30 * time.Second,
	}
}

// Runner manages background task processing with a fixed pool of workers
// draining a shared queue.
type Runner struct {
	queue      *Queue
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	config     RunnerConfig
	logger     *slog.Logger
	errHandler func(task Task, err error)
}

// NewRunner creates a new Runner.
func NewRunner(config RunnerConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "task_runner"))

	if config.WorkerCount < 1 {
		config.WorkerCount = 1
	}
	if config.TaskTimeout <= 0 {
		config.TaskTimeout = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		queue:      NewQueue(config.QueueSize, logger),
		ctx:        ctx,
		cancelFunc: cancel,
		config:     config,
		logger:     logger,
		errHandler: func(task Task, err error) {
			logger.Error("task execution failed",
				"task_id", task.ID(),
				"task_type", task.Type(),
				"error", err)
		},
	}
}

// SetErrorHandler allows setting a custom error handler function.
func (r *Runner) SetErrorHandler(handler func(task Task, err error)) {
	r.errHandler = handler
}

// Start launches the worker goroutines.
func (r *Runner) Start() {
	r.logger.Info("starting task runner",
		"worker_count", r.config.WorkerCount,
		"queue_size", r.config.QueueSize)

	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
}

// Submit enqueues a task for background execution.
// Returns ErrQueueFull or ErrQueueClosed when the task cannot be accepted;
// callers decide whether that is worth surfacing (the translation side
// channel just logs it).
func (r *Runner) Submit(task Task) error {
	return r.queue.Enqueue(task)
}

// Stop closes the queue and waits for the workers to drain it.
func (r *Runner) Stop() {
	r.logger.Info("stopping task runner")
	r.queue.Close()
	r.wg.Wait()
	r.cancelFunc()
	r.logger.Info("task runner stopped")
}

// worker consumes tasks until the queue is closed and drained.
func (r *Runner) worker(id int) {
	defer r.wg.Done()

	log := r.logger.With(slog.Int("worker", id))
	log.Debug("worker started")

	for task := range r.queue.Channel() {
		ctx, cancel := context.WithTimeout(r.ctx, r.config.TaskTimeout)
		start := time.Now()

		if err := task.Execute(ctx); err != nil {
			r.errHandler(task, err)
		} else {
			log.Debug("task completed",
				"task_id", task.ID(),
				"task_type", task.Type(),
				"duration_ms", time.Since(start).Milliseconds())
		}

		cancel()
	}

	log.Debug("worker stopped")
}
