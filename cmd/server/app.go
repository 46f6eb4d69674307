package main

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yardenlev/mikra-api/internal/config"
	"github.com/yardenlev/mikra-api/internal/domain/srs"
	"github.com/yardenlev/mikra-api/internal/events"
	"github.com/yardenlev/mikra-api/internal/platform/postgres"
	"github.com/yardenlev/mikra-api/internal/platform/rediscache"
	"github.com/yardenlev/mikra-api/internal/service"
	"github.com/yardenlev/mikra-api/internal/service/lessonwalk"
	"github.com/yardenlev/mikra-api/internal/store"
	"github.com/yardenlev/mikra-api/internal/task"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	db          *sql.DB
	redisClient *redis.Client
	taskRunner  *task.Runner

	wordService             service.WordService
	reviewService           service.ReviewService
	walkService             lessonwalk.Service
	translationRequestStore store.TranslationRequestStore
}

// newApplication connects to the backing services and wires every layer of
// the engine: stores, cache, event pipeline, background runner and the
// domain services.
func newApplication(cfg *config.Config) (*application, error) {
	log := slog.Default()

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	// Stores share the same *sql.DB connection pool.
	wordStore := postgres.NewPostgresWordStore(db, log)
	knowledgeStore := postgres.NewPostgresKnowledgeStore(db, log)
	lessonStore := postgres.NewPostgresLessonStore(db, log)
	translationStore := postgres.NewPostgresTranslationStore(db, log)
	requestStore := postgres.NewPostgresTranslationRequestStore(db, log)
	app.translationRequestStore = requestStore

	// The word cache is optional; an empty Redis address disables it.
	var wordCache *rediscache.WordCache
	if cfg.Redis.Addr != "" {
		app.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := cfg.Redis.CacheTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		wordCache = rediscache.NewWordCache(app.redisClient, ttl, log)

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := wordCache.Ping(pingCtx); err != nil {
			cancelPing()
			log.Warn("word cache unreachable, running without it",
				"addr", cfg.Redis.Addr, "error", err)
			wordCache = nil
			if closeErr := app.redisClient.Close(); closeErr != nil {
				log.Warn("failed to close redis client", "error", closeErr)
			}
			app.redisClient = nil
		} else {
			cancelPing()
			log.Info("word cache enabled", "addr", cfg.Redis.Addr)
		}
	} else {
		log.Info("word cache disabled, no redis address configured")
	}

	// Translation requests flow through the event emitter into a worker
	// pool and get persisted off the request path.
	runnerCfg := task.DefaultRunnerConfig()
	if cfg.Task.WorkerCount > 0 {
		runnerCfg.WorkerCount = cfg.Task.WorkerCount
	}
	if cfg.Task.QueueSize > 0 {
		runnerCfg.QueueSize = cfg.Task.QueueSize
	}
	app.taskRunner = task.NewRunner(runnerCfg, log)
	app.taskRunner.Start()

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(task.NewTranslationRequestEventHandler(requestStore, app.taskRunner, log))

	scheduler := srs.NewDefaultScheduler()

	app.wordService = service.NewWordService(wordStore, translationStore, wordCache, log)
	app.reviewService = service.NewReviewService(knowledgeStore, wordStore, scheduler, log)
	app.walkService = lessonwalk.NewService(lessonStore, app.wordService, app.reviewService, emitter, log)

	return app, nil
}

// cleanup releases the application's long-lived resources in reverse
// dependency order.
func (app *application) cleanup() {
	if app.taskRunner != nil {
		app.taskRunner.Stop()
	}
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("failed to close redis client", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
