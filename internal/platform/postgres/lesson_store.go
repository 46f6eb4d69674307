package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/store"
)

// PostgresLessonStore implements the store.LessonStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLessonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLessonStore creates a new PostgreSQL implementation of the LessonStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresLessonStore(db store.DBTX, logger *slog.Logger) *PostgresLessonStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLessonStore{
		db:     db,
		logger: logger.With(slog.String("component", "lesson_store")),
	}
}

// Ensure PostgresLessonStore implements store.LessonStore interface
var _ store.LessonStore = (*PostgresLessonStore)(nil)

// GetByID implements store.LessonStore.GetByID.
// Returns store.ErrLessonNotFound if the lesson does not exist.
func (s *PostgresLessonStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, created_at, updated_at
		FROM lessons
		WHERE id = $1
	`

	var lesson domain.Lesson
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.Title,
		&lesson.Content,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("lesson not found", slog.String("lesson_id", id.String()))
			return nil, store.ErrLessonNotFound
		}
		log.Error("failed to get lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return nil, store.NewStoreError("lesson", "get_by_id", "query failed", err)
	}

	return &lesson, nil
}

// Create implements store.LessonStore.Create.
func (s *PostgresLessonStore) Create(ctx context.Context, lesson *domain.Lesson) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := lesson.Validate(); err != nil {
		log.Warn("lesson validation failed during create",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID.String()))
		return err
	}

	query := `
		INSERT INTO lessons (id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		lesson.ID,
		lesson.Title,
		lesson.Content,
		lesson.CreatedAt,
		lesson.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: lesson %s", store.ErrDuplicate, lesson.ID)
		}
		log.Error("failed to create lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID.String()))
		return store.NewStoreError("lesson", "create", "insert failed", err)
	}

	log.Info("lesson created",
		slog.String("lesson_id", lesson.ID.String()),
		slog.String("title", lesson.Title))
	return nil
}

// RecordProgress implements store.LessonStore.RecordProgress.
// Re-completing a lesson overwrites the previous score; history of earlier
// attempts is not kept.
func (s *PostgresLessonStore) RecordProgress(ctx context.Context, progress *domain.LessonProgress) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := progress.Validate(); err != nil {
		log.Warn("lesson progress validation failed",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO lesson_progress (student_id, lesson_id, score, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, lesson_id) DO UPDATE SET
			score        = EXCLUDED.score,
			completed_at = EXCLUDED.completed_at
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		progress.StudentID,
		progress.LessonID,
		progress.Score,
		progress.CompletedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: lesson with ID %s not found",
				store.ErrInvalidEntity, progress.LessonID)
		}
		log.Error("failed to record lesson progress",
			slog.String("error", err.Error()),
			slog.String("student_id", progress.StudentID.String()),
			slog.String("lesson_id", progress.LessonID.String()))
		return store.NewStoreError("lesson_progress", "record", "upsert failed", err)
	}

	log.Info("lesson progress recorded",
		slog.String("student_id", progress.StudentID.String()),
		slog.String("lesson_id", progress.LessonID.String()),
		slog.Int("score", progress.Score))
	return nil
}
