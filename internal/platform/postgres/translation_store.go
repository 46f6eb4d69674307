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

// PostgresTranslationStore implements the store.TranslationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTranslationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTranslationStore creates a new PostgreSQL implementation of the TranslationStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTranslationStore(db store.DBTX, logger *slog.Logger) *PostgresTranslationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTranslationStore{
		db:     db,
		logger: logger.With(slog.String("component", "translation_store")),
	}
}

// Ensure PostgresTranslationStore implements store.TranslationStore interface
var _ store.TranslationStore = (*PostgresTranslationStore)(nil)

// Lookup implements store.TranslationStore.Lookup.
// Lesson-scoped translations win over general ones; the lesson_id IS NULL
// fallback row sorts last. Returns store.ErrTranslationNotFound when no
// row matches at all.
func (s *PostgresTranslationStore) Lookup(ctx context.Context, wordID uuid.UUID, language string, lessonID *uuid.UUID) (*domain.Translation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, word_id, language, translation, lesson_id, created_at
		FROM translations
		WHERE word_id = $1
		  AND language = $2
		  AND (lesson_id = $3 OR lesson_id IS NULL)
		ORDER BY lesson_id NULLS LAST
		LIMIT 1
	`

	var t domain.Translation
	err := s.db.QueryRowContext(ctx, query, wordID, language, lessonID).Scan(
		&t.ID,
		&t.WordID,
		&t.Language,
		&t.Translation,
		&t.LessonID,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTranslationNotFound
		}
		log.Error("failed to look up translation",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()),
			slog.String("language", language))
		return nil, store.NewStoreError("translation", "lookup", "query failed", err)
	}

	return &t, nil
}

// PostgresTranslationRequestStore implements the store.TranslationRequestStore
// interface using a PostgreSQL database as the storage backend.
type PostgresTranslationRequestStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTranslationRequestStore creates a new PostgreSQL implementation
// of the TranslationRequestStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTranslationRequestStore(db store.DBTX, logger *slog.Logger) *PostgresTranslationRequestStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTranslationRequestStore{
		db:     db,
		logger: logger.With(slog.String("component", "translation_request_store")),
	}
}

// Ensure PostgresTranslationRequestStore implements the interface
var _ store.TranslationRequestStore = (*PostgresTranslationRequestStore)(nil)

// Create implements store.TranslationRequestStore.Create.
// Returns store.ErrInvalidEntity if the word doesn't exist (foreign key violation).
func (s *PostgresTranslationRequestStore) Create(ctx context.Context, req *domain.TranslationRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		log.Warn("translation request validation failed during create",
			slog.String("error", err.Error()),
			slog.String("request_id", req.ID.String()))
		return err
	}

	query := `
		INSERT INTO translation_requests (id, student_id, word_id, lesson_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		req.ID,
		req.StudentID,
		req.WordID,
		req.LessonID,
		string(req.Status),
		req.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during translation request creation",
				slog.String("error", err.Error()),
				slog.String("word_id", req.WordID.String()))
			return fmt.Errorf("%w: word with ID %s not found",
				store.ErrInvalidEntity, req.WordID)
		}
		log.Error("failed to create translation request",
			slog.String("error", err.Error()),
			slog.String("request_id", req.ID.String()))
		return store.NewStoreError("translation_request", "create", "insert failed", err)
	}

	log.Info("translation request created",
		slog.String("request_id", req.ID.String()),
		slog.String("student_id", req.StudentID.String()),
		slog.String("word_id", req.WordID.String()))
	return nil
}

// ListPending implements store.TranslationRequestStore.ListPending.
func (s *PostgresTranslationRequestStore) ListPending(ctx context.Context, limit int) ([]*domain.TranslationRequest, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, student_id, word_id, lesson_id, status, created_at
		FROM translation_requests
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, string(domain.TranslationRequestPending), limit)
	if err != nil {
		log.Error("failed to list pending translation requests",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("translation_request", "list_pending", "query failed", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	var pending []*domain.TranslationRequest
	for rows.Next() {
		var r domain.TranslationRequest
		var status string
		err := rows.Scan(&r.ID, &r.StudentID, &r.WordID, &r.LessonID, &status, &r.CreatedAt)
		if err != nil {
			return nil, store.NewStoreError("translation_request", "list_pending", "scan failed", err)
		}
		r.Status = domain.TranslationRequestStatus(status)
		pending = append(pending, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("translation_request", "list_pending", "iteration failed", err)
	}

	return pending, nil
}
