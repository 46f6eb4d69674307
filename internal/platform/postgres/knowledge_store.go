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

// PostgresKnowledgeStore implements the store.KnowledgeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresKnowledgeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresKnowledgeStore creates a new PostgreSQL implementation of the KnowledgeStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresKnowledgeStore(db store.DBTX, logger *slog.Logger) *PostgresKnowledgeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresKnowledgeStore{
		db:     db,
		logger: logger.With(slog.String("component", "knowledge_store")),
	}
}

// Ensure PostgresKnowledgeStore implements store.KnowledgeStore interface
var _ store.KnowledgeStore = (*PostgresKnowledgeStore)(nil)

const knowledgeColumns = `student_id, word_id, level, review_count, correct_count,
	last_reviewed_at, next_review_at, created_at, updated_at`

// Upsert implements store.KnowledgeStore.Upsert.
// The entire read-modify-write is one INSERT .. ON CONFLICT DO UPDATE
// statement: the row lock taken by the conflict resolution serializes
// concurrent drills of the same (student, word) pair, so increments are
// never lost and level and next_review_at always land together.
func (s *PostgresKnowledgeStore) Upsert(ctx context.Context, up store.KnowledgeUpsert) (*domain.WordKnowledge, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if up.StudentID == uuid.Nil {
		return nil, domain.ErrEmptyKnowledgeStudentID
	}
	if up.WordID == uuid.Nil {
		return nil, domain.ErrEmptyKnowledgeWordID
	}
	if !up.Level.Valid() {
		return nil, domain.ErrInvalidKnowledgeLevel
	}

	correct := 0
	if up.WasCorrect {
		correct = 1
	}

	query := `
		INSERT INTO word_knowledge (student_id, word_id, level,
			review_count, correct_count, last_reviewed_at, next_review_at,
			created_at, updated_at)
		VALUES ($1, $2, $3, 1, $4, $5, $6, $5, $5)
		ON CONFLICT (student_id, word_id) DO UPDATE SET
			level            = EXCLUDED.level,
			review_count     = word_knowledge.review_count + 1,
			correct_count    = word_knowledge.correct_count + $4,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			next_review_at   = EXCLUDED.next_review_at,
			updated_at       = EXCLUDED.updated_at
		RETURNING ` + knowledgeColumns

	row := s.db.QueryRowContext(
		ctx,
		query,
		up.StudentID,
		up.WordID,
		string(up.Level),
		correct,
		up.LastReviewedAt,
		up.NextReviewAt,
	)

	k, err := scanKnowledge(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during knowledge upsert",
				slog.String("error", err.Error()),
				slog.String("student_id", up.StudentID.String()),
				slog.String("word_id", up.WordID.String()))
			return nil, fmt.Errorf("%w: word with ID %s not found",
				store.ErrInvalidEntity, up.WordID)
		}
		log.Error("failed to upsert word knowledge",
			slog.String("error", err.Error()),
			slog.String("student_id", up.StudentID.String()),
			slog.String("word_id", up.WordID.String()))
		return nil, store.NewStoreError("word_knowledge", "upsert", "query failed", err)
	}

	log.Debug("word knowledge upserted",
		slog.String("student_id", k.StudentID.String()),
		slog.String("word_id", k.WordID.String()),
		slog.String("level", string(k.Level)),
		slog.Int("review_count", k.ReviewCount))
	return k, nil
}

// Get implements store.KnowledgeStore.Get.
// Returns store.ErrKnowledgeNotFound if no record exists for the pair.
func (s *PostgresKnowledgeStore) Get(ctx context.Context, studentID, wordID uuid.UUID) (*domain.WordKnowledge, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + knowledgeColumns + `
		FROM word_knowledge
		WHERE student_id = $1 AND word_id = $2`

	k, err := scanKnowledge(s.db.QueryRowContext(ctx, query, studentID, wordID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrKnowledgeNotFound
		}
		log.Error("failed to get word knowledge",
			slog.String("error", err.Error()),
			slog.String("student_id", studentID.String()),
			slog.String("word_id", wordID.String()))
		return nil, store.NewStoreError("word_knowledge", "get", "query failed", err)
	}

	return k, nil
}

// WordsDueForReview implements store.KnowledgeStore.WordsDueForReview.
// Records are due once next_review_at has passed; the earliest due comes first.
func (s *PostgresKnowledgeStore) WordsDueForReview(ctx context.Context, studentID uuid.UUID, limit int) ([]*domain.WordKnowledge, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + knowledgeColumns + `
		FROM word_knowledge
		WHERE student_id = $1 AND next_review_at <= now()
		ORDER BY next_review_at ASC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, studentID, limit)
	if err != nil {
		log.Error("failed to query words due for review",
			slog.String("error", err.Error()),
			slog.String("student_id", studentID.String()))
		return nil, store.NewStoreError("word_knowledge", "due_for_review", "query failed", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	var due []*domain.WordKnowledge
	for rows.Next() {
		k, err := scanKnowledge(rows)
		if err != nil {
			return nil, store.NewStoreError("word_knowledge", "due_for_review", "scan failed", err)
		}
		due = append(due, k)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("word_knowledge", "due_for_review", "iteration failed", err)
	}

	return due, nil
}

// CountByLevel implements store.KnowledgeStore.CountByLevel.
func (s *PostgresKnowledgeStore) CountByLevel(ctx context.Context, studentID uuid.UUID) (map[domain.KnowledgeLevel]int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT level, count(*)
		FROM word_knowledge
		WHERE student_id = $1
		GROUP BY level`

	rows, err := s.db.QueryContext(ctx, query, studentID)
	if err != nil {
		log.Error("failed to count knowledge by level",
			slog.String("error", err.Error()),
			slog.String("student_id", studentID.String()))
		return nil, store.NewStoreError("word_knowledge", "count_by_level", "query failed", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	counts := make(map[domain.KnowledgeLevel]int)
	for rows.Next() {
		var level string
		var n int
		if err := rows.Scan(&level, &n); err != nil {
			return nil, store.NewStoreError("word_knowledge", "count_by_level", "scan failed", err)
		}
		counts[domain.KnowledgeLevel(level)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("word_knowledge", "count_by_level", "iteration failed", err)
	}

	return counts, nil
}

func scanKnowledge(row rowScanner) (*domain.WordKnowledge, error) {
	var k domain.WordKnowledge
	var level string
	err := row.Scan(
		&k.StudentID,
		&k.WordID,
		&level,
		&k.ReviewCount,
		&k.CorrectCount,
		&k.LastReviewedAt,
		&k.NextReviewAt,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	k.Level = domain.KnowledgeLevel(level)
	return &k, nil
}
