package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the WordStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

const wordColumns = `id, hebrew_word, transliteration,
	gematria_simple, gematria_standard, gematria_ordinal,
	created_at, updated_at`

// GetOrCreate implements store.WordStore.GetOrCreate.
// The no-op DO UPDATE on conflict makes the RETURNING clause yield the
// existing row, so a lookup and a create are the same single round trip and
// concurrent callers for the same text converge on one row.
func (s *PostgresWordStore) GetOrCreate(ctx context.Context, hebrewText string) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word, err := domain.NewWord(hebrewText)
	if err != nil {
		log.Warn("word validation failed during get-or-create",
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO words (id, hebrew_word, transliteration,
			gematria_simple, gematria_standard, gematria_ordinal,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (hebrew_word)
			DO UPDATE SET hebrew_word = EXCLUDED.hebrew_word
		RETURNING ` + wordColumns

	row := s.db.QueryRowContext(
		ctx,
		query,
		word.ID,
		word.HebrewText,
		word.Transliteration,
		word.Gematria.Simple,
		word.Gematria.Standard,
		word.Gematria.Ordinal,
		word.CreatedAt,
		word.UpdatedAt,
	)

	got, err := scanWord(row)
	if err != nil {
		log.Error("failed to get or create word",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("word", "get_or_create", "query failed", err)
	}

	return got, nil
}

// GetByID implements store.WordStore.GetByID.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + wordColumns + ` FROM words WHERE id = $1`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found", slog.String("word_id", id.String()))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by ID",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, store.NewStoreError("word", "get_by_id", "query failed", err)
	}

	return word, nil
}

// GetByText implements store.WordStore.GetByText.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByText(ctx context.Context, hebrewText string) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + wordColumns + ` FROM words WHERE hebrew_word = $1`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, hebrewText))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by text",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("word", "get_by_text", "query failed", err)
	}

	return word, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (*domain.Word, error) {
	var w domain.Word
	err := row.Scan(
		&w.ID,
		&w.HebrewText,
		&w.Transliteration,
		&w.Gematria.Simple,
		&w.Gematria.Standard,
		&w.Gematria.Ordinal,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
