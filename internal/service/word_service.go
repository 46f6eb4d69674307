package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/hebrew"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/platform/rediscache"
	"github.com/yardenlev/mikra-api/internal/store"
)

// WordService provides canonical word lookup and lesson-text processing.
type WordService interface {
	// GetOrCreate canonicalizes a Hebrew word: an existing row is returned
	// as-is, a new one is created with freshly computed gematria. The
	// operation is idempotent on the exact text.
	GetOrCreate(ctx context.Context, hebrewText string) (*domain.Word, error)

	// ProcessLessonText extracts the distinct Hebrew words of a lesson's
	// content in first-occurrence order and canonicalizes each of them.
	ProcessLessonText(ctx context.Context, content string) ([]*domain.Word, error)

	// Translation returns the display translation of a word for the
	// target language, preferring a lesson-scoped entry when lessonID is
	// non-nil. The boolean is false when no translation is available,
	// which is not an error.
	Translation(ctx context.Context, wordID uuid.UUID, language string, lessonID *uuid.UUID) (string, bool, error)
}

// wordService is the standard implementation of WordService.
type wordService struct {
	words        store.WordStore
	translations store.TranslationStore
	cache        *rediscache.WordCache // nil disables caching
	logger       *slog.Logger
}

// NewWordService creates a WordService. cache may be nil, in which case
// every lookup goes straight to the database.
func NewWordService(
	words store.WordStore,
	translations store.TranslationStore,
	cache *rediscache.WordCache,
	log *slog.Logger,
) WordService {
	if words == nil {
		panic("words store cannot be nil")
	}
	if translations == nil {
		panic("translations store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &wordService{
		words:        words,
		translations: translations,
		cache:        cache,
		logger:       log.With(slog.String("component", "word_service")),
	}
}

// GetOrCreate implements WordService.GetOrCreate. Cache failures never
// fail the lookup; they degrade to the database and are logged at debug.
func (s *wordService) GetOrCreate(ctx context.Context, hebrewText string) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.cache != nil {
		word, err := s.cache.Get(ctx, hebrewText)
		if err == nil {
			return word, nil
		}
		if !errors.Is(err, rediscache.ErrCacheMiss) {
			log.Debug("word cache read failed, falling back to database",
				slog.String("error", err.Error()))
		}
	}

	// Read first so repeat lookups of a known word stay off the write
	// path; only an unseen text takes the insert round trip.
	word, err := s.words.GetByText(ctx, hebrewText)
	if errors.Is(err, store.ErrWordNotFound) {
		word, err = s.words.GetOrCreate(ctx, hebrewText)
	}
	if err != nil {
		return nil, NewServiceError("get_or_create_word", "store lookup failed", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, word); err != nil {
			log.Debug("word cache write failed",
				slog.String("error", err.Error()))
		}
	}

	return word, nil
}

// ProcessLessonText implements WordService.ProcessLessonText.
func (s *wordService) ProcessLessonText(ctx context.Context, content string) ([]*domain.Word, error) {
	texts := hebrew.ExtractUniqueWords(content)
	if len(texts) == 0 {
		return nil, nil
	}

	words := make([]*domain.Word, 0, len(texts))
	for _, text := range texts {
		word, err := s.GetOrCreate(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to canonicalize word %d of %d: %w",
				len(words)+1, len(texts), err)
		}
		words = append(words, word)
	}

	return words, nil
}

// Translation implements WordService.Translation.
func (s *wordService) Translation(ctx context.Context, wordID uuid.UUID, language string, lessonID *uuid.UUID) (string, bool, error) {
	t, err := s.translations.Lookup(ctx, wordID, language, lessonID)
	if err != nil {
		if errors.Is(err, store.ErrTranslationNotFound) {
			return "", false, nil
		}
		return "", false, NewServiceError("translation_lookup", "store lookup failed", err)
	}
	return t.Translation, true, nil
}
