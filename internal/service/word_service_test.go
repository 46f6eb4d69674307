package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/hebrew"
	"github.com/yardenlev/mikra-api/internal/service"
)

func TestWordServiceGetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates on first sight, reuses after", func(t *testing.T) {
		t.Parallel()
		words := newMockWordStore()
		svc := service.NewWordService(words, &mockTranslationStore{}, nil, nil)

		first, err := svc.GetOrCreate(context.Background(), "שָׁלוֹם")
		require.NoError(t, err)
		assert.Equal(t, hebrew.Calculate("שָׁלוֹם"), first.Gematria)

		second, err := svc.GetOrCreate(context.Background(), "שָׁלוֹם")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("repeat lookup stays off the write path", func(t *testing.T) {
		t.Parallel()
		words := newMockWordStore()
		svc := service.NewWordService(words, &mockTranslationStore{}, nil, nil)

		first, err := svc.GetOrCreate(context.Background(), "שָׁלוֹם")
		require.NoError(t, err)
		assert.Equal(t, 1, words.getOrCreateCalls)

		second, err := svc.GetOrCreate(context.Background(), "שָׁלוֹם")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		// The second lookup is served by the read query alone.
		assert.Equal(t, 1, words.getOrCreateCalls)
		assert.Equal(t, 2, words.getByTextCalls)
	})

	t.Run("store failure wrapped as service error", func(t *testing.T) {
		t.Parallel()
		words := newMockWordStore()
		words.err = errors.New("connection refused")
		svc := service.NewWordService(words, &mockTranslationStore{}, nil, nil)

		_, err := svc.GetOrCreate(context.Background(), "שָׁלוֹם")
		require.Error(t, err)

		var svcErr *service.ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "get_or_create_word", svcErr.Operation)
	})
}

func TestWordServiceProcessLessonText(t *testing.T) {
	t.Parallel()

	t.Run("canonicalizes distinct words in order", func(t *testing.T) {
		t.Parallel()
		words := newMockWordStore()
		svc := service.NewWordService(words, &mockTranslationStore{}, nil, nil)

		got, err := svc.ProcessLessonText(context.Background(), "בְּרֵאשִׁית בָּרָא אֱלֹהִים בָּרָא")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "בְּרֵאשִׁית", got[0].HebrewText)
		assert.Equal(t, "בָּרָא", got[1].HebrewText)
		assert.Equal(t, "אֱלֹהִים", got[2].HebrewText)

		// One insert per distinct word, none for the repeat.
		assert.Equal(t, 3, words.getOrCreateCalls)
	})

	t.Run("no hebrew content yields nothing", func(t *testing.T) {
		t.Parallel()
		words := newMockWordStore()
		svc := service.NewWordService(words, &mockTranslationStore{}, nil, nil)

		got, err := svc.ProcessLessonText(context.Background(), "only latin text here")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Zero(t, words.getOrCreateCalls)
	})

	t.Run("reprocessing the same text returns the same IDs", func(t *testing.T) {
		t.Parallel()
		words := newMockWordStore()
		svc := service.NewWordService(words, &mockTranslationStore{}, nil, nil)

		first, err := svc.ProcessLessonText(context.Background(), "אוֹר חֹשֶׁךְ")
		require.NoError(t, err)
		second, err := svc.ProcessLessonText(context.Background(), "אוֹר חֹשֶׁךְ")
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
	})
}

func TestWordServiceTranslation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wordID := uuid.New()
	lessonID := uuid.New()

	translations := &mockTranslationStore{}
	translations.add(&domain.Translation{
		ID:          uuid.New(),
		WordID:      wordID,
		Language:    "en",
		Translation: "peace",
	})
	translations.add(&domain.Translation{
		ID:          uuid.New(),
		WordID:      wordID,
		Language:    "en",
		Translation: "farewell",
		LessonID:    &lessonID,
	})

	svc := service.NewWordService(newMockWordStore(), translations, nil, nil)

	t.Run("general translation", func(t *testing.T) {
		t.Parallel()
		got, found, err := svc.Translation(ctx, wordID, "en", nil)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "peace", got)
	})

	t.Run("lesson-scoped translation wins", func(t *testing.T) {
		t.Parallel()
		got, found, err := svc.Translation(ctx, wordID, "en", &lessonID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "farewell", got)
	})

	t.Run("missing translation is not an error", func(t *testing.T) {
		t.Parallel()
		got, found, err := svc.Translation(ctx, wordID, "fr", nil)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got)
	})
}
