package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardenlev/mikra-api/internal/domain"
)

func TestNewLesson(t *testing.T) {
	t.Parallel()

	t.Run("valid lesson", func(t *testing.T) {
		t.Parallel()
		lesson, err := domain.NewLesson("Bereshit 1", "בְּרֵאשִׁית בָּרָא אֱלֹהִים")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, lesson.ID)
		assert.Equal(t, "Bereshit 1", lesson.Title)
		assert.False(t, lesson.CreatedAt.IsZero())
	})

	t.Run("empty content rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewLesson("Empty", "")
		assert.ErrorIs(t, err, domain.ErrLessonContentEmpty)
	})

	t.Run("empty title allowed", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewLesson("", "שָׁלוֹם")
		assert.NoError(t, err)
	})
}

func TestNewLessonProgress(t *testing.T) {
	t.Parallel()

	t.Run("valid progress", func(t *testing.T) {
		t.Parallel()
		p, err := domain.NewLessonProgress(uuid.New(), uuid.New(), 85)
		require.NoError(t, err)
		assert.Equal(t, 85, p.Score)
		assert.False(t, p.CompletedAt.IsZero())
	})

	t.Run("boundary scores accepted", func(t *testing.T) {
		t.Parallel()
		for _, score := range []int{0, 100} {
			_, err := domain.NewLessonProgress(uuid.New(), uuid.New(), score)
			assert.NoError(t, err, "score %d", score)
		}
	})

	t.Run("out-of-range scores rejected", func(t *testing.T) {
		t.Parallel()
		for _, score := range []int{-1, 101} {
			_, err := domain.NewLessonProgress(uuid.New(), uuid.New(), score)
			assert.ErrorIs(t, err, domain.ErrInvalidScore, "score %d", score)
		}
	})

	t.Run("empty student rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewLessonProgress(uuid.Nil, uuid.New(), 50)
		assert.ErrorIs(t, err, domain.ErrEmptyKnowledgeStudentID)
	})
}

func TestNewTranslationRequest(t *testing.T) {
	t.Parallel()

	t.Run("pending by default", func(t *testing.T) {
		t.Parallel()
		lessonID := uuid.New()
		req, err := domain.NewTranslationRequest(uuid.New(), uuid.New(), &lessonID)
		require.NoError(t, err)
		assert.Equal(t, domain.TranslationRequestPending, req.Status)
		require.NotNil(t, req.LessonID)
		assert.Equal(t, lessonID, *req.LessonID)
	})

	t.Run("lesson scope optional", func(t *testing.T) {
		t.Parallel()
		req, err := domain.NewTranslationRequest(uuid.New(), uuid.New(), nil)
		require.NoError(t, err)
		assert.Nil(t, req.LessonID)
	})

	t.Run("empty word rejected", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTranslationRequest(uuid.New(), uuid.Nil, nil)
		assert.ErrorIs(t, err, domain.ErrTranslationWordIDEmpty)
	})
}
