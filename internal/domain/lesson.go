package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lesson-specific validation errors
var (
	// ErrLessonIDEmpty is returned when a lesson ID is empty or nil.
	ErrLessonIDEmpty = errors.New("lesson ID cannot be empty")

	// ErrLessonContentEmpty is returned when a lesson has no text content.
	ErrLessonContentEmpty = errors.New("lesson content cannot be empty")

	// ErrInvalidScore is returned when a lesson score is outside 0-100.
	ErrInvalidScore = errors.New("score must be between 0 and 100")
)

// Lesson holds a passage of vocalized Hebrew text. The engine treats the
// content as an opaque string; content is mutable, so two walks of the same
// lesson may see different word lists.
type Lesson struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLesson creates a lesson with the given title and Hebrew content.
func NewLesson(title, content string) (*Lesson, error) {
	now := time.Now().UTC()
	lesson := &Lesson{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := lesson.Validate(); err != nil {
		return nil, err
	}

	return lesson, nil
}

// Validate checks if the Lesson has valid data.
func (l *Lesson) Validate() error {
	if l.ID == uuid.Nil {
		return ErrLessonIDEmpty
	}

	if l.Content == "" {
		return ErrLessonContentEmpty
	}

	return nil
}

// LessonProgress records that a student completed a lesson walk and the
// score from the closing quiz. It is lesson-level bookkeeping only and has
// no effect on per-word knowledge.
type LessonProgress struct {
	StudentID   uuid.UUID `json:"student_id"`
	LessonID    uuid.UUID `json:"lesson_id"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewLessonProgress creates a completion record for a student and lesson.
func NewLessonProgress(studentID, lessonID uuid.UUID, score int) (*LessonProgress, error) {
	p := &LessonProgress{
		StudentID:   studentID,
		LessonID:    lessonID,
		Score:       score,
		CompletedAt: time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the LessonProgress has valid data.
func (p *LessonProgress) Validate() error {
	if p.StudentID == uuid.Nil {
		return ErrEmptyKnowledgeStudentID
	}

	if p.LessonID == uuid.Nil {
		return ErrLessonIDEmpty
	}

	if p.Score < 0 || p.Score > 100 {
		return ErrInvalidScore
	}

	return nil
}
