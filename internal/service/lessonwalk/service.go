package lessonwalk

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
)

// Common walk errors.
var (
	// ErrSessionNotFound indicates that no live session has the given ID.
	ErrSessionNotFound = errors.New("walk session not found")

	// ErrWalkFinished indicates a response was submitted after the last
	// word was answered.
	ErrWalkFinished = errors.New("walk already finished")

	// ErrWalkNotFinished indicates a completion was submitted while words
	// remain unanswered.
	ErrWalkNotFinished = errors.New("walk not finished yet")
)

// StartResult describes a freshly started walk.
type StartResult struct {
	SessionID   uuid.UUID
	WordCount   int
	State       State
	CurrentWord *domain.Word // nil when the lesson has no Hebrew words
}

// RespondResult describes the outcome of answering one word. The cursor has
// already advanced when it is returned, even if the knowledge write failed:
// a storage hiccup is reported on KnowledgeErr but never blocks the walk.
type RespondResult struct {
	Knowledge    *domain.WordKnowledge // nil when the knowledge write failed
	KnowledgeErr error
	NextWord     *domain.Word // nil once the walk is finished
	State        State
	Position     int
	WordCount    int
}

// Service manages lesson walk sessions: the student steps through a
// lesson's unique words one at a time, reporting for each whether they knew
// it, and closes with a quiz score.
type Service interface {
	// Start opens a walk session for a student over a lesson. The lesson's
	// unique Hebrew words are extracted and canonicalized once; the
	// resulting list is fixed for the session's lifetime.
	Start(ctx context.Context, studentID, lessonID uuid.UUID) (*StartResult, error)

	// Respond records whether the student knew the current word and
	// advances to the next. Returns ErrWalkFinished once every word has
	// been answered.
	Respond(ctx context.Context, sessionID uuid.UUID, known bool) (*RespondResult, error)

	// RequestTranslation asks for a human translation of the current word.
	// It is fire-and-forget: the request is emitted as an event and the
	// cursor and knowledge state are untouched.
	RequestTranslation(ctx context.Context, sessionID uuid.UUID) error

	// Complete records the closing quiz score and retires the session.
	// Returns ErrWalkNotFinished while words remain unanswered.
	Complete(ctx context.Context, sessionID uuid.UUID, score int) error

	// Get returns a live session by ID.
	Get(sessionID uuid.UUID) (*Session, error)
}
