package lessonwalk

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
)

// State is the lifecycle state of a walk session.
type State string

const (
	// StateWalking means the cursor has not yet passed the last word.
	StateWalking State = "walking"

	// StateQuizPending means every word has been answered and the session
	// is waiting for the closing quiz score.
	StateQuizPending State = "quiz_pending"

	// StateCompleted means the quiz score has been recorded.
	StateCompleted State = "completed"
)

// Session is one student's in-memory walk through a lesson. The word list
// is extracted once at start and fixed for the session's lifetime, so a
// concurrent edit of the lesson content never shifts the cursor under the
// student. Sessions are not persisted; abandoning one loses only the cursor
// position.
type Session struct {
	mu sync.Mutex

	ID        uuid.UUID
	StudentID uuid.UUID
	LessonID  uuid.UUID
	Words     []*domain.Word
	StartedAt time.Time

	cursor int
	state  State
}

// newSession creates a walking session over the given fixed word list. A
// lesson with no Hebrew words starts directly in StateQuizPending.
func newSession(studentID, lessonID uuid.UUID, words []*domain.Word) *Session {
	s := &Session{
		ID:        uuid.New(),
		StudentID: studentID,
		LessonID:  lessonID,
		Words:     words,
		StartedAt: time.Now().UTC(),
		state:     StateWalking,
	}
	if len(words) == 0 {
		s.state = StateQuizPending
	}
	return s
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cursor returns the index of the current word.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// CurrentWord returns the word under the cursor, or nil once the walk has
// passed the last word.
func (s *Session) CurrentWord() *domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentWordLocked()
}

func (s *Session) currentWordLocked() *domain.Word {
	if s.cursor >= len(s.Words) {
		return nil
	}
	return s.Words[s.cursor]
}

// step is the outcome of answering one word: the word that was claimed and
// the session's position once the cursor has moved past it.
type step struct {
	word     *domain.Word
	next     *domain.Word
	state    State
	position int
}

// claimStep takes the current word and advances the cursor in one critical
// section, so racing responses to the same session each claim a distinct
// word and the cursor never passes len(Words). It flips the session to
// StateQuizPending when the last word is claimed, and reports false once
// the walk is no longer accepting word-level responses.
func (s *Session) claimStep() (step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateWalking {
		return step{}, false
	}
	word := s.currentWordLocked()
	if word == nil {
		return step{}, false
	}

	s.cursor++
	if s.cursor >= len(s.Words) {
		s.state = StateQuizPending
	}

	return step{
		word:     word,
		next:     s.currentWordLocked(),
		state:    s.state,
		position: s.cursor,
	}, true
}

// sessionRegistry holds live sessions keyed by session ID.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (r *sessionRegistry) add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *sessionRegistry) get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *sessionRegistry) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
