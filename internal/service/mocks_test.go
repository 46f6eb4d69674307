package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/store"
)

// mockWordStore is an in-memory WordStore keyed by Hebrew text.
type mockWordStore struct {
	mu     sync.Mutex
	byText map[string]*domain.Word
	byID   map[uuid.UUID]*domain.Word
	err    error

	getOrCreateCalls int
	getByTextCalls   int
}

func newMockWordStore() *mockWordStore {
	return &mockWordStore{
		byText: make(map[string]*domain.Word),
		byID:   make(map[uuid.UUID]*domain.Word),
	}
}

func (s *mockWordStore) GetOrCreate(_ context.Context, hebrewText string) (*domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateCalls++
	if s.err != nil {
		return nil, s.err
	}
	if w, ok := s.byText[hebrewText]; ok {
		return w, nil
	}
	w, err := domain.NewWord(hebrewText)
	if err != nil {
		return nil, err
	}
	s.byText[hebrewText] = w
	s.byID[w.ID] = w
	return w, nil
}

func (s *mockWordStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if w, ok := s.byID[id]; ok {
		return w, nil
	}
	return nil, store.ErrWordNotFound
}

func (s *mockWordStore) GetByText(_ context.Context, hebrewText string) (*domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getByTextCalls++
	if s.err != nil {
		return nil, s.err
	}
	if w, ok := s.byText[hebrewText]; ok {
		return w, nil
	}
	return nil, store.ErrWordNotFound
}

// mockKnowledgeStore applies upserts the way the real store does: first
// write creates the record, later writes increment the counters.
type mockKnowledgeStore struct {
	mu      sync.Mutex
	records map[string]*domain.WordKnowledge
	err     error
	getErr  error
}

func newMockKnowledgeStore() *mockKnowledgeStore {
	return &mockKnowledgeStore{records: make(map[string]*domain.WordKnowledge)}
}

func knowledgeKey(studentID, wordID uuid.UUID) string {
	return studentID.String() + "/" + wordID.String()
}

func (s *mockKnowledgeStore) Upsert(_ context.Context, up store.KnowledgeUpsert) (*domain.WordKnowledge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	correct := 0
	if up.WasCorrect {
		correct = 1
	}

	key := knowledgeKey(up.StudentID, up.WordID)
	rec, ok := s.records[key]
	if !ok {
		rec = &domain.WordKnowledge{
			StudentID: up.StudentID,
			WordID:    up.WordID,
			CreatedAt: up.LastReviewedAt,
		}
		s.records[key] = rec
	}
	rec.Level = up.Level
	rec.ReviewCount++
	rec.CorrectCount += correct
	rec.LastReviewedAt = up.LastReviewedAt
	rec.NextReviewAt = up.NextReviewAt
	rec.UpdatedAt = up.LastReviewedAt

	copied := *rec
	return &copied, nil
}

func (s *mockKnowledgeStore) Get(_ context.Context, studentID, wordID uuid.UUID) (*domain.WordKnowledge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	if rec, ok := s.records[knowledgeKey(studentID, wordID)]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, store.ErrKnowledgeNotFound
}

func (s *mockKnowledgeStore) WordsDueForReview(_ context.Context, studentID uuid.UUID, limit int) ([]*domain.WordKnowledge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	now := time.Now().UTC()
	var due []*domain.WordKnowledge
	for _, rec := range s.records {
		if rec.StudentID == studentID && !rec.NextReviewAt.After(now) {
			copied := *rec
			due = append(due, &copied)
		}
	}
	sortKnowledgeByNextReview(due)
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func sortKnowledgeByNextReview(recs []*domain.WordKnowledge) {
	for i := 1; i < len(recs); i++ {
		for j := i; j > 0 && recs[j].NextReviewAt.Before(recs[j-1].NextReviewAt); j-- {
			recs[j], recs[j-1] = recs[j-1], recs[j]
		}
	}
}

func (s *mockKnowledgeStore) CountByLevel(_ context.Context, studentID uuid.UUID) (map[domain.KnowledgeLevel]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	counts := make(map[domain.KnowledgeLevel]int)
	for _, rec := range s.records {
		if rec.StudentID == studentID {
			counts[rec.Level]++
		}
	}
	return counts, nil
}

// mockTranslationStore serves translations from a fixed map keyed by word
// and language, with optional lesson-scoped entries that win over general
// ones.
type mockTranslationStore struct {
	mu           sync.Mutex
	translations []*domain.Translation
}

func (s *mockTranslationStore) add(t *domain.Translation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.translations = append(s.translations, t)
}

func (s *mockTranslationStore) Lookup(_ context.Context, wordID uuid.UUID, language string, lessonID *uuid.UUID) (*domain.Translation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var general *domain.Translation
	for _, t := range s.translations {
		if t.WordID != wordID || t.Language != language {
			continue
		}
		if t.LessonID == nil {
			general = t
			continue
		}
		if lessonID != nil && *t.LessonID == *lessonID {
			return t, nil
		}
	}
	if general != nil {
		return general, nil
	}
	return nil, store.ErrTranslationNotFound
}
