package api

import (
	"time"

	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/hebrew"
	"github.com/yardenlev/mikra-api/internal/service"
	"github.com/yardenlev/mikra-api/internal/service/lessonwalk"
)

// WordResponse represents the response data for a canonical Hebrew word.
type WordResponse struct {
	ID              string          `json:"id"`
	HebrewText      string          `json:"hebrew_text"`
	Transliteration string          `json:"transliteration,omitempty"`
	Gematria        hebrew.Gematria `json:"gematria"`
	Translation     string          `json:"translation,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// wordToResponse converts a domain word to its API shape. translation may
// be empty when none is available.
func wordToResponse(w *domain.Word, translation string) *WordResponse {
	if w == nil {
		return nil
	}
	return &WordResponse{
		ID:              w.ID.String(),
		HebrewText:      w.HebrewText,
		Transliteration: w.Transliteration,
		Gematria:        w.Gematria,
		Translation:     translation,
		CreatedAt:       w.CreatedAt,
	}
}

// KnowledgeResponse represents the response data for one student's
// knowledge of one word.
type KnowledgeResponse struct {
	StudentID      string    `json:"student_id"`
	WordID         string    `json:"word_id"`
	Level          string    `json:"level"`
	ReviewCount    int       `json:"review_count"`
	CorrectCount   int       `json:"correct_count"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	NextReviewAt   time.Time `json:"next_review_at"`
}

func knowledgeToResponse(k *domain.WordKnowledge) *KnowledgeResponse {
	if k == nil {
		return nil
	}
	return &KnowledgeResponse{
		StudentID:      k.StudentID.String(),
		WordID:         k.WordID.String(),
		Level:          string(k.Level),
		ReviewCount:    k.ReviewCount,
		CorrectCount:   k.CorrectCount,
		LastReviewedAt: k.LastReviewedAt,
		NextReviewAt:   k.NextReviewAt,
	}
}

// ReviewItemResponse pairs a due word with its knowledge record.
type ReviewItemResponse struct {
	Word      *WordResponse      `json:"word"`
	Knowledge *KnowledgeResponse `json:"knowledge"`
}

func reviewItemToResponse(item *service.ReviewItem) *ReviewItemResponse {
	return &ReviewItemResponse{
		Word:      wordToResponse(item.Word, ""),
		Knowledge: knowledgeToResponse(item.Knowledge),
	}
}

// ProgressResponse summarizes a student's vocabulary.
type ProgressResponse struct {
	TotalWords int            `json:"total_words"`
	ByLevel    map[string]int `json:"by_level"`
	DueCount   int            `json:"due_count"`
}

func progressToResponse(p *service.Progress) *ProgressResponse {
	byLevel := make(map[string]int, len(p.ByLevel))
	for level, n := range p.ByLevel {
		byLevel[string(level)] = n
	}
	return &ProgressResponse{
		TotalWords: p.TotalWords,
		ByLevel:    byLevel,
		DueCount:   p.DueCount,
	}
}

// TranslationRequestResponse represents one pending translation request.
type TranslationRequestResponse struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	WordID    string    `json:"word_id"`
	LessonID  string    `json:"lesson_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func translationRequestToResponse(req *domain.TranslationRequest) *TranslationRequestResponse {
	resp := &TranslationRequestResponse{
		ID:        req.ID.String(),
		StudentID: req.StudentID.String(),
		WordID:    req.WordID.String(),
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
	}
	if req.LessonID != nil {
		resp.LessonID = req.LessonID.String()
	}
	return resp
}

// WalkStartResponse is returned when a lesson walk begins.
type WalkStartResponse struct {
	SessionID   string        `json:"session_id"`
	WordCount   int           `json:"word_count"`
	State       string        `json:"state"`
	CurrentWord *WordResponse `json:"current_word,omitempty"`
}

// WalkStepResponse is returned after each answered word.
type WalkStepResponse struct {
	State          string             `json:"state"`
	Position       int                `json:"position"`
	WordCount      int                `json:"word_count"`
	NextWord       *WordResponse      `json:"next_word,omitempty"`
	Knowledge      *KnowledgeResponse `json:"knowledge,omitempty"`
	KnowledgeError string             `json:"knowledge_error,omitempty"`
}

func walkStepToResponse(res *lessonwalk.RespondResult, nextTranslation string) *WalkStepResponse {
	resp := &WalkStepResponse{
		State:     string(res.State),
		Position:  res.Position,
		WordCount: res.WordCount,
		NextWord:  wordToResponse(res.NextWord, nextTranslation),
		Knowledge: knowledgeToResponse(res.Knowledge),
	}
	if res.KnowledgeErr != nil {
		resp.KnowledgeError = "failed to record answer"
	}
	return resp
}
