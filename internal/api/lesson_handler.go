// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/api/shared"
	"github.com/yardenlev/mikra-api/internal/domain"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/service"
	"github.com/yardenlev/mikra-api/internal/service/lessonwalk"
)

// defaultTranslationLanguage is used when a request does not name one.
const defaultTranslationLanguage = "en"

// LessonHandler handles lesson walk HTTP requests.
type LessonHandler struct {
	walks       lessonwalk.Service
	wordService service.WordService
	logger      *slog.Logger
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(
	walks lessonwalk.Service,
	wordService service.WordService,
	log *slog.Logger,
) *LessonHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LessonHandler")
	}

	return &LessonHandler{
		walks:       walks,
		wordService: wordService,
		logger:      log.With(slog.String("component", "lesson_handler")),
	}
}

// StartWalkRequest is the request body for starting a lesson walk.
type StartWalkRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Language  string `json:"language,omitempty"`
}

// StartWalk handles POST /lessons/{id}/walk requests. It opens a walk
// session over the lesson's unique words and returns the first word.
func (h *LessonHandler) StartWalk(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	lessonID, ok := parseUUIDParam(w, r, "id", "Lesson")
	if !ok {
		return
	}

	var req StartWalkRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("failed to decode start walk request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid student ID format")
		return
	}

	result, err := h.walks.Start(r.Context(), studentID, lessonID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp := &WalkStartResponse{
		SessionID:   result.SessionID.String(),
		WordCount:   result.WordCount,
		State:       string(result.State),
		CurrentWord: wordToResponse(result.CurrentWord, h.lookupTranslation(r, result.CurrentWord, req.Language, &lessonID)),
	}

	log.Debug("walk started",
		slog.String("session_id", result.SessionID.String()),
		slog.Int("word_count", result.WordCount))
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// RespondRequest is the request body for answering a walk word.
type RespondRequest struct {
	Known    *bool  `json:"known" validate:"required"`
	Language string `json:"language,omitempty"`
}

// Respond handles POST /walks/{id}/respond requests. It records whether
// the student knew the current word and returns the next one, or the
// quiz-pending state once the walk is over.
func (h *LessonHandler) Respond(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	sessionID, ok := parseUUIDParam(w, r, "id", "Session")
	if !ok {
		return
	}

	var req RespondRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("failed to decode respond request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Known == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Field known is required")
		return
	}

	result, err := h.walks.Respond(r.Context(), sessionID, *req.Known)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var translation string
	if result.NextWord != nil {
		sess, sessErr := h.walks.Get(sessionID)
		if sessErr == nil {
			lessonID := sess.LessonID
			translation = h.lookupTranslation(r, result.NextWord, req.Language, &lessonID)
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, walkStepToResponse(result, translation))
}

// RequestTranslation handles POST /walks/{id}/translation-request requests.
// The request is queued for a human translator; the walk itself is
// untouched, so the response is a bare 202.
func (h *LessonHandler) RequestTranslation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseUUIDParam(w, r, "id", "Session")
	if !ok {
		return
	}

	if err := h.walks.RequestTranslation(r.Context(), sessionID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// CompleteWalkRequest is the request body for completing a walk.
type CompleteWalkRequest struct {
	Score *int `json:"score" validate:"required"`
}

// Complete handles POST /walks/{id}/complete requests. It records the quiz
// score as lesson progress and retires the session.
func (h *LessonHandler) Complete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	sessionID, ok := parseUUIDParam(w, r, "id", "Session")
	if !ok {
		return
	}

	var req CompleteWalkRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("failed to decode complete request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Score == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Field score is required")
		return
	}

	if err := h.walks.Complete(r.Context(), sessionID, *req.Score); err != nil {
		if errors.Is(err, domain.ErrInvalidScore) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Score must be between 0 and 100")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("walk completed", slog.String("session_id", sessionID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// lookupTranslation fetches a display translation for a word, preferring a
// lesson-scoped entry. A missing translation or a lookup failure both
// degrade to an empty string; the walk never blocks on translations.
func (h *LessonHandler) lookupTranslation(r *http.Request, word *domain.Word, language string, lessonID *uuid.UUID) string {
	if word == nil || h.wordService == nil {
		return ""
	}
	if language == "" {
		language = defaultTranslationLanguage
	}

	translation, found, err := h.wordService.Translation(r.Context(), word.ID, language, lessonID)
	if err != nil {
		log := logger.FromContextOrDefault(r.Context(), h.logger)
		log.Debug("translation lookup failed",
			slog.String("word_id", word.ID.String()),
			slog.String("error", err.Error()))
		return ""
	}
	if !found {
		return ""
	}
	return translation
}

// parseUUIDParam extracts and parses a UUID path parameter, writing a 400
// response and returning false when it is missing or malformed.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, label+" ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+label+" ID format")
		return uuid.Nil, false
	}

	return id, true
}
