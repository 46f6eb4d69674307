package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yardenlev/mikra-api/internal/api/shared"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/service"
)

const (
	defaultReviewLimit = 20
	maxReviewLimit     = 100
)

// ReviewHandler handles review queue HTTP requests.
type ReviewHandler struct {
	reviews service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews service.ReviewService, log *slog.Logger) *ReviewHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		reviews: reviews,
		logger:  log.With(slog.String("component", "review_handler")),
	}
}

// DueWords handles GET /students/{id}/review requests. It returns the
// student's words whose next review time has passed, soonest first. The
// optional limit query parameter caps the queue size.
func (h *ReviewHandler) DueWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	studentID, ok := parseUUIDParam(w, r, "id", "Student")
	if !ok {
		return
	}

	limit := defaultReviewLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}

	items, err := h.reviews.DueWords(r.Context(), studentID, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]*ReviewItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, reviewItemToResponse(item))
	}

	log.Debug("review queue served",
		slog.String("student_id", studentID.String()),
		slog.Int("count", len(responses)))
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// SubmitAnswerRequest is the request body for a review drill answer.
type SubmitAnswerRequest struct {
	Known *bool `json:"known" validate:"required"`
}

// SubmitAnswer handles POST /students/{id}/review/{wordID} requests. It
// records one drill result outside a lesson walk.
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	studentID, ok := parseUUIDParam(w, r, "id", "Student")
	if !ok {
		return
	}
	wordID, ok := parseUUIDParam(w, r, "wordID", "Word")
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("failed to decode answer request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Known == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Field known is required")
		return
	}

	knowledge, err := h.reviews.SubmitAnswer(r.Context(), studentID, wordID, *req.Known)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review answer recorded",
		slog.String("student_id", studentID.String()),
		slog.String("word_id", wordID.String()),
		slog.String("level", string(knowledge.Level)))
	shared.RespondWithJSON(w, r, http.StatusOK, knowledgeToResponse(knowledge))
}

// Progress handles GET /students/{id}/progress requests.
func (h *ReviewHandler) Progress(w http.ResponseWriter, r *http.Request) {
	studentID, ok := parseUUIDParam(w, r, "id", "Student")
	if !ok {
		return
	}

	progress, err := h.reviews.Progress(r.Context(), studentID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(progress))
}
