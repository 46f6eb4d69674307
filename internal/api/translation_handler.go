package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yardenlev/mikra-api/internal/api/shared"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/store"
)

const (
	defaultRequestListLimit = 50
	maxRequestListLimit     = 200
)

// TranslationRequestHandler serves the responder-facing queue of pending
// translation requests.
type TranslationRequestHandler struct {
	requests store.TranslationRequestStore
	logger   *slog.Logger
}

// NewTranslationRequestHandler creates a new TranslationRequestHandler.
func NewTranslationRequestHandler(requests store.TranslationRequestStore, log *slog.Logger) *TranslationRequestHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TranslationRequestHandler")
	}

	return &TranslationRequestHandler{
		requests: requests,
		logger:   log.With(slog.String("component", "translation_request_handler")),
	}
}

// ListPending handles GET /translation-requests requests. It returns pending
// requests oldest first so responders work through the backlog in order.
func (h *TranslationRequestHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	limit := defaultRequestListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	if limit > maxRequestListLimit {
		limit = maxRequestListLimit
	}

	pending, err := h.requests.ListPending(r.Context(), limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]*TranslationRequestResponse, 0, len(pending))
	for _, req := range pending {
		responses = append(responses, translationRequestToResponse(req))
	}

	log.Debug("pending translation requests served", slog.Int("count", len(responses)))
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}
