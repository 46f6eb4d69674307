package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/yardenlev/mikra-api/internal/api/shared"
	"github.com/yardenlev/mikra-api/internal/platform/logger"
	"github.com/yardenlev/mikra-api/internal/service"
)

// WordHandler handles word lookup HTTP requests.
type WordHandler struct {
	words  service.WordService
	logger *slog.Logger
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(words service.WordService, log *slog.Logger) *WordHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WordHandler")
	}

	return &WordHandler{
		words:  words,
		logger: log.With(slog.String("component", "word_handler")),
	}
}

// Get handles GET /words/{text} requests. The word is canonicalized on
// first sight, so a lookup of an unseen word creates it with freshly
// computed gematria. An optional lang query parameter attaches a general
// translation when one exists.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := chi.URLParam(r, "text")
	text, err := url.PathUnescape(raw)
	if err != nil || text == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word text is required")
		return
	}

	word, err := h.words.GetOrCreate(r.Context(), text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	translation := ""
	if lang := r.URL.Query().Get("lang"); lang != "" {
		t, found, terr := h.words.Translation(r.Context(), word.ID, lang, nil)
		if terr != nil {
			log.Debug("translation lookup failed",
				slog.String("word_id", word.ID.String()),
				slog.String("error", terr.Error()))
		} else if found {
			translation = t
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word, translation))
}
