package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yardenlev/mikra-api/internal/api"
	apiMiddleware "github.com/yardenlev/mikra-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	lessonHandler := api.NewLessonHandler(app.walkService, app.wordService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	wordHandler := api.NewWordHandler(app.wordService, app.logger)
	requestHandler := api.NewTranslationRequestHandler(app.translationRequestStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Lesson walk endpoints
		r.Post("/lessons/{id}/walk", lessonHandler.StartWalk)
		r.Post("/walks/{id}/respond", lessonHandler.Respond)
		r.Post("/walks/{id}/translation-request", lessonHandler.RequestTranslation)
		r.Post("/walks/{id}/complete", lessonHandler.Complete)

		// Review cycle endpoints
		r.Get("/students/{id}/review", reviewHandler.DueWords)
		r.Post("/students/{id}/review/{wordID}", reviewHandler.SubmitAnswer)
		r.Get("/students/{id}/progress", reviewHandler.Progress)

		// Word lookup
		r.Get("/words/{text}", wordHandler.Get)

		// Responder queue
		r.Get("/translation-requests", requestHandler.ListPending)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
