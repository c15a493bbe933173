package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/scry-study/internal/api"
	apiMiddleware "github.com/phrazzld/scry-study/internal/api/middleware"
	"github.com/phrazzld/scry-study/internal/platform/metrics"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(app.metrics.Middleware)

	studyHandler := api.NewStudyHandler(app.generator, app.config.Study.Topics, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/study", studyHandler.Generate)
		r.Get("/modes", studyHandler.ListModes)
		r.Get("/topics", studyHandler.ListTopics)
		r.Post("/quiz/score", studyHandler.ScoreQuiz)
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.registry))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
