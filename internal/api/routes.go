package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/lehmann314159/latinvocab/internal/config"
)

// NewRouter creates and configures the Chi router
func NewRouter(h *Handler, logger *slog.Logger, corsCfg config.CORSConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(Recoverer(logger))
	r.Use(Logger(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: corsCfg.Origins(),
		AllowedMethods: corsCfg.Methods(),
		AllowedHeaders: corsCfg.Headers(),
		MaxAge:         corsCfg.MaxAge,
	}).Handler)

	// Health check endpoint
	r.Get("/health", h.HealthCheck)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)

		r.Route("/chapters/{chapter}", func(r chi.Router) {
			r.Get("/entries", h.ChapterEntries)
			r.Get("/cumulative", h.CumulativeEntries)
			r.Get("/search", h.SearchEntries)
		})
	})

	return r
}
