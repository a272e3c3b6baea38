package http

import (
	"net/http"

	"github.com/atinyakov/passgen/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the generation API.
//
// Routes:
//
//	POST /api/generate   → h.Generate
//	POST /api/strength   → h.Strength
//	GET  /api/history    → h.History
//
// Middleware chain (applied in order):
//  1. Recoverer:                           turns panics into 500 responses
//  2. AllowContentType("application/json"): rejects non-JSON request bodies
//  3. WithRequestLogging(logger):          logs incoming requests
func NewRouter(h *GenerateHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Post("/strength", h.Strength)
		r.Get("/history", h.History)
	})

	return r
}
