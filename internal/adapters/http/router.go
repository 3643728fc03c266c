// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	pipelineHandler *handlers.PipelineHandler,
	opportunityHandler *handlers.OpportunityHandler,
	formHandler *handlers.FormHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Endpoints browser boards post to.
	r.Route("/sales/opportunities/{id}", func(r chi.Router) {
		r.Post("/stage", opportunityHandler.ChangeStage)
		r.Post("/convert", opportunityHandler.Convert)
	})

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/pipelines", pipelineHandler.ListPipelines)
		r.Get("/pipelines/{pipeline}/board", pipelineHandler.Board)

		r.Get("/forms", formHandler.ListForms)
		r.Get("/forms/{id}", formHandler.GetForm)
		r.Post("/forms/{id}/requirements", formHandler.Requirements)
		r.Post("/forms/{id}/submissions", formHandler.Submit)
	})

	return r
}
