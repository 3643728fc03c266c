package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// PipelineHandler serves pipeline definitions and board page state.
type PipelineHandler struct {
	svc  ports.PipelineService
	opts dto.BoardOptions
}

// NewPipelineHandler creates a new PipelineHandler. opts labels the column
// aggregates of board responses.
func NewPipelineHandler(svc ports.PipelineService, opts dto.BoardOptions) *PipelineHandler {
	return &PipelineHandler{svc: svc, opts: opts}
}

// ListPipelines handles GET /api/v1/pipelines.
func (h *PipelineHandler) ListPipelines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToPipelineListResponse(h.svc.Pipelines(r.Context())))
}

// Board handles GET /api/v1/pipelines/{pipeline}/board.
func (h *PipelineHandler) Board(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Board(r.Context(), chi.URLParam(r, "pipeline"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(state, h.opts))
}
