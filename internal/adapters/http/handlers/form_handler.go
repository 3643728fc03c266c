package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// FormHandler handles HTTP requests for form schemas and submissions.
type FormHandler struct {
	svc ports.FormService
}

// NewFormHandler creates a new FormHandler with the given service port.
func NewFormHandler(svc ports.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// ListForms handles GET /api/v1/forms.
func (h *FormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListForms(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFormListResponse(summaries))
}

// GetForm handles GET /api/v1/forms/{id}. The optional version query
// parameter selects an older schema version.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	version, err := parseVersion(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	schema, err := h.svc.GetForm(r.Context(), chi.URLParam(r, "id"), version)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFormResponse(schema))
}

// Requirements handles POST /api/v1/forms/{id}/requirements.
func (h *FormHandler) Requirements(w http.ResponseWriter, r *http.Request) {
	var req dto.RequirementsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	set, err := h.svc.Requirements(r.Context(), id, req.Version, req.Answers)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToRequirementsResponse(id, req.Version, set))
}

// Submit handles POST /api/v1/forms/{id}/submissions.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmissionRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	created, err := h.svc.Submit(r.Context(), req.ToSubmission(chi.URLParam(r, "id")))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToSubmissionResponse(created))
}
