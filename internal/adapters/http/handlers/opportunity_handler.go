package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/app"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// maxFormBodyBytes bounds the form body of the legacy endpoints.
const maxFormBodyBytes = 64 << 10

// Messages of the conversion endpoint.
const (
	msgAlreadyConverted = "Opportunity already converted."
	msgNotWon           = "Only won opportunities can be converted."
	msgStageFailed      = "Unable to update stage."
	msgConvertFailed    = "Unable to convert opportunity."
)

// OpportunityHandler serves the stage and conversion endpoints browser
// boards post to. Asynchronous callers get JSON envelopes; plain form posts
// are redirected.
type OpportunityHandler struct {
	svc ports.PipelineService
}

// NewOpportunityHandler creates a new OpportunityHandler.
func NewOpportunityHandler(svc ports.PipelineService) *OpportunityHandler {
	return &OpportunityHandler{svc: svc}
}

// ChangeStage handles POST /sales/opportunities/{id}/stage.
func (h *OpportunityHandler) ChangeStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, http.StatusNotFound, app.MsgOpportunityNotFound, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBodyBytes)
	req := dto.StageRequest{}
	if err := r.ParseForm(); err == nil {
		req.Stage = strings.TrimSpace(r.PostForm.Get("stage"))
	}
	if err := req.Validate(); err != nil {
		h.fail(w, r, http.StatusBadRequest, app.MsgInvalidStage, err)
		return
	}

	opp, err := h.svc.ChangeStage(r.Context(), id, req.Stage)
	if err != nil {
		h.fail(w, r, dto.StatusCode(err), stageMessage(err), err)
		return
	}

	if dto.IsAsync(r) {
		writeJSON(w, r, http.StatusOK, dto.ToStageResponse(opp))
		return
	}
	http.Redirect(w, r, "/api/v1/pipelines/"+url.PathEscape(opp.Pipeline)+"/board", http.StatusSeeOther)
}

// Convert handles POST /sales/opportunities/{id}/convert.
func (h *OpportunityHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, http.StatusNotFound, app.MsgOpportunityNotFound, err)
		return
	}

	location, err := h.svc.Convert(r.Context(), id)
	if err != nil {
		h.fail(w, r, dto.StatusCode(err), convertMessage(err), err)
		return
	}

	if dto.IsAsync(r) {
		writeJSON(w, r, http.StatusOK, dto.ConvertResponse{Success: true, Location: location})
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// fail answers asynchronous callers with {"success": false} and everyone
// else with a problem document.
func (h *OpportunityHandler) fail(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if !dto.IsAsync(r) {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	dto.WriteFailure(w, status, message)
}

func stageMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return app.MsgOpportunityNotFound
	case errors.Is(err, domain.ErrValidation):
		return app.MsgInvalidStage
	default:
		return msgStageFailed
	}
}

func convertMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return app.MsgOpportunityNotFound
	case errors.Is(err, domain.ErrConflict):
		return msgAlreadyConverted
	case errors.Is(err, domain.ErrValidation):
		return msgNotWon
	default:
		return msgConvertFailed
	}
}
