// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
//
// Board and stage payloads keep the camelCase keys browser boards already
// consume; form payloads use snake_case like the authored schema files.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/aggregate"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/form"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

// boardReplica names the aggregate replica backing board responses.
const boardReplica = "api"

// PipelineResponse represents a pipeline definition.
type PipelineResponse struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Stages []string `json:"stages"`
}

// PipelineListResponse represents the configured pipelines.
type PipelineListResponse struct {
	Pipelines []PipelineResponse `json:"pipelines"`
	Count     int                `json:"count"`
}

// ToPipelineResponse converts a domain Pipeline to an HTTP response DTO.
func ToPipelineResponse(p *pipeline.Pipeline) PipelineResponse {
	stages := make([]string, len(p.Stages))
	copy(stages, p.Stages)
	return PipelineResponse{Key: p.Key, Label: p.Label, Stages: stages}
}

// ToPipelineListResponse converts the configured pipelines to a list DTO.
func ToPipelineListResponse(pipelines []pipeline.Pipeline) PipelineListResponse {
	items := make([]PipelineResponse, len(pipelines))
	for i := range pipelines {
		items[i] = ToPipelineResponse(&pipelines[i])
	}
	return PipelineListResponse{Pipelines: items, Count: len(items)}
}

// OpportunityResponse represents one card of a board. Amount is encoded as
// a decimal string.
type OpportunityResponse struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Pipeline           string          `json:"pipeline"`
	Stage              string          `json:"stage"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	LinkedRecord       string          `json:"linkedRecord,omitempty"`
	HasLinkedRecord    bool            `json:"hasLinkedRecord"`
	ConversionEndpoint string          `json:"conversionEndpoint,omitempty"`
}

// ToOpportunityResponse converts a domain Opportunity to an HTTP response DTO.
func ToOpportunityResponse(o *pipeline.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:                 o.ID,
		Title:              o.Title,
		Pipeline:           o.Pipeline,
		Stage:              o.Stage,
		Amount:             o.Amount,
		Currency:           o.Currency,
		LinkedRecord:       o.LinkedRecord,
		HasLinkedRecord:    o.HasLinkedRecord(),
		ConversionEndpoint: o.ConversionEndpoint,
	}
}

// StageSummaryResponse is the aggregate shown in a column header.
type StageSummaryResponse struct {
	Stage      string          `json:"stage"`
	Count      int             `json:"count"`
	CountLabel string          `json:"countLabel"`
	Total      decimal.Decimal `json:"total"`
	Currency   string          `json:"currency"`
	TotalLabel string          `json:"totalLabel"`
}

// BoardResponse is the initial page state of a board.
type BoardResponse struct {
	Pipeline      PipelineResponse       `json:"pipeline"`
	Opportunities []OpportunityResponse  `json:"opportunities"`
	Stages        []StageSummaryResponse `json:"stages"`
}

// BoardOptions controls how column aggregates are labelled.
type BoardOptions struct {
	EntityNoun      string
	DefaultCurrency string
}

// ToBoardResponse converts a board state to its response DTO. Column
// aggregates are computed in pipeline stage order; a stage without cards
// reports zero in opts.DefaultCurrency.
func ToBoardResponse(state *pipeline.BoardState, opts BoardOptions) BoardResponse {
	counter := aggregate.NewCounter(boardReplica)
	opps := make([]OpportunityResponse, len(state.Opportunities))
	for i := range state.Opportunities {
		o := &state.Opportunities[i]
		opps[i] = ToOpportunityResponse(o)
		counter.Add(o.Stage, o.Amount, o.Currency)
	}

	snapshot := counter.Snapshot(boardReplica)
	stages := make([]StageSummaryResponse, 0, len(state.Pipeline.Stages))
	for _, stage := range state.Pipeline.Stages {
		agg, ok := snapshot[stage]
		if !ok {
			agg = aggregate.StageAggregate{Total: decimal.Zero}
		}
		currency := agg.Currency
		if currency == "" {
			currency = opts.DefaultCurrency
		}
		stages = append(stages, StageSummaryResponse{
			Stage:      stage,
			Count:      agg.Count,
			CountLabel: aggregate.CountLabel(agg.Count, opts.EntityNoun),
			Total:      agg.Total,
			Currency:   currency,
			TotalLabel: aggregate.FormatMoney(currency, agg.Total),
		})
	}

	return BoardResponse{
		Pipeline:      ToPipelineResponse(&state.Pipeline),
		Opportunities: opps,
		Stages:        stages,
	}
}

// StageResponse is the success answer of the stage endpoint.
// ConversionEndpoint is null when the opportunity cannot be converted.
type StageResponse struct {
	Success            bool    `json:"success"`
	Stage              string  `json:"stage"`
	Pipeline           string  `json:"pipeline"`
	HasLinkedRecord    bool    `json:"hasLinkedRecord"`
	ConversionEndpoint *string `json:"conversionEndpoint"`
}

// ToStageResponse converts the moved opportunity to the stage answer.
func ToStageResponse(o *pipeline.Opportunity) StageResponse {
	resp := StageResponse{
		Success:         true,
		Stage:           o.Stage,
		Pipeline:        o.Pipeline,
		HasLinkedRecord: o.HasLinkedRecord(),
	}
	if o.ConversionEndpoint != "" {
		endpoint := o.ConversionEndpoint
		resp.ConversionEndpoint = &endpoint
	}
	return resp
}

// FailureResponse is the {"success": false} answer of the legacy endpoints.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ConvertResponse is the XHR answer of the conversion endpoint.
type ConvertResponse struct {
	Success  bool   `json:"success"`
	Location string `json:"location"`
}

// FormSummaryResponse represents a schema in listings.
type FormSummaryResponse struct {
	ID       string `json:"id"`
	Version  int    `json:"version"`
	Name     string `json:"name"`
	Stage    string `json:"stage,omitempty"`
	Category string `json:"category,omitempty"`
}

// FormListResponse represents the latest version of every schema.
type FormListResponse struct {
	Forms []FormSummaryResponse `json:"forms"`
	Count int                   `json:"count"`
}

// ToFormListResponse converts schema summaries to a list DTO.
func ToFormListResponse(summaries []form.Summary) FormListResponse {
	items := make([]FormSummaryResponse, len(summaries))
	for i, s := range summaries {
		items[i] = FormSummaryResponse(s)
	}
	return FormListResponse{Forms: items, Count: len(items)}
}

// RequirementResponse describes a conditional requirement.
type RequirementResponse struct {
	DependsOn string   `json:"depends_on"`
	Values    []string `json:"values"`
}

// InputResponse is one rendered control.
type InputResponse struct {
	Name         string               `json:"name"`
	Label        string               `json:"label"`
	Section      string               `json:"section,omitempty"`
	Widget       string               `json:"widget"`
	Options      []string             `json:"options,omitempty"`
	Accept       []string             `json:"accept,omitempty"`
	Multiple     bool                 `json:"multiple,omitempty"`
	Rows         []string             `json:"rows,omitempty"`
	Columns      []string             `json:"columns,omitempty"`
	Required     bool                 `json:"required"`
	RequiredWhen *RequirementResponse `json:"required_when,omitempty"`
}

// EvidenceResponse represents the schema-wide photo rules.
type EvidenceResponse struct {
	RequireOnAnyDisqualified bool     `json:"require_on_any_disqualified"`
	MinPhotosIfAllGood       int      `json:"min_photos_if_all_good"`
	DisqualifyingValues      []string `json:"disqualifying_values,omitempty"`
}

// FormResponse represents a schema version with its rendered inputs.
type FormResponse struct {
	FormSummaryResponse
	Evidence EvidenceResponse `json:"evidence"`
	Inputs   []InputResponse  `json:"inputs"`
}

// ToFormResponse converts a schema to its response DTO.
func ToFormResponse(s *form.Schema) FormResponse {
	rendered := form.Render(*s)
	inputs := make([]InputResponse, len(rendered))
	for i, in := range rendered {
		inputs[i] = InputResponse{
			Name:     in.Name,
			Label:    in.Label,
			Section:  in.Section,
			Widget:   string(in.Widget),
			Options:  in.Options,
			Accept:   in.Accept,
			Multiple: in.Multiple,
			Rows:     in.Rows,
			Columns:  in.Columns,
			Required: in.Required,
		}
		if in.RequiredWhen != nil {
			inputs[i].RequiredWhen = &RequirementResponse{
				DependsOn: in.RequiredWhen.DependsOn,
				Values:    in.RequiredWhen.DisqualifyingValues,
			}
		}
	}

	return FormResponse{
		FormSummaryResponse: FormSummaryResponse(s.Summarize()),
		Evidence: EvidenceResponse{
			RequireOnAnyDisqualified: s.Evidence.RequireOnAnyDisqualified,
			MinPhotosIfAllGood:       s.Evidence.MinIfAllClear,
			DisqualifyingValues:      s.Evidence.DisqualifyingValues,
		},
		Inputs: inputs,
	}
}

// RequirementsResponse lists the fields currently required. Version is
// omitted when the latest schema version was evaluated.
type RequirementsResponse struct {
	FormID   string   `json:"form_id"`
	Version  int      `json:"version,omitempty"`
	Required []string `json:"required"`
}

// ToRequirementsResponse converts a required set to its response DTO.
func ToRequirementsResponse(formID string, version int, set form.RequiredSet) RequirementsResponse {
	ids := set.IDs()
	if ids == nil {
		ids = []string{}
	}
	return RequirementsResponse{FormID: formID, Version: version, Required: ids}
}

// SubmissionResponse represents a stored submission.
type SubmissionResponse struct {
	ID          string              `json:"id"`
	FormID      string              `json:"form_id"`
	Version     int                 `json:"version"`
	Answers     map[string]string   `json:"answers"`
	Attachments map[string][]string `json:"attachments,omitempty"`
	CreatedAt   string              `json:"created_at"`
}

// ToSubmissionResponse converts a domain submission to its response DTO.
func ToSubmissionResponse(sub *form.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:          sub.ID,
		FormID:      sub.SchemaID,
		Version:     sub.SchemaVersion,
		Answers:     sub.Answers,
		Attachments: sub.Attachments,
		CreatedAt:   sub.CreatedAt.Format(time.RFC3339),
	}
}
