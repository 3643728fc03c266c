// Package board implements the Anti-Corruption Layer translators for the
// remote collaborator's board and stage-transition payloads.
package board

import "github.com/shopspring/decimal"

// PipelineDTO matches the collaborator's pipeline definition.
type PipelineDTO struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Stages []string `json:"stages"`
}

// OpportunityDTO matches one opportunity of a board payload. Amounts travel
// as decimal strings.
type OpportunityDTO struct {
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

// BoardDTO matches GET /api/v1/pipelines/{pipeline}/board.
type BoardDTO struct {
	Pipeline      PipelineDTO      `json:"pipeline"`
	Opportunities []OpportunityDTO `json:"opportunities"`
}

// StageResponseDTO matches the stage endpoint's JSON answer. Success is a
// pointer so that a body without the flag can be told apart from a refusal.
type StageResponseDTO struct {
	Success            *bool   `json:"success"`
	Message            string  `json:"message,omitempty"`
	Stage              string  `json:"stage,omitempty"`
	Pipeline           string  `json:"pipeline,omitempty"`
	HasLinkedRecord    *bool   `json:"hasLinkedRecord,omitempty"`
	ConversionEndpoint *string `json:"conversionEndpoint,omitempty"`
}

// ConvertResponseDTO matches the XHR answer of the conversion endpoint.
type ConvertResponseDTO struct {
	Success  *bool  `json:"success"`
	Message  string `json:"message,omitempty"`
	Location string `json:"location,omitempty"`
}
