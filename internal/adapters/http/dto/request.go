package dto

import (
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/form"
)

const (
	msgRequired    = "is required"
	msgNotNegative = "must not be negative"
	msgEmptyRef    = "must not contain empty references"
)

// StageRequest is the form body of POST /sales/opportunities/{id}/stage.
type StageRequest struct {
	Stage string
}

// Validate checks that a stage was supplied. Surrounding whitespace is
// ignored.
func (r *StageRequest) Validate() error {
	if strings.TrimSpace(r.Stage) == "" {
		return &domain.ValidationError{Fields: map[string]string{"stage": msgRequired}}
	}
	return nil
}

// RequirementsRequest represents the JSON body of
// POST /api/v1/forms/{id}/requirements.
type RequirementsRequest struct {
	Version int               `json:"version,omitempty"`
	Answers map[string]string `json:"answers"`
}

// Validate checks the version is not negative.
func (r *RequirementsRequest) Validate() error {
	if r.Version < 0 {
		return &domain.ValidationError{Fields: map[string]string{"version": msgNotNegative}}
	}
	return nil
}

// SubmissionRequest represents the JSON body of
// POST /api/v1/forms/{id}/submissions. A zero version selects the latest
// schema version.
type SubmissionRequest struct {
	Version     int                 `json:"version,omitempty"`
	Answers     map[string]string   `json:"answers"`
	Attachments map[string][]string `json:"attachments,omitempty"`
}

// Validate checks the envelope only. Field rules are applied by the form
// validator against the referenced schema version.
// Returns a *domain.ValidationError if any checks fail.
func (r *SubmissionRequest) Validate() error {
	fields := make(map[string]string)

	if r.Version < 0 {
		fields["version"] = msgNotNegative
	}
	for id, refs := range r.Attachments {
		for _, ref := range refs {
			if strings.TrimSpace(ref) == "" {
				fields["attachments."+id] = msgEmptyRef
				break
			}
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToSubmission maps the request onto a domain submission of schema id.
func (r *SubmissionRequest) ToSubmission(schemaID string) *form.Submission {
	answers := r.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	return &form.Submission{
		SchemaID:      schemaID,
		SchemaVersion: r.Version,
		Answers:       answers,
		Attachments:   r.Attachments,
	}
}
