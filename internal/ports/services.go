package ports

import (
	"context"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/form"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

// PipelineService defines the service port for the stage-transition
// collaborator. Implemented by the application layer; called by handlers.
type PipelineService interface {
	// Pipelines returns every configured pipeline definition.
	Pipelines(ctx context.Context) []pipeline.Pipeline

	// Board returns the page state of a pipeline board.
	// Returns domain.ErrNotFound if the pipeline does not exist.
	Board(ctx context.Context, pipelineKey string) (*pipeline.BoardState, error)

	// ChangeStage moves an opportunity to stage and returns it updated.
	// Returns domain.ErrNotFound for unknown opportunities and a
	// *domain.ValidationError when stage is not part of its pipeline.
	ChangeStage(ctx context.Context, id int64, stage string) (*pipeline.Opportunity, error)

	// Convert creates the linked record of a won opportunity and returns its
	// location. Returns domain.ErrConflict when already linked and
	// domain.ErrValidation when the opportunity is not in a won stage.
	Convert(ctx context.Context, id int64) (string, error)
}

// FormService defines the service port for schema-driven forms.
type FormService interface {
	// ListForms returns summaries of the latest schema versions.
	ListForms(ctx context.Context) ([]form.Summary, error)

	// GetForm returns a schema version; version 0 selects the latest.
	GetForm(ctx context.Context, id string, version int) (*form.Schema, error)

	// Requirements returns the fields required for the given answers.
	Requirements(ctx context.Context, id string, version int, answers map[string]string) (form.RequiredSet, error)

	// Submit validates a submission against the schema version it
	// references and stores it. Returns a *domain.ValidationError listing
	// failing fields.
	Submit(ctx context.Context, sub *form.Submission) (*form.Submission, error)
}
