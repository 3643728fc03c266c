package ports

import (
	"context"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/form"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

// OpportunityRepository persists opportunities.
type OpportunityRepository interface {
	// Get returns an opportunity by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id int64) (*pipeline.Opportunity, error)

	// ListByPipeline returns every opportunity of a pipeline ordered by ID.
	ListByPipeline(ctx context.Context, pipelineKey string) ([]pipeline.Opportunity, error)

	// UpdateStage sets the stage of an opportunity.
	// Returns domain.ErrNotFound if it does not exist.
	UpdateStage(ctx context.Context, id int64, stage string) error

	// Save inserts or replaces an opportunity and returns it with its ID set.
	Save(ctx context.Context, opp *pipeline.Opportunity) (*pipeline.Opportunity, error)
}

// RecordConverter creates the downstream record for a won opportunity. Only
// the invocation contract belongs to this service.
type RecordConverter interface {
	// ConvertToRecord creates the record, links it to the opportunity and
	// returns its location.
	ConvertToRecord(ctx context.Context, opp *pipeline.Opportunity) (string, error)
}

// FormRepository persists form schemas by (ID, version).
type FormRepository interface {
	// Get returns a schema version; version 0 selects the latest.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string, version int) (*form.Schema, error)

	// List returns the latest version of every schema ordered by ID.
	List(ctx context.Context) ([]form.Schema, error)

	// Save stores a schema version. Returns domain.ErrConflict when the
	// version already exists with different content.
	Save(ctx context.Context, schema *form.Schema) error
}

// SubmissionRepository persists accepted submissions.
type SubmissionRepository interface {
	// Create stores a validated submission.
	Create(ctx context.Context, sub *form.Submission) error
}
