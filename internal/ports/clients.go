package ports

import (
	"context"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

// PipelineClient defines the client port for the remote stage-transition
// collaborator. Implemented by the ACL adapter; called by the board engine.
type PipelineClient interface {
	// LoadBoard returns the initial page state of a pipeline board.
	// Returns domain.ErrNotFound if the pipeline does not exist.
	LoadBoard(ctx context.Context, pipelineKey string) (*pipeline.BoardState, error)

	// ChangeStage asks the collaborator to move an opportunity to stage.
	// A logical refusal is returned as a *domain.RemoteError wrapping
	// domain.ErrRejected; transport failures are returned as-is.
	ChangeStage(ctx context.Context, id int64, stage string) (*pipeline.StageChange, error)

	// Convert submits an empty state-changing request to a conversion
	// endpoint and returns the location the collaborator redirects to.
	Convert(ctx context.Context, endpoint string) (string, error)
}
