package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/clients/acl/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PipelineClient = (*PipelineClient)(nil)
	_ ports.HealthChecker  = (*PipelineClient)(nil)
)

// PipelineClient is the outbound adapter for the remote stage-transition
// collaborator. It implements [ports.PipelineClient].
//
// Stage changes and conversions are sent the way a browser board sends
// them: form-encoded POSTs flagged as XHR. The collaborator answers with
// {"success": bool, "message": ...}; a false flag becomes a
// *domain.RemoteError wrapping domain.ErrRejected whatever the status code.
// Responses without that envelope are classified by [TranslateHTTPError]
// rules.
type PipelineClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewPipelineClient creates a PipelineClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the collaborator root.
func NewPipelineClient(client *httpclient.Client, logger *slog.Logger) *PipelineClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PipelineClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// LoadBoard fetches GET /api/v1/pipelines/{pipeline}/board.
// Returns [domain.ErrNotFound] if the collaborator answers 404.
func (c *PipelineClient) LoadBoard(ctx context.Context, pipelineKey string) (*pipeline.BoardState, error) {
	path := "/api/v1/pipelines/" + url.PathEscape(pipelineKey) + "/board"

	var dto board.BoardDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	state := board.ToDomainBoard(&dto)
	return &state, nil
}

// ChangeStage sends POST /sales/opportunities/{id}/stage with form body
// stage=<stage>.
func (c *PipelineClient) ChangeStage(ctx context.Context, id int64, stage string) (*pipeline.StageChange, error) {
	path := fmt.Sprintf("/sales/opportunities/%d/stage", id)

	resp, err := c.req.PostForm(ctx, path, url.Values{"stage": {stage}})
	if err != nil {
		return nil, err
	}

	var dto board.StageResponseDTO
	decoded := json.Unmarshal(resp.Body, &dto) == nil && dto.Success != nil

	switch {
	case decoded && !*dto.Success:
		return nil, rejection(resp, dto.Message)
	case !resp.OK():
		return nil, resp.Err()
	case !decoded:
		return nil, fmt.Errorf("stage change for opportunity %d: unexpected response body: %w",
			id, domain.ErrUnavailable)
	}

	change := board.ToStageChange(&dto, stage)
	c.logger.DebugContext(ctx, "stage change confirmed",
		slog.Int64("opportunity_id", id),
		slog.String("stage", change.Stage),
	)
	return &change, nil
}

// Convert submits an empty POST to endpoint and returns the location of the
// created record. The collaborator may answer with a redirect (Location
// header) or, for XHR calls, with {"success": true, "location": ...}.
func (c *PipelineClient) Convert(ctx context.Context, endpoint string) (string, error) {
	if strings.TrimSpace(endpoint) == "" {
		return "", fmt.Errorf("conversion endpoint: %w", domain.ErrValidation)
	}

	resp, err := c.req.PostForm(ctx, endpoint, nil)
	if err != nil {
		return "", err
	}

	if resp.IsRedirect() {
		if loc := resp.Header.Get("Location"); loc != "" {
			return loc, nil
		}
		return "", fmt.Errorf("redirect from %s without location: %w", endpoint, domain.ErrUnavailable)
	}

	var dto board.ConvertResponseDTO
	decoded := json.Unmarshal(resp.Body, &dto) == nil && dto.Success != nil

	switch {
	case decoded && !*dto.Success:
		return "", rejection(resp, dto.Message)
	case !resp.OK():
		return "", resp.Err()
	case !decoded || dto.Location == "":
		return "", fmt.Errorf("conversion at %s: missing location: %w", endpoint, domain.ErrUnavailable)
	}
	return dto.Location, nil
}

// rejection builds the error for a {"success": false} envelope. The status
// classification is kept alongside domain.ErrRejected when the status was
// not 2xx.
func rejection(resp *Response, message string) error {
	if resp.OK() {
		return &domain.RemoteError{Message: message, Err: domain.ErrRejected}
	}
	return &domain.RemoteError{
		Message: message,
		Err:     fmt.Errorf("%w: %w", domain.ErrRejected, translateStatus(resp.StatusCode, problemDetail{})),
	}
}
