// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// User-facing messages of the stage endpoint.
const (
	MsgOpportunityNotFound = "Opportunity not found."
	MsgInvalidStage        = "Invalid stage selected."
	msgNotWon              = "must be in a won stage to convert"
)

// Compile-time check that PipelineService implements ports.PipelineService.
var _ ports.PipelineService = (*PipelineService)(nil)

// PipelineService implements ports.PipelineService. It validates stage
// moves against the configured pipelines and persists them through the
// opportunity repository.
type PipelineService struct {
	catalog   *pipeline.Catalog
	repo      ports.OpportunityRepository
	converter ports.RecordConverter
	logger    *slog.Logger
}

// NewPipelineService creates a PipelineService. A nil logger discards
// output.
func NewPipelineService(
	catalog *pipeline.Catalog,
	repo ports.OpportunityRepository,
	converter ports.RecordConverter,
	logger *slog.Logger,
) *PipelineService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PipelineService{
		catalog:   catalog,
		repo:      repo,
		converter: converter,
		logger:    logger,
	}
}

// Pipelines returns every configured pipeline.
func (s *PipelineService) Pipelines(_ context.Context) []pipeline.Pipeline {
	return s.catalog.All()
}

// Board returns the pipeline definition with every opportunity in it. Each
// opportunity carries its conversion endpoint when one applies.
func (s *PipelineService) Board(ctx context.Context, pipelineKey string) (*pipeline.BoardState, error) {
	s.logger.InfoContext(ctx, "loading board", slog.String("pipeline", pipelineKey))

	p, err := s.catalog.Get(pipelineKey)
	if err != nil {
		return nil, err
	}

	opps, err := s.repo.ListByPipeline(ctx, p.Key)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list opportunities",
			slog.String("operation", "Board"),
			slog.String("pipeline", p.Key),
			slog.Any("error", err),
		)
		return nil, err
	}

	for i := range opps {
		opps[i].ConversionEndpoint = opps[i].ConversionPath()
	}
	return &pipeline.BoardState{Pipeline: p, Opportunities: opps}, nil
}

// ChangeStage moves an opportunity to stage. The stage must belong to the
// opportunity's pipeline; an unknown pipeline key resolves to the default
// pipeline.
func (s *PipelineService) ChangeStage(ctx context.Context, id int64, stage string) (*pipeline.Opportunity, error) {
	stage = strings.TrimSpace(stage)
	s.logger.InfoContext(ctx, "changing stage", slog.Int64("id", id), slog.String("stage", stage))

	opp, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch opportunity",
			slog.String("operation", "ChangeStage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	p, ok := s.catalog.Resolve(opp.Pipeline)
	if !ok || !p.HasStage(stage) {
		return nil, &domain.ValidationError{Fields: map[string]string{"stage": MsgInvalidStage}}
	}

	if err := s.repo.UpdateStage(ctx, id, stage); err != nil {
		s.logger.ErrorContext(ctx, "failed to update stage",
			slog.String("operation", "ChangeStage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	opp.Pipeline = p.Key
	opp.Stage = stage
	opp.ConversionEndpoint = opp.ConversionPath()
	return opp, nil
}

// Convert creates the downstream record of a won opportunity and returns
// its location.
func (s *PipelineService) Convert(ctx context.Context, id int64) (string, error) {
	s.logger.InfoContext(ctx, "converting opportunity", slog.Int64("id", id))

	opp, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if opp.HasLinkedRecord() {
		return "", fmt.Errorf("opportunity %d already linked to %s: %w", id, opp.LinkedRecord, domain.ErrConflict)
	}
	if !pipeline.IsWonStage(opp.Stage) {
		return "", &domain.ValidationError{Fields: map[string]string{"stage": msgNotWon}}
	}

	location, err := s.converter.ConvertToRecord(ctx, opp)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to convert opportunity",
			slog.String("operation", "Convert"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return "", err
	}

	return location, nil
}
