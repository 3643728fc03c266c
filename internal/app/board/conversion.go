package board

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// conversionFailureMessage is shown when a conversion fails without a
// collaborator message.
const conversionFailureMessage = "Unable to convert the opportunity. Please try again."

// Decision is what happened when a conversion prompt was considered.
type Decision int

// Conversion decisions.
const (
	DecisionNotOffered Decision = iota
	DecisionDeclined
	DecisionConverted
	DecisionFailed
)

// ConversionResult reports a prompt decision and, after a conversion, the
// location of the new record.
type ConversionResult struct {
	Decision Decision
	Location string
}

// ShouldOffer reports whether a confirmed move into stage qualifies for the
// conversion prompt.
func ShouldOffer(stage string, linked bool, endpoint string) bool {
	return pipeline.IsWonStage(stage) && !linked && endpoint != ""
}

// ConversionPrompt asks whether a won opportunity should become a project
// and performs the conversion on acceptance.
type ConversionPrompt struct {
	confirmer ports.Confirmer
	client    ports.PipelineClient
	notifier  ports.Notifier
	logger    *slog.Logger

	group singleflight.Group
}

// NewConversionPrompt creates a ConversionPrompt.
func NewConversionPrompt(confirmer ports.Confirmer, client ports.PipelineClient, notifier ports.Notifier, logger *slog.Logger) *ConversionPrompt {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ConversionPrompt{
		confirmer: confirmer,
		client:    client,
		notifier:  notifier,
		logger:    logger,
	}
}

// Offer prompts for a conversion of opp, which was just confirmed in stage.
// Concurrent accepted offers for the same endpoint share one request.
func (p *ConversionPrompt) Offer(ctx context.Context, opp pipeline.Opportunity, linked bool, stage string) ConversionResult {
	endpoint := opp.ConversionEndpoint
	if !ShouldOffer(stage, linked, endpoint) {
		return ConversionResult{Decision: DecisionNotOffered}
	}

	question := fmt.Sprintf("%q is now %s. Create a project from this opportunity?", opp.Title, stage)
	ok, err := p.confirmer.Confirm(ctx, question)
	if err != nil {
		p.logger.WarnContext(ctx, "conversion prompt unanswered",
			slog.Int64("opportunity_id", opp.ID),
			slog.Any("error", err),
		)
		return ConversionResult{Decision: DecisionDeclined}
	}
	if !ok {
		return ConversionResult{Decision: DecisionDeclined}
	}

	v, err, _ := p.group.Do(endpoint, func() (any, error) {
		return p.client.Convert(ctx, endpoint)
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "conversion failed",
			slog.String("operation", "Convert"),
			slog.Int64("opportunity_id", opp.ID),
			slog.Any("error", err),
		)
		p.notifier.Error(ctx, domain.UserMessage(err, conversionFailureMessage))
		return ConversionResult{Decision: DecisionFailed}
	}

	location, _ := v.(string)
	p.logger.InfoContext(ctx, "opportunity converted",
		slog.Int64("opportunity_id", opp.ID),
		slog.String("location", location),
	)
	return ConversionResult{Decision: DecisionConverted, Location: location}
}
