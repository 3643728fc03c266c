package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// GenericFailureMessage is shown when a failed transition carries no
// message of its own.
const GenericFailureMessage = "Unable to update the stage. Please try again."

// Status classifies the result of a transition request.
type Status int

// Transition statuses.
const (
	// StatusIgnored means the request referenced an unknown card or column
	// and nothing happened.
	StatusIgnored Status = iota
	// StatusUnchanged means source and destination were the same stage.
	StatusUnchanged
	// StatusBusy means the card already has a request in flight.
	StatusBusy
	// StatusMoved means the collaborator confirmed and the card moved.
	StatusMoved
	// StatusFailed means the collaborator refused or could not be reached.
	// The card stays where it was.
	StatusFailed
)

var statusNames = [...]string{"ignored", "unchanged", "busy", "moved", "failed"}

// String returns the lowercase status name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome reports what a transition request did.
type Outcome struct {
	Status   Status
	EntityID int64
	From     string
	// To is the stage the card ended up in. After a confirmed move this is
	// the stage the collaborator reported when it names a known column.
	To string
	// Message is the user-facing failure text for StatusFailed and
	// StatusBusy.
	Message string
	// Opportunity is the card's state after the request.
	Opportunity pipeline.Opportunity
	// Linked reports whether a downstream record exists for the card.
	Linked bool
	// Conversion is filled by the Controller when a prompt was evaluated.
	Conversion ConversionResult
}

// Engine performs server-confirmed stage transitions on a Board. A card is
// never shown in a new column before the collaborator confirms the move.
type Engine struct {
	board   *Board
	client  ports.PipelineClient
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewEngine creates an Engine. A nil logger discards output and nil
// metrics records nothing.
func NewEngine(b *Board, client ports.PipelineClient, logger *slog.Logger, metrics *telemetry.Metrics) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{board: b, client: client, logger: logger, metrics: metrics}
}

// Board returns the board the engine operates on.
func (e *Engine) Board() *Board {
	return e.board
}

// RequestTransition asks the collaborator to move an opportunity from one
// stage to another and applies the result locally.
//
// While the request is in flight the card is disabled and further requests
// for it return StatusBusy with a domain.ErrConflict error. Other cards are
// unaffected. On failure the board is left exactly as before the request.
// The returned error is non-nil for StatusBusy and StatusFailed.
func (e *Engine) RequestTransition(ctx context.Context, id int64, from, to string) (Outcome, error) {
	out := Outcome{EntityID: id, From: from, To: to}
	b := e.board

	b.mu.Lock()
	c, ok := b.cards[id]
	if !ok || !b.hasColumn(from) || !b.hasColumn(to) {
		b.mu.Unlock()
		out.Status = StatusIgnored
		return out, nil
	}
	out.Opportunity = c.opp
	out.Linked = c.linked
	if from == to {
		b.mu.Unlock()
		out.Status = StatusUnchanged
		return out, nil
	}
	if c.disabled {
		b.mu.Unlock()
		out.Status = StatusBusy
		out.Message = "This opportunity is still being updated."
		return out, fmt.Errorf("opportunity %d awaiting confirmation: %w", id, domain.ErrConflict)
	}
	c.disabled = true
	b.pending[id] = Transition{EntityID: id, From: from, To: to}
	b.mu.Unlock()

	e.logger.InfoContext(ctx, "requesting stage transition",
		slog.String("operation", "RequestTransition"),
		slog.Int64("opportunity_id", id),
		slog.String("from", from),
		slog.String("to", to),
	)

	change, err := e.client.ChangeStage(ctx, id, to)

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.pending, id)
	c.disabled = false

	if err != nil {
		out.Status = StatusFailed
		out.To = c.opp.Stage
		out.Message = domain.UserMessage(err, GenericFailureMessage)
		out.Opportunity = c.opp
		out.Linked = c.linked

		result := telemetry.ResultFailure
		if errors.Is(err, domain.ErrRejected) {
			result = telemetry.ResultRejected
		}
		e.metrics.RecordTransition(ctx, result)
		e.logger.ErrorContext(ctx, "stage transition failed",
			slog.String("operation", "RequestTransition"),
			slog.Int64("opportunity_id", id),
			slog.String("to", to),
			slog.Any("error", err),
		)
		return out, fmt.Errorf("changing stage of opportunity %d: %w", id, err)
	}

	dest := to
	if change != nil && change.Stage != "" && b.hasColumn(change.Stage) {
		dest = change.Stage
	}

	// The debit comes from the card's local stage, which may differ from
	// the requested source if the page state was stale.
	if c.opp.Stage != dest {
		b.counters.Transfer(c.opp.Stage, dest, c.opp.Amount, c.opp.Currency)
	}
	c.opp.Stage = dest
	b.place(id, dest, -1)

	if change != nil {
		if change.HasLinkedRecord != nil {
			c.linked = *change.HasLinkedRecord
		}
		if change.ConversionEndpoint != nil {
			c.opp.ConversionEndpoint = *change.ConversionEndpoint
		}
	}

	out.Status = StatusMoved
	out.To = dest
	out.Opportunity = c.opp
	out.Linked = c.linked
	e.metrics.RecordTransition(ctx, telemetry.ResultSuccess)

	e.logger.InfoContext(ctx, "stage transition confirmed",
		slog.String("operation", "RequestTransition"),
		slog.Int64("opportunity_id", id),
		slog.String("stage", dest),
	)
	return out, nil
}
