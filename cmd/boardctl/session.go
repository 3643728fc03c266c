package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/terminal"
	"github.com/jsamuelsen11/pipeline-board/internal/app/board"
	"github.com/jsamuelsen11/pipeline-board/internal/app/fanout"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

const telemetryFlushTimeout = 5 * time.Second

var (
	// errMoveFailed is returned when at least one requested move did not happen.
	errMoveFailed = errors.New("some moves failed")
	// errDropRefused is returned when a drag could not start or land.
	errDropRefused = errors.New("drop refused")
)

// session carries what the subcommands share once the root command has
// connected.
type session struct {
	in        io.Reader
	out       io.Writer
	assumeYes bool
	settings  config.BoardConfig
	client    ports.PipelineClient
	logger    *slog.Logger

	// metrics is nil when telemetry is disabled.
	metrics   *telemetry.Metrics
	providers *telemetry.Providers
}

// close flushes telemetry recorded during the command.
func (s *session) close() {
	if s.providers == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancel()
	if err := s.providers.Shutdown(ctx); err != nil && s.logger != nil {
		s.logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func (s *session) load(ctx context.Context, pipelineKey string) (*board.Board, error) {
	state, err := s.client.LoadBoard(ctx, pipelineKey)
	if err != nil {
		return nil, fmt.Errorf("loading board %q: %w", pipelineKey, err)
	}
	return board.New(*state,
		board.WithEntityNoun(s.settings.EntityNoun),
		board.WithDefaultCurrency(s.settings.DefaultCurrency),
	), nil
}

func (s *session) show(ctx context.Context, pipelineKey string) error {
	b, err := s.load(ctx, pipelineKey)
	if err != nil {
		return err
	}
	return s.render(b.View())
}

// move requests every transition side by side, bounded by the configured
// concurrency, then offers conversions one at a time so prompts never
// interleave.
func (s *session) move(ctx context.Context, pipelineKey, to string, ids []int64) error {
	b, err := s.load(ctx, pipelineKey)
	if err != nil {
		return err
	}

	engine, prompt, _ := s.wire(b)

	results := fanout.Run(ctx, s.settings.Concurrency, ids, func(ctx context.Context, id int64) (board.Outcome, error) {
		opp, ok := b.Opportunity(id)
		if !ok {
			return board.Outcome{Status: board.StatusIgnored, EntityID: id, To: to}, nil
		}
		return engine.RequestTransition(ctx, id, opp.Stage, to)
	})

	failed := false
	for i, r := range results {
		out := r.Value
		switch out.Status {
		case board.StatusMoved:
			fmt.Fprintf(s.out, "#%d %s -> %s\n", out.EntityID, out.From, out.To)
			s.offer(ctx, prompt, out)
		case board.StatusUnchanged:
			fmt.Fprintf(s.out, "#%d already in %s\n", out.EntityID, out.To)
		case board.StatusIgnored:
			failed = true
			fmt.Fprintf(s.out, "#%d not on board %s or unknown stage %q\n", ids[i], pipelineKey, to)
		default:
			failed = true
			message := out.Message
			if message == "" && r.Err != nil {
				message = r.Err.Error()
			}
			fmt.Fprintf(s.out, "#%d %s: %s\n", ids[i], out.Status, message)
		}
	}

	if err := s.render(b.View()); err != nil {
		return err
	}
	if failed {
		return errMoveFailed
	}
	return nil
}

// drag moves one card the way a pointer gesture does: lift the card, hover
// the destination column and drop it at index. Failures reach the terminal
// through the board's notifier.
func (s *session) drag(ctx context.Context, pipelineKey string, id int64, to string, index int) error {
	b, err := s.load(ctx, pipelineKey)
	if err != nil {
		return err
	}

	engine, prompt, console := s.wire(b)
	ctrl := board.NewController(engine, prompt, console, s.logger)

	if !ctrl.DragStart(id) {
		fmt.Fprintf(s.out, "#%d not on board %s\n", id, pipelineKey)
		return errDropRefused
	}
	if !ctrl.DragOver(to) {
		ctrl.DragEnd()
		fmt.Fprintf(s.out, "unknown stage %q on board %s\n", to, pipelineKey)
		return errDropRefused
	}

	out := ctrl.Drop(ctx, to, index)
	var result error
	switch out.Status {
	case board.StatusMoved:
		fmt.Fprintf(s.out, "#%d %s -> %s\n", out.EntityID, out.From, out.To)
		if out.Conversion.Decision == board.DecisionConverted {
			fmt.Fprintf(s.out, "#%d converted: %s\n", out.EntityID, out.Conversion.Location)
		}
	case board.StatusUnchanged:
		fmt.Fprintf(s.out, "#%d repositioned in %s\n", out.EntityID, out.To)
	default:
		result = errDropRefused
	}

	if err := s.render(b.View()); err != nil {
		return err
	}
	return result
}

// wire builds the engine and conversion prompt for b, with the terminal as
// confirmer and notifier.
func (s *session) wire(b *board.Board) (*board.Engine, *board.ConversionPrompt, *terminal.Console) {
	console := terminal.New(s.in, s.out, terminal.WithAssumeYes(s.assumeYes), terminal.WithLogger(s.logger))
	engine := board.NewEngine(b, s.client, s.logger, s.metrics)
	prompt := board.NewConversionPrompt(console, s.client, console, s.logger)
	return engine, prompt, console
}

func (s *session) offer(ctx context.Context, prompt *board.ConversionPrompt, out board.Outcome) {
	res := prompt.Offer(ctx, out.Opportunity, out.Linked, out.To)
	if res.Decision == board.DecisionConverted {
		fmt.Fprintf(s.out, "#%d converted: %s\n", out.EntityID, res.Location)
	}
}

func (s *session) render(v board.View) error {
	fmt.Fprintf(s.out, "%s\n", v.Label)

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, col := range v.Columns {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", col.Stage, col.CountLabel, col.TotalLabel)
		for _, c := range col.Cards {
			marker := ""
			if c.Linked {
				marker = " (linked)"
			}
			fmt.Fprintf(tw, "  #%d %s%s\t\t%s\n", c.ID, c.Title, marker, c.AmountLabel)
		}
	}
	return tw.Flush()
}
