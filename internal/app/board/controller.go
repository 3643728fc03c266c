package board

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// Phase is a card's position in the drag state machine.
type Phase int

// Drag phases.
const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseAwaitingConfirmation
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseAwaitingConfirmation:
		return "awaiting_confirmation"
	default:
		return "idle"
	}
}

// DragState describes one card's phase. From and To are set only while
// awaiting confirmation.
type DragState struct {
	Phase    Phase
	EntityID int64
	From     string
	To       string
}

// Controller translates drag gestures into board changes and transition
// requests.
type Controller struct {
	board    *Board
	engine   *Engine
	prompt   *ConversionPrompt
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewController wires a controller to the engine's board. prompt may be nil
// to disable conversion offers.
func NewController(engine *Engine, prompt *ConversionPrompt, notifier ports.Notifier, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		board:    engine.Board(),
		engine:   engine,
		prompt:   prompt,
		notifier: notifier,
		logger:   logger,
	}
}

// StateOf returns the drag phase of a card.
func (c *Controller) StateOf(id int64) DragState {
	b := c.board
	b.mu.Lock()
	defer b.mu.Unlock()

	if t, ok := b.pending[id]; ok {
		return DragState{Phase: PhaseAwaitingConfirmation, EntityID: id, From: t.From, To: t.To}
	}
	if b.dragging && b.active == id {
		return DragState{Phase: PhaseDragging, EntityID: id}
	}
	return DragState{Phase: PhaseIdle, EntityID: id}
}

// DragStart lifts a card. Returns false when the card is unknown or its
// previous transition is still awaiting confirmation.
func (c *Controller) DragStart(id int64) bool {
	b := c.board
	b.mu.Lock()
	defer b.mu.Unlock()

	cd, ok := b.cards[id]
	if !ok || cd.disabled {
		return false
	}
	if b.dragging {
		if prev, ok := b.cards[b.active]; ok {
			prev.lifted = false
		}
	}
	cd.lifted = true
	b.dragging = true
	b.active = id
	return true
}

// DragEnd ends the gesture: no card stays lifted and no column stays
// highlighted.
func (c *Controller) DragEnd() {
	b := c.board
	b.mu.Lock()
	defer b.mu.Unlock()

	c.clearDrag()
}

// DragOver highlights a column under an active drag. It returns true when
// the column accepts the drop.
func (c *Controller) DragOver(stage string) bool {
	b := c.board
	b.mu.Lock()
	defer b.mu.Unlock()

	col, ok := b.columns[stage]
	if !ok || !b.dragging {
		return false
	}
	col.highlighted = true
	return true
}

// DragLeave removes a column highlight unless the pointer only moved onto
// one of the column's own children.
func (c *Controller) DragLeave(stage string, intoChild bool) {
	if intoChild {
		return
	}
	b := c.board
	b.mu.Lock()
	defer b.mu.Unlock()

	if col, ok := b.columns[stage]; ok {
		col.highlighted = false
	}
}

// Drop completes a drag onto stage at index within the column. A drop on
// the card's own column only repositions it. Any other column goes through
// the engine; the card moves only after confirmation.
func (c *Controller) Drop(ctx context.Context, stage string, index int) Outcome {
	b := c.board
	b.mu.Lock()

	col, ok := b.columns[stage]
	if ok {
		col.highlighted = false
	}
	if !ok || !b.dragging {
		b.mu.Unlock()
		return Outcome{Status: StatusIgnored, To: stage}
	}

	id := b.active
	cd, ok := b.cards[id]
	if !ok {
		c.clearDrag()
		b.mu.Unlock()
		return Outcome{Status: StatusIgnored, EntityID: id, To: stage}
	}
	from := cd.opp.Stage
	c.clearDrag()

	if from == stage {
		b.place(id, stage, index)
		out := Outcome{Status: StatusUnchanged, EntityID: id, From: from, To: stage, Opportunity: cd.opp, Linked: cd.linked}
		b.mu.Unlock()
		return out
	}
	b.mu.Unlock()

	out, err := c.engine.RequestTransition(ctx, id, from, stage)
	if err != nil {
		c.notifier.Error(ctx, out.Message)
		return out
	}
	if out.Status != StatusMoved {
		return out
	}

	if index >= 0 {
		b.mu.Lock()
		if cur, ok := b.cards[id]; ok && cur.opp.Stage == out.To {
			b.place(id, out.To, index)
		}
		b.mu.Unlock()
	}

	if c.prompt != nil {
		out.Conversion = c.prompt.Offer(ctx, out.Opportunity, out.Linked, out.To)
		if out.Conversion.Decision == DecisionConverted {
			b.markLinked(id, out.Conversion.Location)
			out.Linked = true
		}
	}
	return out
}

// clearDrag must be called with the board lock held.
func (c *Controller) clearDrag() {
	b := c.board
	if cd, ok := b.cards[b.active]; ok {
		cd.lifted = false
	}
	b.dragging = false
	b.active = 0
	for _, col := range b.columns {
		col.highlighted = false
	}
}
