// Package board implements the client side of a pipeline board: columns of
// opportunity cards, drag interaction, server-confirmed stage transitions,
// and per-stage aggregates kept in two displayed replicas.
//
// A Board holds the local page state. The Engine moves cards only after
// the collaborator confirms, the Controller drives the drag state machine,
// and the ConversionPrompt offers to convert a won opportunity.
package board

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/aggregate"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

// Replica names. Column headers and the summary panel each render their
// own copy of the per-stage aggregates.
const (
	ReplicaColumns = "columns"
	ReplicaSummary = "summary"
)

// DefaultEntityNoun labels counts when no noun is configured.
const DefaultEntityNoun = "deal"

type card struct {
	opp      pipeline.Opportunity
	linked   bool
	lifted   bool
	disabled bool
}

type column struct {
	stage       string
	cards       []int64
	highlighted bool
}

// Board is the local state of one pipeline board. Safe for concurrent use.
type Board struct {
	mu       sync.Mutex
	pipeline pipeline.Pipeline
	noun     string
	currency string

	cards   map[int64]*card
	columns map[string]*column
	order   []string

	counters *aggregate.Counter

	// Drag subject. At most one card is lifted at a time.
	dragging bool
	active   int64

	pending map[int64]Transition
}

// Transition is one requested move awaiting confirmation.
type Transition struct {
	EntityID int64
	From     string
	To       string
}

// Option configures a Board.
type Option func(*Board)

// WithEntityNoun sets the noun used in count labels ("deal", "lead").
func WithEntityNoun(noun string) Option {
	return func(b *Board) {
		if noun != "" {
			b.noun = noun
		}
	}
}

// WithDefaultCurrency sets the symbol used when neither an aggregate nor a
// card carries one.
func WithDefaultCurrency(symbol string) Option {
	return func(b *Board) {
		if symbol != "" {
			b.currency = symbol
		}
	}
}

// New builds a board from its initial page state. Opportunities whose
// stage names no column are left off the board.
func New(state pipeline.BoardState, opts ...Option) *Board {
	b := &Board{
		pipeline: state.Pipeline,
		noun:     DefaultEntityNoun,
		currency: aggregate.DefaultCurrency,
		cards:    make(map[int64]*card),
		columns:  make(map[string]*column, len(state.Pipeline.Stages)),
		counters: aggregate.NewCounter(ReplicaColumns, ReplicaSummary),
		pending:  make(map[int64]Transition),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, stage := range state.Pipeline.Stages {
		if _, dup := b.columns[stage]; dup {
			continue
		}
		b.columns[stage] = &column{stage: stage}
		b.order = append(b.order, stage)
	}

	for _, opp := range state.Opportunities {
		col, ok := b.columns[opp.Stage]
		if !ok {
			continue
		}
		if _, dup := b.cards[opp.ID]; dup {
			continue
		}
		b.cards[opp.ID] = &card{opp: opp, linked: opp.HasLinkedRecord()}
		col.cards = append(col.cards, opp.ID)
		b.counters.Add(opp.Stage, opp.Amount, opp.Currency)
	}

	return b
}

// Pipeline returns the board's pipeline definition.
func (b *Board) Pipeline() pipeline.Pipeline {
	return b.pipeline
}

// Opportunity returns the local copy of an opportunity.
func (b *Board) Opportunity(id int64) (pipeline.Opportunity, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.cards[id]
	if !ok {
		return pipeline.Opportunity{}, false
	}
	return c.opp, true
}

// Aggregate returns the aggregate a replica shows for stage.
func (b *Board) Aggregate(replica, stage string) (aggregate.StageAggregate, bool) {
	return b.counters.Get(replica, stage)
}

// Pending returns the in-flight transition of an opportunity, if any.
func (b *Board) Pending(id int64) (Transition, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.pending[id]
	return t, ok
}

// hasColumn must be called with mu held.
func (b *Board) hasColumn(stage string) bool {
	_, ok := b.columns[stage]
	return ok
}

// detach removes id from whichever column holds it. Must be called with mu
// held.
func (b *Board) detach(id int64) {
	for _, col := range b.columns {
		if i := slices.Index(col.cards, id); i >= 0 {
			col.cards = slices.Delete(col.cards, i, i+1)
			return
		}
	}
}

// place puts id into stage at index. A negative or out of range index
// appends. Must be called with mu held.
func (b *Board) place(id int64, stage string, index int) {
	b.detach(id)
	col := b.columns[stage]
	if index < 0 || index > len(col.cards) {
		index = len(col.cards)
	}
	col.cards = slices.Insert(col.cards, index, id)
}

// markLinked records a completed conversion so the prompt is not offered
// again for the same card.
func (b *Board) markLinked(id int64, location string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c, ok := b.cards[id]; ok {
		c.linked = true
		c.opp.LinkedRecord = location
		c.opp.ConversionEndpoint = ""
	}
}

// amountLabel formats a card amount, falling back to the board currency.
func (b *Board) amountLabel(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = b.currency
	}
	return aggregate.FormatMoney(currency, amount)
}
