package board

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/aggregate"
)

// View is a render-ready projection of the board. It carries no state of
// its own; calling View twice without an intervening change yields equal
// values.
type View struct {
	Pipeline string
	Label    string
	Columns  []ColumnView
	Summary  []SummaryRow
}

// ColumnView is one stage column.
type ColumnView struct {
	Stage       string
	Count       int
	Total       decimal.Decimal
	CountLabel  string
	TotalLabel  string
	Highlighted bool
	// ShowEmpty is set when the column holds no cards and the placeholder
	// should render.
	ShowEmpty bool
	Cards     []CardView
}

// CardView is one opportunity card.
type CardView struct {
	ID          int64
	Title       string
	AmountLabel string
	Lifted      bool
	Disabled    bool
	Linked      bool
}

// SummaryRow is one line of the summary panel, rendered from its own
// aggregate replica.
type SummaryRow struct {
	Stage      string
	Count      int
	CountLabel string
	TotalLabel string
}

// View projects the current board state.
func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := View{
		Pipeline: b.pipeline.Key,
		Label:    b.pipeline.Label,
		Columns:  make([]ColumnView, 0, len(b.order)),
		Summary:  make([]SummaryRow, 0, len(b.order)),
	}

	for _, stage := range b.order {
		col := b.columns[stage]
		agg, _ := b.counters.Get(ReplicaColumns, stage)

		cv := ColumnView{
			Stage:       stage,
			Count:       agg.Count,
			Total:       agg.Total,
			CountLabel:  aggregate.CountLabel(agg.Count, b.noun),
			TotalLabel:  b.amountLabel(agg.Total, agg.Currency),
			Highlighted: col.highlighted,
			ShowEmpty:   len(col.cards) == 0,
			Cards:       make([]CardView, 0, len(col.cards)),
		}
		for _, id := range col.cards {
			c := b.cards[id]
			cv.Cards = append(cv.Cards, CardView{
				ID:          id,
				Title:       c.opp.Title,
				AmountLabel: b.amountLabel(c.opp.Amount, c.opp.Currency),
				Lifted:      c.lifted,
				Disabled:    c.disabled,
				Linked:      c.linked,
			})
		}
		v.Columns = append(v.Columns, cv)

		sum, _ := b.counters.Get(ReplicaSummary, stage)
		v.Summary = append(v.Summary, SummaryRow{
			Stage:      stage,
			Count:      sum.Count,
			CountLabel: aggregate.CountLabel(sum.Count, b.noun),
			TotalLabel: b.amountLabel(sum.Total, sum.Currency),
		})
	}

	return v
}
