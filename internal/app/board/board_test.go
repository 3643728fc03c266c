package board_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	"github.com/jsamuelsen11/pipeline-board/internal/app/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
	"github.com/jsamuelsen11/pipeline-board/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func salesPipeline() pipeline.Pipeline {
	return pipeline.Pipeline{
		Key:    "sales",
		Label:  "Sales",
		Stages: []string{"Qualification", "Proposal", "Negotiation", "Closed Won", "Closed Lost"},
	}
}

func opp(id int64, stage string, amount int64, currency string) pipeline.Opportunity {
	return pipeline.Opportunity{
		ID:       id,
		Title:    "Deal " + string(rune('A'+id-1)),
		Pipeline: "sales",
		Stage:    stage,
		Amount:   decimal.NewFromInt(amount),
		Currency: currency,
	}
}

type fixture struct {
	board     *board.Board
	client    *mocks.MockPipelineClient
	confirmer *mocks.MockConfirmer
	notifier  *mocks.MockNotifier
	ctrl      *board.Controller
}

func newFixture(t *testing.T, opps ...pipeline.Opportunity) fixture {
	t.Helper()

	b := board.New(pipeline.BoardState{Pipeline: salesPipeline(), Opportunities: opps})
	client := mocks.NewMockPipelineClient(t)
	confirmer := mocks.NewMockConfirmer(t)
	notifier := mocks.NewMockNotifier(t)

	engine := board.NewEngine(b, client, nil, nil)
	prompt := board.NewConversionPrompt(confirmer, client, notifier, nil)

	return fixture{
		board:     b,
		client:    client,
		confirmer: confirmer,
		notifier:  notifier,
		ctrl:      board.NewController(engine, prompt, notifier, nil),
	}
}

func (f fixture) drag(t *testing.T, id int64, to string) board.Outcome {
	t.Helper()

	if !f.ctrl.DragStart(id) {
		t.Fatalf("DragStart(%d) = false, want true", id)
	}
	f.ctrl.DragOver(to)
	return f.ctrl.Drop(context.Background(), to, -1)
}

func requireAggregate(t *testing.T, b *board.Board, stage string, count int, total int64) {
	t.Helper()

	for _, replica := range []string{board.ReplicaColumns, board.ReplicaSummary} {
		agg, ok := b.Aggregate(replica, stage)
		if !ok {
			t.Fatalf("Aggregate(%s, %s) unknown replica", replica, stage)
		}
		if agg.Count != count {
			t.Errorf("%s[%s].Count = %d, want %d", replica, stage, agg.Count, count)
		}
		if !agg.Total.Equal(decimal.NewFromInt(total)) {
			t.Errorf("%s[%s].Total = %s, want %d", replica, stage, agg.Total, total)
		}
	}
}

func columnIDs(v board.View, stage string) []int64 {
	for _, col := range v.Columns {
		if col.Stage == stage {
			ids := make([]int64, 0, len(col.Cards))
			for _, c := range col.Cards {
				ids = append(ids, c.ID)
			}
			return ids
		}
	}
	return nil
}

func TestController_ConfirmedMoveTransfersAggregates(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		opp(1, "Qualification", 500, "$"),
		opp(2, "Qualification", 200, "$"),
	)
	f.client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Proposal").
		Return(&pipeline.StageChange{Stage: "Proposal", Pipeline: "sales"}, nil)

	out := f.drag(t, 1, "Proposal")

	if out.Status != board.StatusMoved {
		t.Fatalf("Status = %v, want %v", out.Status, board.StatusMoved)
	}
	requireAggregate(t, f.board, "Qualification", 1, 200)
	requireAggregate(t, f.board, "Proposal", 1, 500)

	got, _ := f.board.Opportunity(1)
	if got.Stage != "Proposal" {
		t.Errorf("Stage = %q, want %q", got.Stage, "Proposal")
	}

	agg, _ := f.board.Aggregate(board.ReplicaColumns, "Proposal")
	if agg.Currency != "$" {
		t.Errorf("Proposal currency = %q, want %q", agg.Currency, "$")
	}

	v := f.board.View()
	if diff := cmp.Diff([]int64{1}, columnIDs(v, "Proposal")); diff != "" {
		t.Errorf("Proposal cards mismatch (-want +got):\n%s", diff)
	}
	if state := f.ctrl.StateOf(1); state.Phase != board.PhaseIdle {
		t.Errorf("StateOf(1).Phase = %v, want idle", state.Phase)
	}
}

func TestController_RejectedMoveLeavesBoardUntouched(t *testing.T) {
	t.Parallel()

	f := newFixture(t, opp(1, "Qualification", 500, "$"))
	before := f.board.View()

	f.client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Proposal").
		Return(nil, &domain.RemoteError{Message: "locked", Err: domain.ErrRejected})
	f.notifier.EXPECT().
		Error(mock.Anything, mock.MatchedBy(func(msg string) bool { return strings.Contains(msg, "locked") })).
		Return()

	out := f.drag(t, 1, "Proposal")

	if out.Status != board.StatusFailed {
		t.Fatalf("Status = %v, want %v", out.Status, board.StatusFailed)
	}
	if out.Message != "locked" {
		t.Errorf("Message = %q, want %q", out.Message, "locked")
	}
	if diff := cmp.Diff(before, f.board.View(), decimalEqual); diff != "" {
		t.Errorf("View changed after rejected move (-before +after):\n%s", diff)
	}
}

func TestController_TransportFailureUsesGenericMessage(t *testing.T) {
	t.Parallel()

	f := newFixture(t, opp(1, "Qualification", 500, "$"))
	f.client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Proposal").
		Return(nil, errors.New("connection refused"))
	f.notifier.EXPECT().Error(mock.Anything, board.GenericFailureMessage).Return()

	out := f.drag(t, 1, "Proposal")

	if out.Status != board.StatusFailed {
		t.Fatalf("Status = %v, want %v", out.Status, board.StatusFailed)
	}
	requireAggregate(t, f.board, "Qualification", 1, 500)
	requireAggregate(t, f.board, "Proposal", 0, 0)
}

func TestController_ClosedWonOffersConversion(t *testing.T) {
	t.Parallel()

	f := newFixture(t, opp(1, "Negotiation", 900, "$"))
	endpoint := "/sales/opportunities/1/convert"
	linked := false

	f.client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Closed Won").
		Return(&pipeline.StageChange{Stage: "Closed Won", HasLinkedRecord: &linked, ConversionEndpoint: &endpoint}, nil)
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.AnythingOfType("string")).Return(true, nil)
	f.client.EXPECT().Convert(mock.Anything, endpoint).Return("/projects/9", nil)

	out := f.drag(t, 1, "Closed Won")

	if out.Conversion.Decision != board.DecisionConverted {
		t.Fatalf("Decision = %v, want converted", out.Conversion.Decision)
	}
	if out.Conversion.Location != "/projects/9" {
		t.Errorf("Location = %q, want %q", out.Conversion.Location, "/projects/9")
	}

	got, _ := f.board.Opportunity(1)
	if got.LinkedRecord != "/projects/9" {
		t.Errorf("LinkedRecord = %q, want %q", got.LinkedRecord, "/projects/9")
	}
}

func TestController_ConversionDeclinedSendsNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t, opp(1, "Negotiation", 900, "$"))
	endpoint := "/sales/opportunities/1/convert"

	f.client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Closed Won").
		Return(&pipeline.StageChange{Stage: "Closed Won", ConversionEndpoint: &endpoint}, nil)
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, nil)

	out := f.drag(t, 1, "Closed Won")

	if out.Conversion.Decision != board.DecisionDeclined {
		t.Errorf("Decision = %v, want declined", out.Conversion.Decision)
	}
}

func TestController_NoPromptWhenAlreadyLinked(t *testing.T) {
	t.Parallel()

	f := newFixture(t, opp(1, "Negotiation", 900, "$"))
	endpoint := "/sales/opportunities/1/convert"
	linked := true

	f.client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Closed Won").
		Return(&pipeline.StageChange{Stage: "Closed Won", HasLinkedRecord: &linked, ConversionEndpoint: &endpoint}, nil)

	out := f.drag(t, 1, "Closed Won")

	if out.Conversion.Decision != board.DecisionNotOffered {
		t.Errorf("Decision = %v, want not offered", out.Conversion.Decision)
	}
}

func TestController_SameColumnDropRepositions(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		opp(1, "Qualification", 100, "$"),
		opp(2, "Qualification", 200, "$"),
	)

	if !f.ctrl.DragStart(2) {
		t.Fatal("DragStart(2) = false, want true")
	}
	out := f.ctrl.Drop(context.Background(), "Qualification", 0)

	if out.Status != board.StatusUnchanged {
		t.Fatalf("Status = %v, want %v", out.Status, board.StatusUnchanged)
	}
	if diff := cmp.Diff([]int64{2, 1}, columnIDs(f.board.View(), "Qualification")); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	requireAggregate(t, f.board, "Qualification", 2, 300)
}

func TestController_DropIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t, opp(1, "Qualification", 100, "$"))

	if out := f.ctrl.Drop(context.Background(), "Proposal", -1); out.Status != board.StatusIgnored {
		t.Errorf("Drop without drag Status = %v, want ignored", out.Status)
	}

	f.ctrl.DragStart(1)
	if out := f.ctrl.Drop(context.Background(), "Delivered", -1); out.Status != board.StatusIgnored {
		t.Errorf("Drop on unknown column Status = %v, want ignored", out.Status)
	}
	if f.ctrl.DragStart(42) {
		t.Error("DragStart(42) = true for unknown card, want false")
	}
}

func TestController_HighlightLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t, opp(1, "Qualification", 100, "$"))

	if f.ctrl.DragOver("Proposal") {
		t.Error("DragOver without active drag = true, want false")
	}

	f.ctrl.DragStart(1)
	if !f.ctrl.DragOver("Proposal") {
		t.Fatal("DragOver(Proposal) = false, want true")
	}
	f.ctrl.DragLeave("Proposal", true)
	if !highlighted(f.board.View(), "Proposal") {
		t.Error("highlight cleared when moving into a child")
	}
	f.ctrl.DragLeave("Proposal", false)
	if highlighted(f.board.View(), "Proposal") {
		t.Error("highlight kept after leaving the column")
	}

	f.ctrl.DragOver("Negotiation")
	f.ctrl.DragEnd()
	v := f.board.View()
	if highlighted(v, "Negotiation") {
		t.Error("highlight kept after DragEnd")
	}
	for _, col := range v.Columns {
		for _, c := range col.Cards {
			if c.Lifted {
				t.Errorf("card %d still lifted after DragEnd", c.ID)
			}
		}
	}
}

func highlighted(v board.View, stage string) bool {
	for _, col := range v.Columns {
		if col.Stage == stage {
			return col.Highlighted
		}
	}
	return false
}

func TestController_PendingCardCannotBeDragged(t *testing.T) {
	t.Parallel()

	f := newFixture(t,
		opp(1, "Qualification", 100, "$"),
		opp(2, "Qualification", 200, "$"),
	)

	started := make(chan struct{})
	release := make(chan struct{})
	f.client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Proposal").
		RunAndReturn(func(context.Context, int64, string) (*pipeline.StageChange, error) {
			close(started)
			<-release
			return &pipeline.StageChange{Stage: "Proposal"}, nil
		})

	done := make(chan board.Outcome)
	f.ctrl.DragStart(1)
	go func() {
		done <- f.ctrl.Drop(context.Background(), "Proposal", -1)
	}()
	<-started

	state := f.ctrl.StateOf(1)
	want := board.DragState{Phase: board.PhaseAwaitingConfirmation, EntityID: 1, From: "Qualification", To: "Proposal"}
	if diff := cmp.Diff(want, state); diff != "" {
		t.Errorf("StateOf(1) mismatch (-want +got):\n%s", diff)
	}
	if f.ctrl.DragStart(1) {
		t.Error("DragStart(1) = true while awaiting confirmation, want false")
	}
	if !f.ctrl.DragStart(2) {
		t.Error("DragStart(2) = false, other cards must stay draggable")
	}
	f.ctrl.DragEnd()

	// Not yet confirmed: the card has not moved.
	if diff := cmp.Diff([]int64{1, 2}, columnIDs(f.board.View(), "Qualification")); diff != "" {
		t.Errorf("card moved before confirmation (-want +got):\n%s", diff)
	}

	close(release)
	if out := <-done; out.Status != board.StatusMoved {
		t.Errorf("Status = %v, want moved", out.Status)
	}
}

func TestEngine_BusyCardIsRefused(t *testing.T) {
	t.Parallel()

	b := board.New(pipeline.BoardState{
		Pipeline:      salesPipeline(),
		Opportunities: []pipeline.Opportunity{opp(1, "Qualification", 100, "$")},
	})
	client := mocks.NewMockPipelineClient(t)
	engine := board.NewEngine(b, client, nil, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Proposal").
		RunAndReturn(func(context.Context, int64, string) (*pipeline.StageChange, error) {
			close(started)
			<-release
			return &pipeline.StageChange{Stage: "Proposal"}, nil
		}).
		Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = engine.RequestTransition(context.Background(), 1, "Qualification", "Proposal")
	}()
	<-started

	out, err := engine.RequestTransition(context.Background(), 1, "Qualification", "Negotiation")
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
	if out.Status != board.StatusBusy {
		t.Errorf("Status = %v, want busy", out.Status)
	}

	close(release)
	wg.Wait()
	requireAggregate(t, b, "Proposal", 1, 100)
}

func TestEngine_SameStageIsNoOp(t *testing.T) {
	t.Parallel()

	b := board.New(pipeline.BoardState{
		Pipeline:      salesPipeline(),
		Opportunities: []pipeline.Opportunity{opp(1, "Proposal", 100, "$")},
	})
	engine := board.NewEngine(b, mocks.NewMockPipelineClient(t), nil, nil)

	out, err := engine.RequestTransition(context.Background(), 1, "Proposal", "Proposal")
	if err != nil {
		t.Fatalf("RequestTransition() error = %v", err)
	}
	if out.Status != board.StatusUnchanged {
		t.Errorf("Status = %v, want unchanged", out.Status)
	}
	requireAggregate(t, b, "Proposal", 1, 100)
}

func TestEngine_UnknownReferencesIgnored(t *testing.T) {
	t.Parallel()

	b := board.New(pipeline.BoardState{
		Pipeline:      salesPipeline(),
		Opportunities: []pipeline.Opportunity{opp(1, "Proposal", 100, "$")},
	})
	engine := board.NewEngine(b, mocks.NewMockPipelineClient(t), nil, nil)

	tests := []struct {
		name     string
		id       int64
		from, to string
	}{
		{"unknown card", 99, "Proposal", "Negotiation"},
		{"unknown destination", 1, "Proposal", "Delivered"},
		{"unknown source", 1, "Lead", "Negotiation"},
	}
	for _, tt := range tests {
		out, err := engine.RequestTransition(context.Background(), tt.id, tt.from, tt.to)
		if err != nil || out.Status != board.StatusIgnored {
			t.Errorf("%s: got (%v, %v), want (ignored, nil)", tt.name, out.Status, err)
		}
	}
}

func TestEngine_ReconcilesServerReportedStage(t *testing.T) {
	t.Parallel()

	b := board.New(pipeline.BoardState{
		Pipeline:      salesPipeline(),
		Opportunities: []pipeline.Opportunity{opp(1, "Qualification", 300, "$")},
	})
	client := mocks.NewMockPipelineClient(t)
	client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Proposal").
		Return(&pipeline.StageChange{Stage: "Negotiation"}, nil)

	out, err := board.NewEngine(b, client, nil, nil).
		RequestTransition(context.Background(), 1, "Qualification", "Proposal")
	if err != nil {
		t.Fatalf("RequestTransition() error = %v", err)
	}
	if out.To != "Negotiation" {
		t.Errorf("To = %q, want %q", out.To, "Negotiation")
	}
	requireAggregate(t, b, "Proposal", 0, 0)
	requireAggregate(t, b, "Negotiation", 1, 300)
}

func TestEngine_RepeatedConfirmationDoesNotDoubleCount(t *testing.T) {
	t.Parallel()

	b := board.New(pipeline.BoardState{
		Pipeline:      salesPipeline(),
		Opportunities: []pipeline.Opportunity{opp(1, "Qualification", 300, "$")},
	})
	client := mocks.NewMockPipelineClient(t)
	client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Proposal").
		Return(&pipeline.StageChange{Stage: "Proposal"}, nil).
		Times(2)
	engine := board.NewEngine(b, client, nil, nil)

	for range 2 {
		if _, err := engine.RequestTransition(context.Background(), 1, "Qualification", "Proposal"); err != nil {
			t.Fatalf("RequestTransition() error = %v", err)
		}
	}

	requireAggregate(t, b, "Qualification", 0, 0)
	requireAggregate(t, b, "Proposal", 1, 300)
}

func TestEngine_ConcurrentMovesKeepCountSum(t *testing.T) {
	t.Parallel()

	var opps []pipeline.Opportunity
	for id := int64(1); id <= 20; id++ {
		opps = append(opps, opp(id, "Qualification", id*10, "$"))
	}
	b := board.New(pipeline.BoardState{Pipeline: salesPipeline(), Opportunities: opps})

	client := mocks.NewMockPipelineClient(t)
	client.EXPECT().
		ChangeStage(mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, id int64, stage string) (*pipeline.StageChange, error) {
			if id%5 == 0 {
				return nil, &domain.RemoteError{Message: "locked", Err: domain.ErrRejected}
			}
			return &pipeline.StageChange{Stage: stage}, nil
		})
	engine := board.NewEngine(b, client, nil, nil)

	stages := []string{"Proposal", "Negotiation", "Closed Won", "Closed Lost"}
	var wg sync.WaitGroup
	for i, o := range opps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = engine.RequestTransition(context.Background(), o.ID, o.Stage, stages[i%len(stages)])
		}()
	}
	wg.Wait()

	total := 0
	for _, stage := range salesPipeline().Stages {
		agg, _ := b.Aggregate(board.ReplicaColumns, stage)
		sum, _ := b.Aggregate(board.ReplicaSummary, stage)
		if agg.Count != sum.Count || !agg.Total.Equal(sum.Total) {
			t.Errorf("replicas diverged at %s: %+v vs %+v", stage, agg, sum)
		}
		total += agg.Count
	}
	if total != len(opps) {
		t.Errorf("sum of counts = %d, want %d", total, len(opps))
	}
	requireAggregate(t, b, "Qualification", 4, 50+100+150+200)
}

func TestBoard_View(t *testing.T) {
	t.Parallel()

	p := pipeline.Pipeline{Key: "sales", Label: "Sales", Stages: []string{"Qualification", "Proposal"}}
	b := board.New(pipeline.BoardState{
		Pipeline: p,
		Opportunities: []pipeline.Opportunity{
			{ID: 1, Title: "Tower A", Stage: "Qualification", Amount: decimal.NewFromInt(500), Currency: "$"},
			{ID: 2, Title: "Mall", Stage: "Qualification", Amount: decimal.RequireFromString("1234.5")},
			{ID: 3, Title: "Orphan", Stage: "Delivered", Amount: decimal.NewFromInt(7)},
		},
	}, board.WithEntityNoun("lead"))

	want := board.View{
		Pipeline: "sales",
		Label:    "Sales",
		Columns: []board.ColumnView{
			{
				Stage:      "Qualification",
				Count:      2,
				Total:      decimal.RequireFromString("1734.5"),
				CountLabel: "2 leads",
				TotalLabel: "$1,734.50",
				Cards: []board.CardView{
					{ID: 1, Title: "Tower A", AmountLabel: "$500.00"},
					{ID: 2, Title: "Mall", AmountLabel: "₹1,234.50"},
				},
			},
			{
				Stage:      "Proposal",
				CountLabel: "0 leads",
				TotalLabel: "₹0.00",
				ShowEmpty:  true,
				Cards:      []board.CardView{},
			},
		},
		Summary: []board.SummaryRow{
			{Stage: "Qualification", Count: 2, CountLabel: "2 leads", TotalLabel: "$1,734.50"},
			{Stage: "Proposal", CountLabel: "0 leads", TotalLabel: "₹0.00"},
		},
	}

	got := b.View()
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("View() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(got, b.View(), decimalEqual); diff != "" {
		t.Errorf("View() not stable (-first +second):\n%s", diff)
	}
}

func TestShouldOffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stage    string
		linked   bool
		endpoint string
		want     bool
	}{
		{"won unlinked with endpoint", "Closed Won", false, "/x", true},
		{"won lowercase", "closed won", false, "/x", true},
		{"already linked", "Closed Won", true, "/x", false},
		{"no endpoint", "Closed Won", false, "", false},
		{"lost", "Closed Lost", false, "/x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := board.ShouldOffer(tt.stage, tt.linked, tt.endpoint); got != tt.want {
				t.Errorf("ShouldOffer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConversionPrompt_ConcurrentAcceptsShareOneRequest(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockPipelineClient(t)
	confirmer := mocks.NewMockConfirmer(t)
	notifier := mocks.NewMockNotifier(t)
	prompt := board.NewConversionPrompt(confirmer, client, notifier, nil)

	endpoint := "/sales/opportunities/4/convert"
	release := make(chan struct{})
	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(true, nil)
	client.EXPECT().
		Convert(mock.Anything, endpoint).
		RunAndReturn(func(context.Context, string) (string, error) {
			<-release
			return "/projects/4", nil
		}).
		Once()

	o := pipeline.Opportunity{ID: 4, Title: "Depot", Stage: "Closed Won", ConversionEndpoint: endpoint}
	results := make(chan board.ConversionResult, 2)
	for range 2 {
		go func() {
			results <- prompt.Offer(context.Background(), o, false, "Closed Won")
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)

	for range 2 {
		if r := <-results; r.Decision != board.DecisionConverted || r.Location != "/projects/4" {
			t.Errorf("Offer() = %+v, want converted to /projects/4", r)
		}
	}
}

func TestConversionPrompt_FailureNotifies(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockPipelineClient(t)
	confirmer := mocks.NewMockConfirmer(t)
	notifier := mocks.NewMockNotifier(t)

	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(true, nil)
	client.EXPECT().
		Convert(mock.Anything, "/c").
		Return("", &domain.RemoteError{Message: "Project already exists.", Err: domain.ErrConflict})
	notifier.EXPECT().Error(mock.Anything, "Project already exists.").Return()

	o := pipeline.Opportunity{ID: 5, Stage: "Closed Won", ConversionEndpoint: "/c"}
	r := board.NewConversionPrompt(confirmer, client, notifier, nil).Offer(context.Background(), o, false, "Closed Won")
	if r.Decision != board.DecisionFailed {
		t.Errorf("Decision = %v, want failed", r.Decision)
	}
}

// loggedErrors returns a logger that keeps every "error" attribute it is
// given, unflattened.
func loggedErrors() (*slog.Logger, func() []slog.Value) {
	var (
		mu   sync.Mutex
		vals []slog.Value
	)
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				mu.Lock()
				vals = append(vals, a.Value)
				mu.Unlock()
			}
			return a
		},
	})
	return slog.New(h), func() []slog.Value {
		mu.Lock()
		defer mu.Unlock()
		return slices.Clone(vals)
	}
}

func requireLoggedError(t *testing.T, vals []slog.Value, target error) {
	t.Helper()

	if len(vals) != 1 {
		t.Fatalf("logged %d error attrs, want 1", len(vals))
	}
	err, ok := vals[0].Any().(error)
	if vals[0].Kind() != slog.KindAny || !ok {
		t.Fatalf("error attr = %v (%v), want an error value", vals[0], vals[0].Kind())
	}
	if !errors.Is(err, target) {
		t.Errorf("logged error = %v, want it to wrap %v", err, target)
	}
}

func TestEngine_LogsFailureAsErrorValue(t *testing.T) {
	t.Parallel()

	logger, logged := loggedErrors()
	b := board.New(pipeline.BoardState{Pipeline: salesPipeline(), Opportunities: []pipeline.Opportunity{opp(1, "Qualification", 500, "$")}})
	client := mocks.NewMockPipelineClient(t)
	client.EXPECT().
		ChangeStage(mock.Anything, int64(1), "Proposal").
		Return(nil, &domain.RemoteError{Message: "locked", Err: domain.ErrRejected})

	if _, err := board.NewEngine(b, client, logger, nil).RequestTransition(context.Background(), 1, "Qualification", "Proposal"); err == nil {
		t.Fatal("RequestTransition() error = nil, want rejection")
	}
	requireLoggedError(t, logged(), domain.ErrRejected)
}

func TestConversionPrompt_LogsErrorValues(t *testing.T) {
	t.Parallel()

	errClosed := errors.New("input closed")
	tests := []struct {
		name   string
		setup  func(client *mocks.MockPipelineClient, confirmer *mocks.MockConfirmer, notifier *mocks.MockNotifier)
		target error
	}{
		{
			name: "unanswered prompt",
			setup: func(_ *mocks.MockPipelineClient, confirmer *mocks.MockConfirmer, _ *mocks.MockNotifier) {
				confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, errClosed)
			},
			target: errClosed,
		},
		{
			name: "conversion failure",
			setup: func(client *mocks.MockPipelineClient, confirmer *mocks.MockConfirmer, notifier *mocks.MockNotifier) {
				confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(true, nil)
				client.EXPECT().Convert(mock.Anything, "/c").
					Return("", &domain.RemoteError{Message: "Project already exists.", Err: domain.ErrConflict})
				notifier.EXPECT().Error(mock.Anything, "Project already exists.").Return()
			},
			target: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockPipelineClient(t)
			confirmer := mocks.NewMockConfirmer(t)
			notifier := mocks.NewMockNotifier(t)
			tt.setup(client, confirmer, notifier)
			logger, logged := loggedErrors()

			o := pipeline.Opportunity{ID: 5, Stage: "Closed Won", ConversionEndpoint: "/c"}
			board.NewConversionPrompt(confirmer, client, notifier, logger).Offer(context.Background(), o, false, "Closed Won")
			requireLoggedError(t, logged(), tt.target)
		})
	}
}
