package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

func ptr[T any](v T) *T { return &v }

func TestToDomainBoard(t *testing.T) {
	t.Parallel()

	dto := &BoardDTO{
		Pipeline: PipelineDTO{Key: "lift", Label: "Lift", Stages: []string{"New Enquiry", "Closed Won"}},
		Opportunities: []OpportunityDTO{
			{ID: 1, Title: "Tower A", Pipeline: "lift", Stage: "New Enquiry", Amount: decimal.NewFromInt(500), Currency: "$"},
			{ID: 2, Title: "Tower B", Pipeline: "lift", Stage: "Closed Won", HasLinkedRecord: true},
			{ID: 3, Title: "Tower C", Pipeline: "lift", Stage: "Closed Won", LinkedRecord: "/projects/9", HasLinkedRecord: true},
		},
	}

	got := ToDomainBoard(dto)

	want := pipeline.BoardState{
		Pipeline: pipeline.Pipeline{Key: "lift", Label: "Lift", Stages: []string{"New Enquiry", "Closed Won"}},
		Opportunities: []pipeline.Opportunity{
			{ID: 1, Title: "Tower A", Pipeline: "lift", Stage: "New Enquiry", Amount: decimal.NewFromInt(500), Currency: "$"},
			{ID: 2, Title: "Tower B", Pipeline: "lift", Stage: "Closed Won", LinkedRecord: LinkedPlaceholder},
			{ID: 3, Title: "Tower C", Pipeline: "lift", Stage: "Closed Won", LinkedRecord: "/projects/9"},
		},
	}
	opt := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Errorf("ToDomainBoard() mismatch (-want +got):\n%s", diff)
	}
}

func TestToStageChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dto       StageResponseDTO
		requested string
		want      pipeline.StageChange
	}{
		{
			name:      "server stage wins",
			dto:       StageResponseDTO{Success: ptr(true), Stage: "Proposal", Pipeline: "sales"},
			requested: "proposal",
			want:      pipeline.StageChange{Stage: "Proposal", Pipeline: "sales"},
		},
		{
			name:      "falls back to requested stage",
			dto:       StageResponseDTO{Success: ptr(true)},
			requested: "Negotiation",
			want:      pipeline.StageChange{Stage: "Negotiation"},
		},
		{
			name: "optional fields are carried",
			dto: StageResponseDTO{
				Success: ptr(true), Stage: "Closed Won",
				HasLinkedRecord: ptr(false), ConversionEndpoint: ptr("/sales/opportunities/4/convert"),
			},
			requested: "Closed Won",
			want: pipeline.StageChange{
				Stage: "Closed Won", HasLinkedRecord: ptr(false),
				ConversionEndpoint: ptr("/sales/opportunities/4/convert"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, ToStageChange(&tt.dto, tt.requested)); diff != "" {
				t.Errorf("ToStageChange() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
