package board

import "github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"

// ToDomainBoard converts a board payload to the domain board state.
func ToDomainBoard(dto *BoardDTO) pipeline.BoardState {
	state := pipeline.BoardState{
		Pipeline: pipeline.Pipeline{
			Key:    dto.Pipeline.Key,
			Label:  dto.Pipeline.Label,
			Stages: append([]string(nil), dto.Pipeline.Stages...),
		},
		Opportunities: make([]pipeline.Opportunity, len(dto.Opportunities)),
	}
	for i := range dto.Opportunities {
		state.Opportunities[i] = ToDomainOpportunity(&dto.Opportunities[i])
	}
	return state
}

// ToDomainOpportunity converts one opportunity payload. A collaborator that
// only reports hasLinkedRecord gets a placeholder reference so that the
// domain still sees the opportunity as linked.
func ToDomainOpportunity(dto *OpportunityDTO) pipeline.Opportunity {
	linked := dto.LinkedRecord
	if linked == "" && dto.HasLinkedRecord {
		linked = LinkedPlaceholder
	}
	return pipeline.Opportunity{
		ID:                 dto.ID,
		Title:              dto.Title,
		Pipeline:           dto.Pipeline,
		Stage:              dto.Stage,
		Amount:             dto.Amount,
		Currency:           dto.Currency,
		LinkedRecord:       linked,
		ConversionEndpoint: dto.ConversionEndpoint,
	}
}

// LinkedPlaceholder stands in for a linked record whose location the
// collaborator did not disclose.
const LinkedPlaceholder = "linked"

// ToStageChange converts a successful stage answer. The requested stage is
// used when the collaborator did not echo one.
func ToStageChange(dto *StageResponseDTO, requested string) pipeline.StageChange {
	stage := dto.Stage
	if stage == "" {
		stage = requested
	}
	return pipeline.StageChange{
		Stage:              stage,
		Pipeline:           dto.Pipeline,
		HasLinkedRecord:    dto.HasLinkedRecord,
		ConversionEndpoint: dto.ConversionEndpoint,
	}
}
