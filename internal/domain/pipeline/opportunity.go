package pipeline

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// wonPhrase marks a terminal stage eligible for conversion.
const wonPhrase = "closed won"

// Opportunity is the entity moved across a pipeline board.
type Opportunity struct {
	ID       int64
	Title    string
	Pipeline string
	Stage    string
	Amount   decimal.Decimal
	Currency string

	// LinkedRecord references the downstream record created on conversion.
	// Empty until the opportunity has been converted.
	LinkedRecord string

	// ConversionEndpoint is the reference supplied by the collaborator for
	// converting this opportunity. Only meaningful while unlinked and in a
	// won stage.
	ConversionEndpoint string
}

// HasLinkedRecord reports whether a downstream record already exists.
func (o *Opportunity) HasLinkedRecord() bool {
	return o.LinkedRecord != ""
}

// ConversionPath returns the path that converts this opportunity, or ""
// when conversion is not applicable (already linked or not in a won stage).
func (o *Opportunity) ConversionPath() string {
	if o.HasLinkedRecord() || !IsWonStage(o.Stage) {
		return ""
	}
	return fmt.Sprintf("/sales/opportunities/%d/convert", o.ID)
}

// Validate checks business rules for the Opportunity entity.
func (o *Opportunity) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(o.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(o.Pipeline) == "" {
		fields["pipeline"] = domain.MsgRequired
	}
	if strings.TrimSpace(o.Stage) == "" {
		fields["stage"] = domain.MsgRequired
	}
	if o.Amount.IsNegative() {
		fields["amount"] = fmt.Sprintf("must not be negative, got %s", o.Amount.String())
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsWonStage reports whether stage names a successfully closed deal: the
// name contains "closed won", ignoring case.
func IsWonStage(stage string) bool {
	return strings.Contains(strings.ToLower(stage), wonPhrase)
}

// IsClosed reports whether stage is terminal (won or lost).
func IsClosed(stage string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(stage)), "closed")
}

// BoardState is the initial page state of a board: the pipeline definition
// and every opportunity currently in it.
type BoardState struct {
	Pipeline      Pipeline
	Opportunities []Opportunity
}

// StageChange is the collaborator's confirmation of a stage move. Optional
// fields are nil when the collaborator did not report them.
type StageChange struct {
	Stage              string
	Pipeline           string
	HasLinkedRecord    *bool
	ConversionEndpoint *string
}
