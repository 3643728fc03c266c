package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestStageRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stage   string
		wantErr bool
	}{
		{name: "stage passes", stage: "Site Visit"},
		{name: "padded stage passes", stage: "  Site Visit "},
		{name: "empty stage fails", stage: "", wantErr: true},
		{name: "whitespace-only stage fails", stage: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := dto.StageRequest{Stage: tt.stage}
			err := req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, "stage")
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestRequirementsRequest_Validate(t *testing.T) {
	t.Parallel()

	ok := dto.RequirementsRequest{Answers: map[string]string{"door": "Not OK"}}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := dto.RequirementsRequest{Version: -1}
	requireValidationField(t, bad.Validate(), "version")
}

func TestSubmissionRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.SubmissionRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "latest version without attachments passes",
			req:  dto.SubmissionRequest{Answers: map[string]string{"door": "OK"}},
		},
		{
			name: "explicit version with attachments passes",
			req: dto.SubmissionRequest{
				Version:     2,
				Answers:     map[string]string{"door": "Not OK"},
				Attachments: map[string][]string{"door_photo": {"door.jpg"}},
			},
		},
		{
			name:      "negative version fails",
			req:       dto.SubmissionRequest{Version: -3},
			wantErr:   true,
			wantField: "version",
		},
		{
			name: "blank attachment reference fails",
			req: dto.SubmissionRequest{
				Attachments: map[string][]string{"door_photo": {"door.jpg", " "}},
			},
			wantErr:   true,
			wantField: "attachments.door_photo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestSubmissionRequest_ToSubmission(t *testing.T) {
	t.Parallel()

	req := dto.SubmissionRequest{Version: 2}
	got := req.ToSubmission("amc-visit")

	if got.SchemaID != "amc-visit" || got.SchemaVersion != 2 {
		t.Errorf("ToSubmission() = %s@v%d, want amc-visit@v2", got.SchemaID, got.SchemaVersion)
	}
	if got.Answers == nil {
		t.Error("Answers = nil, want empty map")
	}
}
