package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/form"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// Compile-time check that FormService implements ports.FormService.
var _ ports.FormService = (*FormService)(nil)

// FormService implements ports.FormService. Submissions are validated
// against the schema version they reference, never a newer one.
type FormService struct {
	forms       ports.FormRepository
	submissions ports.SubmissionRepository
	metrics     *telemetry.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// NewFormService creates a FormService. metrics may be nil.
func NewFormService(
	forms ports.FormRepository,
	submissions ports.SubmissionRepository,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *FormService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FormService{
		forms:       forms,
		submissions: submissions,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// ListForms returns summaries of the latest version of every schema.
func (s *FormService) ListForms(ctx context.Context) ([]form.Summary, error) {
	s.logger.InfoContext(ctx, "listing forms")

	schemas, err := s.forms.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list forms",
			slog.String("operation", "ListForms"),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := make([]form.Summary, 0, len(schemas))
	for i := range schemas {
		out = append(out, schemas[i].Summarize())
	}
	return out, nil
}

// GetForm returns a schema version; 0 selects the latest.
func (s *FormService) GetForm(ctx context.Context, id string, version int) (*form.Schema, error) {
	s.logger.InfoContext(ctx, "fetching form", slog.String("id", id), slog.Int("version", version))

	schema, err := s.forms.Get(ctx, id, version)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch form",
			slog.String("operation", "GetForm"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return schema, nil
}

// Requirements evaluates the requirement table of a schema for answers.
func (s *FormService) Requirements(ctx context.Context, id string, version int, answers map[string]string) (form.RequiredSet, error) {
	schema, err := s.GetForm(ctx, id, version)
	if err != nil {
		return form.RequiredSet{}, err
	}
	return form.NewValidator(*schema).Required(answers), nil
}

// Submit validates sub against the schema version it names (0 meaning the
// latest), assigns it an ID and stores it.
func (s *FormService) Submit(ctx context.Context, sub *form.Submission) (*form.Submission, error) {
	if strings.TrimSpace(sub.SchemaID) == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"schema_id": domain.MsgRequired}}
	}
	s.logger.InfoContext(ctx, "submitting form",
		slog.String("form_id", sub.SchemaID),
		slog.Int("version", sub.SchemaVersion),
	)

	schema, err := s.forms.Get(ctx, sub.SchemaID, sub.SchemaVersion)
	if err != nil {
		return nil, err
	}
	if sub.SchemaVersion == 0 {
		sub.SchemaVersion = schema.Version
	}

	if err := form.NewValidator(*schema).Validate(*sub); err != nil {
		s.metrics.RecordValidation(ctx, sub.SchemaID, telemetry.ResultRejected)
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.logger.InfoContext(ctx, "submission rejected",
				slog.String("form_id", sub.SchemaID),
				slog.Int("failing_fields", len(verr.Fields)),
			)
		}
		return nil, err
	}

	sub.ID = uuid.NewString()
	sub.CreatedAt = s.now().UTC()

	if err := s.submissions.Create(ctx, sub); err != nil {
		s.metrics.RecordValidation(ctx, sub.SchemaID, telemetry.ResultFailure)
		s.logger.ErrorContext(ctx, "failed to store submission",
			slog.String("operation", "Submit"),
			slog.String("form_id", sub.SchemaID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.metrics.RecordValidation(ctx, sub.SchemaID, telemetry.ResultSuccess)
	return sub, nil
}
