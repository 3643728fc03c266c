package form

import (
	"maps"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// Session tracks one form fill. Every change re-derives the required set
// from the full answer map, so a requirement never outlives the answer that
// triggered it. Not safe for concurrent use.
type Session struct {
	v           *Validator
	answers     map[string]string
	attachments map[string][]string
	required    RequiredSet
}

// NewSession starts an empty fill of the validator's schema.
func (v *Validator) NewSession() *Session {
	s := &Session{
		v:           v,
		answers:     make(map[string]string),
		attachments: make(map[string][]string),
	}
	s.recompute()
	return s
}

// SetAnswer records an answer and returns the new required set.
func (s *Session) SetAnswer(fieldID, value string) RequiredSet {
	if value == "" {
		delete(s.answers, fieldID)
	} else {
		s.answers[fieldID] = value
	}
	s.recompute()
	return s.required
}

// Attach appends media references to an attachment field.
func (s *Session) Attach(fieldID string, refs ...string) {
	s.attachments[fieldID] = append(s.attachments[fieldID], refs...)
	s.recompute()
}

// Detach removes every reference from an attachment field.
func (s *Session) Detach(fieldID string) {
	delete(s.attachments, fieldID)
	s.recompute()
}

// Required returns the current required set.
func (s *Session) Required() RequiredSet {
	return s.required
}

// IsRequired reports whether fieldID is currently required.
func (s *Session) IsRequired(fieldID string) bool {
	return s.required.Has(fieldID)
}

// CanSubmit returns nil when the fill would pass validation, otherwise the
// *domain.ValidationError that blocks submission.
func (s *Session) CanSubmit() error {
	fields := make(map[string]string)
	s.v.check(s.answers, s.attachments, fields)
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Submission snapshots the fill as a submission of the session's schema.
func (s *Session) Submission() Submission {
	attachments := make(map[string][]string, len(s.attachments))
	for k, v := range s.attachments {
		attachments[k] = clone(v)
	}
	return Submission{
		SchemaID:      s.v.schema.ID,
		SchemaVersion: s.v.schema.Version,
		Answers:       maps.Clone(s.answers),
		Attachments:   attachments,
	}
}

func (s *Session) recompute() {
	s.required = s.v.Required(s.answers)
}
