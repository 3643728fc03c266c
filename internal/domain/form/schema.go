// Package form interprets checklist and form schemas: normalizing authored
// schemas, projecting them into input descriptors, and validating
// submissions against the conditional requirement rule table.
package form

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// FieldType selects the input a field is rendered as.
type FieldType string

const (
	TypeText      FieldType = "text"
	TypeTextarea  FieldType = "textarea"
	TypeSelect    FieldType = "select"
	TypeChecklist FieldType = "checklist"
	TypePhoto     FieldType = "photo"
	TypeVideo     FieldType = "video"
	TypeTable     FieldType = "table"
)

// IsValid returns true if the type is one of the defined constants.
func (t FieldType) IsValid() bool {
	switch t {
	case TypeText, TypeTextarea, TypeSelect, TypeChecklist, TypePhoto, TypeVideo, TypeTable:
		return true
	default:
		return false
	}
}

// IsAttachment reports whether values of this type are media references
// rather than typed answers.
func (t FieldType) IsAttachment() bool {
	return t == TypePhoto || t == TypeVideo
}

// String implements fmt.Stringer.
func (t FieldType) String() string {
	return string(t)
}

// Requirement makes the owning field mandatory while the answer of DependsOn
// matches one of DisqualifyingValues. Matching ignores case and surrounding
// whitespace.
type Requirement struct {
	DependsOn           string
	DisqualifyingValues []string
}

// Matches reports whether answer is one of the disqualifying values.
func (r *Requirement) Matches(answer string) bool {
	answer = normalizeAnswer(answer)
	if answer == "" {
		return false
	}
	for _, v := range r.DisqualifyingValues {
		if normalizeAnswer(v) == answer {
			return true
		}
	}
	return false
}

// Field is a single schema entry.
type Field struct {
	ID       string
	Label    string
	Type     FieldType
	Options  []string
	Required bool

	// Table layout.
	Rows    []string
	Columns []string

	// Select extras: an attached photo and a free-text remark.
	AllowPhoto  bool
	AllowRemark bool

	// PhotoRequiredIfNG is the authoring shorthand that Normalize expands
	// into a companion photo field carrying a Requirement.
	PhotoRequiredIfNG bool

	Requirement *Requirement
}

// Section groups fields under a heading. Schemas without sections use a
// single untitled section.
type Section struct {
	Title  string
	Fields []Field
}

// EvidencePolicy holds schema-wide photo rules evaluated across all
// attachment fields.
type EvidencePolicy struct {
	// RequireOnAnyDisqualified demands at least one attachment when any
	// select answer is disqualifying.
	RequireOnAnyDisqualified bool

	// MinIfAllClear is the minimum number of attachments when no select
	// answer is disqualifying. Zero disables the rule.
	MinIfAllClear int

	// DisqualifyingValues are the answers that count as disqualifying for
	// the schema-wide rules.
	DisqualifyingValues []string
}

// Schema is an ordered checklist definition. A submission references one
// (ID, Version) pair.
type Schema struct {
	ID       string
	Version  int
	Name     string
	Stage    string
	Category string
	Sections []Section
	Evidence EvidencePolicy
}

// Fields returns every field in schema order, sections flattened.
func (s *Schema) Fields() []Field {
	var out []Field
	for _, sec := range s.Sections {
		out = append(out, sec.Fields...)
	}
	return out
}

// Field looks up a field by ID.
func (s *Schema) Field(id string) (Field, bool) {
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Validate checks that the schema is internally consistent: unique field
// IDs, known types, options for choice fields and requirements pointing at
// existing fields.
func (s *Schema) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if s.Version < 1 {
		fields["version"] = fmt.Sprintf("must be >= 1, got %d", s.Version)
	}

	all := s.Fields()
	ids := make(map[string]bool, len(all))
	for _, f := range all {
		key := "fields." + f.ID
		switch {
		case strings.TrimSpace(f.ID) == "":
			fields["fields"] = "every field needs an id"
		case ids[f.ID]:
			fields[key] = "duplicate field id"
		case !f.Type.IsValid():
			fields[key] = fmt.Sprintf("invalid type %q", f.Type)
		case (f.Type == TypeSelect || f.Type == TypeChecklist) && len(f.Options) == 0:
			fields[key] = "options must not be empty"
		}
		ids[f.ID] = true
	}

	for _, f := range all {
		if f.Requirement == nil {
			continue
		}
		key := "fields." + f.ID + ".requirement"
		switch {
		case f.Requirement.DependsOn == f.ID:
			fields[key] = "must not depend on itself"
		case !ids[f.Requirement.DependsOn]:
			fields[key] = fmt.Sprintf("unknown dependency %q", f.Requirement.DependsOn)
		case len(f.Requirement.DisqualifyingValues) == 0:
			fields[key] = "disqualifying values must not be empty"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Summary is the listing view of a schema.
type Summary struct {
	ID       string
	Version  int
	Name     string
	Stage    string
	Category string
}

// Summarize returns the listing view of s.
func (s *Schema) Summarize() Summary {
	return Summary{ID: s.ID, Version: s.Version, Name: s.Name, Stage: s.Stage, Category: s.Category}
}

// PhotoFieldID is the ID of the companion photo field synthesized for a
// select field authored with photo evidence.
func PhotoFieldID(fieldID string) string {
	return fieldID + ".photo"
}

// RemarkFieldID is the ID of the companion remark field of a select field.
func RemarkFieldID(fieldID string) string {
	return fieldID + ".remark"
}

// CellKey is the answer key of one table cell.
func CellKey(fieldID string, row, col int) string {
	return fmt.Sprintf("%s[%d][%d]", fieldID, row, col)
}

func normalizeAnswer(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func containsAnswer(values []string, answer string) bool {
	answer = normalizeAnswer(answer)
	return slices.ContainsFunc(values, func(v string) bool {
		return normalizeAnswer(v) == answer
	})
}
