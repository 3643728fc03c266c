package form

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// Field messages.
const (
	msgInvalidSelection = "has an invalid selection"
	msgEveryCell        = "requires a value in every cell"
	msgUnsupportedFile  = "has an unsupported file type"
	msgSchemaMismatch   = "does not match the validating schema"
)

// EvidenceKey is the ValidationError field used for schema-wide evidence
// rules.
const EvidenceKey = "attachments"

// Submission is one filled-in form.
type Submission struct {
	ID            string
	SchemaID      string
	SchemaVersion int
	Answers       map[string]string
	Attachments   map[string][]string
	CreatedAt     time.Time
}

// Rule is one row of the conditional requirement table: Field is required
// while the answer of DependsOn is disqualifying.
type Rule struct {
	Field       string
	DependsOn   string
	Requirement Requirement
}

// RequiredSet is the set of fields currently required, in schema order.
type RequiredSet struct {
	ids     []string
	members map[string]bool
}

// Has reports whether id is required.
func (r RequiredSet) Has(id string) bool {
	return r.members[id]
}

// IDs returns the required field IDs in schema order.
func (r RequiredSet) IDs() []string {
	return clone(r.ids)
}

// Len returns the number of required fields.
func (r RequiredSet) Len() int {
	return len(r.ids)
}

// Validator evaluates a schema's requirement table. It holds no answer
// state; every evaluation starts from scratch.
type Validator struct {
	schema Schema
	fields []Field
	byID   map[string]Field
	rules  []Rule
}

// NewValidator compiles the rule table of s.
func NewValidator(s Schema) *Validator {
	v := &Validator{
		schema: s,
		fields: s.Fields(),
		byID:   make(map[string]Field),
	}
	for _, f := range v.fields {
		v.byID[f.ID] = f
		if f.Requirement != nil {
			v.rules = append(v.rules, Rule{
				Field:       f.ID,
				DependsOn:   f.Requirement.DependsOn,
				Requirement: *f.Requirement,
			})
		}
	}
	return v
}

// Schema returns the schema the validator was compiled from.
func (v *Validator) Schema() Schema {
	return v.schema
}

// Rules returns the compiled requirement table.
func (v *Validator) Rules() []Rule {
	return append([]Rule(nil), v.rules...)
}

// Required derives the required set for answers: statically required
// fields plus every rule whose dependency answer is disqualifying.
func (v *Validator) Required(answers map[string]string) RequiredSet {
	active := make(map[string]bool, len(v.rules))
	for _, r := range v.rules {
		if r.Requirement.Matches(answers[r.DependsOn]) {
			active[r.Field] = true
		}
	}

	set := RequiredSet{members: make(map[string]bool)}
	for _, f := range v.fields {
		if f.Required || active[f.ID] {
			set.ids = append(set.ids, f.ID)
			set.members[f.ID] = true
		}
	}
	return set
}

// Validate checks sub against the schema. Returns a *domain.ValidationError
// listing every failing field, or nil.
func (v *Validator) Validate(sub Submission) error {
	fields := make(map[string]string)

	if sub.SchemaID != v.schema.ID || sub.SchemaVersion != v.schema.Version {
		fields["schema_version"] = msgSchemaMismatch
	}

	v.check(sub.Answers, sub.Attachments, fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (v *Validator) check(answers map[string]string, attachments map[string][]string, out map[string]string) {
	required := v.Required(answers)

	for _, f := range v.fields {
		switch {
		case f.Type == TypeTable:
			if required.Has(f.ID) && !tableComplete(f, answers) {
				out[f.ID] = msgEveryCell
			}

		case f.Type.IsAttachment():
			refs := nonEmpty(attachments[f.ID])
			if len(refs) == 0 {
				if required.Has(f.ID) {
					out[f.ID] = v.missingMessage(f, answers)
				}
				continue
			}
			if !allowedFiles(f.Type, refs) {
				out[f.ID] = msgUnsupportedFile
			}

		default:
			answer := strings.TrimSpace(answers[f.ID])
			if answer == "" {
				if required.Has(f.ID) {
					out[f.ID] = v.missingMessage(f, answers)
				}
				continue
			}
			if !validChoice(f, answer) {
				out[f.ID] = msgInvalidSelection
			}
		}
	}

	if msg := v.checkEvidence(answers, attachments); msg != "" {
		out[EvidenceKey] = msg
	}
}

// missingMessage explains why an empty field is required.
func (v *Validator) missingMessage(f Field, answers map[string]string) string {
	if f.Required || f.Requirement == nil {
		return domain.MsgRequired
	}
	dep, ok := v.byID[f.Requirement.DependsOn]
	if !ok {
		return domain.MsgRequired
	}
	return fmt.Sprintf("is required when %q is %q", dep.Label, strings.TrimSpace(answers[dep.ID]))
}

func (v *Validator) checkEvidence(answers map[string]string, attachments map[string][]string) string {
	policy := v.schema.Evidence
	if !policy.RequireOnAnyDisqualified && policy.MinIfAllClear == 0 {
		return ""
	}

	disqualified := false
	for _, f := range v.fields {
		if f.Type == TypeSelect && containsAnswer(policy.DisqualifyingValues, answers[f.ID]) &&
			strings.TrimSpace(answers[f.ID]) != "" {
			disqualified = true
			break
		}
	}

	total := 0
	for _, f := range v.fields {
		if f.Type == TypePhoto {
			total += len(nonEmpty(attachments[f.ID]))
		}
	}

	switch {
	case disqualified && policy.RequireOnAnyDisqualified && total == 0:
		marker := "disqualified"
		if len(policy.DisqualifyingValues) > 0 {
			marker = "marked " + policy.DisqualifyingValues[0]
		}
		return "at least one photo is required when any item is " + marker
	case !disqualified && total < policy.MinIfAllClear:
		return fmt.Sprintf("at least %d photos are required", policy.MinIfAllClear)
	default:
		return ""
	}
}

func validChoice(f Field, answer string) bool {
	switch f.Type {
	case TypeSelect:
		return containsAnswer(f.Options, answer)
	case TypeChecklist:
		for _, item := range strings.Split(answer, ",") {
			if item = strings.TrimSpace(item); item != "" && !containsAnswer(f.Options, item) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func tableComplete(f Field, answers map[string]string) bool {
	for r := range f.Rows {
		for c := range f.Columns {
			if strings.TrimSpace(answers[CellKey(f.ID, r, c)]) == "" {
				return false
			}
		}
	}
	return true
}

func allowedFiles(t FieldType, refs []string) bool {
	allowed := PhotoExtensions
	if t == TypeVideo {
		allowed = VideoExtensions
	}
	for _, ref := range refs {
		ext := strings.TrimPrefix(strings.ToLower(path.Ext(ref)), ".")
		if !containsAnswer(allowed, ext) {
			return false
		}
	}
	return true
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
