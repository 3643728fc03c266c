package form

import (
	"fmt"
	"strings"
)

// Defaults applied by Normalize.
var (
	DefaultSelectOptions       = []string{"Good", "NG"}
	DefaultTableRows           = []string{"Row 1", "Row 2"}
	DefaultTableColumns        = []string{"Column 1", "Column 2"}
	DefaultDisqualifyingValues = []string{"NG"}
)

// Normalize returns a copy of s with authoring defaults applied:
//
//   - missing IDs and labels are generated from the field position;
//   - unknown or empty types become select;
//   - select and checklist fields without options get Good/NG;
//   - tables without rows or columns get two of each;
//   - a select field with AllowPhoto or PhotoRequiredIfNG gains a companion
//     photo field, required while the answer is disqualifying when
//     PhotoRequiredIfNG is set;
//   - a select field with AllowRemark gains a companion textarea.
//
// Normalize is idempotent.
func Normalize(s Schema) Schema {
	out := s
	if out.Version < 1 {
		out.Version = 1
	}
	out.Evidence.DisqualifyingValues = cleanList(s.Evidence.DisqualifyingValues)
	if len(out.Evidence.DisqualifyingValues) == 0 {
		out.Evidence.DisqualifyingValues = clone(DefaultDisqualifyingValues)
	}
	if out.Evidence.MinIfAllClear < 0 {
		out.Evidence.MinIfAllClear = 0
	}

	existing := make(map[string]bool)
	for _, f := range s.Fields() {
		if f.ID != "" {
			existing[f.ID] = true
		}
	}

	out.Sections = make([]Section, 0, len(s.Sections))
	for si, sec := range s.Sections {
		ns := Section{Title: strings.TrimSpace(sec.Title)}
		for fi, f := range sec.Fields {
			f = normalizeField(f, si, fi)
			ns.Fields = append(ns.Fields, f)
			ns.Fields = append(ns.Fields, companions(f, out.Evidence.DisqualifyingValues, existing)...)
		}
		out.Sections = append(out.Sections, ns)
	}

	return out
}

func normalizeField(f Field, section, index int) Field {
	f.ID = strings.TrimSpace(f.ID)
	if f.ID == "" {
		f.ID = fmt.Sprintf("s%d.f%d", section+1, index+1)
	}
	f.Label = strings.TrimSpace(f.Label)
	if f.Label == "" {
		f.Label = fmt.Sprintf("Item %d", index+1)
	}

	f.Type = FieldType(strings.ToLower(strings.TrimSpace(string(f.Type))))
	if !f.Type.IsValid() {
		f.Type = TypeSelect
	}

	f.Options = cleanList(f.Options)
	f.Rows = cleanList(f.Rows)
	f.Columns = cleanList(f.Columns)

	switch f.Type {
	case TypeSelect, TypeChecklist:
		if len(f.Options) == 0 {
			f.Options = clone(DefaultSelectOptions)
		}
	case TypeTable:
		if len(f.Rows) == 0 {
			f.Rows = clone(DefaultTableRows)
		}
		if len(f.Columns) == 0 {
			f.Columns = clone(DefaultTableColumns)
		}
	}

	if f.Type == TypeSelect {
		f.AllowPhoto = f.AllowPhoto || f.PhotoRequiredIfNG
	} else {
		f.AllowPhoto = false
		f.AllowRemark = false
		f.PhotoRequiredIfNG = false
	}

	if f.Requirement != nil {
		req := Requirement{
			DependsOn:           strings.TrimSpace(f.Requirement.DependsOn),
			DisqualifyingValues: cleanList(f.Requirement.DisqualifyingValues),
		}
		f.Requirement = &req
	}

	return f
}

// companions returns the synthesized fields that follow a select field.
// Fields already present in the authored schema are not duplicated.
func companions(f Field, disqualifying []string, existing map[string]bool) []Field {
	if f.Type != TypeSelect {
		return nil
	}

	var out []Field
	if f.AllowPhoto && !existing[PhotoFieldID(f.ID)] {
		photo := Field{
			ID:    PhotoFieldID(f.ID),
			Label: f.Label + " photo",
			Type:  TypePhoto,
		}
		if f.PhotoRequiredIfNG {
			photo.Requirement = &Requirement{
				DependsOn:           f.ID,
				DisqualifyingValues: clone(disqualifying),
			}
		}
		out = append(out, photo)
	}
	if f.AllowRemark && !existing[RemarkFieldID(f.ID)] {
		out = append(out, Field{
			ID:    RemarkFieldID(f.ID),
			Label: f.Label + " remark",
			Type:  TypeTextarea,
		})
	}
	return out
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func clone(values []string) []string {
	return append([]string(nil), values...)
}
