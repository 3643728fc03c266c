// Package seed loads authored form schemas and demo opportunities from YAML
// files and writes them to the store at start-up.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/form"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// schemaDoc is the authored YAML layout of a form schema.
type schemaDoc struct {
	ID       string       `yaml:"id"`
	Version  int          `yaml:"version"`
	Name     string       `yaml:"name"`
	Stage    string       `yaml:"stage"`
	Category string       `yaml:"category"`
	Evidence evidenceDoc  `yaml:"evidence"`
	Sections []sectionDoc `yaml:"sections"`
}

type evidenceDoc struct {
	RequireOnAnyDisqualified bool     `yaml:"require_on_any_disqualified"`
	MinPhotosIfAllGood       int      `yaml:"min_photos_if_all_good"`
	DisqualifyingValues      []string `yaml:"disqualifying_values"`
}

type sectionDoc struct {
	Title  string     `yaml:"title"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	ID                string          `yaml:"id"`
	Label             string          `yaml:"label"`
	Type              string          `yaml:"type"`
	Options           []string        `yaml:"options"`
	Required          bool            `yaml:"required"`
	Rows              []string        `yaml:"rows"`
	Columns           []string        `yaml:"columns"`
	AllowPhoto        bool            `yaml:"allow_photo"`
	AllowRemark       bool            `yaml:"allow_remark"`
	PhotoRequiredIfNG bool            `yaml:"photo_required_if_ng"`
	RequiredWhen      *requirementDoc `yaml:"required_when"`
}

type requirementDoc struct {
	DependsOn string   `yaml:"depends_on"`
	Values    []string `yaml:"values"`
}

type opportunitiesDoc struct {
	Opportunities []opportunityDoc `yaml:"opportunities"`
}

type opportunityDoc struct {
	ID       int64           `yaml:"id"`
	Title    string          `yaml:"title"`
	Pipeline string          `yaml:"pipeline"`
	Stage    string          `yaml:"stage"`
	Amount   decimal.Decimal `yaml:"amount"`
	Currency string          `yaml:"currency"`
}

func (d schemaDoc) toDomain() form.Schema {
	s := form.Schema{
		ID:       d.ID,
		Version:  d.Version,
		Name:     d.Name,
		Stage:    d.Stage,
		Category: d.Category,
		Evidence: form.EvidencePolicy{
			RequireOnAnyDisqualified: d.Evidence.RequireOnAnyDisqualified,
			MinIfAllClear:            d.Evidence.MinPhotosIfAllGood,
			DisqualifyingValues:      d.Evidence.DisqualifyingValues,
		},
	}
	for _, sec := range d.Sections {
		out := form.Section{Title: sec.Title}
		for _, f := range sec.Fields {
			field := form.Field{
				ID:                f.ID,
				Label:             f.Label,
				Type:              form.FieldType(f.Type),
				Options:           f.Options,
				Required:          f.Required,
				Rows:              f.Rows,
				Columns:           f.Columns,
				AllowPhoto:        f.AllowPhoto,
				AllowRemark:       f.AllowRemark,
				PhotoRequiredIfNG: f.PhotoRequiredIfNG,
			}
			if f.RequiredWhen != nil {
				field.Requirement = &form.Requirement{
					DependsOn:           f.RequiredWhen.DependsOn,
					DisqualifyingValues: f.RequiredWhen.Values,
				}
			}
			out.Fields = append(out.Fields, field)
		}
		s.Sections = append(s.Sections, out)
	}
	return s
}

// decodeStrict decodes YAML rejecting unknown keys. An empty document
// leaves v untouched.
func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ParseSchema decodes one authored schema document, applies authoring
// defaults and validates the result.
func ParseSchema(data []byte) (form.Schema, error) {
	var doc schemaDoc
	if err := decodeStrict(data, &doc); err != nil {
		return form.Schema{}, fmt.Errorf("decoding schema: %w", err)
	}

	s := form.Normalize(doc.toDomain())
	if err := s.Validate(); err != nil {
		return form.Schema{}, fmt.Errorf("schema %q: %w", s.ID, err)
	}
	return s, nil
}

// LoadForms parses every *.yaml and *.yml file in dir, in file name order.
func LoadForms(dir string) ([]form.Schema, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)

	schemas := make([]form.Schema, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		s, err := ParseSchema(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// ParseOpportunities decodes an opportunities document and checks every
// entry against the catalog: the pipeline must exist and the stage must be
// one of its stages. An empty stage takes the pipeline's first stage.
func ParseOpportunities(data []byte, catalog *pipeline.Catalog) ([]pipeline.Opportunity, error) {
	var doc opportunitiesDoc
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding opportunities: %w", err)
	}

	out := make([]pipeline.Opportunity, 0, len(doc.Opportunities))
	var errs []error
	for i, d := range doc.Opportunities {
		p, err := catalog.Get(d.Pipeline)
		if err != nil {
			errs = append(errs, fmt.Errorf("opportunities[%d]: %w", i, err))
			continue
		}
		stage := d.Stage
		if stage == "" {
			stage = p.DefaultStage()
		}
		if !p.HasStage(stage) {
			errs = append(errs, fmt.Errorf("opportunities[%d]: stage %q not in pipeline %q: %w",
				i, stage, p.Key, domain.ErrValidation))
			continue
		}
		opp := pipeline.Opportunity{
			ID:       d.ID,
			Title:    d.Title,
			Pipeline: p.Key,
			Stage:    stage,
			Amount:   d.Amount,
			Currency: d.Currency,
		}
		if err := opp.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("opportunities[%d]: %w", i, err))
			continue
		}
		out = append(out, opp)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// Result counts what a seeding run wrote.
type Result struct {
	Forms         int
	Opportunities int
}

// Seeder writes seed files to the repositories.
type Seeder struct {
	forms   ports.FormRepository
	opps    ports.OpportunityRepository
	catalog *pipeline.Catalog
	logger  *slog.Logger
}

// New creates a Seeder.
func New(forms ports.FormRepository, opps ports.OpportunityRepository, catalog *pipeline.Catalog, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Seeder{forms: forms, opps: opps, catalog: catalog, logger: logger}
}

// Run stores every schema under formsDir and every opportunity listed in
// opportunitiesPath. Empty arguments skip the step. Schemas already stored
// with identical content are left alone; opportunities whose ID already
// exists are not overwritten so that stage moves survive a restart.
func (s *Seeder) Run(ctx context.Context, formsDir, opportunitiesPath string) (Result, error) {
	var res Result

	if formsDir != "" {
		schemas, err := LoadForms(formsDir)
		if err != nil {
			return res, fmt.Errorf("loading forms: %w", err)
		}
		for i := range schemas {
			if err := s.forms.Save(ctx, &schemas[i]); err != nil {
				return res, fmt.Errorf("seeding form %s: %w", schemas[i].ID, err)
			}
			res.Forms++
		}
	}

	if opportunitiesPath != "" {
		data, err := os.ReadFile(opportunitiesPath)
		if err != nil {
			return res, fmt.Errorf("reading %s: %w", opportunitiesPath, err)
		}
		opps, err := ParseOpportunities(data, s.catalog)
		if err != nil {
			return res, fmt.Errorf("loading opportunities: %w", err)
		}
		for i := range opps {
			written, err := s.seedOpportunity(ctx, &opps[i])
			if err != nil {
				return res, err
			}
			if written {
				res.Opportunities++
			}
		}
	}

	s.logger.InfoContext(ctx, "seed data loaded",
		slog.Int("forms", res.Forms),
		slog.Int("opportunities", res.Opportunities),
	)
	return res, nil
}

func (s *Seeder) seedOpportunity(ctx context.Context, opp *pipeline.Opportunity) (bool, error) {
	if opp.ID != 0 {
		_, err := s.opps.Get(ctx, opp.ID)
		switch {
		case err == nil:
			return false, nil
		case !errors.Is(err, domain.ErrNotFound):
			return false, fmt.Errorf("checking opportunity %d: %w", opp.ID, err)
		}
	}
	if _, err := s.opps.Save(ctx, opp); err != nil {
		return false, fmt.Errorf("seeding opportunity %q: %w", opp.Title, err)
	}
	return true, nil
}
