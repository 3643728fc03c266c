// Package pipeline holds the sales pipeline entities: pipeline definitions,
// their ordered stages and the opportunities moving between them.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// Pipeline is a named, ordered set of stages. Transitions between stages are
// unrestricted; the order only drives column layout.
type Pipeline struct {
	Key    string
	Label  string
	Stages []string
}

// HasStage reports whether stage is one of the pipeline's stages. The
// comparison is exact.
func (p *Pipeline) HasStage(stage string) bool {
	for _, s := range p.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// DefaultStage returns the first stage, used for opportunities created
// without one.
func (p *Pipeline) DefaultStage() string {
	if len(p.Stages) == 0 {
		return ""
	}
	return p.Stages[0]
}

// Validate checks that the definition is usable as a board.
func (p *Pipeline) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Key) == "" {
		fields["key"] = domain.MsgRequired
	}
	if len(p.Stages) == 0 {
		fields["stages"] = "must not be empty"
	}

	seen := make(map[string]bool, len(p.Stages))
	for i, s := range p.Stages {
		if strings.TrimSpace(s) == "" {
			fields[fmt.Sprintf("stages[%d]", i)] = domain.MsgRequired
			continue
		}
		if seen[s] {
			fields[fmt.Sprintf("stages[%d]", i)] = fmt.Sprintf("duplicate stage %q", s)
		}
		seen[s] = true
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Catalog indexes pipeline definitions by key.
type Catalog struct {
	byKey map[string]Pipeline
	keys  []string
}

// NewCatalog builds a catalog preserving the given order. Later definitions
// with a duplicate key replace earlier ones.
func NewCatalog(pipelines ...Pipeline) *Catalog {
	c := &Catalog{byKey: make(map[string]Pipeline, len(pipelines))}
	for _, p := range pipelines {
		if _, ok := c.byKey[p.Key]; !ok {
			c.keys = append(c.keys, p.Key)
		}
		c.byKey[p.Key] = p
	}
	return c
}

// Get returns the pipeline for key. Returns domain.ErrNotFound when unknown.
func (c *Catalog) Get(key string) (Pipeline, error) {
	p, ok := c.byKey[key]
	if !ok {
		return Pipeline{}, fmt.Errorf("pipeline %q: %w", key, domain.ErrNotFound)
	}
	return p, nil
}

// All returns every pipeline in registration order.
func (c *Catalog) All() []Pipeline {
	out := make([]Pipeline, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.byKey[k])
	}
	return out
}

// Resolve returns the pipeline for key, matched case-insensitively, falling
// back to the first registered pipeline when key is unknown. The second
// result is false only for an empty catalog.
func (c *Catalog) Resolve(key string) (Pipeline, bool) {
	if p, ok := c.byKey[key]; ok {
		return p, true
	}
	for _, k := range c.keys {
		if strings.EqualFold(k, strings.TrimSpace(key)) {
			return c.byKey[k], true
		}
	}
	if len(c.keys) == 0 {
		return Pipeline{}, false
	}
	return c.byKey[c.keys[0]], true
}
