// Package aggregate maintains per-stage counts and monetary totals across
// every surface that displays them. Each surface owns a Replica; Counter
// applies every adjustment to all replicas so they never diverge.
package aggregate

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// StageAggregate is the derived count and total of one stage.
type StageAggregate struct {
	Count    int
	Total    decimal.Decimal
	Currency string
}

// Replica is one display surface's copy of the stage aggregates (board
// column headers, summary panel).
type Replica struct {
	name   string
	stages map[string]*StageAggregate
}

// Name returns the replica's identifier.
func (r *Replica) Name() string {
	return r.name
}

func (r *Replica) stage(name string) *StageAggregate {
	agg, ok := r.stages[name]
	if !ok {
		agg = &StageAggregate{Total: decimal.Zero}
		r.stages[name] = agg
	}
	return agg
}

// Counter owns the replicas and mutates them in lockstep. Safe for
// concurrent use.
type Counter struct {
	mu       sync.RWMutex
	replicas []*Replica
}

// NewCounter creates a counter with the named replicas registered.
func NewCounter(replicas ...string) *Counter {
	c := &Counter{}
	for _, name := range replicas {
		c.Register(name)
	}
	return c
}

// Register adds a replica. A replica registered after adjustments have been
// applied starts as a copy of the first existing replica. Registering an
// existing name returns the existing replica.
func (c *Counter) Register(name string) *Replica {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.replicas {
		if r.name == name {
			return r
		}
	}

	r := &Replica{name: name, stages: make(map[string]*StageAggregate)}
	if len(c.replicas) > 0 {
		for stage, agg := range c.replicas[0].stages {
			cp := *agg
			r.stages[stage] = &cp
		}
	}
	c.replicas = append(c.replicas, r)
	return r
}

// AdjustCount applies delta to the stage count on every replica. The result
// is clamped at zero.
func (c *Counter) AdjustCount(stage string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.replicas {
		agg := r.stage(stage)
		agg.Count = max(agg.Count+delta, 0)
	}
}

// AdjustTotal applies delta to the stage total on every replica, clamped at
// zero. A replica with no currency yet, or whose running total is exactly
// zero, adopts currencyHint; otherwise the recorded currency is kept. An
// empty hint never replaces a recorded currency.
func (c *Counter) AdjustTotal(stage string, delta decimal.Decimal, currencyHint string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.replicas {
		agg := r.stage(stage)
		if currencyHint != "" && (agg.Currency == "" || agg.Total.IsZero()) {
			agg.Currency = currencyHint
		}
		total := agg.Total.Add(delta)
		if total.IsNegative() {
			total = decimal.Zero
		}
		agg.Total = total
	}
}

// Add credits one entity to stage. Used when seeding from page state.
func (c *Counter) Add(stage string, amount decimal.Decimal, currency string) {
	c.AdjustCount(stage, 1)
	c.AdjustTotal(stage, amount, currency)
}

// Transfer records a confirmed move of one entity: the source stage is
// debited and the destination credited with the entity's amount.
func (c *Counter) Transfer(from, to string, amount decimal.Decimal, currency string) {
	c.AdjustCount(from, -1)
	c.AdjustTotal(from, amount.Neg(), currency)
	c.AdjustCount(to, 1)
	c.AdjustTotal(to, amount, currency)
}

// Get returns the aggregate of stage on the named replica. The second
// result is false when the replica is unknown.
func (c *Counter) Get(replica, stage string) (StageAggregate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.replicas {
		if r.name != replica {
			continue
		}
		if agg, ok := r.stages[stage]; ok {
			return *agg, true
		}
		return StageAggregate{Total: decimal.Zero}, true
	}
	return StageAggregate{}, false
}

// Snapshot copies every stage aggregate of the named replica.
func (c *Counter) Snapshot(replica string) map[string]StageAggregate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.replicas {
		if r.name != replica {
			continue
		}
		out := make(map[string]StageAggregate, len(r.stages))
		for stage, agg := range r.stages {
			out[stage] = *agg
		}
		return out
	}
	return nil
}

// Replicas returns the registered replica names, sorted.
func (c *Counter) Replicas() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.replicas))
	for _, r := range c.replicas {
		names = append(names, r.name)
	}
	sort.Strings(names)
	return names
}
