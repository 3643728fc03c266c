package aggregate

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
)

const (
	replicaBoard   = "board"
	replicaSummary = "summary"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCounter_AdjustCountAppliesToEveryReplica(t *testing.T) {
	t.Parallel()

	c := NewCounter(replicaBoard, replicaSummary)
	c.AdjustCount("Proposal", 2)
	c.AdjustCount("Proposal", -1)

	for _, replica := range c.Replicas() {
		got, ok := c.Get(replica, "Proposal")
		if !ok {
			t.Fatalf("Get(%q) replica not found", replica)
		}
		if got.Count != 1 {
			t.Errorf("%s Count = %d, want 1", replica, got.Count)
		}
	}
}

func TestCounter_ClampsAtZero(t *testing.T) {
	t.Parallel()

	c := NewCounter(replicaBoard)
	c.Add("Proposal", dec("100"), "$")

	c.AdjustCount("Proposal", -5)
	c.AdjustTotal("Proposal", dec("-250.50"), "$")

	got, _ := c.Get(replicaBoard, "Proposal")
	if got.Count != 0 {
		t.Errorf("Count = %d, want 0 (clamped)", got.Count)
	}
	if !got.Total.IsZero() {
		t.Errorf("Total = %s, want 0 (clamped)", got.Total)
	}
}

func TestCounter_NeverNegativeForAnyOrdering(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	c := NewCounter(replicaBoard, replicaSummary)

	for range 500 {
		delta := rng.IntN(7) - 3
		c.AdjustCount("Qualification", delta)
		c.AdjustTotal("Qualification", decimal.NewFromInt(int64(delta*100)), "$")

		for _, replica := range c.Replicas() {
			got, _ := c.Get(replica, "Qualification")
			if got.Count < 0 || got.Total.IsNegative() {
				t.Fatalf("%s went negative: %+v", replica, got)
			}
		}
	}
}

func TestCounter_CurrencyResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		apply func(c *Counter)
		want  string
	}{
		{
			name:  "first hint adopted",
			apply: func(c *Counter) { c.AdjustTotal("S", dec("10"), "$") },
			want:  "$",
		},
		{
			name: "non-zero total keeps first currency",
			apply: func(c *Counter) {
				c.AdjustTotal("S", dec("10"), "$")
				c.AdjustTotal("S", dec("5"), "€")
			},
			want: "$",
		},
		{
			name: "zero total adopts new hint",
			apply: func(c *Counter) {
				c.AdjustTotal("S", dec("10"), "$")
				c.AdjustTotal("S", dec("-10"), "$")
				c.AdjustTotal("S", dec("5"), "€")
			},
			want: "€",
		},
		{
			name: "empty hint never overwrites",
			apply: func(c *Counter) {
				c.AdjustTotal("S", dec("0"), "$")
				c.AdjustTotal("S", dec("3"), "")
			},
			want: "$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCounter(replicaBoard, replicaSummary)
			tt.apply(c)

			for _, replica := range c.Replicas() {
				got, _ := c.Get(replica, "S")
				if got.Currency != tt.want {
					t.Errorf("%s Currency = %q, want %q", replica, got.Currency, tt.want)
				}
			}
		})
	}
}

func TestCounter_TransferKeepsSumOfCounts(t *testing.T) {
	t.Parallel()

	stages := []string{"Prospecting", "Qualification", "Proposal", "Closed Won"}
	c := NewCounter(replicaBoard, replicaSummary)

	located := make([]string, 20)
	for i := range located {
		located[i] = stages[i%len(stages)]
		c.Add(located[i], decimal.NewFromInt(int64(i*10)), "$")
	}

	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		i := rng.IntN(len(located))
		to := stages[rng.IntN(len(stages))]
		if to == located[i] {
			continue
		}
		c.Transfer(located[i], to, decimal.NewFromInt(int64(i*10)), "$")
		located[i] = to
	}

	for _, replica := range c.Replicas() {
		sum := 0
		for _, agg := range c.Snapshot(replica) {
			sum += agg.Count
		}
		if sum != len(located) {
			t.Errorf("%s sum of counts = %d, want %d", replica, sum, len(located))
		}
	}
}

func TestCounter_TransferScenario(t *testing.T) {
	t.Parallel()

	c := NewCounter(replicaBoard, replicaSummary)
	c.Add("Qualification", dec("500"), "$")
	c.Add("Qualification", dec("200"), "$")

	c.Transfer("Qualification", "Proposal", dec("500"), "$")

	for _, replica := range c.Replicas() {
		q, _ := c.Get(replica, "Qualification")
		p, _ := c.Get(replica, "Proposal")
		if q.Count != 1 || !q.Total.Equal(dec("200")) {
			t.Errorf("%s Qualification = %d/%s, want 1/200", replica, q.Count, q.Total)
		}
		if p.Count != 1 || !p.Total.Equal(dec("500")) || p.Currency != "$" {
			t.Errorf("%s Proposal = %d/%s/%s, want 1/500/$", replica, p.Count, p.Total, p.Currency)
		}
	}
}

func TestCounter_RegisterLateCopiesState(t *testing.T) {
	t.Parallel()

	c := NewCounter(replicaBoard)
	c.Add("Proposal", dec("42"), "$")

	c.Register(replicaSummary)

	got, ok := c.Get(replicaSummary, "Proposal")
	if !ok || got.Count != 1 || !got.Total.Equal(dec("42")) {
		t.Errorf("late replica = %+v (ok=%v), want copy of board replica", got, ok)
	}

	if same := c.Register(replicaSummary); same.Name() != replicaSummary {
		t.Errorf("Register(existing).Name() = %q", same.Name())
	}
	if n := len(c.Replicas()); n != 2 {
		t.Errorf("len(Replicas()) = %d, want 2", n)
	}
}

func TestCounter_GetUnknownReplica(t *testing.T) {
	t.Parallel()

	c := NewCounter(replicaBoard)
	if _, ok := c.Get("sidebar", "Proposal"); ok {
		t.Error("Get(unknown replica) ok = true, want false")
	}
	if snap := c.Snapshot("sidebar"); snap != nil {
		t.Errorf("Snapshot(unknown replica) = %v, want nil", snap)
	}
}
