package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *PipelineClient) Name() string {
	return "pipeline-api"
}

// HealthCheck reports the collaborator's availability from the circuit
// breaker state; no network call is made.
//
// State mapping:
//   - "closed"    -- operating normally; returns nil.
//   - "half-open" -- the breaker is probing recovery; reports degraded.
//   - "open"      -- the breaker is rejecting requests; reports failing.
func (c *PipelineClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.Name())
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", c.Name())
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", c.Name(), state)
	}
}
