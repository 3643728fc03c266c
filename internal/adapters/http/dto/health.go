package dto

// Health statuses reported by the probe endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of /health/live and /health/ready. Checks maps
// each dependency to "ok" or its failure message and is omitted on liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse summarizes checker results. ready is false as soon
// as one dependency failed.
func ToReadinessResponse(results map[string]error) (resp HealthResponse, ready bool) {
	resp = HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	ready = true
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = HealthOK
			continue
		}
		resp.Checks[name] = err.Error()
		ready = false
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
