package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded by the server, the outbound client
// and the application services.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// StageTransitionTotal counts board moves by result.
	StageTransitionTotal metric.Int64Counter
	// FormValidationTotal counts submission validations by form and result.
	FormValidationTotal metric.Int64Counter
}

type histogramSpec struct {
	name, description string
	dst               *metric.Float64Histogram
}

type counterSpec struct {
	name, description, unit string
	dst                     *metric.Int64Counter
}

// NewMetrics creates every instrument on a meter named name.
func NewMetrics(mp metric.MeterProvider, name string) (*Metrics, error) {
	meter := mp.Meter(name)
	m := &Metrics{}

	for _, h := range []histogramSpec{
		{"http.server.request.duration", "Duration of incoming HTTP requests", &m.ServerRequestDuration},
		{"http.client.request.duration", "Duration of outgoing HTTP requests", &m.ClientRequestDuration},
	} {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.description), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	for _, c := range []counterSpec{
		{"http.server.request.total", "Total number of incoming HTTP requests", "{request}", &m.ServerRequestTotal},
		{"http.client.request.total", "Total number of outgoing HTTP requests", "{request}", &m.ClientRequestTotal},
		{"board.stage_transition.total", "Stage transitions requested from a board", "{transition}", &m.StageTransitionTotal},
		{"form.validation.total", "Form submissions validated", "{submission}", &m.FormValidationTotal},
	} {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.description), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return m, nil
}

// RecordTransition counts one stage transition with the given result.
func (m *Metrics) RecordTransition(ctx context.Context, result string) {
	if m == nil || m.StageTransitionTotal == nil {
		return
	}
	m.StageTransitionTotal.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

// RecordValidation counts one validation of a submission to formID.
func (m *Metrics) RecordValidation(ctx context.Context, formID, result string) {
	if m == nil || m.FormValidationTotal == nil {
		return
	}
	m.FormValidationTotal.Add(ctx, 1, metric.WithAttributes(
		AttrForm.String(formID),
		AttrResult.String(result),
	))
}
