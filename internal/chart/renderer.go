// Package chart renders the spike test charts. Each renderer is stateless,
// derives its own statistics from the document and writes exactly one PNG.
package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethpandaops/spike-report/internal/metrics"
	"github.com/ethpandaops/spike-report/internal/report"
)

var (
	// ErrNoData is returned when a renderer has nothing to draw.
	ErrNoData = errors.New("no data to render")
	// ErrUnknownChart is returned by Select for names not in Names().
	ErrUnknownChart = errors.New("unknown chart")
)

// Chart names accepted by Select.
const (
	NamePercentiles  = "percentiles"
	NameEndpoints    = "endpoints"
	NameErrors       = "errors"
	NameCapacity     = "capacity"
	NameDistribution = "distribution"
	NameCurve        = "curve"
)

// Output files, fixed by the report layout.
const (
	FilePercentiles  = "spike_response_times.png"
	FileEndpoints    = "complete_endpoint_performance_comparison.png"
	FileErrors       = "error_rate_analysis.png"
	FileCapacity     = "system_capacity_analysis.png"
	FileDistribution = "response_time_distribution_comparison.png"
	FileCurve        = "overall_percentile_graph.png"
)

// Renderer produces one chart file from a summary document.
type Renderer interface {
	Name() string
	Filename() string
	Description() string
	// Render writes the chart into dir and returns the written path. It
	// returns ErrNoData when the document holds nothing to draw.
	Render(doc *report.Document, dir string) (string, error)
}

// Options controls rasterisation and labelling.
type Options struct {
	DPI            int
	Scale          float64
	LabelThreshold float64
	EndpointPrefix string
}

// DefaultOptions matches the published report: 300 DPI, labels on
// endpoint bars above 100ms.
func DefaultOptions() Options {
	return Options{
		DPI:            300,
		Scale:          1,
		LabelThreshold: 100,
		EndpointPrefix: metrics.DefaultEndpointPrefix,
	}
}

type base struct {
	name        string
	file        string
	description string
	opts        Options
}

func (b base) Name() string        { return b.name }
func (b base) Filename() string    { return b.file }
func (b base) Description() string { return b.description }

func (b base) performance(doc *report.Document) (*metrics.Performance, error) {
	perf := metrics.ExtractWithPrefix(doc, b.opts.EndpointPrefix)
	if perf == nil {
		return nil, ErrNoData
	}

	return perf, nil
}

// All returns every renderer in report order.
func All(opts Options) []Renderer {
	return []Renderer{
		NewPercentiles(opts),
		NewEndpoints(opts),
		NewReliability(opts),
		NewCapacity(opts),
		NewDistribution(opts),
		NewCurve(opts),
	}
}

// Names lists the chart names in report order.
func Names() []string {
	return []string{NamePercentiles, NameEndpoints, NameErrors, NameCapacity, NameDistribution, NameCurve}
}

// Select returns the renderers for names, in report order. An empty names
// slice selects everything.
func Select(opts Options, names []string) ([]Renderer, error) {
	all := All(opts)
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		found := false
		for _, r := range all {
			if r.Name() == name {
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownChart, name, strings.Join(Names(), ", "))
		}

		wanted[name] = true
	}

	selected := make([]Renderer, 0, len(wanted))
	for _, r := range all {
		if wanted[r.Name()] {
			selected = append(selected, r)
		}
	}

	return selected, nil
}
