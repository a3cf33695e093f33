package metrics

import (
	"strings"

	"github.com/ethpandaops/spike-report/internal/report"
	"github.com/sirupsen/logrus"
)

// DefaultEndpointPrefix marks per-endpoint latency trends in the k6 script.
const DefaultEndpointPrefix = "latency_ms_"

// Metric names read from the summary.
const (
	MetricDuration = "http_req_duration"
	MetricRequests = "http_reqs"
	MetricFailed   = "http_req_failed"
	MetricVUs      = "vus"
	MetricChecks   = "checks"
)

// Extractor turns a summary document into Performance.
type Extractor struct {
	log    logrus.FieldLogger
	prefix string
}

// NewExtractor creates an extractor that treats metrics starting with
// prefix as endpoint latencies. An empty prefix selects the default.
func NewExtractor(log logrus.FieldLogger, prefix string) *Extractor {
	if prefix == "" {
		prefix = DefaultEndpointPrefix
	}

	return &Extractor{
		log:    log.WithField("component", "metrics.extractor"),
		prefix: prefix,
	}
}

// Extract derives statistics with the default prefix and no logging.
func Extract(doc *report.Document) *Performance {
	return extract(doc, DefaultEndpointPrefix)
}

// ExtractWithPrefix is Extract with a custom endpoint prefix.
func ExtractWithPrefix(doc *report.Document, prefix string) *Performance {
	if prefix == "" {
		prefix = DefaultEndpointPrefix
	}

	return extract(doc, prefix)
}

// Extract returns nil when doc is nil.
func (e *Extractor) Extract(doc *report.Document) *Performance {
	perf := extract(doc, e.prefix)
	if perf == nil {
		e.log.Debug("no document, nothing extracted")

		return nil
	}

	if !perf.Overall.ErrorRateInRange() {
		e.log.WithField("error_rate", perf.Overall.ErrorRate).
			Warn("http_req_failed rate outside [0,1], clamping for display")
	}

	e.log.WithFields(logrus.Fields{
		"endpoints":      perf.EndpointCount(),
		"total_requests": perf.Overall.TotalRequests,
	}).Debug("extracted performance data")

	return perf
}

func extract(doc *report.Document, prefix string) *Performance {
	if doc == nil {
		return nil
	}

	var (
		duration = doc.Values(MetricDuration)
		requests = doc.Values(MetricRequests)
		failed   = doc.Values(MetricFailed)
		vus      = doc.Values(MetricVUs)
		checks   = doc.Values(MetricChecks)
	)

	perf := &Performance{
		Overall: Overall{
			P50:            duration.Get("med"),
			P90:            duration.Get("p(90)"),
			P95:            duration.Get("p(95)"),
			P99:            duration.Get("p(99)"),
			Avg:            duration.Get("avg"),
			Min:            duration.Get("min"),
			Max:            duration.Get("max"),
			TotalRequests:  requests.Get("count"),
			RequestsPerSec: requests.Get("rate"),
			ErrorRate:      failed.Get("rate"),
			DurationS:      doc.Float(0, "state", "testRunDurationMs") / 1000,
			VUs:            vus.Get("value"),
			VUsMax:         vus.Get("max"),
			ChecksPassRate: checks.Get("rate"),
			ChecksTotal:    checks.Get("count"),
			ChecksPassed:   checks.Get("passes"),
			ChecksFailed:   checks.Get("fails"),
		},
		index: make(map[string]int),
	}

	for _, name := range doc.MetricNames() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		values := doc.Values(name)
		if len(values) == 0 {
			// Declared but never observed.
			continue
		}

		endpoint := Endpoint{
			Name: strings.TrimPrefix(name, prefix),
			Avg:  values.Get("avg"),
			Min:  values.Get("min"),
			Med:  values.Get("med"),
			P90:  values.Get("p(90)"),
			P95:  values.Get("p(95)"),
			P99:  values.Get("p(99)"),
			Max:  values.Get("max"),
		}

		perf.index[endpoint.Name] = len(perf.endpoints)
		perf.endpoints = append(perf.endpoints, endpoint)
	}

	return perf
}
