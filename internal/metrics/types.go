// Package metrics derives overall and per-endpoint latency statistics from a
// k6 summary document.
package metrics

// Overall holds run-wide statistics. Latencies are in milliseconds.
type Overall struct {
	P50            float64
	P90            float64
	P95            float64
	P99            float64
	Avg            float64
	Min            float64
	Max            float64
	TotalRequests  float64
	RequestsPerSec float64
	ErrorRate      float64 // fraction, 0..1 when well formed
	DurationS      float64
	VUs            float64
	VUsMax         float64
	ChecksPassRate float64
	ChecksTotal    float64
	ChecksPassed   float64
	ChecksFailed   float64
}

// Endpoint holds the latency distribution of a single endpoint.
type Endpoint struct {
	Name string
	Avg  float64
	Min  float64
	Med  float64
	P90  float64
	P95  float64
	P99  float64
	Max  float64
}

// Performance is the derived view over one summary document. It is built
// once by Extract and never mutated afterwards.
type Performance struct {
	Overall Overall

	// endpoints are kept in scan order.
	endpoints []Endpoint
	index     map[string]int
}

// ClampedErrorRate returns ErrorRate limited to [0, 1].
func (o Overall) ClampedErrorRate() float64 {
	return clampFraction(o.ErrorRate)
}

// ErrorRateInRange reports whether ErrorRate is a valid fraction.
func (o Overall) ErrorRateInRange() bool {
	return o.ErrorRate >= 0 && o.ErrorRate <= 1
}

// SuccessRate is the complement of the clamped error rate.
func (o Overall) SuccessRate() float64 {
	return 1 - o.ClampedErrorRate()
}

// ClampedChecksPassRate returns ChecksPassRate limited to [0, 1].
func (o Overall) ClampedChecksPassRate() float64 {
	return clampFraction(o.ChecksPassRate)
}

func clampFraction(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Endpoints returns a copy of the endpoint stats in scan order.
func (p *Performance) Endpoints() []Endpoint {
	if p == nil {
		return nil
	}

	out := make([]Endpoint, len(p.endpoints))
	copy(out, p.endpoints)

	return out
}

// Endpoint looks up a single endpoint by name.
func (p *Performance) Endpoint(name string) (Endpoint, bool) {
	if p == nil {
		return Endpoint{}, false
	}

	i, ok := p.index[name]
	if !ok {
		return Endpoint{}, false
	}

	return p.endpoints[i], true
}

// EndpointCount returns the number of measured endpoints.
func (p *Performance) EndpointCount() int {
	if p == nil {
		return 0
	}

	return len(p.endpoints)
}
