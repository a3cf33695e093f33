package metrics

import "slices"

// RankedEndpoints returns endpoints ordered by descending P95. Endpoints
// with equal P95 keep their scan order.
func (p *Performance) RankedEndpoints() []Endpoint {
	ranked := p.Endpoints()

	slices.SortStableFunc(ranked, func(a, b Endpoint) int {
		switch {
		case a.P95 > b.P95:
			return -1
		case a.P95 < b.P95:
			return 1
		default:
			return 0
		}
	})

	return ranked
}

// TopEndpoints returns at most n endpoints from RankedEndpoints.
func (p *Performance) TopEndpoints(n int) []Endpoint {
	ranked := p.RankedEndpoints()
	if n < 0 {
		n = 0
	}

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
