// Package report loads k6 end-of-test summary documents and exposes
// defaulting accessors over their loosely typed contents.
package report

import (
	"sort"

	"github.com/spf13/cast"
)

// Document is a decoded k6 summary. Every accessor resolves absent or
// mistyped keys to a default instead of failing. A nil *Document is valid
// and behaves like an empty one.
type Document struct {
	data        map[string]any
	metricOrder []string
}

// FromMap wraps an already decoded mapping. Metric scan order falls back
// to lexical order because map iteration order is not preserved.
func FromMap(data map[string]any) *Document {
	if data == nil {
		data = map[string]any{}
	}

	return &Document{data: data}
}

// Empty reports whether the document has no top-level keys.
func (d *Document) Empty() bool {
	return d == nil || len(d.data) == 0
}

// Lookup walks path through nested mappings.
func (d *Document) Lookup(path ...string) (any, bool) {
	if d == nil {
		return nil, false
	}

	var current any = d.data
	for _, key := range path {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}

		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Map returns the mapping at path, or an empty mapping.
func (d *Document) Map(path ...string) map[string]any {
	v, ok := d.Lookup(path...)
	if !ok {
		return map[string]any{}
	}

	m, ok := asMap(v)
	if !ok {
		return map[string]any{}
	}

	return m
}

// Float returns the number at path, or def when it is absent or not numeric.
func (d *Document) Float(def float64, path ...string) float64 {
	v, ok := d.Lookup(path...)
	if !ok || v == nil {
		return def
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}

	return f
}

// MetricNames returns the keys of the top-level metrics mapping in the
// order they appeared in the source file.
func (d *Document) MetricNames() []string {
	metrics := d.Map("metrics")
	if len(metrics) == 0 {
		return nil
	}

	names := make([]string, 0, len(metrics))
	seen := make(map[string]struct{}, len(metrics))

	for _, name := range d.orderedKeys(metrics) {
		if _, ok := metrics[name]; !ok {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

func (d *Document) orderedKeys(metrics map[string]any) []string {
	if len(d.metricOrder) > 0 {
		return d.metricOrder
	}

	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Values returns the values mapping of a metric as a Values accessor.
func (d *Document) Values(metric string) Values {
	return Values(d.Map("metrics", metric, "values"))
}

// Values is the stat-name to number mapping of a single metric entry.
type Values map[string]any

// Get returns the named stat or 0.
func (v Values) Get(stat string) float64 {
	raw, ok := v[stat]
	if !ok || raw == nil {
		return 0
	}

	return cast.ToFloat64(raw)
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Values:
		return m, true
	case map[any]any:
		return cast.ToStringMap(m), true
	default:
		return nil, false
	}
}
