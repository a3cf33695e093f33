package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// DefaultFile is the summary file k6 writes with --summary-export in the
// spike test setup.
const DefaultFile = "spike_results.json"

var (
	// ErrNotFound is returned when the summary file does not exist.
	ErrNotFound = errors.New("summary file not found")
	// ErrMalformed is returned when the summary file is not a JSON object.
	ErrMalformed = errors.New("invalid JSON format")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load reads and decodes the summary file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a summary document from raw JSON bytes.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformed)
	}

	return &Document{
		data:        raw,
		metricOrder: scanMetricOrder(data),
	}, nil
}

// scanMetricOrder streams over the document and records metric names in
// file order. Decoding into a map loses that order.
func scanMetricOrder(data []byte) []string {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	var names []string

	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		if field != "metrics" || it.WhatIsNext() != jsoniter.ObjectValue {
			it.Skip()

			return true
		}

		it.ReadObjectCB(func(inner *jsoniter.Iterator, name string) bool {
			names = append(names, name)
			inner.Skip()

			return true
		})

		return true
	})

	return names
}
