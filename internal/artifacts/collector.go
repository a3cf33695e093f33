// Package artifacts records the outcome of every chart render in a run.
package artifacts

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Status is the outcome of a single render.
type Status string

const (
	// StatusGenerated means the file was written.
	StatusGenerated Status = "generated"
	// StatusSkipped means the renderer had no data to draw.
	StatusSkipped Status = "skipped"
	// StatusFailed means rendering or writing the file failed.
	StatusFailed Status = "failed"
)

// Metric captures one renderer's result
type Metric struct {
	Chart     string
	File      string
	Status    Status
	SizeBytes int64
	Duration  time.Duration
	Error     string // empty unless failed
	Timestamp time.Time
}

// SummaryMetric provides aggregate statistics across all renders
type SummaryMetric struct {
	TotalDuration time.Duration
	Total         int
	Generated     int
	Skipped       int
	Failed        int
	TotalSize     int64 // bytes
}

// Collector interface for artifact collection
type Collector interface {
	Start(ctx context.Context) error
	Stop() error
	Record(metric Metric)
	GetArtifacts() []Metric
	GetSummary() SummaryMetric
}

type collector struct {
	log       logrus.FieldLogger
	mu        sync.RWMutex
	artifacts []Metric
	startTime time.Time
}

// NewCollector creates a new artifact collector
func NewCollector(log logrus.FieldLogger) Collector {
	return &collector{
		log:       log.WithField("component", "artifacts_collector"),
		artifacts: make([]Metric, 0, 6),
	}
}

func (c *collector) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTime = time.Now()

	c.log.Debug("artifact collector started")

	return nil
}

func (c *collector) Stop() error {
	c.log.Debug("artifact collector stopped")

	return nil
}

func (c *collector) Record(metric Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if metric.Timestamp.IsZero() {
		metric.Timestamp = time.Now()
	}

	c.artifacts = append(c.artifacts, metric)
}

func (c *collector) GetArtifacts() []Metric {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Metric, len(c.artifacts))
	copy(result, c.artifacts)

	return result
}

func (c *collector) GetSummary() SummaryMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary := SummaryMetric{
		Total: len(c.artifacts),
	}

	if !c.startTime.IsZero() {
		summary.TotalDuration = time.Since(c.startTime)
	}

	for _, a := range c.artifacts {
		switch a.Status {
		case StatusGenerated:
			summary.Generated++
			summary.TotalSize += a.SizeBytes
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
	}

	return summary
}

// Compile-time interface compliance check
var _ Collector = (*collector)(nil)
