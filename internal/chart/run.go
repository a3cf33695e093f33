package chart

import (
	"context"
	"os"
	"time"

	"github.com/ethpandaops/spike-report/internal/report"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one renderer.
type Result struct {
	Renderer Renderer
	Path     string
	Size     int64
	Duration time.Duration
	Err      error
}

// Run renders every renderer into dir using up to workers goroutines.
// Results are returned in renderer order. A failing renderer never stops
// the others; cancelling ctx marks the remaining ones with ctx.Err().
func Run(ctx context.Context, log logrus.FieldLogger, renderers []Renderer, doc *report.Document, dir string, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(renderers))
	g, gCtx := errgroup.WithContext(ctx)

	sem := make(chan struct{}, workers)
	for i, r := range renderers {
		i, r := i, r
		g.Go(func() error {
			results[i].Renderer = r

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gCtx.Done():
				results[i].Err = gCtx.Err()

				return nil
			}

			if err := gCtx.Err(); err != nil {
				results[i].Err = err

				return nil
			}

			results[i] = render(log, r, doc, dir)

			return nil
		})
	}

	_ = g.Wait()

	return results
}

func render(log logrus.FieldLogger, r Renderer, doc *report.Document, dir string) Result {
	start := time.Now()
	result := Result{Renderer: r}

	path, err := r.Render(doc, dir)
	result.Duration = time.Since(start)

	if err != nil {
		result.Err = err
		log.WithError(err).WithField("chart", r.Name()).Debug("chart not rendered")

		return result
	}

	result.Path = path
	if info, statErr := os.Stat(path); statErr == nil {
		result.Size = info.Size()
	}

	log.WithFields(logrus.Fields{
		"chart":    r.Name(),
		"path":     path,
		"duration": result.Duration,
	}).Debug("chart rendered")

	return result
}
