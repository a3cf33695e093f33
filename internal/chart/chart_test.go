package chart

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethpandaops/spike-report/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
	"metrics": {
		"http_req_duration": {"values": {"med": 120, "p(90)": 300, "p(95)": 450, "p(99)": 900, "avg": 180, "min": 5, "max": 2000}},
		"http_reqs": {"values": {"count": 10000, "rate": 55.5}},
		"http_req_failed": {"values": {"rate": 0.02}},
		"vus": {"values": {"value": 1, "max": 500}},
		"checks": {"values": {"passes": 95, "fails": 5, "count": 100, "rate": 0.95}},
		"latency_ms_login": {"values": {"p(95)": 200, "p(99)": 250}},
		"latency_ms_checkout": {"values": {"p(95)": 500, "p(99)": 800}},
		"latency_ms_health_check": {"values": {"p(95)": 20, "p(99)": 40}}
	},
	"state": {"testRunDurationMs": 60000}
}`

func testOptions() Options {
	opts := DefaultOptions()
	opts.DPI = 72

	return opts
}

func parse(t *testing.T, data string) *report.Document {
	t.Helper()

	doc, err := report.Parse([]byte(data))
	require.NoError(t, err)

	return doc
}

func TestRenderers_WritePNG(t *testing.T) {
	doc := parse(t, fixture)

	for _, r := range All(testOptions()) {
		r := r
		t.Run(r.Name(), func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()

			path, err := r.Render(doc, dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, r.Filename()), path)

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			cfg, err := png.DecodeConfig(f)
			require.NoError(t, err)
			assert.Positive(t, cfg.Width)
			assert.Positive(t, cfg.Height)
		})
	}
}

func TestRenderers_NilDocument(t *testing.T) {
	for _, r := range All(testOptions()) {
		r := r
		_, err := r.Render(nil, t.TempDir())
		assert.ErrorIs(t, err, ErrNoData, r.Name())
	}
}

func TestRenderers_EmptyMetrics(t *testing.T) {
	doc := parse(t, `{"metrics": {}}`)

	for _, r := range All(testOptions()) {
		r := r
		t.Run(r.Name(), func(t *testing.T) {
			_, err := r.Render(doc, t.TempDir())
			if r.Name() == NameEndpoints {
				assert.ErrorIs(t, err, ErrNoData)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPercentiles_Scale(t *testing.T) {
	opts := testOptions()
	opts.Scale = 0.5

	path, err := NewPercentiles(opts).Render(parse(t, fixture), t.TempDir())
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 360, cfg.Width)
	assert.Equal(t, 216, cfg.Height)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []string
		wantErr error
	}{
		{
			name:  "empty selects all",
			input: nil,
			want:  Names(),
		},
		{
			name:  "report order is kept",
			input: []string{"curve", "percentiles"},
			want:  []string{NamePercentiles, NameCurve},
		},
		{
			name:  "case and whitespace are ignored",
			input: []string{" Errors "},
			want:  []string{NameErrors},
		},
		{
			name:  "duplicates collapse",
			input: []string{"capacity", "capacity"},
			want:  []string{NameCapacity},
		},
		{
			name:    "unknown chart",
			input:   []string{"percentiles", "heatmap"},
			wantErr: ErrUnknownChart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(testOptions(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)

			names := make([]string, len(got))
			for i, r := range got {
				names[i] = r.Name()
			}

			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRun(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	dir := t.TempDir()
	doc := parse(t, `{"metrics": {"http_req_duration": {"values": {"med": 10, "p(95)": 20}}}}`)

	results := Run(context.Background(), log, All(testOptions()), doc, dir, 3)
	require.Len(t, results, len(Names()))

	for i, res := range results {
		assert.Equal(t, Names()[i], res.Renderer.Name())

		if res.Renderer.Name() == NameEndpoints {
			assert.ErrorIs(t, res.Err, ErrNoData)
			assert.Empty(t, res.Path)

			continue
		}

		require.NoError(t, res.Err, res.Renderer.Name())
		assert.FileExists(t, res.Path)
		assert.Positive(t, res.Size)
	}
}

func TestRun_Cancelled(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, log, All(testOptions()), parse(t, fixture), t.TempDir(), 1)
	require.Len(t, results, len(Names()))

	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.NotNil(t, res.Renderer)
	}
}

func TestPalette(t *testing.T) {
	r, g, b, a := colorBlue.RGBA()
	assert.Equal(t, uint32(0x3434), r)
	assert.Equal(t, uint32(0x9898), g)
	assert.Equal(t, uint32(0xdbdb), b)
	assert.Equal(t, uint32(0xffff), a)

	_, _, _, a = colorTailZone.RGBA()
	assert.Less(t, a, uint32(0xffff), "tail zone is translucent")
	assert.Equal(t, colorRed.R, colorTailZone.R)
}

func TestChartCaptions(t *testing.T) {
	assert.Equal(t, "Response Time Percentile Curve During Spike Load", curveTitle)

	for _, p := range []string{"P50", "P90", "P95", "P99"} {
		assert.Contains(t, distributionCaption, "of requests < "+p)
	}
}

func TestWriteImage(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	path, err := writeImage(img, dir, "tiny.png")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, 3, cfg.Height)

	_, err = writeImage(img, filepath.Join(dir, "missing"), "tiny.png")
	assert.Error(t, err)
}
