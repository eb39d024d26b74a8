package trend

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

// ErrNothingToPlot is returned when a selection holds no series.
var ErrNothingToPlot = errors.New("nothing to plot")

// RenderOptions sets the PNG canvas size.
type RenderOptions struct {
	Width  int
	Height int
}

// DefaultRenderOptions returns a 900x400 canvas.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 900, Height: 400}
}

var palette = []drawing.Color{
	drawing.ColorFromHex("2563eb"), // blue-600
	drawing.ColorFromHex("dc2626"), // red-600
	drawing.ColorFromHex("16a34a"), // green-600
	drawing.ColorFromHex("d97706"), // amber-600
	drawing.ColorFromHex("7c3aed"), // violet-600
}

// Render draws the selection as a PNG line chart with one line per series
// and the periods as X-axis ticks. Returns raw PNG bytes.
func Render(cs models.ChartSeries, opts RenderOptions) ([]byte, error) {
	if cs.NothingToPlot() {
		return nil, ErrNothingToPlot
	}
	if len(cs.Periods) < 2 {
		return nil, fmt.Errorf("need at least 2 periods, got %d", len(cs.Periods))
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultRenderOptions()
	}

	xValues := make([]float64, len(cs.Periods))
	ticks := make([]chart.Tick, len(cs.Periods))
	for i, p := range cs.Periods {
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: p}
	}

	series := make([]chart.Series, 0, len(cs.Series))
	for i, s := range cs.Series {
		yValues := make([]float64, len(cs.Periods))
		for j := range yValues {
			if j < len(s.Values) && !math.IsNaN(s.Values[j]) && !math.IsInf(s.Values[j], 0) {
				yValues[j] = s.Values[j]
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name: s.Label,
			Style: chart.Style{
				StrokeColor: palette[i%len(palette)],
				StrokeWidth: 2,
				DotColor:    palette[i%len(palette)],
				DotWidth:    3,
			},
			XValues: xValues,
			YValues: yValues,
		})
	}

	graph := chart.Chart{
		Title:  cs.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "Year",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: cs.YAxisTitle,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
