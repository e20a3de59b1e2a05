package chartrender

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MacroPower/chartform/pkg/chartform"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 500

	// Headroom added above (and below, for negative data) the value range so
	// the highest point does not touch the plot edge.
	rangeHeadroom = 0.1
)

var ErrEmptyConfig = errors.New("configuration has no data")

var (
	// Drawn as a single full slice when no slice has any area.
	placeholderSliceColor = drawing.Color{R: 224, G: 224, B: 224, A: 255}

	// Fully transparent but not the zero color, which go-chart would
	// replace with a default series color.
	invisibleColor = drawing.Color{R: 255, G: 255, B: 255, A: 0}
)

// Raster draws configurations into PNG-backed surfaces using go-chart.
type Raster struct {
	width  int
	height int
	scale  float64
}

// RasterOption configures a [Raster].
type RasterOption func(*Raster)

// WithSize sets the surface size in pixels.
func WithSize(width, height int) RasterOption {
	return func(r *Raster) {
		r.width = width
		r.height = height
	}
}

// WithScale multiplies fixed pixel sizes (bar thickness, border width) by
// scale, like a device pixel ratio.
func WithScale(scale float64) RasterOption {
	return func(r *Raster) {
		r.scale = scale
	}
}

// NewRaster creates a new [Raster].
func NewRaster(opts ...RasterOption) *Raster {
	r := &Raster{
		width:  DefaultWidth,
		height: DefaultHeight,
		scale:  1,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render draws cfg and returns the new [Canvas].
func (r *Raster) Render(cfg *chartform.Config) (*Canvas, error) {
	if cfg == nil || len(cfg.Labels()) == 0 || len(cfg.Values()) != len(cfg.Labels()) {
		return nil, ErrEmptyConfig
	}

	var (
		buf bytes.Buffer
		err error
	)

	switch cfg.Type {
	case chartform.ChartBar:
		err = r.barChart(cfg).Render(chart.PNG, &buf)

	case chartform.ChartLine:
		err = r.lineChart(cfg).Render(chart.PNG, &buf)

	case chartform.ChartPie:
		err = r.pieChart(cfg).Render(chart.PNG, &buf)

	case chartform.ChartDoughnut:
		err = r.donutChart(cfg).Render(chart.PNG, &buf)

	default:
		return nil, fmt.Errorf("%w: %q", chartform.ErrUnknownChartType, cfg.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("render %s chart: %w", cfg.Type, err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}

	return NewCanvas(cfg.Type, img)
}

func (r *Raster) barChart(cfg *chartform.Config) chart.BarChart {
	ds := cfg.Data.Datasets[0]
	style := r.datasetStyle(ds)

	bars := make([]chart.Value, len(ds.Data))
	for i, v := range ds.Data {
		bars[i] = chart.Value{
			Label: cfg.Data.Labels[i],
			Value: v,
			Style: style,
		}
	}

	barWidth := r.px(float64(ds.BarThickness))

	return chart.BarChart{
		Title:      cfg.Title(),
		TitleStyle: r.titleStyle(cfg),
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: r.padding(cfg)},
		BarWidth:   barWidth,
		BarSpacing: barSpacing(barWidth, ds.CategoryPercentage, ds.BarPercentage),
		YAxis: chart.YAxis{
			Range:          valueRange(ds.Data),
			ValueFormatter: formatter(cfg.Options.Scales.Y.Ticks),
		},
		Bars: bars,
	}
}

func (r *Raster) lineChart(cfg *chartform.Config) chart.Chart {
	ds := cfg.Data.Datasets[0]
	labelFormat := cfg.Options.Plugins.DataLabels.Format

	xs := make([]float64, len(ds.Data))
	ticks := make([]chart.Tick, len(ds.Data))
	annotations := make([]chart.Value2, len(ds.Data))

	for i, v := range ds.Data {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: cfg.Data.Labels[i]}
		annotations[i] = chart.Value2{XValue: float64(i), YValue: v, Label: labelFormat.Format(v)}
	}

	// go-chart derives the x range from the ticks, so the outer half-step
	// ticks keep it from collapsing to zero width for a single point.
	n := float64(len(xs))
	ticks = append([]chart.Tick{{Value: -0.5}}, ticks...)
	ticks = append(ticks, chart.Tick{Value: n - 0.5})

	border := toDrawingColor(ds.BorderColor)

	return chart.Chart{
		Title:      cfg.Title(),
		TitleStyle: r.titleStyle(cfg),
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: r.padding(cfg)},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: n - 0.5},
		},
		YAxis: chart.YAxis{
			Range:          valueRange(ds.Data),
			ValueFormatter: formatter(cfg.Options.Scales.Y.Ticks),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{-0.5, n - 0.5},
				YValues: []float64{0, 0},
				Style: chart.Style{
					StrokeColor: invisibleColor,
					DotColor:    invisibleColor,
				},
			},
			chart.ContinuousSeries{
				XValues: xs,
				YValues: append([]float64(nil), ds.Data...),
				Style: chart.Style{
					StrokeColor: border,
					StrokeWidth: float64(r.px(float64(ds.BorderWidth))),
					DotColor:    toDrawingColor(ds.BackgroundColor),
					DotWidth:    float64(r.px(3)),
				},
			},
			chart.AnnotationSeries{Annotations: annotations},
		},
	}
}

func (r *Raster) pieChart(cfg *chartform.Config) chart.PieChart {
	return chart.PieChart{
		Title:      cfg.Title(),
		TitleStyle: r.titleStyle(cfg),
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: r.padding(cfg)},
		Values:     r.sliceValues(cfg),
	}
}

func (r *Raster) donutChart(cfg *chartform.Config) chart.DonutChart {
	return chart.DonutChart{
		Title:      cfg.Title(),
		TitleStyle: r.titleStyle(cfg),
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: r.padding(cfg)},
		Values:     r.sliceValues(cfg),
	}
}

// sliceValues returns the labeled slices of a pie or doughnut chart. A
// slice's area is the magnitude of its value; zero slices are left out. When
// nothing has any area the chart is an empty ring.
func (r *Raster) sliceValues(cfg *chartform.Config) []chart.Value {
	ds := cfg.Data.Datasets[0]
	labelFormat := cfg.Options.Plugins.DataLabels.Format

	values := []chart.Value{}

	for i, v := range ds.Data {
		if v == 0 {
			continue
		}

		values = append(values, chart.Value{
			Label: cfg.Data.Labels[i] + " " + labelFormat.Format(v),
			Value: math.Abs(v),
			Style: chart.Style{
				StrokeColor: toDrawingColor(ds.BorderColor),
				StrokeWidth: float64(r.px(float64(ds.BorderWidth))),
			},
		})
	}

	if len(values) == 0 {
		values = append(values, chart.Value{
			Value: 1,
			Style: chart.Style{
				FillColor:   placeholderSliceColor,
				StrokeColor: toDrawingColor(ds.BorderColor),
				StrokeWidth: float64(r.px(float64(ds.BorderWidth))),
			},
		})
	}

	return values
}

func (r *Raster) datasetStyle(ds chartform.Dataset) chart.Style {
	return chart.Style{
		FillColor:   toDrawingColor(ds.BackgroundColor),
		StrokeColor: toDrawingColor(ds.BorderColor),
		StrokeWidth: float64(r.px(float64(ds.BorderWidth))),
	}
}

func (r *Raster) titleStyle(cfg *chartform.Config) chart.Style {
	t := cfg.Options.Plugins.Title

	return chart.Style{
		FontSize: float64(r.px(float64(t.Font.Size))),
		Padding: chart.Box{
			Top: r.px(float64(cfg.Options.Layout.Padding.Top + t.Padding.Top)),
		},
	}
}

// padding reserves the layout padding plus the space taken by the title.
func (r *Raster) padding(cfg *chartform.Config) chart.Box {
	lp := cfg.Options.Layout.Padding
	t := cfg.Options.Plugins.Title

	top := lp.Top
	if t.Display && t.Text != "" {
		top += t.Padding.Top + t.Font.Size + t.Padding.Bottom
	}

	return chart.Box{
		Top:    r.px(float64(top)),
		Right:  r.px(float64(lp.Right)),
		Bottom: r.px(float64(lp.Bottom)),
		Left:   r.px(float64(lp.Left)),
	}
}

func (r *Raster) px(v float64) int {
	return int(math.Round(v * r.scale))
}

// barSpacing converts Chart.js category and bar percentages into the gap
// between two bars of the given width.
func barSpacing(barWidth int, categoryPct, barPct float64) int {
	share := categoryPct * barPct
	if share <= 0 || share >= 1 {
		return barWidth
	}

	return int(math.Round(float64(barWidth)/share)) - barWidth
}

// valueRange always includes zero and is never empty.
func valueRange(values []float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if hi == lo {
		hi = lo + 1
	}

	span := hi - lo
	if hi > 0 {
		hi += span * rangeHeadroom
	}

	if lo < 0 {
		lo -= span * rangeHeadroom
	}

	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func formatter(t *chartform.Ticks) chart.ValueFormatter {
	return func(v any) string {
		f, ok := v.(float64)
		if !ok {
			return fmt.Sprintf("%v", v)
		}

		if t == nil {
			return chartform.ValueFormat{}.Format(f)
		}

		// Ticks are computed, so trim float noise before formatting.
		return t.Format.Format(math.Round(f*1e6) / 1e6)
	}
}

func toDrawingColor(c chartform.Color) drawing.Color {
	r, g, b, a := c.RGBA8()

	return drawing.Color{R: r, G: g, B: b, A: a}
}
