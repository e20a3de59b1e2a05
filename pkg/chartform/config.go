package chartform

import (
	"fmt"
	"strconv"
)

// Color is an RGBA color with a fractional alpha channel, serialized in CSS
// rgba() notation.
type Color struct {
	R, G, B uint8
	A       float64
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// RGBA8 returns the color with the alpha channel scaled to 0-255.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return c.R, c.G, c.B, uint8(c.A*255 + 0.5)
}

// Fixed visual constants of every chart.
var (
	FillColor   = Color{R: 54, G: 162, B: 235, A: 0.5}
	BorderColor = Color{R: 54, G: 162, B: 235, A: 1}
)

const (
	BorderWidth    = 1
	TitleFontSize  = 18
	LabelFontSize  = 12
	LabelFontColor = "#444"
	PercentSuffix  = "%"
)

// Bar layout constants, applied to bar charts only.
const (
	BarThickness       = 12
	MaxBarThickness    = 15
	CategoryPercentage = 0.4
	BarPercentage      = 0.6
)

// Config is a declarative chart configuration. Its JSON encoding follows
// the Chart.js configuration layout; callbacks are described by
// [ValueFormat] instead of code.
type Config struct {
	Type    ChartType `json:"type"`
	Data    Data      `json:"data"`
	Options Options   `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor Color     `json:"backgroundColor"`
	BorderColor     Color     `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`

	// Bar-only layout.
	BarThickness       int     `json:"barThickness,omitempty"`
	MaxBarThickness    int     `json:"maxBarThickness,omitempty"`
	CategoryPercentage float64 `json:"categoryPercentage,omitempty"`
	BarPercentage      float64 `json:"barPercentage,omitempty"`
}

type Options struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Plugins             Plugins `json:"plugins"`
	Scales              Scales  `json:"scales"`
	Layout              Layout  `json:"layout"`
}

type Plugins struct {
	Legend     Legend     `json:"legend"`
	Title      Title      `json:"title"`
	Tooltip    Tooltip    `json:"tooltip"`
	DataLabels DataLabels `json:"datalabels"`
}

type Legend struct {
	Display bool `json:"display"`
}

type Title struct {
	Text    string  `json:"text"`
	Font    Font    `json:"font"`
	Padding Padding `json:"padding"`
	Display bool    `json:"display"`
}

type Font struct {
	Weight string `json:"weight,omitempty"`
	Size   int    `json:"size,omitempty"`
}

type Padding struct {
	Top    int `json:"top"`
	Right  int `json:"right,omitempty"`
	Bottom int `json:"bottom"`
	Left   int `json:"left,omitempty"`
}

type Tooltip struct {
	Format ValueFormat `json:"format"`
}

type DataLabels struct {
	Anchor string      `json:"anchor"`
	Align  string      `json:"align"`
	Color  string      `json:"color"`
	Font   Font        `json:"font"`
	Format ValueFormat `json:"format"`
}

type Scales struct {
	Y Axis `json:"y"`
	X Axis `json:"x"`
}

type Axis struct {
	Ticks       *Ticks `json:"ticks,omitempty"`
	Grid        Grid   `json:"grid"`
	BeginAtZero bool   `json:"beginAtZero,omitempty"`
}

type Grid struct {
	Display bool `json:"display"`
}

type Ticks struct {
	Format ValueFormat `json:"format"`
}

type Layout struct {
	Padding Padding `json:"padding"`
}

// ValueFormat describes how a numeric value is displayed.
type ValueFormat struct {
	Suffix string `json:"suffix,omitempty"`
}

// Format renders v in its shortest decimal form followed by the suffix.
func (f ValueFormat) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + f.Suffix
}

// BuildConfig assembles the chart configuration for a collected series.
// The title is rendered as the chart heading; the single dataset has an
// empty label and the legend is hidden.
func BuildConfig(t ChartType, title string, s Series) *Config {
	percent := ValueFormat{Suffix: PercentSuffix}

	ds := Dataset{
		Label:           "",
		Data:            append([]float64(nil), s.Values...),
		BackgroundColor: FillColor,
		BorderColor:     BorderColor,
		BorderWidth:     BorderWidth,
	}

	if t == ChartBar {
		ds.BarThickness = BarThickness
		ds.MaxBarThickness = MaxBarThickness
		ds.CategoryPercentage = CategoryPercentage
		ds.BarPercentage = BarPercentage
	}

	return &Config{
		Type: t,
		Data: Data{
			Labels:   append([]string(nil), s.Labels...),
			Datasets: []Dataset{ds},
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: false,
			Plugins: Plugins{
				Legend: Legend{Display: false},
				Title: Title{
					Display: true,
					Text:    title,
					Font:    Font{Size: TitleFontSize, Weight: "bold"},
					Padding: Padding{Top: 10, Bottom: 30},
				},
				Tooltip: Tooltip{Format: percent},
				DataLabels: DataLabels{
					Anchor: "end",
					Align:  "top",
					Color:  LabelFontColor,
					Font:   Font{Size: LabelFontSize, Weight: "bold"},
					Format: percent,
				},
			},
			Scales: Scales{
				Y: Axis{
					BeginAtZero: true,
					Grid:        Grid{Display: true},
					Ticks:       &Ticks{Format: percent},
				},
				X: Axis{
					Grid: Grid{Display: false},
				},
			},
			Layout: Layout{
				Padding: Padding{Top: 20, Right: 15, Bottom: 15, Left: 15},
			},
		},
	}
}

// Labels returns the category labels of the configuration.
func (c *Config) Labels() []string {
	return c.Data.Labels
}

// Values returns the values of the single dataset.
func (c *Config) Values() []float64 {
	if len(c.Data.Datasets) == 0 {
		return nil
	}

	return c.Data.Datasets[0].Data
}

// Title returns the heading text.
func (c *Config) Title() string {
	return c.Options.Plugins.Title.Text
}
