package chartform

import (
	"fmt"
	"strings"
)

// ChartType is the kind of chart drawn by the renderer. Values match the
// type names used in Chart.js configurations.
type ChartType string

const (
	ChartNone     ChartType = ""
	ChartBar      ChartType = "bar"
	ChartLine     ChartType = "line"
	ChartPie      ChartType = "pie"
	ChartDoughnut ChartType = "doughnut"
)

// ChartTypes lists the selectable chart types in display order.
var ChartTypes = []ChartType{ChartBar, ChartLine, ChartPie, ChartDoughnut}

// ParseChartType parses s case-insensitively. An empty string yields
// [ChartNone].
func ParseChartType(s string) (ChartType, error) {
	switch t := ChartType(strings.ToLower(strings.TrimSpace(s))); t {
	case ChartNone, ChartBar, ChartLine, ChartPie, ChartDoughnut:
		return t, nil
	}

	return ChartNone, fmt.Errorf("%w: %q", ErrUnknownChartType, s)
}

// HasAxes reports whether the chart type is drawn on cartesian axes.
func (t ChartType) HasAxes() bool {
	return t == ChartBar || t == ChartLine
}

func (t ChartType) String() string {
	return string(t)
}
