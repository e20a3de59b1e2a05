package chartrender

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/MacroPower/chartform/pkg/chartform"
)

const (
	htmlWidth  = "900px"
	htmlHeight = "500px"

	tooltipFormat   = "{b}: {c}" + chartform.PercentSuffix
	labelFormat     = "{c}" + chartform.PercentSuffix
	sliceFormat     = "{b}: {c}" + chartform.PercentSuffix
	axisLabelFormat = "{value}" + chartform.PercentSuffix
)

// WriteHTML writes a standalone ECharts page drawing cfg to w.
func WriteHTML(w io.Writer, cfg *chartform.Config) error {
	if cfg == nil || len(cfg.Labels()) == 0 {
		return ErrEmptyConfig
	}

	ds := cfg.Data.Datasets[0]
	global := htmlGlobalOpts(cfg)

	itemStyle := charts.WithItemStyleOpts(opts.ItemStyle{
		Color:       ds.BackgroundColor.String(),
		BorderColor: ds.BorderColor.String(),
		BorderWidth: chartform.BorderWidth,
	})

	var err error

	switch cfg.Type {
	case chartform.ChartBar:
		data := make([]opts.BarData, len(ds.Data))
		for i, v := range ds.Data {
			data[i] = opts.BarData{Value: v}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(append(global, charts.WithYAxisOpts(htmlYAxis()))...)
		bar.SetXAxis(cfg.Labels()).AddSeries("", data,
			itemStyle,
			charts.WithLabelOpts(htmlDataLabel(cfg)),
			charts.WithBarChartOpts(opts.BarChart{
				BarGap:         percent(1 - ds.BarPercentage),
				BarCategoryGap: percent(1 - ds.CategoryPercentage),
			}),
		)

		err = bar.Render(w)

	case chartform.ChartLine:
		data := make([]opts.LineData, len(ds.Data))
		for i, v := range ds.Data {
			data[i] = opts.LineData{Value: v}
		}

		line := charts.NewLine()
		line.SetGlobalOptions(append(global, charts.WithYAxisOpts(htmlYAxis()))...)
		line.SetXAxis(cfg.Labels()).AddSeries("", data,
			itemStyle,
			charts.WithLabelOpts(htmlDataLabel(cfg)),
		)

		err = line.Render(w)

	case chartform.ChartPie, chartform.ChartDoughnut:
		data := make([]opts.PieData, len(ds.Data))
		for i, v := range ds.Data {
			data[i] = opts.PieData{Name: cfg.Data.Labels[i], Value: v}
		}

		pieOpts := opts.PieChart{Radius: "70%"}
		if cfg.Type == chartform.ChartDoughnut {
			pieOpts.Radius = []string{"40%", "70%"}
		}

		pie := charts.NewPie()
		pie.SetGlobalOptions(global...)
		pie.AddSeries("", data,
			charts.WithLabelOpts(opts.Label{
				Show:      true,
				Color:     cfg.Options.Plugins.DataLabels.Color,
				Formatter: sliceFormat,
			}),
			charts.WithPieChartOpts(pieOpts),
		)

		err = pie.Render(w)

	default:
		return fmt.Errorf("%w: %q", chartform.ErrUnknownChartType, cfg.Type)
	}

	if err != nil {
		return fmt.Errorf("render html %s chart: %w", cfg.Type, err)
	}

	return nil
}

func htmlGlobalOpts(cfg *chartform.Config) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: cfg.Title(),
			Width:     htmlWidth,
			Height:    htmlHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: cfg.Title(),
			Left:  "center",
		}),
		charts.WithLegendOpts(opts.Legend{Show: cfg.Options.Plugins.Legend.Display}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      true,
			Formatter: tooltipFormat,
		}),
	}
}

func htmlYAxis() opts.YAxis {
	return opts.YAxis{
		AxisLabel: &opts.AxisLabel{Formatter: axisLabelFormat},
	}
}

func htmlDataLabel(cfg *chartform.Config) opts.Label {
	return opts.Label{
		Show:      true,
		Position:  cfg.Options.Plugins.DataLabels.Align,
		Color:     cfg.Options.Plugins.DataLabels.Color,
		Formatter: labelFormat,
	}
}

func percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
