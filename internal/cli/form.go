package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/chartform/pkg/chartform"
	"github.com/MacroPower/chartform/pkg/formfile"
)

var ErrInvalidRow = errors.New("row must be in the form label=value")

// addFormFlags adds the flags that pre-fill the chart form.
func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Form file to load (YAML, or .xlsx workbook)")
	cmd.Flags().StringP("type", "t", "", "Chart type (bar, line, pie, doughnut)")
	cmd.Flags().String("period", "", "Period mode (yearly, custom)")
	cmd.Flags().String("title", "", "Chart title, also used as the export file name")
	cmd.Flags().StringArray("value", nil, "Yearly value, in the order 2021 to 2024 (repeatable)")
	cmd.Flags().StringArray("row", nil, "Custom row as label=value (repeatable)")

	if err := cmd.MarkFlagFilename("file", "yaml", "yml", "xlsx"); err != nil {
		panic(err)
	}
}

// formFromFlags builds the form from the form file, then applies any flags
// that were set on top of it. Values imply the yearly period and rows the
// custom period when no period is selected otherwise.
func formFromFlags(cc *cobra.Command) (*chartform.Form, error) {
	flags := cc.Flags()

	var merr error

	path, err := flags.GetString("file")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	chartType, err := flags.GetString("type")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	period, err := flags.GetString("period")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	title, err := flags.GetString("title")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	values, err := flags.GetStringArray("value")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	rowArgs, err := flags.GetStringArray("row")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	rows := make([]formfile.Row, 0, len(rowArgs))
	for _, arg := range rowArgs {
		label, value, ok := strings.Cut(arg, "=")
		if !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrInvalidRow, arg))

			continue
		}

		rows = append(rows, formfile.Row{Label: label, Value: value})
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	form := chartform.NewForm()

	if path != "" {
		f, err := formfile.Load(path)
		if err != nil {
			return nil, err
		}

		if err := f.Apply(form); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, path, err)
		}
	}

	overrides := &formfile.File{
		ChartType: chartform.ChartType(chartType),
		Period:    chartform.PeriodMode(period),
		Title:     title,
		Values:    values,
		Rows:      rows,
	}

	if overrides.Period == chartform.PeriodNone && form.Period() == chartform.PeriodNone {
		switch {
		case len(values) > 0:
			overrides.Period = chartform.PeriodYearly
		case len(rows) > 0:
			overrides.Period = chartform.PeriodCustom
		}
	}

	if err := overrides.Apply(form); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return form, nil
}
