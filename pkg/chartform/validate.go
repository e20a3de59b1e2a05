package chartform

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	errNoChartType = errors.New("chart type is required")
	errNoPeriod    = errors.New("period is required")
	errNoTitle     = errors.New("title is required")
)

// Validate returns an error wrapping [ErrMissingFields] when any of the
// chart type, period or title is empty. Every missing field is reported.
func Validate(t ChartType, p PeriodMode, title string) error {
	var merr error

	if t == ChartNone {
		merr = multierror.Append(merr, errNoChartType)
	}

	if p == PeriodNone {
		merr = multierror.Append(merr, errNoPeriod)
	}

	if title == "" {
		merr = multierror.Append(merr, errNoTitle)
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrMissingFields, merr)
	}

	return nil
}
