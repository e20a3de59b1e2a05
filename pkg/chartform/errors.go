package chartform

import "errors"

var (
	// ErrMissingFields is returned when the chart type, period or title is
	// empty at submit time.
	ErrMissingFields = errors.New("please fill in all required fields")

	// ErrNoData is returned when collection yields zero valid points.
	ErrNoData = errors.New("please enter valid data")

	ErrUnknownPeriod     = errors.New("unknown period mode")
	ErrUnknownChartType  = errors.New("unknown chart type")
	ErrUnknownFormat     = errors.New("unknown image format")
	ErrRowNotRemovable   = errors.New("row cannot be removed")
	ErrRowOutOfRange     = errors.New("row index out of range")
	ErrInputOutOfRange   = errors.New("input index out of range")
	ErrWrongPeriod       = errors.New("operation not available for the current period")
	ErrClearUnavailable  = errors.New("clearing values is only available for yearly data")
	ErrAddRowUnavailable = errors.New("adding rows is only available for custom data")
)
