package chartform

import (
	"math"
	"strconv"
	"strings"
)

// Series is the data collected from a form on submit. Labels and Values
// always have the same length.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// Empty reports whether the series has no points.
func (s Series) Empty() bool {
	return len(s.Labels) == 0
}

func (s *Series) add(label string, value float64) {
	s.Labels = append(s.Labels, label)
	s.Values = append(s.Values, value)
}

// ParseNumber parses the text of a numeric input. Surrounding whitespace is
// ignored. NaN and infinities are rejected, as is anything a numeric input
// field would not accept.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || isHexLiteral(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// isHexLiteral reports whether s is a hexadecimal literal, which
// [strconv.ParseFloat] accepts but a numeric input field does not.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")

	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Collect builds a [Series] for the given period mode. In yearly mode only
// yearlyValues is read, in custom mode only rows.
func Collect(p PeriodMode, yearlyValues []string, rows []Row) Series {
	switch p {
	case PeriodYearly:
		return CollectYearly(yearlyValues)
	case PeriodCustom:
		return CollectCustom(rows)
	}

	return Series{}
}

// CollectYearly always returns one point per yearly label, in order.
// Values that are missing or do not parse become 0.
func CollectYearly(values []string) Series {
	labels := YearlyLabels()
	s := Series{
		Labels: make([]string, 0, len(labels)),
		Values: make([]float64, 0, len(labels)),
	}

	for i, label := range labels {
		var v float64
		if i < len(values) {
			v, _ = ParseNumber(values[i])
		}

		s.add(label, v)
	}

	return s
}

// CollectCustom returns the rows that have a non-empty label and a value
// that parses, in row order. Other rows are skipped, not coerced.
func CollectCustom(rows []Row) Series {
	s := Series{
		Labels: []string{},
		Values: []float64{},
	}

	for _, r := range rows {
		if r.Label == "" {
			continue
		}

		v, ok := ParseNumber(r.Value)
		if !ok {
			continue
		}

		s.add(r.Label, v)
	}

	return s
}
