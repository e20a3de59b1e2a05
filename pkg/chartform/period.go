package chartform

import (
	"fmt"
	"strings"
)

// PeriodMode selects how the data inputs of a [Form] are laid out.
type PeriodMode string

const (
	// PeriodNone means no period has been selected yet.
	PeriodNone PeriodMode = ""
	// PeriodYearly uses one input per entry of [YearlyLabels].
	PeriodYearly PeriodMode = "yearly"
	// PeriodCustom uses user-extensible (label, value) rows.
	PeriodCustom PeriodMode = "custom"
)

// PeriodModes lists the selectable period modes in display order.
var PeriodModes = []PeriodMode{PeriodYearly, PeriodCustom}

var yearlyLabels = [...]string{"2021", "2022", "2023", "2024"}

// YearlyLabels returns the fixed labels used in yearly mode.
// The returned slice is a copy.
func YearlyLabels() []string {
	return append([]string(nil), yearlyLabels[:]...)
}

// ParsePeriodMode parses s case-insensitively. An empty string yields
// [PeriodNone].
func ParsePeriodMode(s string) (PeriodMode, error) {
	switch p := PeriodMode(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodNone, PeriodYearly, PeriodCustom:
		return p, nil
	}

	return PeriodNone, fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

func (p PeriodMode) String() string {
	return string(p)
}
