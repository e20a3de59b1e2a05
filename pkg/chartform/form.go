package chartform

import "fmt"

const (
	YearlyPlaceholder      = "Enter a value for the year"
	CustomLabelPlaceholder = "Name"
	CustomValuePlaceholder = "Value"
)

// Input is a numeric input generated for yearly mode.
type Input struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
}

// Row is a (label, value) input pair generated for custom mode.
type Row struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Required  bool   `json:"required"`
	Removable bool   `json:"removable"`
}

// Form holds the state of every field of the chart form. The data inputs
// it exposes depend on the selected [PeriodMode]; changing the period
// regenerates them.
//
// A Form is not safe for concurrent use.
type Form struct {
	chartType ChartType
	period    PeriodMode
	title     string
	yearly    []Input
	rows      []Row
}

// NewForm creates an empty [Form] with no period selected.
func NewForm() *Form {
	return &Form{}
}

func (f *Form) ChartType() ChartType {
	return f.chartType
}

func (f *Form) SetChartType(t ChartType) {
	f.chartType = t
}

func (f *Form) Title() string {
	return f.title
}

func (f *Form) SetTitle(title string) {
	f.title = title
}

func (f *Form) Period() PeriodMode {
	return f.period
}

// SetPeriod selects the period mode and regenerates the data inputs. All
// previously generated inputs are discarded, even when p equals the current
// mode.
func (f *Form) SetPeriod(p PeriodMode) error {
	if _, err := ParsePeriodMode(string(p)); err != nil {
		return err
	}

	f.period = p
	f.yearly = nil
	f.rows = nil

	switch p {
	case PeriodYearly:
		for _, label := range yearlyLabels {
			f.yearly = append(f.yearly, Input{
				Label:       label,
				Placeholder: YearlyPlaceholder,
				Required:    true,
			})
		}

	case PeriodCustom:
		f.rows = append(f.rows, Row{Required: true})

	case PeriodNone:
	}

	return nil
}

// YearlyInputs returns a copy of the yearly inputs. It is empty unless the
// period is [PeriodYearly].
func (f *Form) YearlyInputs() []Input {
	return append([]Input(nil), f.yearly...)
}

// SetYearlyValue sets the text of the i-th yearly input.
func (f *Form) SetYearlyValue(i int, value string) error {
	if f.period != PeriodYearly {
		return fmt.Errorf("%w: %s", ErrWrongPeriod, f.period)
	}

	if i < 0 || i >= len(f.yearly) {
		return fmt.Errorf("%w: %d", ErrInputOutOfRange, i)
	}

	f.yearly[i].Value = value

	return nil
}

// ClearValues blanks every yearly input without removing it. It is only
// available in yearly mode.
func (f *Form) ClearValues() error {
	if f.period != PeriodYearly {
		return ErrClearUnavailable
	}

	for i := range f.yearly {
		f.yearly[i].Value = ""
	}

	return nil
}

// Rows returns a copy of the custom rows. It is empty unless the period is
// [PeriodCustom].
func (f *Form) Rows() []Row {
	return append([]Row(nil), f.rows...)
}

// AddRow appends an optional, removable row and returns its index. It is
// only available in custom mode.
func (f *Form) AddRow() (int, error) {
	if f.period != PeriodCustom {
		return -1, ErrAddRowUnavailable
	}

	f.rows = append(f.rows, Row{Removable: true})

	return len(f.rows) - 1, nil
}

// RemoveRow detaches the i-th row. The initial row cannot be removed.
func (f *Form) RemoveRow(i int) error {
	if err := f.checkRow(i); err != nil {
		return err
	}

	if !f.rows[i].Removable {
		return fmt.Errorf("%w: %d", ErrRowNotRemovable, i)
	}

	f.rows = append(f.rows[:i], f.rows[i+1:]...)

	return nil
}

func (f *Form) SetRowLabel(i int, label string) error {
	if err := f.checkRow(i); err != nil {
		return err
	}

	f.rows[i].Label = label

	return nil
}

func (f *Form) SetRowValue(i int, value string) error {
	if err := f.checkRow(i); err != nil {
		return err
	}

	f.rows[i].Value = value

	return nil
}

func (f *Form) checkRow(i int) error {
	if f.period != PeriodCustom {
		return fmt.Errorf("%w: %s", ErrWrongPeriod, f.period)
	}

	if i < 0 || i >= len(f.rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}

	return nil
}

// Collect reads the current input values into a [Series].
func (f *Form) Collect() Series {
	values := make([]string, len(f.yearly))
	for i, in := range f.yearly {
		values[i] = in.Value
	}

	return Collect(f.period, values, f.rows)
}

// Validate checks the required top-level fields.
func (f *Form) Validate() error {
	return Validate(f.chartType, f.period, f.title)
}
