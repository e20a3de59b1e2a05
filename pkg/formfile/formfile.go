package formfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/chartform/pkg/chartform"
)

var (
	ErrReadFile      = errors.New("failed to read form file")
	ErrTooManyValues = errors.New("too many yearly values")
	ErrEmptyWorkbook = errors.New("workbook has no sheets")
)

// File is the on-disk representation of a filled-in form.
type File struct {
	// Chart type to draw.
	ChartType chartform.ChartType `yaml:"chart_type,omitempty" jsonschema:"enum=bar,enum=line,enum=pie,enum=doughnut"`
	// Layout of the data inputs.
	Period chartform.PeriodMode `yaml:"period,omitempty" jsonschema:"enum=yearly,enum=custom"`
	// Chart title, also used as the export file name.
	Title string `yaml:"title,omitempty"`
	// Yearly values, in the order 2021 to 2024.
	Values []string `yaml:"values,omitempty" jsonschema:"maxItems=4"`
	// Custom (label, value) rows.
	Rows []Row `yaml:"rows,omitempty"`
}

// Row is a single custom data row.
type Row struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Load reads a form file. Files ending in ".xlsx" are read as Excel
// workbooks, anything else as YAML.
func Load(path string) (*File, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadWorkbook(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	return Parse(data)
}

// Parse decodes YAML form data. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	f := &File{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode form file: %w", err)
	}

	return f, nil
}

// LoadWorkbook reads custom rows from the first sheet of an Excel workbook.
// Column A holds labels and column B values; a leading "label", "value"
// header row is skipped. The sheet name becomes the title.
func LoadWorkbook(path string) (*File, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	defer wb.Close() //nolint:errcheck // Read only.

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyWorkbook, path)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	f := &File{
		Period: chartform.PeriodCustom,
		Title:  sheets[0],
	}

	for i, cells := range rows {
		row := Row{}
		if len(cells) > 0 {
			row.Label = strings.TrimSpace(cells[0])
		}

		if len(cells) > 1 {
			row.Value = strings.TrimSpace(cells[1])
		}

		if i == 0 && isHeader(row) {
			continue
		}

		if row.Label == "" && row.Value == "" {
			continue
		}

		f.Rows = append(f.Rows, row)
	}

	return f, nil
}

func isHeader(r Row) bool {
	return strings.EqualFold(r.Label, "label") && strings.EqualFold(r.Value, "value")
}

// Apply fills form with the file's contents. Fields left empty in the file
// leave the form unchanged, except that setting a period regenerates the
// data inputs.
func (f *File) Apply(form *chartform.Form) error {
	t, err := chartform.ParseChartType(string(f.ChartType))
	if err != nil {
		return err
	}

	p, err := chartform.ParsePeriodMode(string(f.Period))
	if err != nil {
		return err
	}

	if t != chartform.ChartNone {
		form.SetChartType(t)
	}

	if f.Title != "" {
		form.SetTitle(f.Title)
	}

	if p != chartform.PeriodNone {
		if err := form.SetPeriod(p); err != nil {
			return err
		}
	}

	switch form.Period() {
	case chartform.PeriodYearly:
		if len(f.Values) > len(form.YearlyInputs()) {
			return fmt.Errorf("%w: got %d, want at most %d",
				ErrTooManyValues, len(f.Values), len(form.YearlyInputs()))
		}

		for i, v := range f.Values {
			if err := form.SetYearlyValue(i, v); err != nil {
				return err
			}
		}

	case chartform.PeriodCustom:
		for i, r := range f.Rows {
			if i >= len(form.Rows()) {
				if _, err := form.AddRow(); err != nil {
					return err
				}
			}

			if err := form.SetRowLabel(i, r.Label); err != nil {
				return err
			}

			if err := form.SetRowValue(i, r.Value); err != nil {
				return err
			}
		}

	case chartform.PeriodNone:
	}

	return nil
}
