package charttui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MacroPower/chartform/pkg/chartcmd"
	"github.com/MacroPower/chartform/pkg/chartform"
)

// Fixed fields, in focus order. The data inputs follow them.
const (
	fieldChartType = iota
	fieldPeriod
	fieldTitle
	fixedFields
)

// FormModel is the interactive chart form. It edits the manager's
// [chartform.Form] and drives the chart lifecycle from key presses.
type FormModel struct {
	mgr    *chartcmd.Manager
	form   *chartform.Form
	err    error
	keys   keyMap
	help   help.Model
	title  textinput.Model
	notice string
	// Yearly: one input per label. Custom: label and value per row.
	inputs []textinput.Model
	focus  int
	baseModel
}

// NewFormModel creates a [FormModel] for mgr. The form's current contents
// are shown as initial values.
func NewFormModel(mgr *chartcmd.Manager) *FormModel {
	title := textinput.New()
	title.Prompt = "> "
	title.SetValue(mgr.Form().Title())

	m := &FormModel{
		mgr:   mgr,
		form:  mgr.Form(),
		keys:  newKeyMap(),
		help:  help.New(),
		title: title,
	}

	m.syncInputs()
	m.updateKeys()

	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

//nolint:ireturn // Third-party.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleCommon(msg); handled {
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.help.Width = size.Width
		}

		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.mgr.View() == chartcmd.ViewChart {
			return m, m.updateChartView(msg)
		}

		return m, m.updateFormView(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *FormModel) updateChartView(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mgr.Reset()
		m.notice, m.err = "", nil
		m.updateKeys()

		return m.setFocus(m.focus)

	case key.Matches(msg, m.keys.ExportPNG):
		return m.export(chartform.FormatPNG)

	case key.Matches(msg, m.keys.ExportJPG):
		return m.export(chartform.FormatJPG)
	}

	return nil
}

func (m *FormModel) updateFormView(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.AddRow):
		return m.addRow()

	case key.Matches(msg, m.keys.RemoveRow):
		m.removeRow()

		return m.setFocus(m.focus)

	case key.Matches(msg, m.keys.Clear):
		m.setError(m.form.ClearValues())
		m.syncInputs()

		return m.setFocus(m.focus)

	case m.focus == fieldChartType || m.focus == fieldPeriod:
		switch {
		case key.Matches(msg, m.keys.Left):
			return m.cycle(-1)
		case key.Matches(msg, m.keys.Right):
			return m.cycle(1)
		}

		return nil
	}

	return m.updateFocused(msg)
}

// updateFocused passes msg to the focused text input and copies its value
// into the form.
func (m *FormModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch {
	case m.focus == fieldTitle:
		m.title, cmd = m.title.Update(msg)
		m.form.SetTitle(m.title.Value())

	case m.focus >= fixedFields && m.focus-fixedFields < len(m.inputs):
		i := m.focus - fixedFields
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		m.setError(m.storeInput(i))
	}

	return cmd
}

func (m *FormModel) storeInput(i int) error {
	v := m.inputs[i].Value()

	switch m.form.Period() {
	case chartform.PeriodYearly:
		return m.form.SetYearlyValue(i, v)

	case chartform.PeriodCustom:
		if i%2 == 0 {
			return m.form.SetRowLabel(i/2, v)
		}

		return m.form.SetRowValue(i/2, v)

	case chartform.PeriodNone:
	}

	return nil
}

func (m *FormModel) cycle(delta int) tea.Cmd {
	switch m.focus {
	case fieldChartType:
		opts := append([]chartform.ChartType{chartform.ChartNone}, chartform.ChartTypes...)
		m.form.SetChartType(opts[step(indexOf(opts, m.form.ChartType()), delta, len(opts))])

	case fieldPeriod:
		opts := append([]chartform.PeriodMode{chartform.PeriodNone}, chartform.PeriodModes...)
		m.setError(m.form.SetPeriod(opts[step(indexOf(opts, m.form.Period()), delta, len(opts))]))
		m.syncInputs()
		m.updateKeys()
	}

	return nil
}

func (m *FormModel) submit() tea.Cmd {
	m.setError(m.mgr.Submit())
	m.updateKeys()

	if m.mgr.View() == chartcmd.ViewChart {
		m.blurAll()
	}

	return nil
}

func (m *FormModel) export(f chartform.ImageFormat) tea.Cmd {
	loc, err := m.mgr.Export(f)
	if err != nil {
		m.setError(err)

		return tea.Printf("%s %s export failed", defaultStyles.cross, f.Name())
	}

	if loc == "" {
		return nil
	}

	m.notice, m.err = "Saved "+loc, nil

	return tea.Printf("%s %s", defaultStyles.check, defaultStyles.itemName.Render(loc))
}

func (m *FormModel) addRow() tea.Cmd {
	i, err := m.form.AddRow()
	if err != nil {
		m.setError(err)

		return nil
	}

	m.syncInputs()

	return m.setFocus(fixedFields + 2*i)
}

// removeRow removes the row holding the focused input.
func (m *FormModel) removeRow() {
	m.setError(m.form.RemoveRow((m.focus - fixedFields) / 2))
	m.syncInputs()
}

func (m *FormModel) setError(err error) {
	m.err = err
	m.notice = ""
}

// syncInputs rebuilds the data inputs from the form.
func (m *FormModel) syncInputs() {
	m.inputs = m.inputs[:0]

	switch m.form.Period() {
	case chartform.PeriodYearly:
		for _, in := range m.form.YearlyInputs() {
			m.inputs = append(m.inputs, newInput(in.Placeholder, in.Value))
		}

	case chartform.PeriodCustom:
		for _, row := range m.form.Rows() {
			m.inputs = append(m.inputs,
				newInput(chartform.CustomLabelPlaceholder, row.Label),
				newInput(chartform.CustomValuePlaceholder, row.Value),
			)
		}

	case chartform.PeriodNone:
	}
}

func (m *FormModel) fieldCount() int {
	return fixedFields + len(m.inputs)
}

// setFocus moves the focus to field i, wrapping around.
func (m *FormModel) setFocus(i int) tea.Cmd {
	m.focus = step(i, 0, m.fieldCount())
	m.blurAll()
	m.updateKeys()

	if m.mgr.View() != chartcmd.ViewForm {
		return nil
	}

	switch {
	case m.focus == fieldTitle:
		return m.title.Focus()

	case m.focus >= fixedFields:
		return m.inputs[m.focus-fixedFields].Focus()
	}

	return nil
}

func (m *FormModel) blurAll() {
	m.title.Blur()

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// updateKeys enables the bindings that apply to the current view and
// period.
func (m *FormModel) updateKeys() {
	inForm := m.mgr.View() == chartcmd.ViewForm
	custom := m.form.Period() == chartform.PeriodCustom

	m.keys.Next.SetEnabled(inForm)
	m.keys.Prev.SetEnabled(inForm)
	m.keys.Left.SetEnabled(inForm && m.focus < fieldTitle)
	m.keys.Right.SetEnabled(inForm && m.focus < fieldTitle)
	m.keys.Submit.SetEnabled(inForm)
	m.keys.Clear.SetEnabled(inForm && m.form.Period() == chartform.PeriodYearly)
	m.keys.AddRow.SetEnabled(inForm && custom)
	m.keys.RemoveRow.SetEnabled(inForm && custom && m.focus >= fixedFields+2)

	exports := m.mgr.Exports()
	m.keys.Back.SetEnabled(!inForm)
	m.keys.ExportPNG.SetEnabled(!inForm && containsFormat(exports, chartform.FormatPNG))
	m.keys.ExportJPG.SetEnabled(!inForm && containsFormat(exports, chartform.FormatJPG))
}

// Err returns the error of the last action, if any.
func (m *FormModel) Err() error {
	return m.err
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = placeholder
	in.SetValue(value)

	return in
}

func containsFormat(fs []chartform.ImageFormat, f chartform.ImageFormat) bool {
	for _, x := range fs {
		if x == f {
			return true
		}
	}

	return false
}

func indexOf[T comparable](opts []T, v T) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}

	return 0
}

// step returns (i+delta) mod n, always non-negative.
func step(i, delta, n int) int {
	if n == 0 {
		return 0
	}

	return ((i+delta)%n + n) % n
}

