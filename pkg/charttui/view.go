package charttui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MacroPower/chartform/pkg/chartcmd"
	"github.com/MacroPower/chartform/pkg/chartform"
)

const (
	placeholderSelect = "Select an option"
	previewBarWidth   = 40
)

func (m *FormModel) View() string {
	var body string

	if m.mgr.View() == chartcmd.ViewChart {
		body = m.chartView()
	} else {
		body = m.formView()
	}

	parts := []string{body}

	switch {
	case m.err != nil:
		parts = append(parts, defaultStyles.notice.Render(getErrorMessage(m.err, m.width)))
	case m.notice != "":
		parts = append(parts, defaultStyles.notice.Render(fmt.Sprintf("%s %s", defaultStyles.check, m.notice)))
	}

	parts = append(parts, defaultStyles.notice.Render(m.help.View(m.keys)))

	return strings.Join(parts, "\n") + "\n"
}

func (m *FormModel) formView() string {
	lines := []string{
		defaultStyles.heading.Render("Chart form"),
		m.fieldLine(fieldChartType, "Chart type", selectView(displayName(m.form.ChartType().String()), m.focus == fieldChartType)),
		m.fieldLine(fieldPeriod, "Period", selectView(displayName(m.form.Period().String()), m.focus == fieldPeriod)),
		m.fieldLine(fieldTitle, "Title", m.title.View()),
	}

	switch m.form.Period() {
	case chartform.PeriodYearly:
		lines = append(lines, "", defaultStyles.muted.Render("Values"))

		for i, in := range m.form.YearlyInputs() {
			lines = append(lines, m.fieldLine(fixedFields+i, in.Label, m.inputs[i].View()))
		}

	case chartform.PeriodCustom:
		lines = append(lines, "", defaultStyles.muted.Render("Rows"))

		for i, row := range m.form.Rows() {
			name := fmt.Sprintf("#%d", i+1)
			if row.Required {
				name += " *"
			}

			label := m.inputs[2*i].View()
			value := m.inputs[2*i+1].View()
			focused := m.focus == fixedFields+2*i || m.focus == fixedFields+2*i+1

			lines = append(lines, m.styledLabel(name, focused)+
				lipgloss.NewStyle().Width(24).Render(label)+"  "+value)
		}

	case chartform.PeriodNone:
	}

	return strings.Join(lines, "\n")
}

func (m *FormModel) fieldLine(field int, label, input string) string {
	return m.styledLabel(label, m.focus == field) + input
}

func (m *FormModel) styledLabel(label string, focused bool) string {
	if focused {
		return defaultStyles.label.Inherit(defaultStyles.focused).Render(label)
	}

	return defaultStyles.label.Render(label)
}

// chartView draws a text preview of the live chart: one horizontal bar per
// data point, scaled to the largest magnitude.
func (m *FormModel) chartView() string {
	cfg := m.mgr.Config()
	if cfg == nil {
		return ""
	}

	heading := fmt.Sprintf("%s (%s chart)", cfg.Title(), displayName(cfg.Type.String()))
	lines := []string{defaultStyles.heading.Render(heading)}

	labels, values := cfg.Labels(), cfg.Values()
	format := cfg.Options.Plugins.DataLabels.Format

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, math.Abs(v))
	}

	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	for i, l := range labels {
		n := 0
		if peak > 0 {
			n = int(math.Round(math.Abs(values[i]) / peak * previewBarWidth))
		}

		bar := defaultStyles.bar.Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("%-*s %s %s", labelWidth, l, bar, format.Format(values[i])))
	}

	if c := m.mgr.Chart(); c != nil {
		b := c.Image().Bounds()
		lines = append(lines, "", defaultStyles.muted.Render(fmt.Sprintf("%dx%d image, id %s", b.Dx(), b.Dy(), c.ID())))
	}

	return strings.Join(lines, "\n")
}

func selectView(value string, focused bool) string {
	if value == "" {
		value = defaultStyles.muted.Render(placeholderSelect)
	}

	if focused {
		return "‹ " + value + " ›"
	}

	return "  " + value
}

func displayName(s string) string {
	return cases.Title(language.English).String(s)
}
