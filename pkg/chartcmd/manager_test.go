package chartcmd_test

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/chartform/pkg/chartcmd"
	"github.com/MacroPower/chartform/pkg/chartform"
	"github.com/MacroPower/chartform/pkg/chartrender"
	"github.com/MacroPower/chartform/pkg/download"
)

// fakeRenderer records every canvas it creates and fails the test if a
// canvas is created while another one is still live.
type fakeRenderer struct {
	t        *testing.T
	err      error
	canvases []*chartrender.Canvas
	configs  []*chartform.Config
}

func (r *fakeRenderer) Render(cfg *chartform.Config) (*chartrender.Canvas, error) {
	for _, c := range r.canvases {
		require.True(r.t, c.Destroyed(), "previous chart instance is still live")
	}

	if r.err != nil {
		return nil, r.err
	}

	c, err := chartrender.NewCanvas(cfg.Type, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	require.NoError(r.t, err)

	r.canvases = append(r.canvases, c)
	r.configs = append(r.configs, cfg)

	return c, nil
}

func (r *fakeRenderer) live() int {
	n := 0
	for _, c := range r.canvases {
		if !c.Destroyed() {
			n++
		}
	}

	return n
}

type memSink struct {
	files map[string][]byte
	err   error
}

func (s *memSink) Download(name string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	if s.files == nil {
		s.files = map[string][]byte{}
	}

	s.files[name] = data

	return "mem://" + name, nil
}

func yearlyForm(t *testing.T) *chartform.Form {
	t.Helper()

	f := chartform.NewForm()
	f.SetChartType(chartform.ChartBar)
	f.SetTitle("Sales")
	require.NoError(t, f.SetPeriod(chartform.PeriodYearly))
	require.NoError(t, f.SetYearlyValue(0, "10"))
	require.NoError(t, f.SetYearlyValue(2, "20"))
	require.NoError(t, f.SetYearlyValue(3, "abc"))

	return f
}

func TestSubmitYearly(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{t: t}
	m := chartcmd.NewManager(yearlyForm(t), r, &memSink{})

	assert.Equal(t, chartcmd.ViewForm, m.View())
	assert.Empty(t, m.Exports())

	require.NoError(t, m.Submit())

	assert.Equal(t, chartcmd.ViewChart, m.View())
	assert.Equal(t, chartform.ExportFormats, m.Exports())
	require.NotNil(t, m.Chart())
	assert.Equal(t, 1, r.live())

	cfg := m.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"2021", "2022", "2023", "2024"}, cfg.Labels())
	assert.Equal(t, []float64{10, 0, 20, 0}, cfg.Values())
	assert.Equal(t, "Sales", cfg.Title())
}

func TestSubmitCustom(t *testing.T) {
	t.Parallel()

	f := chartform.NewForm()
	f.SetChartType(chartform.ChartLine)
	f.SetTitle("Team")
	require.NoError(t, f.SetPeriod(chartform.PeriodCustom))
	require.NoError(t, f.SetRowLabel(0, "Alice"))
	require.NoError(t, f.SetRowValue(0, "15"))

	for _, row := range [][2]string{{"", "30"}, {"Bob", "oops"}} {
		i, err := f.AddRow()
		require.NoError(t, err)
		require.NoError(t, f.SetRowLabel(i, row[0]))
		require.NoError(t, f.SetRowValue(i, row[1]))
	}

	r := &fakeRenderer{t: t}
	m := chartcmd.NewManager(f, r, &memSink{})
	require.NoError(t, m.Submit())

	assert.Equal(t, []string{"Alice"}, m.Config().Labels())
	assert.Equal(t, []float64{15}, m.Config().Values())
}

func TestSubmitMissingFields(t *testing.T) {
	t.Parallel()

	tcs := map[string]func(f *chartform.Form){
		"chart type": func(f *chartform.Form) { f.SetChartType(chartform.ChartNone) },
		"title":      func(f *chartform.Form) { f.SetTitle("") },
		"period": func(f *chartform.Form) {
			_ = f.SetPeriod(chartform.PeriodNone) //nolint:errcheck // Known mode.
		},
	}

	for name, unset := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := yearlyForm(t)
			unset(f)

			var events []any

			r := &fakeRenderer{t: t}
			m := chartcmd.NewManager(f, r, &memSink{})
			m.Subscribe(func(evt any) { events = append(events, evt) })

			err := m.Submit()
			require.ErrorIs(t, err, chartform.ErrMissingFields)
			assert.ErrorContains(t, err, name+" is required")

			assert.Equal(t, chartcmd.ViewForm, m.View())
			assert.Nil(t, m.Chart())
			assert.Empty(t, r.canvases)
			assert.Empty(t, m.Exports())

			require.Len(t, events, 1)
			assert.IsType(t, chartcmd.EventRejected{}, events[0])
		})
	}
}

func TestSubmitNoData(t *testing.T) {
	t.Parallel()

	f := chartform.NewForm()
	f.SetChartType(chartform.ChartPie)
	f.SetTitle("Empty")
	require.NoError(t, f.SetPeriod(chartform.PeriodCustom))
	require.NoError(t, f.SetRowLabel(0, "no value"))

	r := &fakeRenderer{t: t}
	m := chartcmd.NewManager(f, r, &memSink{})

	require.ErrorIs(t, m.Submit(), chartform.ErrNoData)
	assert.Equal(t, chartcmd.ViewForm, m.View())
	assert.Empty(t, r.canvases)
}

func TestSubmitFailureKeepsChart(t *testing.T) {
	t.Parallel()

	f := yearlyForm(t)
	r := &fakeRenderer{t: t}
	m := chartcmd.NewManager(f, r, &memSink{})

	require.NoError(t, m.Submit())

	first := m.Chart()

	f.SetTitle("")
	require.ErrorIs(t, m.Submit(), chartform.ErrMissingFields)

	assert.Same(t, first, m.Chart())
	assert.False(t, first.Destroyed())
	assert.Equal(t, chartcmd.ViewChart, m.View())
}

func TestSubmitReplacesChart(t *testing.T) {
	t.Parallel()

	var events []any

	r := &fakeRenderer{t: t}
	m := chartcmd.NewManager(yearlyForm(t), r, &memSink{})
	m.Subscribe(func(evt any) { events = append(events, evt) })

	require.NoError(t, m.Submit())
	first := m.Chart()

	require.NoError(t, m.Submit())
	second := m.Chart()

	require.Len(t, r.canvases, 2)
	assert.True(t, first.Destroyed())
	assert.False(t, second.Destroyed())
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 1, r.live())

	require.Len(t, events, 3)
	assert.Equal(t, chartcmd.EventDestroyed{ID: first.ID()}, events[1])

	rendered, ok := events[2].(chartcmd.EventRendered)
	require.True(t, ok)
	assert.Equal(t, second.ID(), rendered.ID)
	assert.Equal(t, 4, rendered.Points)
}

func TestSubmitRenderError(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{t: t}
	m := chartcmd.NewManager(yearlyForm(t), r, &memSink{})
	require.NoError(t, m.Submit())

	first := m.Chart()
	r.err = errors.New("boom")

	err := m.Submit()
	require.ErrorContains(t, err, "boom")

	assert.True(t, first.Destroyed())
	assert.Nil(t, m.Chart())
	assert.Equal(t, chartcmd.ViewForm, m.View())
	assert.Empty(t, m.Exports())
}

func TestReset(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{t: t}
	m := chartcmd.NewManager(yearlyForm(t), r, &memSink{})

	assert.NotPanics(t, m.Reset)
	assert.Equal(t, chartcmd.ViewForm, m.View())
	assert.Nil(t, m.Chart())

	require.NoError(t, m.Submit())
	c := m.Chart()

	m.Reset()

	assert.Nil(t, m.Chart())
	assert.Nil(t, m.Config())
	assert.True(t, c.Destroyed())
	assert.Equal(t, chartcmd.ViewForm, m.View())
	assert.Empty(t, m.Exports())
	assert.Zero(t, r.live())
}

func TestExport(t *testing.T) {
	t.Parallel()

	f := yearlyForm(t)
	sink := &memSink{}
	m := chartcmd.NewManager(f, &fakeRenderer{t: t}, sink)

	loc, err := m.Export(chartform.FormatPNG)
	require.NoError(t, err)
	assert.Empty(t, loc, "export without a chart is a no-op")
	assert.Empty(t, sink.files)

	require.NoError(t, m.Submit())

	loc, err = m.Export(chartform.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, "mem://Sales.png", loc)

	f.SetTitle("")

	loc, err = m.Export(chartform.FormatJPG)
	require.NoError(t, err)
	assert.Equal(t, "mem://chart.jpg", loc)

	assert.Len(t, sink.files, 2)
}

func TestExportPDF(t *testing.T) {
	t.Parallel()

	var events []any

	sink := &memSink{}
	m := chartcmd.NewManager(yearlyForm(t), &fakeRenderer{t: t}, sink)
	require.NoError(t, m.Submit())
	m.Subscribe(func(evt any) { events = append(events, evt) })

	loc, err := m.Export(chartform.FormatPDF)
	require.ErrorIs(t, err, chartrender.ErrPDFUnavailable)
	assert.Empty(t, loc)
	assert.Empty(t, sink.files)

	require.Len(t, events, 1)
	assert.Equal(t, chartcmd.EventExported{Format: chartform.FormatPDF, Err: chartrender.ErrPDFUnavailable}, events[0])
}

func TestExportErrors(t *testing.T) {
	t.Parallel()

	sink := &memSink{}
	m := chartcmd.NewManager(yearlyForm(t), &fakeRenderer{t: t}, sink)
	require.NoError(t, m.Submit())

	_, err := m.Export("gif")
	require.ErrorIs(t, err, chartform.ErrUnknownFormat)

	sink.err = errors.New("disk full")
	_, err = m.Export(chartform.FormatPNG)
	require.ErrorContains(t, err, "disk full")
}

func TestManagerWithRaster(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := chartcmd.NewManager(yearlyForm(t), chartrender.NewRaster(), download.NewDir(dir))

	require.NoError(t, m.Submit())

	for _, f := range m.Exports() {
		loc, err := m.Export(f)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Sales."+f.Extension()), loc)
		assert.FileExists(t, loc)
	}

	m.Reset()
	assert.Nil(t, m.Chart())
}

func TestSubmitWithRasterEveryChartType(t *testing.T) {
	t.Parallel()

	forms := map[string]func(t *testing.T, ct chartform.ChartType) *chartform.Form{
		"yearly": func(t *testing.T, ct chartform.ChartType) *chartform.Form {
			t.Helper()

			f := yearlyForm(t)
			f.SetChartType(ct)

			return f
		},
		"custom single row": func(t *testing.T, ct chartform.ChartType) *chartform.Form {
			t.Helper()

			f := chartform.NewForm()
			f.SetChartType(ct)
			f.SetTitle("Team")
			require.NoError(t, f.SetPeriod(chartform.PeriodCustom))
			require.NoError(t, f.SetRowLabel(0, "Alice"))
			require.NoError(t, f.SetRowValue(0, "15"))

			for _, row := range [][2]string{{"", "30"}, {"Bob", "oops"}} {
				i, err := f.AddRow()
				require.NoError(t, err)
				require.NoError(t, f.SetRowLabel(i, row[0]))
				require.NoError(t, f.SetRowValue(i, row[1]))
			}

			return f
		},
		"yearly all blank": func(t *testing.T, ct chartform.ChartType) *chartform.Form {
			t.Helper()

			f := chartform.NewForm()
			f.SetChartType(ct)
			f.SetTitle("Empty")
			require.NoError(t, f.SetPeriod(chartform.PeriodYearly))

			return f
		},
	}

	for name, newForm := range forms {
		for _, ct := range chartform.ChartTypes {
			t.Run(name+"/"+string(ct), func(t *testing.T) {
				t.Parallel()

				r := chartrender.NewRaster(chartrender.WithSize(320, 200))
				m := chartcmd.NewManager(newForm(t, ct), r, &memSink{})

				require.NoError(t, m.Submit())
				assert.Equal(t, chartcmd.ViewChart, m.View())
				require.NotNil(t, m.Chart())
				assert.Equal(t, ct, m.Chart().ChartType())
			})
		}
	}
}
