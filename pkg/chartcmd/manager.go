package chartcmd

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/MacroPower/chartform/pkg/chartform"
	"github.com/MacroPower/chartform/pkg/chartrender"
	"github.com/MacroPower/chartform/pkg/tracing"
)

// View is the visible part of the UI.
type View int

const (
	ViewForm  View = iota // The form is visible.
	ViewChart             // The rendered chart is visible.
)

func (v View) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewChart:
		return "chart"
	}

	return fmt.Sprintf("View(%d)", int(v))
}

// Renderer draws a chart configuration into a new chart instance.
type Renderer interface {
	Render(cfg *chartform.Config) (*chartrender.Canvas, error)
}

// Sink receives exported images. It returns where the data was delivered.
type Sink interface {
	Download(name string, data []byte) (string, error)
}

// Manager owns the form's chart lifecycle. At most one chart instance is
// live at any time; it is destroyed before a replacement is rendered.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	form     *chartform.Form
	renderer Renderer
	sink     Sink
	tracer   tracing.Tracer
	current  *chartrender.Canvas
	config   *chartform.Config
	exports  []chartform.ImageFormat
	subs     []func(any)
	view     View
}

// NewManager creates a [Manager] for form. The form is read on every
// submit and export.
func NewManager(form *chartform.Form, renderer Renderer, sink Sink) *Manager {
	return &Manager{
		form:     form,
		renderer: renderer,
		sink:     sink,
		tracer:   tracing.NewLoggingTracer(nil),
		view:     ViewForm,
		subs:     []func(any){},
	}
}

func (m *Manager) Subscribe(f func(any)) {
	m.subs = append(m.subs, f)
}

func (m *Manager) broadcastEvent(evt any) {
	for _, sub := range m.subs {
		sub(evt)
	}
}

func (m *Manager) Form() *chartform.Form {
	return m.form
}

func (m *Manager) View() View {
	return m.view
}

// Chart returns the live chart instance, or nil.
func (m *Manager) Chart() *chartrender.Canvas {
	return m.current
}

// Config returns the configuration of the live chart, or nil.
func (m *Manager) Config() *chartform.Config {
	return m.config
}

// Exports returns the export formats currently offered. It is empty while
// the form is visible.
func (m *Manager) Exports() []chartform.ImageFormat {
	return append([]chartform.ImageFormat(nil), m.exports...)
}

// Submit validates and collects the form and renders a new chart from it.
// Validation failures wrap [chartform.ErrMissingFields] or
// [chartform.ErrNoData] and leave the manager unchanged.
func (m *Manager) Submit() error {
	err := m.form.Validate()
	if err != nil {
		m.broadcastEvent(EventRejected{Err: err})

		return err
	}

	series := m.form.Collect()
	if series.Empty() {
		m.broadcastEvent(EventRejected{Err: chartform.ErrNoData})

		return chartform.ErrNoData
	}

	cfg := chartform.BuildConfig(m.form.ChartType(), m.form.Title(), series)

	m.destroy()

	span := m.tracer.StartSpan("render")
	span.SetBaggageItem("chart_type", string(cfg.Type))

	canvas, err := m.renderer.Render(cfg)
	span.Finish()

	if err != nil {
		m.view = ViewForm
		m.exports = nil

		return fmt.Errorf("render chart: %w", err)
	}

	m.current = canvas
	m.config = cfg
	m.view = ViewChart
	m.exports = append([]chartform.ImageFormat(nil), chartform.ExportFormats...)

	slog.Debug("chart rendered",
		slog.String("id", canvas.ID()),
		slog.String("type", string(cfg.Type)),
		slog.Int("points", series.Len()),
	)
	m.broadcastEvent(EventRendered{ID: canvas.ID(), Type: cfg.Type, Points: series.Len()})

	return nil
}

// Export encodes the live chart in format f and delivers it to the sink as
// "<title>.<ext>", using the form's current title. Without a live chart it
// does nothing and returns an empty location.
func (m *Manager) Export(f chartform.ImageFormat) (string, error) {
	if m.current == nil {
		return "", nil
	}

	if f == chartform.FormatPDF {
		m.broadcastEvent(EventExported{Format: f, Err: chartrender.ErrPDFUnavailable})

		return "", chartrender.ErrPDFUnavailable
	}

	span := m.tracer.StartSpan("export")
	span.SetBaggageItem("format", string(f))

	defer span.Finish()

	var buf bytes.Buffer

	err := chartrender.Encode(&buf, m.current.Image(), f)
	if err != nil {
		m.broadcastEvent(EventExported{Format: f, Err: err})

		return "", fmt.Errorf("export %s: %w", f, err)
	}

	name := chartform.FileName(m.form.Title(), f)

	loc, err := m.sink.Download(name, buf.Bytes())
	if err != nil {
		m.broadcastEvent(EventExported{Format: f, Err: err})

		return "", fmt.Errorf("download %s: %w", name, err)
	}

	slog.Debug("chart exported", slog.String("format", string(f)), slog.String("location", loc))
	m.broadcastEvent(EventExported{Format: f, Location: loc})

	return loc, nil
}

// Reset returns to the form, withdraws the export formats and destroys the
// live chart, if any.
func (m *Manager) Reset() {
	m.view = ViewForm
	m.exports = nil
	m.destroy()

	m.broadcastEvent(EventReset{})
}

func (m *Manager) destroy() {
	if m.current == nil {
		return
	}

	id := m.current.ID()
	m.current.Destroy()
	m.current = nil
	m.config = nil

	slog.Debug("chart destroyed", slog.String("id", id))
	m.broadcastEvent(EventDestroyed{ID: id})
}
