package charttui

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MacroPower/chartform/pkg/chartcmd"
	"github.com/MacroPower/chartform/pkg/log"
)

// ChartTUI runs the interactive form for a [chartcmd.Manager]. While it
// runs, the default logger writes through the TUI.
type ChartTUI struct {
	mgr *chartcmd.Manager
	p   *tea.Program
	w   io.Writer
	in  io.Reader
}

// NewChartTUI creates a [ChartTUI] drawing to w, reading keys from in, and
// installs a default logger at lvl that prints above the form.
func NewChartTUI(w io.Writer, in io.Reader, lvl slog.Level, mgr *chartcmd.Manager) *ChartTUI {
	c := &ChartTUI{
		mgr: mgr,
		w:   w,
		in:  in,
	}

	slog.SetDefault(
		slog.New(log.CreateHandler(c, lvl, log.FormatText)),
	)

	return c
}

// Write sends p to the running program as a log line. Logs are written from
// inside the update loop, so the message is sent asynchronously.
func (c *ChartTUI) Write(p []byte) (int, error) {
	if c.p != nil {
		msg := teaMsgWriteLog(string(p))
		go c.p.Send(msg)
	}

	return len(p), nil
}

// Run shows the form until the user quits.
func (c *ChartTUI) Run() error {
	m := NewFormModel(c.mgr)
	c.p = tea.NewProgram(m, tea.WithOutput(c.w), tea.WithInput(c.in))

	if _, err := c.p.Run(); err != nil {
		return fmt.Errorf("failed to launch tui: %w", err)
	}

	return nil
}
