package charttui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// baseModel contains shared fields and behavior for charttui models.
// Models embed this struct and delegate common message handling to
// [baseModel.handleCommon].
type baseModel struct {
	width int
}

// handleCommon processes messages shared across all models.
// It returns a command and a boolean indicating whether the message was
// handled. If handled is true, the caller should return the command
// immediately without further processing.
func (b *baseModel) handleCommon(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width

		return nil, true

	case tea.KeyMsg:
		if keyExits(msg) {
			return tea.Quit, true
		}

	case teaMsgWriteLog:
		return writeLog(msg, b.width), true
	}

	return nil, false
}
