package charttui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"

	tea "github.com/charmbracelet/bubbletea"
)

type styles struct {
	heading  lipgloss.Style
	label    lipgloss.Style
	focused  lipgloss.Style
	muted    lipgloss.Style
	bar      lipgloss.Style
	notice   lipgloss.Style
	err      lipgloss.Style
	itemName lipgloss.Style
	check    lipgloss.Style
	cross    lipgloss.Style
}

var defaultStyles = styles{
	heading:  lipgloss.NewStyle().Bold(true).MarginBottom(1),
	label:    lipgloss.NewStyle().Width(14),
	focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
	muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	notice:   lipgloss.NewStyle().MarginTop(1),
	err:      lipgloss.NewStyle().Margin(1, 2),
	itemName: lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
	check:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓"),
	cross:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).SetString("✗"),
}

type (
	// Sent to write a log message.
	teaMsgWriteLog string
)

func keyExits(msg tea.KeyMsg) bool {
	return msg.String() == "ctrl+c"
}

func writeLog(msg teaMsgWriteLog, width int) tea.Cmd {
	logMsg := string(msg)
	logMsg = strings.Trim(logMsg, "\r\n")
	logMsg = lipgloss.NewStyle().Width(max(0, width-2)).Render(logMsg)

	return tea.Println(logMsg)
}

// getErrorMessage renders err as a notice. Aggregated errors are listed one
// per line below the leading message.
func getErrorMessage(err error, width int) string {
	maxWidth := max(0, width-2)

	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) == 0 {
		errMsg := fmt.Sprintf("%s %v", defaultStyles.cross, err)
		errMsg = strings.Trim(errMsg, "\r\n")

		return lipgloss.NewStyle().MaxWidth(maxWidth).Render(errMsg)
	}

	head := err.Error()
	if i := strings.Index(head, ": "); i >= 0 {
		head = head[:i]
	}

	lines := make([]string, 0, len(merr.Errors)+1)
	lines = append(lines, fmt.Sprintf("%s %s", defaultStyles.cross, head))

	for _, e := range merr.Errors {
		lines = append(lines, lipgloss.NewStyle().MaxWidth(maxWidth).Render("  - "+e.Error()))
	}

	return strings.Join(lines, "\n")
}
