package view

import (
	"fmt"
	"strings"

	"chancli/internal/tui/design"
	"chancli/internal/tui/model"
	"chancli/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// Replaced in tests.
var droppedLogEntries = logging.Dropped

// logOverlayTitle names the overlay keys and, once the log channel has
// overflowed, how many entries never reached it.
func logOverlayTitle(dropped int64) string {
	title := "Activity Log  (pgup/pgdn scroll  •  y copy  •  esc close)"
	if dropped > 0 {
		title += fmt.Sprintf("  %d dropped", dropped)
	}
	return title
}

// renderLogOverlay renders the activity log over the whole content area.
func renderLogOverlay(m *model.Model, width, height int) string {
	title := design.LogPanelTitleStyle.Render(logOverlayTitle(droppedLogEntries()))
	viewportView := m.LogViewport.View()
	content := lipgloss.JoinVertical(lipgloss.Left, title, viewportView)
	return design.LogOverlayStyle.
		Width(width - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(height - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)
}

// LogOverlayChrome is the number of rows and columns the overlay frame and
// title take from the log viewport.
func LogOverlayChrome() (rows, cols int) {
	title := design.LogPanelTitleStyle.Render("x")
	return design.LogOverlayStyle.GetVerticalFrameSize() + lipgloss.Height(title),
		design.LogOverlayStyle.GetHorizontalFrameSize()
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

// styleLogLine returns the line wrapped in appropriate lipgloss style depending
// on markers contained in the text.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
