package view

import (
	"fmt"
	"strings"

	"chancli/internal/tui/components"
	"chancli/internal/tui/design"
	"chancli/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// chromeRows is the header, status bar, input line and key help.
const chromeRows = 4

// ContentHeight is the number of rows left for the content viewport.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-chromeRows, 1)
}

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return design.DimStyle.Render(m.Status) + "\n"
	}
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}

	var body string
	if m.CurrentAppMode == model.ModeLogOverlay {
		body = renderLogOverlay(m, m.Width, ContentHeight(m.Height))
	} else {
		body = m.ContentViewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m, m.Width),
		body,
		renderStatusBar(m, m.Width),
		m.Input.View(),
		m.Help.ShortHelpView(m.Keys.ShortHelp()),
	)
}

func renderHeader(m *model.Model, width int) string {
	h := components.NewHeader("chancli").WithWidth(width)
	if m.Session.Context.ActiveBoard != "" {
		h = h.WithRightContent(fmt.Sprintf("/%s/ · %d openable", m.Session.Context.ActiveBoard, len(m.Session.Context.OpenableIDs)))
	}
	if m.Busy() {
		h = h.WithSpinner(m.Spinner.View())
	}
	return h.Render()
}

func renderStatusBar(m *model.Model, width int) string {
	sb := components.NewStatusBar(width).WithLeftText(m.Status)
	sb.LeftType = m.StatusType

	var right []string
	if m.Busy() {
		right = append(right, "loading "+m.Inflight.Line)
	}
	if n := len(m.Pending); n > 0 {
		right = append(right, fmt.Sprintf("%d queued", n))
	}
	if pct := m.ContentViewport.ScrollPercent(); m.ContentViewport.TotalLineCount() > m.ContentViewport.Height && m.ContentViewport.Height > 0 {
		right = append(right, fmt.Sprintf("%3.0f%%", pct*100))
	}
	sb = sb.WithRightText(strings.Join(right, " · "))

	if m.StatusBarMessage != "" {
		sb = sb.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return sb.Render()
}
