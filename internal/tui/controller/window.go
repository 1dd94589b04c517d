package controller

import (
	"chancli/internal/tui/model"
	"chancli/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg resizes the input, the content viewport and the log
// overlay to the new terminal dimensions.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	contentHeight := view.ContentHeight(msg.Height)
	m.ContentViewport.Width = msg.Width
	m.ContentViewport.Height = contentHeight

	rows, cols := view.LogOverlayChrome()
	m.LogViewport.Width = max(msg.Width-cols, 0)
	m.LogViewport.Height = max(contentHeight-rows, 0)

	m.Input.Width = max(msg.Width-4, 1)
	m.Help.Width = msg.Width
	return m, nil
}
