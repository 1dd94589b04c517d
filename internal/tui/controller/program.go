package controller

import (
	"chancli/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the full-screen Bubble Tea program.
func NewProgram(cfg model.TUIConfig, opts ...tea.ProgramOption) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(app, opts...), nil
}
