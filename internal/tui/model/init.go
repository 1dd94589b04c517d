package model

import (
	"context"
	"errors"

	"chancli/internal/session"
	"chancli/internal/tui/design"
	"chancli/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// TUIConfig configures InitializeModel.
type TUIConfig struct {
	Interpreter Interpreter
	DebugMode   bool
	LogChannel  <-chan logging.LogEntry
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "abandon fetch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		HistoryUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		HistoryDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "activity log"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy page"),
		),
	}
}

// InitializeModel builds the model showing the splash page.
func InitializeModel(cfg TUIConfig) (*Model, error) {
	if cfg.Interpreter == nil {
		return nil, errors.New("tui: interpreter is required")
	}

	ti := textinput.New()
	ti.Prompt = design.PromptStyle.Render("> ")
	ti.Placeholder = "help"
	ti.CharLimit = 256
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = design.SpinnerStyle

	// The empty line is answered with the splash page without any fetch.
	st, splash := cfg.Interpreter.Interpret(context.Background(), session.State{}, "")

	m := &Model{
		CurrentAppMode:  ModeBrowse,
		DebugMode:       cfg.DebugMode,
		Interpreter:     cfg.Interpreter,
		Session:         st,
		Content:         splash.Content,
		Status:          splash.Status,
		StatusType:      StatusBarInfo,
		Input:           ti,
		ContentViewport: viewport.New(0, 0),
		ContentDirty:    true,
		LogViewport:     viewport.New(0, 0),
		Spinner:         s,
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		LogChannel:      cfg.LogChannel,
	}
	return m, nil
}

// Init implements the startup commands of tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, ListenForLogEntriesCmd(m.LogChannel))
}
