package model

import (
	"context"
	"time"

	"chancli/internal/session"
	"chancli/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	MaxHistoryLines     = 200
)

// Interpreter runs one command line against a session state.
type Interpreter interface {
	Interpret(ctx context.Context, st session.State, line string) (session.State, session.Result)
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Submit      key.Binding
	Cancel      key.Binding
	Quit        key.Binding
	HistoryUp   key.Binding
	HistoryDown key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	ToggleLog   key.Binding
	Copy        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.PageUp, k.PageDown, k.ToggleLog, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Cancel, k.HistoryUp, k.HistoryDown},
		{k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.ToggleLog, k.Copy, k.Quit},
	}
}

// InflightCommand is the single command currently running.
type InflightCommand struct {
	Seq    uint64
	Line   string
	Cancel context.CancelFunc
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp        bool
	CurrentAppMode AppMode
	DebugMode      bool

	// Session
	Interpreter Interpreter
	Session     session.State
	Content     *session.Content
	Status      string
	StatusType  MessageType

	// Command execution. Lines submitted while a command runs wait in
	// Pending and are started in submission order.
	Inflight *InflightCommand
	Pending  []string
	NextSeq  uint64

	// Input
	Input        textinput.Model
	History      []string
	HistoryIndex int

	// UI State & Output
	ContentViewport      viewport.Model
	ContentDirty         bool
	ContentLastWidth     int
	LogViewport          viewport.Model
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model

	// Transient notices shown over the status line
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// Busy reports whether a command is running.
func (m *Model) Busy() bool {
	return m.Inflight != nil
}

// SetStatusMessage shows a transient notice that clears itself after clearAfter.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage drops the transient notice.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}
