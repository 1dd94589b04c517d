package controller

import (
	"chancli/internal/tui/model"
	"chancli/internal/tui/view"
	"chancli/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch is the central message routing function for the TUI application.
// It receives all Bubble Tea messages and directs them to the appropriate handler functions
// based on the message type and current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = handleKeyMsgGlobal(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.CommandDoneMsg:
		m, cmd = handleCommandDone(m, msg)
		cmds = append(cmds, cmd)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		} else {
			m.ContentViewport, cmd = m.ContentViewport.Update(msg)
		}
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		// Let the spinner stop once nothing is loading.
		if m.Busy() {
			m.Spinner, cmd = m.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.LogChannelClosedMsg:
		m.LogChannel = nil

	default:
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	refreshViewports(m)
	return m, tea.Batch(cmds...)
}

// refreshViewports re-renders viewport content after a change of content,
// log or width.
func refreshViewports(m *model.Model) {
	if m.ContentDirty || m.ContentLastWidth != m.ContentViewport.Width {
		m.ContentViewport.SetContent(view.AdaptString(m.Content, m.ContentViewport.Width))
		m.ContentLastWidth = m.ContentViewport.Width
		m.ContentDirty = false
	}

	if m.ActivityLogDirty || m.LogViewportLastWidth != m.LogViewport.Width {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if atBottom {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.ActivityLogDirty = false
	}
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, entry.Format())
	}
	return m
}
