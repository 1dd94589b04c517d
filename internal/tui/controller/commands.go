package controller

import (
	"context"
	"fmt"
	"time"

	"chancli/internal/session"
	"chancli/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const commandSubsystem = "Command"

// runCommandCmd runs one command line off the UI goroutine. The state is
// passed by value; the result is applied only if the command is still the
// in-flight one when it completes.
func runCommandCmd(ctx context.Context, interp model.Interpreter, st session.State, seq uint64, line string) tea.Cmd {
	return func() tea.Msg {
		next, res := interp.Interpret(ctx, st, line)
		return model.CommandDoneMsg{Seq: seq, Line: line, State: next, Result: res}
	}
}

// submitLine starts line, or queues it behind the in-flight command.
func submitLine(m *model.Model, line string) (*model.Model, tea.Cmd) {
	model.AddHistory(m, line)
	if m.Busy() {
		m.Pending = append(m.Pending, line)
		LogDebug(m, commandSubsystem, "Queued %q behind %q (%d pending)", line, m.Inflight.Line, len(m.Pending))
		return m, nil
	}
	return startCommand(m, line)
}

func startCommand(m *model.Model, line string) (*model.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	m.NextSeq++
	m.Inflight = &model.InflightCommand{Seq: m.NextSeq, Line: line, Cancel: cancel}
	LogDebug(m, commandSubsystem, "Running #%d %q", m.NextSeq, line)
	return m, tea.Batch(
		runCommandCmd(ctx, m.Interpreter, m.Session, m.NextSeq, line),
		m.Spinner.Tick,
	)
}

// startNextPending starts the oldest queued line, if any.
func startNextPending(m *model.Model) (*model.Model, tea.Cmd) {
	if m.Busy() || len(m.Pending) == 0 {
		return m, nil
	}
	line := m.Pending[0]
	m.Pending = m.Pending[1:]
	return startCommand(m, line)
}

// handleCommandDone applies a finished command and moves on to the queue.
func handleCommandDone(m *model.Model, msg model.CommandDoneMsg) (*model.Model, tea.Cmd) {
	if m.Inflight == nil || m.Inflight.Seq != msg.Seq {
		LogDebug(m, commandSubsystem, "Dropping result of abandoned #%d %q", msg.Seq, msg.Line)
		return m, nil
	}
	m.Inflight.Cancel()
	m.Inflight = nil

	res := msg.Result
	m.Session = msg.State
	m.Status = res.Status
	m.StatusType = model.StatusBarInfo
	if res.Content != nil {
		m.Content = res.Content
		m.ContentDirty = true
		m.ContentViewport.GotoTop()
	} else if !res.Quit {
		// Status-only results are validation and fetch failures.
		m.StatusType = model.StatusBarWarning
	}

	if res.Quit {
		return quit(m)
	}
	return startNextPending(m)
}

// cancelInflight abandons the running command. Its result, when it
// arrives, is dropped so the session state stays as it was.
func cancelInflight(m *model.Model) (*model.Model, tea.Cmd) {
	if !m.Busy() {
		return m, nil
	}
	line := m.Inflight.Line
	m.Inflight.Cancel()
	m.Inflight = nil
	LogInfo(commandSubsystem, "Abandoned %q", line)

	m, next := startNextPending(m)
	status := m.SetStatusMessage(fmt.Sprintf("Abandoned %q", line), model.StatusBarWarning, 3*time.Second)
	return m, tea.Batch(next, status)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	if m.Inflight != nil {
		m.Inflight.Cancel()
		m.Inflight = nil
	}
	m.Pending = nil
	m.QuitApp = true
	m.CurrentAppMode = model.ModeQuitting
	return m, tea.Quit
}
