package controller

import (
	"strings"
	"time"

	"chancli/internal/interpreter"
	"chancli/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses. Overlay keys are handled first;
// everything not bound goes to the input line.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		m.Status = interpreter.QuitStatus
		return quit(m)
	}

	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Cancel):
			m.CurrentAppMode = model.ModeBrowse
			return m, nil
		case keyMsg.String() == "y", key.Matches(keyMsg, m.Keys.Copy):
			return copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs")
		case key.Matches(keyMsg, m.Keys.Top):
			m.LogViewport.GotoTop()
			return m, nil
		case key.Matches(keyMsg, m.Keys.Bottom):
			m.LogViewport.GotoBottom()
			return m, nil
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Submit):
		line := m.Input.Value()
		m.Input.Reset()
		return submitLine(m, line)
	case key.Matches(keyMsg, m.Keys.Cancel):
		if m.Busy() {
			return cancelInflight(m)
		}
		m.Input.Reset()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		return copyToClipboard(m, m.Content.String(), "Page")
	case key.Matches(keyMsg, m.Keys.PageUp):
		m.ContentViewport.ViewUp()
		return m, nil
	case key.Matches(keyMsg, m.Keys.PageDown):
		m.ContentViewport.ViewDown()
		return m, nil
	case key.Matches(keyMsg, m.Keys.Top):
		m.ContentViewport.GotoTop()
		return m, nil
	case key.Matches(keyMsg, m.Keys.Bottom):
		m.ContentViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.HistoryUp):
		if m.HistoryIndex > 0 {
			m.HistoryIndex--
			m.Input.SetValue(m.History[m.HistoryIndex])
			m.Input.CursorEnd()
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.HistoryDown):
		if m.HistoryIndex < len(m.History)-1 {
			m.HistoryIndex++
			m.Input.SetValue(m.History[m.HistoryIndex])
			m.Input.CursorEnd()
		} else {
			m.HistoryIndex = len(m.History)
			m.Input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(keyMsg)
	return m, cmd
}

func copyToClipboard(m *model.Model, text, what string) (*model.Model, tea.Cmd) {
	if err := clipboardWriteAll(text); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy %s", strings.ToLower(what))
		return m, m.SetStatusMessage("Copy failed: "+err.Error(), model.StatusBarError, 3*time.Second)
	}
	return m, m.SetStatusMessage(what+" copied to clipboard", model.StatusBarSuccess, 3*time.Second)
}
