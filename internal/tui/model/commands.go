package model

import (
	"chancli/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogEntriesCmd waits for the next log entry. It must be re-issued
// after every NewLogEntryMsg to keep listening.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
