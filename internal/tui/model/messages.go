package model

import (
	"chancli/internal/session"
	"chancli/pkg/logging"
)

// CommandDoneMsg carries the outcome of a command started with sequence
// number Seq. A result whose Seq no longer matches the in-flight command
// was abandoned and is dropped.
type CommandDoneMsg struct {
	Seq    uint64
	Line   string
	State  session.State
	Result session.Result
}

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is sent once the logging channel is closed.
type LogChannelClosedMsg struct{}

// ClearStatusBarMsg clears the transient status notice.
type ClearStatusBarMsg struct{}
