package model

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// AddHistory records a submitted line. Consecutive duplicates and blank
// lines are skipped. The history cursor is reset to the end.
func AddHistory(m *Model, line string) {
	if line != "" && (len(m.History) == 0 || m.History[len(m.History)-1] != line) {
		m.History = append(m.History, line)
		if len(m.History) > MaxHistoryLines {
			m.History = m.History[len(m.History)-MaxHistoryLines:]
		}
	}
	m.HistoryIndex = len(m.History)
}
