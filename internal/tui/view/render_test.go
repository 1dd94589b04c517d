package view

import (
	"testing"

	"chancli/internal/session"
	"chancli/internal/tui/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func newRenderModel(content *session.Content) *model.Model {
	vp := viewport.New(80, ContentHeight(24))
	vp.SetContent(AdaptString(content, 80))
	return &model.Model{
		Width:           80,
		Height:          24,
		CurrentAppMode:  model.ModeBrowse,
		Content:         content,
		Status:          session.DefaultStatus,
		ContentViewport: vp,
		LogViewport:     viewport.New(70, 10),
		Input:           textinput.New(),
		Spinner:         spinner.New(),
		Keys:            model.DefaultKeyMap(),
		Help:            help.New(),
	}
}

func TestRender(t *testing.T) {
	page := &session.Content{Lines: []session.Line{
		{Segments: []session.Segment{{Text: "Displaying page 1 of /g/.", Style: session.StyleHeading}}},
		{Segments: []session.Segment{{Text: "(0) No. 1001 01/01/24", Style: session.StylePlain}}},
	}}

	tests := []struct {
		name               string
		setup              func(m *model.Model)
		expectedContains   []string
		unexpectedContains []string
	}{
		{
			name:             "browse page",
			expectedContains: []string{"chancli", "Displaying page 1 of /g/.", "No. 1001", session.DefaultStatus, "run command"},
		},
		{
			name: "active board and loading",
			setup: func(m *model.Model) {
				m.Session.Context = session.Context{ActiveBoard: "g", OpenableIDs: []int64{1, 2}}
				m.Inflight = &model.InflightCommand{Seq: 1, Line: "thread g 42", Cancel: func() {}}
				m.Pending = []string{"open 1"}
			},
			expectedContains: []string{"/g/ · 2 openable", "loading thread g 42", "1 queued"},
		},
		{
			name: "transient notice replaces the status",
			setup: func(m *model.Model) {
				m.StatusBarMessage = "Page copied to clipboard"
			},
			expectedContains:   []string{"Page copied to clipboard"},
			unexpectedContains: []string{session.DefaultStatus},
		},
		{
			name: "log overlay",
			setup: func(m *model.Model) {
				m.CurrentAppMode = model.ModeLogOverlay
				m.ActivityLog = []string{"12:00:00 [WARN] [Fetcher] retrying"}
				m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
			},
			expectedContains:   []string{"Activity Log", "retrying"},
			unexpectedContains: []string{"No. 1001", "dropped"},
		},
		{
			name: "quitting",
			setup: func(m *model.Model) {
				m.CurrentAppMode = model.ModeQuitting
				m.Status = "Bye."
			},
			expectedContains:   []string{"Bye."},
			unexpectedContains: []string{"chancli"},
		},
		{
			name: "no size yet",
			setup: func(m *model.Model) {
				m.Width, m.Height = 0, 0
			},
			expectedContains: []string{"Initializing..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRenderModel(page)
			if tt.setup != nil {
				tt.setup(m)
			}
			out := ansi.Strip(Render(m))
			for _, s := range tt.expectedContains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.unexpectedContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestLogOverlayShowsDroppedEntries(t *testing.T) {
	orig := droppedLogEntries
	t.Cleanup(func() { droppedLogEntries = orig })
	droppedLogEntries = func() int64 { return 7 }

	m := newRenderModel(nil)
	m.CurrentAppMode = model.ModeLogOverlay

	out := ansi.Strip(Render(m))
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "dropped")
}

func TestLogOverlayTitle(t *testing.T) {
	assert.Equal(t, "Activity Log  (pgup/pgdn scroll  •  y copy  •  esc close)", logOverlayTitle(0))
	assert.Equal(t, "Activity Log  (pgup/pgdn scroll  •  y copy  •  esc close)  12 dropped", logOverlayTitle(12))
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 20, ContentHeight(24))
	assert.Equal(t, 1, ContentHeight(2))
}
