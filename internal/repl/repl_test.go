package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"chancli/internal/imageboard"
	"chancli/internal/session"

	"github.com/charmbracelet/x/ansi"
	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	lines  []string
	errs   []error
	closed bool
}

func (s *scriptedInput) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line, err := s.lines[0], s.errs[0]
	s.lines, s.errs = s.lines[1:], s.errs[1:]
	return line, err
}

func (s *scriptedInput) Close() error {
	s.closed = true
	return nil
}

func script(lines ...string) *scriptedInput {
	return &scriptedInput{lines: lines, errs: make([]error, len(lines))}
}

type fakeRunner struct {
	handled []string
	state   session.State
}

func (f *fakeRunner) Handle(_ context.Context, line string) session.Result {
	f.handled = append(f.handled, line)
	if strings.TrimSpace(line) == "" {
		return session.Result{Content: page("welcome"), Status: session.DefaultStatus}
	}
	switch line {
	case "exit":
		return session.Result{Status: "Bye.", Quit: true}
	case "nope":
		return session.Result{Status: "Invalid command: nope"}
	}
	return session.Result{Content: page("page for " + line), Status: "Displaying " + line}
}

func (f *fakeRunner) State() session.State {
	return f.state
}

func page(text string) *session.Content {
	return &session.Content{Lines: []session.Line{{Segments: []session.Segment{{Text: text}}}}}
}

func newTestREPL(runner Runner) (*REPL, *bytes.Buffer) {
	var out bytes.Buffer
	return &REPL{runner: runner, out: &out, width: func() int { return 40 }}, &out
}

func TestLoop(t *testing.T) {
	tests := []struct {
		name            string
		input           *scriptedInput
		expectedHandled []string
		expectedOutput  []string
	}{
		{
			name:            "runs lines until exit",
			input:           script("listboards", "  ", "nope", "exit", "board g"),
			expectedHandled: []string{"", "listboards", "  ", "nope", "exit"},
			expectedOutput:  []string{"welcome", "page for listboards", "Displaying listboards", "Invalid command: nope", "Bye."},
		},
		{
			name:            "EOF quits",
			input:           script("board g"),
			expectedHandled: []string{"", "board g"},
			expectedOutput:  []string{"page for board g", "Bye."},
		},
		{
			name: "interrupt on an empty line quits",
			input: &scriptedInput{
				lines: []string{"", "board g"},
				errs:  []error{readline.ErrInterrupt, nil},
			},
			expectedHandled: []string{""},
			expectedOutput:  []string{"Bye."},
		},
		{
			name: "interrupt with text discards the line",
			input: &scriptedInput{
				lines: []string{"boa", "board g"},
				errs:  []error{readline.ErrInterrupt, nil},
			},
			expectedHandled: []string{"", "board g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			r, out := newTestREPL(runner)

			require.NoError(t, r.loop(context.Background(), tt.input))

			assert.True(t, tt.input.closed)
			assert.Equal(t, tt.expectedHandled, runner.handled)
			plain := ansi.Strip(out.String())
			for _, s := range tt.expectedOutput {
				assert.Contains(t, plain, s)
			}
		})
	}
}

func TestLoopShowsSplashForBlankLines(t *testing.T) {
	runner := &fakeRunner{}
	r, out := newTestREPL(runner)

	require.NoError(t, r.loop(context.Background(), script("board g", "   ", "exit")))

	assert.Equal(t, []string{"", "board g", "   ", "exit"}, runner.handled)
	plain := ansi.Strip(out.String())
	assert.Equal(t, 2, strings.Count(plain, "welcome"))
	assert.Equal(t, 2, strings.Count(plain, session.DefaultStatus))
}

func TestLoopReadError(t *testing.T) {
	r, _ := newTestREPL(&fakeRunner{})
	in := &scriptedInput{lines: []string{""}, errs: []error{errors.New("tty gone")}}

	err := r.loop(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestLoopStopsOnCanceledContext(t *testing.T) {
	runner := &fakeRunner{}
	r, _ := newTestREPL(runner)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.loop(ctx, script("board g")))
	assert.Equal(t, []string{""}, runner.handled)
}

func TestShowWrapsToWidth(t *testing.T) {
	r, out := newTestREPL(&fakeRunner{})
	r.width = func() int { return 10 }

	quit := r.show(session.Result{Content: page("alpha beta gamma"), Status: "ok"})

	assert.False(t, quit)
	assert.Equal(t, "alpha beta\ngamma\nok\n", ansi.Strip(out.String()))
}

func TestCompleter(t *testing.T) {
	runner := &fakeRunner{state: session.State{Caches: session.Caches{
		Boards: []imageboard.Board{{Code: "g", Title: "Technology"}, {Code: "a", Title: "Anime & Manga"}},
	}}}
	r, _ := newTestREPL(runner)
	c := r.completer()

	names := make([]string, 0, len(c.GetChildren()))
	for _, child := range c.GetChildren() {
		names = append(names, string(child.GetName()))
	}
	sort.Strings(names)
	assert.Equal(t, []string{"archive ", "board ", "exit ", "help ", "license ", "listboards ", "open ", "q ", "quit ", "thread "}, names)

	completions, _ := c.Do([]rune("board "), len("board "))
	got := make([]string, 0, len(completions))
	for _, comp := range completions {
		got = append(got, string(comp))
	}
	sort.Strings(got)
	assert.Equal(t, []string{"a ", "g "}, got)
}

func TestFilterInput(t *testing.T) {
	_, ok := filterInput(readline.CharCtrlZ)
	assert.False(t, ok)
	r, ok := filterInput('a')
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
}
