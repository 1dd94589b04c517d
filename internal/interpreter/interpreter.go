// Package interpreter parses command lines and routes them to the session
// operations.
package interpreter

import (
	"context"
	"errors"
	"sync"

	"chancli/internal/session"
	"chancli/pkg/logging"
)

const subsystem = "Interpreter"

// QuitStatus is shown while the host UI shuts down.
const QuitStatus = "Bye."

// Session is the set of operations a command can reach.
type Session interface {
	ListBoards(ctx context.Context, st session.State) (session.State, session.Result)
	Board(ctx context.Context, st session.State, code string, page int) (session.State, session.Result)
	Thread(ctx context.Context, st session.State, code string, id int64) (session.State, session.Result)
	Archive(ctx context.Context, st session.State, code string) (session.State, session.Result)
	Open(ctx context.Context, st session.State, index int) (session.State, session.Result)
	Help() session.Result
	License() session.Result
	Splash() session.Result
}

// Interpreter is stateless; the session state is passed through each call.
type Interpreter struct {
	session Session
}

// New creates an Interpreter dispatching to s.
func New(s Session) *Interpreter {
	return &Interpreter{session: s}
}

// Interpret parses line and applies it to st.
func (i *Interpreter) Interpret(ctx context.Context, st session.State, line string) (session.State, session.Result) {
	cmd, err := Parse(line)
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			logging.Debug(subsystem, "Rejected %q: %s", line, usage.Usage)
		}
		return st, session.Result{Status: err.Error()}
	}
	return i.Dispatch(ctx, st, cmd)
}

// Dispatch applies an already parsed command.
func (i *Interpreter) Dispatch(ctx context.Context, st session.State, cmd Command) (session.State, session.Result) {
	logging.Debug(subsystem, "Dispatching %s %v", cmd.Verb, cmd.Args)

	switch cmd.Verb {
	case VerbEmpty:
		return st, i.session.Splash()
	case VerbQuit:
		return st, session.Result{Status: QuitStatus, Quit: true}
	case VerbHelp:
		return st, i.session.Help()
	case VerbLicense:
		return st, i.session.License()
	case VerbListBoards:
		return i.session.ListBoards(ctx, st)
	case VerbOpen:
		return i.session.Open(ctx, st, int(cmd.Int(0)))
	case VerbBoard:
		page := 1
		if len(cmd.Args) == 2 {
			page = int(cmd.Int(1))
		}
		return i.session.Board(ctx, st, cmd.Args[0], page)
	case VerbThread:
		return i.session.Thread(ctx, st, cmd.Args[0], cmd.Int(1))
	case VerbArchive:
		return i.session.Archive(ctx, st, cmd.Args[0])
	default:
		return st, session.Result{Status: (&UnknownCommandError{Line: string(cmd.Verb)}).Error()}
	}
}

// Runner owns one session State and serializes commands against it. It is
// the synchronous host used by line mode.
type Runner struct {
	mu          sync.Mutex
	interpreter *Interpreter
	state       session.State
}

// NewRunner creates a Runner starting from an empty State.
func NewRunner(i *Interpreter) *Runner {
	return &Runner{interpreter: i}
}

// Handle runs line to completion. Concurrent callers are served one at a
// time, each seeing the state the previous call left. The order in which
// waiting callers run is unspecified.
func (r *Runner) Handle(ctx context.Context, line string) session.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, res := r.interpreter.Interpret(ctx, r.state, line)
	r.state = next
	return res
}

// State returns a snapshot of the current state.
func (r *Runner) State() session.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
