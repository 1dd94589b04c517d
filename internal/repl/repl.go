package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"chancli/internal/interpreter"
	"chancli/internal/session"
	"chancli/internal/tui/design"
	"chancli/internal/tui/view"
	"chancli/pkg/logging"

	"github.com/chzyer/readline"
)

const subsystem = "REPL"

// Prompt is shown before every input line.
const Prompt = "> "

// Runner executes one line against the session it owns.
type Runner interface {
	Handle(ctx context.Context, line string) session.Result
	State() session.State
}

// lineReader is the part of *readline.Instance the loop needs.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// REPL is the line-mode host: it reads a command, runs it to completion and
// prints the resulting page and status.
type REPL struct {
	runner Runner
	out    io.Writer
	width  func() int
}

// New creates a REPL printing to os.Stdout.
func New(runner Runner) *REPL {
	return &REPL{
		runner: runner,
		out:    os.Stdout,
		width:  screenWidth,
	}
}

// Run shows the splash page and serves lines until a quit command, EOF or
// an interrupt on an empty line.
func (r *REPL) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:          design.PromptStyle.Render(Prompt),
		HistoryFile:     filepath.Join(os.TempDir(), ".chancli_history"),
		AutoComplete:    r.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	r.out = rl.Stdout()

	return r.loop(ctx, rl)
}

func (r *REPL) loop(ctx context.Context, in lineReader) error {
	defer in.Close()

	if r.show(r.runner.Handle(ctx, "")) {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			logging.Debug(subsystem, "Context done, leaving line mode")
			return nil
		default:
		}

		line, err := in.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				fmt.Fprintln(r.out, interpreter.QuitStatus)
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.out, interpreter.QuitStatus)
			return nil
		case err != nil:
			return fmt.Errorf("readline error: %w", err)
		}

		if r.show(r.runner.Handle(ctx, line)) {
			return nil
		}
	}
}

// show prints a result and reports whether the session asked to quit.
func (r *REPL) show(res session.Result) bool {
	if res.Content != nil {
		for _, row := range view.Adapt(res.Content, r.width()) {
			fmt.Fprintln(r.out, row)
		}
	}
	if res.Status != "" {
		fmt.Fprintln(r.out, design.DimStyle.Render(res.Status))
	}
	return res.Quit
}

// completer completes verbs and, for commands taking a board, the codes of
// the boards list once it has been loaded.
func (r *REPL) completer() *readline.PrefixCompleter {
	boardCodes := readline.PcItemDynamic(func(string) []string {
		boards := r.runner.State().Caches.Boards
		codes := make([]string, 0, len(boards))
		for _, b := range boards {
			codes = append(codes, b.Code)
		}
		return codes
	})

	var items []readline.PrefixCompleterInterface
	for _, rule := range interpreter.Grammar {
		for _, name := range rule.Names() {
			if takesBoard(rule) {
				items = append(items, readline.PcItem(name, boardCodes))
			} else {
				items = append(items, readline.PcItem(name))
			}
		}
	}
	return readline.NewPrefixCompleter(items...)
}

func takesBoard(rule interpreter.Rule) bool {
	switch rule.Verb {
	case interpreter.VerbBoard, interpreter.VerbThread, interpreter.VerbArchive:
		return true
	}
	return false
}

// filterInput blocks ctrl+z, which would suspend the process mid-prompt.
func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func screenWidth() int {
	if w := readline.GetScreenWidth(); w > 0 {
		return w
	}
	return 80
}
