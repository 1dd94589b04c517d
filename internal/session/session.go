// Package session holds the browsing context and turns commands into
// display content.
//
// Every operation is a transition: it takes the current State and returns
// the next State together with a Result. A failed or abandoned fetch
// returns the input State unchanged. States never share mutable backing
// arrays with their successors, so callers can keep any State value as a
// snapshot.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"chancli/internal/comment"
	"chancli/internal/imageboard"
	"chancli/pkg/logging"
)

const subsystem = "Session"

const (
	DefaultStatus     = "Type help for instructions, exit to quit."
	NoCommentText     = "- no comment -"
	openUsageStatus   = "Invalid argument. Wrong index? Use open <index>."
	openNoBoardStatus = "Open a board first to issue this command."
)

// Context is the quick-open context. ActiveBoard is empty until a board
// page or an archive has been displayed.
type Context struct {
	ActiveBoard string
	OpenableIDs []int64
}

// Caches keeps the last successfully decoded payload per category.
type Caches struct {
	Boards  []imageboard.Board
	Threads []imageboard.ThreadSummary
	Thread  []imageboard.Post
	Archive []int64
}

// State is the complete session state.
type State struct {
	Context Context
	Caches  Caches
}

// Formatter turns a raw comment into display lines.
type Formatter interface {
	Format(raw string) []comment.Line
}

// Config configures an Engine.
type Config struct {
	Fetcher   imageboard.Fetcher
	Formatter Formatter // defaults to comment.Formatter
	Indent    int       // comment body indentation
	Version   string    // shown on the splash page
}

// Engine implements the session operations on top of a Fetcher.
type Engine struct {
	fetcher   imageboard.Fetcher
	formatter Formatter
	indent    int
	version   string
}

// New creates an Engine.
func New(cfg Config) *Engine {
	if cfg.Formatter == nil {
		cfg.Formatter = comment.Formatter{}
	}
	if cfg.Indent < 0 {
		cfg.Indent = 0
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Engine{
		fetcher:   cfg.Fetcher,
		formatter: cfg.Formatter,
		indent:    cfg.Indent,
		version:   cfg.Version,
	}
}

// fetch retrieves and decodes one resource.
func fetch[T any](ctx context.Context, e *Engine, r imageboard.Resource, decode func(imageboard.Resource, []byte) (T, error)) (T, error) {
	var zero T
	raw, err := e.fetcher.Fetch(ctx, r)
	if err != nil {
		return zero, err
	}
	v, err := decode(r, raw)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// failure builds the status-only result for a fetch that produced nothing.
func failure(r imageboard.Resource, err error) Result {
	var fe *imageboard.FetchError
	if !errors.As(err, &fe) {
		fe = &imageboard.FetchError{Kind: imageboard.ErrorUnknown, Resource: r, Err: err}
	}
	if fe.Kind == imageboard.ErrorCanceled {
		logging.Debug(subsystem, "Fetch of %s abandoned", r)
	} else {
		logging.Warn(subsystem, "%s", fe.Summary())
	}
	return Result{Status: fe.Summary()}
}

// ListBoards shows all boards. The boards list is fetched at most once; later
// calls reuse the cached list.
func (e *Engine) ListBoards(ctx context.Context, st State) (State, Result) {
	boards := st.Caches.Boards
	if boards == nil {
		r := imageboard.Boards()
		fetched, err := fetch(ctx, e, r, imageboard.DecodeBoards)
		if err != nil {
			return st, failure(r, err)
		}
		st.Caches.Boards = fetched
		boards = fetched
	} else {
		logging.Debug(subsystem, "Reusing cached boards list (%d boards)", len(boards))
	}

	var b builder
	b.line(0, plain("Displaying all boards. Codes are "), highlight("highlighted"), plain("."))
	b.blank()
	for _, board := range boards {
		b.line(0, plain("/"), highlight(board.Code), plain("/ - "+board.Title))
	}
	return st, Result{Content: b.content(), Status: "Displaying all boards"}
}

// Board shows one page of a board and makes its threads quick-openable.
func (e *Engine) Board(ctx context.Context, st State, code string, page int) (State, Result) {
	r := imageboard.ThreadPage(code, page)
	summaries, err := fetch(ctx, e, r, imageboard.DecodeThreadPage)
	if err != nil {
		return st, failure(r, err)
	}

	ids := make([]int64, len(summaries))
	for i, s := range summaries {
		ids[i] = s.ID
	}
	st.Context = Context{ActiveBoard: code, OpenableIDs: ids}
	st.Caches.Threads = summaries

	var b builder
	b.line(0, plain("Displaying page "), highlight(strconv.Itoa(page)), plain(" of /"), highlight(code), plain("/."))
	b.blank()
	for i, s := range summaries {
		b.line(0,
			highlight(fmt.Sprintf("(%d)", i+1)), plain(" "),
			highlight(fmt.Sprintf("No. %d", s.ID)), plain(" "),
			muted(s.Timestamp))
		e.body(&b, s.FirstComment)
	}
	return st, Result{Content: b.content(), Status: fmt.Sprintf("Displaying page %d of /%s/", page, code)}
}

// Thread shows a thread with all its replies. The quick-open context is
// left as it is.
func (e *Engine) Thread(ctx context.Context, st State, code string, id int64) (State, Result) {
	r := imageboard.Thread(code, id)
	posts, err := fetch(ctx, e, r, imageboard.DecodeThread)
	if err != nil {
		return st, failure(r, err)
	}
	st.Caches.Thread = posts

	var b builder
	b.line(0, plain("Displaying thread "), highlight(strconv.FormatInt(id, 10)), plain(" in /"), highlight(code), plain("/."))
	b.blank()
	for _, p := range posts {
		b.line(0, highlight(fmt.Sprintf("No. %d", p.ID)), plain(" "), muted(p.Timestamp))
		e.body(&b, p.Comment)
	}
	return st, Result{Content: b.content(), Status: fmt.Sprintf("Displaying thread %d in /%s/", id, code)}
}

// Archive lists the archived thread ids of a board and makes them
// quick-openable.
func (e *Engine) Archive(ctx context.Context, st State, code string) (State, Result) {
	r := imageboard.Archive(code)
	ids, err := fetch(ctx, e, r, imageboard.DecodeArchive)
	if err != nil {
		return st, failure(r, err)
	}
	st.Context = Context{ActiveBoard: code, OpenableIDs: append([]int64(nil), ids...)}
	st.Caches.Archive = ids

	var b builder
	b.line(0, plain("Displaying archive of /"), highlight(code), plain("/."))
	b.blank()
	for i, id := range ids {
		b.line(0, highlight(fmt.Sprintf("[%d]", i+1)), plain(fmt.Sprintf(" No. %d", id)))
	}
	return st, Result{Content: b.content(), Status: fmt.Sprintf("Displaying archive of /%s/", code)}
}

// Open shows the thread at the 1-based index of the last board page or
// archive.
func (e *Engine) Open(ctx context.Context, st State, index int) (State, Result) {
	if st.Context.ActiveBoard == "" {
		return st, Result{Status: openNoBoardStatus}
	}
	if index < 1 || index > len(st.Context.OpenableIDs) {
		return st, Result{Status: openUsageStatus}
	}
	return e.Thread(ctx, st, st.Context.ActiveBoard, st.Context.OpenableIDs[index-1])
}

// body appends the indented comment lines of a post and a separating blank line.
func (e *Engine) body(b *builder, raw *string) {
	if raw == nil {
		b.line(e.indent, muted(NoCommentText))
		b.blank()
		return
	}
	for _, l := range e.formatter.Format(*raw) {
		style := StylePlain
		if l.Quoted {
			style = StyleQuoted
		}
		b.line(e.indent, Segment{Text: l.Text, Style: style})
	}
	b.blank()
}
