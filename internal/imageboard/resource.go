package imageboard

import (
	"fmt"
	"net/url"
	"strconv"
)

// ResourceKind identifies one of the API endpoints.
type ResourceKind int

const (
	KindBoards ResourceKind = iota
	KindThreadPage
	KindThread
	KindArchive
)

// String returns the human-readable resource name used in status lines.
func (k ResourceKind) String() string {
	switch k {
	case KindBoards:
		return "boards list"
	case KindThreadPage:
		return "threads list"
	case KindThread:
		return "thread"
	case KindArchive:
		return "archive list"
	default:
		return "resource"
	}
}

// Resource is a single fetchable API document.
type Resource struct {
	Kind     ResourceKind
	Board    string
	Page     int
	ThreadID int64
}

// Boards is the list of all boards.
func Boards() Resource {
	return Resource{Kind: KindBoards}
}

// ThreadPage is one index page of a board, starting at 1.
func ThreadPage(board string, page int) Resource {
	return Resource{Kind: KindThreadPage, Board: board, Page: page}
}

// Thread is a single thread with all its replies.
func Thread(board string, id int64) Resource {
	return Resource{Kind: KindThread, Board: board, ThreadID: id}
}

// Archive is the list of archived thread ids of a board.
func Archive(board string) Resource {
	return Resource{Kind: KindArchive, Board: board}
}

// Name returns the resource name shown to the user.
func (r Resource) Name() string {
	return r.Kind.String()
}

// Path returns the endpoint path relative to the API base URL.
func (r Resource) Path() string {
	board := url.PathEscape(r.Board)
	switch r.Kind {
	case KindBoards:
		return "boards.json"
	case KindThreadPage:
		return fmt.Sprintf("%s/%d.json", board, r.Page)
	case KindThread:
		return fmt.Sprintf("%s/thread/%s.json", board, strconv.FormatInt(r.ThreadID, 10))
	case KindArchive:
		return fmt.Sprintf("%s/archive.json", board)
	default:
		return ""
	}
}

// String implements fmt.Stringer for logging.
func (r Resource) String() string {
	return r.Name() + " (" + r.Path() + ")"
}
