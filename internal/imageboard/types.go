package imageboard

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Board is a named category, identified by a short code.
type Board struct {
	Code  string
	Title string
}

// ThreadSummary is the opening post of a thread as listed on a board page.
type ThreadSummary struct {
	ID           int64
	Timestamp    string
	FirstComment *string
}

// Post is one entry of a thread, opening post included.
type Post struct {
	ID        int64
	Timestamp string
	Comment   *string
}

// Wire shapes. Only the fields the client renders are declared.
type (
	wireBoards struct {
		Boards []wireBoard `json:"boards"`
	}
	wireBoard struct {
		Board string `json:"board"`
		Title string `json:"title"`
	}
	wireThreadPage struct {
		Threads []wireThread `json:"threads"`
	}
	wireThread struct {
		Posts []wirePost `json:"posts"`
	}
	wirePost struct {
		No  int64   `json:"no"`
		Now string  `json:"now"`
		Com *string `json:"com"`
	}
)

func decodeError(r Resource, err error) *FetchError {
	return &FetchError{Kind: ErrorDecode, Resource: r, Err: err}
}

// DecodeBoards decodes the boards list payload.
func DecodeBoards(r Resource, raw []byte) ([]Board, error) {
	var w wireBoards
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, decodeError(r, err)
	}
	if w.Boards == nil {
		return nil, decodeError(r, errors.New(`missing "boards"`))
	}
	boards := make([]Board, 0, len(w.Boards))
	for _, b := range w.Boards {
		boards = append(boards, Board{Code: b.Board, Title: b.Title})
	}
	return boards, nil
}

// DecodeThreadPage decodes one board page into summaries in response order.
func DecodeThreadPage(r Resource, raw []byte) ([]ThreadSummary, error) {
	var w wireThreadPage
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, decodeError(r, err)
	}
	if w.Threads == nil {
		return nil, decodeError(r, errors.New(`missing "threads"`))
	}
	summaries := make([]ThreadSummary, 0, len(w.Threads))
	for i, t := range w.Threads {
		if len(t.Posts) == 0 {
			return nil, decodeError(r, fmt.Errorf("thread %d has no posts", i+1))
		}
		op := t.Posts[0]
		summaries = append(summaries, ThreadSummary{ID: op.No, Timestamp: op.Now, FirstComment: op.Com})
	}
	return summaries, nil
}

// DecodeThread decodes a single thread into its posts in reply order.
func DecodeThread(r Resource, raw []byte) ([]Post, error) {
	var w wireThread
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, decodeError(r, err)
	}
	if len(w.Posts) == 0 {
		return nil, decodeError(r, errors.New("thread has no posts"))
	}
	posts := make([]Post, 0, len(w.Posts))
	for _, p := range w.Posts {
		posts = append(posts, Post{ID: p.No, Timestamp: p.Now, Comment: p.Com})
	}
	return posts, nil
}

// DecodeArchive decodes the archive payload, a bare array of thread ids.
func DecodeArchive(r Resource, raw []byte) ([]int64, error) {
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, decodeError(r, err)
	}
	if ids == nil {
		return nil, decodeError(r, errors.New("archive is null"))
	}
	return ids, nil
}
