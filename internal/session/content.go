package session

import "strings"

// Style is the presentation class of a text segment. Host UIs map each
// class to their own styling.
type Style int

const (
	StylePlain Style = iota
	// StyleHighlight marks board codes, indices and thread ids.
	StyleHighlight
	// StyleQuoted marks greentext comment lines.
	StyleQuoted
	StyleHeading
	StyleMuted
)

func (s Style) String() string {
	switch s {
	case StyleHighlight:
		return "highlight"
	case StyleQuoted:
		return "quoted"
	case StyleHeading:
		return "heading"
	case StyleMuted:
		return "muted"
	default:
		return "plain"
	}
}

// Segment is a run of text in a single style.
type Segment struct {
	Text  string
	Style Style
}

// Line is one display line. Indent is in columns.
type Line struct {
	Indent   int
	Segments []Segment
}

// Text returns the line without styling or indentation.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Content is a renderer-agnostic block of display lines.
type Content struct {
	Lines []Line
}

// String renders the content as plain text, indentation included.
func (c *Content) String() string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	for i, l := range c.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", l.Indent))
		b.WriteString(l.Text())
	}
	return b.String()
}

// Result is what every operation returns. A nil Content means the previous
// content stays on screen and only the status line changes.
type Result struct {
	Content *Content
	Status  string
	Quit    bool
}

// builder accumulates lines for a Content.
type builder struct {
	lines []Line
}

func (b *builder) line(indent int, segs ...Segment) {
	b.lines = append(b.lines, Line{Indent: indent, Segments: segs})
}

func (b *builder) blank() {
	b.lines = append(b.lines, Line{})
}

func (b *builder) content() *Content {
	return &Content{Lines: b.lines}
}

func plain(s string) Segment     { return Segment{Text: s, Style: StylePlain} }
func highlight(s string) Segment { return Segment{Text: s, Style: StyleHighlight} }
func muted(s string) Segment     { return Segment{Text: s, Style: StyleMuted} }
