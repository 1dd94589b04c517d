package view

import (
	"strings"
	"unicode"

	"chancli/internal/session"
	"chancli/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StyleFor maps a content style class to its lipgloss style.
func StyleFor(s session.Style) lipgloss.Style {
	switch s {
	case session.StyleHighlight:
		return design.ContentHighlightStyle
	case session.StyleQuoted:
		return design.ContentQuotedStyle
	case session.StyleHeading:
		return design.ContentHeadingStyle
	case session.StyleMuted:
		return design.ContentMutedStyle
	default:
		return design.ContentPlainStyle
	}
}

// Adapt renders content into styled terminal rows no wider than width.
// Wrapped rows keep the indentation of their line. A width of zero or
// less disables wrapping.
func Adapt(c *session.Content, width int) []string {
	if c == nil {
		return nil
	}
	var rows []string
	for _, l := range c.Lines {
		rows = append(rows, adaptLine(l, width)...)
	}
	return rows
}

// AdaptString is Adapt joined with newlines, ready for a viewport.
func AdaptString(c *session.Content, width int) string {
	return strings.Join(Adapt(c, width), "\n")
}

type piece struct {
	text  string
	style session.Style
}

func adaptLine(l session.Line, width int) []string {
	indent := l.Indent
	avail := width - indent
	if width > 0 && avail < 1 {
		indent, avail = 0, width
	}
	pad := strings.Repeat(" ", indent)

	var rows [][]piece
	var row []piece
	col := 0
	// wrap ends the row at a break, dropping the spaces before it.
	wrap := func() {
		for n := len(row); n > 0; n = len(row) {
			row[n-1].text = strings.TrimRightFunc(row[n-1].text, unicode.IsSpace)
			if row[n-1].text != "" {
				break
			}
			row = row[:n-1]
		}
		rows = append(rows, row)
		row, col = nil, 0
	}
	add := func(text string, style session.Style) {
		if n := len(row); n > 0 && row[n-1].style == style {
			row[n-1].text += text
		} else {
			row = append(row, piece{text: text, style: style})
		}
		col += runewidth.StringWidth(text)
	}

	for _, seg := range l.Segments {
		for _, tok := range tokenize(seg.Text) {
			w := runewidth.StringWidth(tok)
			if width <= 0 || col+w <= avail {
				add(tok, seg.Style)
				continue
			}
			if isSpace(tok) {
				// Swallowed by the break before the next word.
				col = avail
				continue
			}
			if col > 0 && w <= avail {
				wrap()
				add(tok, seg.Style)
				continue
			}
			// A word longer than the row is hard-split.
			for _, r := range tok {
				rw := runewidth.RuneWidth(r)
				if col+rw > avail && col > 0 {
					wrap()
				}
				add(string(r), seg.Style)
			}
		}
	}
	rows = append(rows, row)

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		var b strings.Builder
		if len(r) > 0 {
			b.WriteString(pad)
		}
		for _, p := range r {
			b.WriteString(StyleFor(p.style).Render(p.text))
		}
		out = append(out, b.String())
	}
	return out
}

// tokenize splits s into alternating runs of spaces and non-spaces.
func tokenize(s string) []string {
	var toks []string
	start, prevSpace := 0, false
	for i, r := range s {
		sp := unicode.IsSpace(r)
		if i > 0 && sp != prevSpace {
			toks = append(toks, s[start:i])
			start = i
		}
		prevSpace = sp
	}
	if start < len(s) {
		toks = append(toks, s[start:])
	}
	return toks
}

func isSpace(tok string) bool {
	return strings.TrimSpace(tok) == ""
}
