// Package comment turns the HTML-bearing comment field of a post into plain
// text lines.
package comment

import (
	"strings"

	"golang.org/x/net/html"
)

// QuoteMarker is the greentext marker; any line containing it is quoted.
const QuoteMarker = ">"

// Line is one rendered line of a comment.
type Line struct {
	Text   string
	Quoted bool
}

var preserve = strings.NewReplacer(
	"<br>", "\n",
	"&gt;", ">",
	"&quot;", `"`,
)

// Format converts a raw comment into lines. Line breaks become line
// boundaries, the quote and greater-than entities are unescaped and every
// remaining tag is stripped.
func Format(raw string) []Line {
	text := stripTags(preserve.Replace(raw))
	parts := strings.Split(text, "\n")
	lines := make([]Line, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, Line{Text: p, Quoted: strings.Contains(p, QuoteMarker)})
	}
	return lines
}

// Formatter adapts Format to an interface for injection.
type Formatter struct{}

// Format implements the formatter contract used by the session engine.
func (Formatter) Format(raw string) []Line {
	return Format(raw)
}

func stripTags(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// A strings.Reader only ever fails with io.EOF.
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}
