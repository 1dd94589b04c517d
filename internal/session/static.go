package session

import "strings"

var banner = []string{
	`    ____ _   _    _    _   _    ____ _     ___`,
	`   / ___| | | |  / \  | \ | |  / ___| |   |_ _|`,
	`  | |   | |_| | / _ \ |  \| | | |   | |    | |`,
	`  | |___|  _  |/ ___ \| |\  | | |___| |___ | |`,
	`   \____|_| |_/_/   \_\_| \_|  \____|_____|___|`,
}

// HelpEntry documents one command on the help page.
type HelpEntry struct {
	Syntax      string
	Description string
}

// BrowseHelp and MiscHelp are the two command groups of the help page.
var (
	BrowseHelp = []HelpEntry{
		{"listboards", "list available boards aside their code"},
		{"open <index>", "open a thread from the current window, specified by its index"},
		{"board <code>", "display the first page (ex: board g)"},
		{"board <code> <page>", "display the nth page starting from 1"},
		{"thread <board> <id>", "open a specific thread"},
		{"archive <code>", "display archived threads from a board"},
	}
	MiscHelp = []HelpEntry{
		{"help", "show this page"},
		{"license", "display the license page"},
		{"exit/quit/q", "exit the application"},
	}
)

const apiAttribution = "Chancli utilizes the official 4chan API, which can be found at https://github.com/4chan/4chan-API."

const licenseText = `The MIT License (MIT)

Copyright (c) 2015 Son Nguyen <mail@gimu.org>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.`

// Help returns the help page.
func (e *Engine) Help() Result {
	var b builder
	b.line(0, Segment{Text: "Basic Commands", Style: StyleHeading})
	b.blank()
	b.line(0, plain(apiAttribution))
	b.blank()
	for _, h := range BrowseHelp {
		b.line(0, highlight(h.Syntax), plain(" - "+h.Description))
	}
	b.blank()
	for _, h := range MiscHelp {
		b.line(0, highlight(h.Syntax), plain(" - "+h.Description))
	}
	return Result{Content: b.content(), Status: "Help page"}
}

// License returns the license page.
func (e *Engine) License() Result {
	var b builder
	for _, l := range strings.Split(licenseText, "\n") {
		b.line(0, plain(l))
	}
	return Result{Content: b.content(), Status: "License page"}
}

// Splash returns the start page with the default status.
func (e *Engine) Splash() Result {
	var b builder
	b.blank()
	for _, l := range banner {
		b.line(0, plain(l))
	}
	b.line(0, plain("        chancli version "), highlight(e.version))
	return Result{Content: b.content(), Status: DefaultStatus}
}
