package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Verb names a command.
type Verb string

const (
	VerbEmpty      Verb = ""
	VerbQuit       Verb = "exit"
	VerbHelp       Verb = "help"
	VerbLicense    Verb = "license"
	VerbListBoards Verb = "listboards"
	VerbOpen       Verb = "open"
	VerbBoard      Verb = "board"
	VerbThread     Verb = "thread"
	VerbArchive    Verb = "archive"
)

// ArgKind validates a single argument token.
type ArgKind int

const (
	// ArgWord accepts [A-Za-z0-9_]+.
	ArgWord ArgKind = iota
	// ArgPositive accepts a word that is also a positive decimal integer.
	ArgPositive
)

var wordPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func (k ArgKind) valid(tok string) bool {
	if !wordPattern.MatchString(tok) {
		return false
	}
	if k == ArgPositive {
		n, err := strconv.ParseInt(tok, 10, 64)
		return err == nil && n > 0
	}
	return true
}

// Rule is one row of the grammar: a verb, its aliases and the argument
// shapes it accepts.
type Rule struct {
	Verb    Verb
	Aliases []string
	// Forms lists the accepted argument lists. A rule whose only form is
	// empty takes no arguments.
	Forms [][]ArgKind
	Usage string
}

// Grammar is the command table, in help order.
var Grammar = []Rule{
	{Verb: VerbListBoards, Forms: [][]ArgKind{{}}},
	{Verb: VerbOpen, Forms: [][]ArgKind{{ArgPositive}}, Usage: "Invalid argument. Wrong index? Use open <index>."},
	{Verb: VerbBoard, Forms: [][]ArgKind{{ArgWord}, {ArgWord, ArgPositive}}, Usage: "Invalid arguments. Use board <code> or board <code> <page>."},
	{Verb: VerbThread, Forms: [][]ArgKind{{ArgWord, ArgPositive}}, Usage: "Invalid arguments. Use thread <board> <id>."},
	{Verb: VerbArchive, Forms: [][]ArgKind{{ArgWord}}, Usage: "Invalid argument. Use archive <code>."},
	{Verb: VerbHelp, Forms: [][]ArgKind{{}}},
	{Verb: VerbLicense, Forms: [][]ArgKind{{}}},
	{Verb: VerbQuit, Aliases: []string{"quit", "q"}, Forms: [][]ArgKind{{}}},
}

// Names returns every verb and alias.
func (r Rule) Names() []string {
	return append([]string{string(r.Verb)}, r.Aliases...)
}

// TakesArgs reports whether any form accepts arguments.
func (r Rule) TakesArgs() bool {
	for _, f := range r.Forms {
		if len(f) > 0 {
			return true
		}
	}
	return false
}

func (r Rule) match(args []string) bool {
	for _, form := range r.Forms {
		if len(form) != len(args) {
			continue
		}
		ok := true
		for i, kind := range form {
			if !kind.valid(args[i]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

var rulesByName = func() map[string]Rule {
	m := make(map[string]Rule)
	for _, r := range Grammar {
		for _, n := range r.Names() {
			m[n] = r
		}
	}
	return m
}()

// Command is a parsed, validated input line.
type Command struct {
	Verb Verb
	Args []string
}

// Int returns argument i as an integer. Only valid for ArgPositive slots.
func (c Command) Int(i int) int64 {
	n, _ := strconv.ParseInt(c.Args[i], 10, 64)
	return n
}

// UsageError is a known verb with arguments of the wrong number or shape.
type UsageError struct {
	Verb  Verb
	Usage string
}

func (e *UsageError) Error() string {
	return e.Usage
}

// UnknownCommandError is input that matches no verb.
type UnknownCommandError struct {
	Line string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Invalid command: %s", e.Line)
}

// Parse matches a line against the grammar. Surrounding whitespace is
// ignored and a blank line parses to VerbEmpty. The verb is the whole first
// token, matched case-sensitively.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	tokens := strings.Fields(trimmed)
	if len(tokens) == 0 {
		return Command{Verb: VerbEmpty}, nil
	}

	rule, ok := rulesByName[tokens[0]]
	if !ok {
		return Command{}, &UnknownCommandError{Line: trimmed}
	}
	args := tokens[1:]
	if !rule.TakesArgs() {
		if len(args) > 0 {
			return Command{}, &UnknownCommandError{Line: trimmed}
		}
		return Command{Verb: rule.Verb}, nil
	}
	if !rule.match(args) {
		return Command{}, &UsageError{Verb: rule.Verb, Usage: rule.Usage}
	}
	return Command{Verb: rule.Verb, Args: args}, nil
}
