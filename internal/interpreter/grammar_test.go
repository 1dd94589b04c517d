package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"", Command{Verb: VerbEmpty}},
		{"   \t ", Command{Verb: VerbEmpty}},
		{"exit", Command{Verb: VerbQuit}},
		{"quit", Command{Verb: VerbQuit}},
		{"q", Command{Verb: VerbQuit}},
		{"help", Command{Verb: VerbHelp}},
		{"  license  ", Command{Verb: VerbLicense}},
		{"listboards", Command{Verb: VerbListBoards}},
		{"open 3", Command{Verb: VerbOpen, Args: []string{"3"}}},
		{"board g", Command{Verb: VerbBoard, Args: []string{"g"}}},
		{"board g 2", Command{Verb: VerbBoard, Args: []string{"g", "2"}}},
		{"board  3  10", Command{Verb: VerbBoard, Args: []string{"3", "10"}}},
		{"thread g 12345", Command{Verb: VerbThread, Args: []string{"g", "12345"}}},
		{"archive po", Command{Verb: VerbArchive, Args: []string{"po"}}},
		{"archive a_b", Command{Verb: VerbArchive, Args: []string{"a_b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_UsageErrors(t *testing.T) {
	tests := []struct {
		line  string
		verb  Verb
		usage string
	}{
		{"open", VerbOpen, "Invalid argument. Wrong index? Use open <index>."},
		{"open x", VerbOpen, "Invalid argument. Wrong index? Use open <index>."},
		{"open 0", VerbOpen, "Invalid argument. Wrong index? Use open <index>."},
		{"open 1 2", VerbOpen, "Invalid argument. Wrong index? Use open <index>."},
		{"board", VerbBoard, "Invalid arguments. Use board <code> or board <code> <page>."},
		{"board g! ", VerbBoard, "Invalid arguments. Use board <code> or board <code> <page>."},
		{"board g two", VerbBoard, "Invalid arguments. Use board <code> or board <code> <page>."},
		{"board g 1 2", VerbBoard, "Invalid arguments. Use board <code> or board <code> <page>."},
		{"thread g", VerbThread, "Invalid arguments. Use thread <board> <id>."},
		{"thread g -5", VerbThread, "Invalid arguments. Use thread <board> <id>."},
		{"archive", VerbArchive, "Invalid argument. Use archive <code>."},
		{"archive a b", VerbArchive, "Invalid argument. Use archive <code>."},
		{"archive /g/", VerbArchive, "Invalid argument. Use archive <code>."},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			var usage *UsageError
			require.ErrorAs(t, err, &usage)
			assert.Equal(t, tt.verb, usage.Verb)
			assert.Equal(t, tt.usage, usage.Error())
		})
	}
}

func TestParse_UnknownCommands(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"hello", "Invalid command: hello"},
		{"Board g", "Invalid command: Board g"},
		{"boards g", "Invalid command: boards g"},
		{"help me", "Invalid command: help me"},
		{"  exit now ", "Invalid command: exit now"},
		{"listboards 1", "Invalid command: listboards 1"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			var unknown *UnknownCommandError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.want, unknown.Error())
		})
	}
}

func TestGrammarTable(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Grammar {
		for _, n := range r.Names() {
			assert.False(t, seen[n], "duplicate verb %q", n)
			seen[n] = true
		}
		if r.TakesArgs() {
			assert.NotEmpty(t, r.Usage, "verb %q takes arguments and needs a usage status", r.Verb)
		}
	}
	assert.True(t, seen["q"])
	assert.Len(t, seen, 10)
}

func TestCommandInt(t *testing.T) {
	cmd, err := Parse("thread g 9007199254740993")
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), cmd.Int(1))
}
