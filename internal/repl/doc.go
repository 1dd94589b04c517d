// Package repl is the line-mode host: a readline prompt with history and
// tab completion that prints every page and status to the terminal.
package repl
