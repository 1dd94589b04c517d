// Package interpreter parses command lines and dispatches them to the
// session operations.
//
// Parsing is table driven: Grammar lists every verb with its aliases and
// the argument shapes it accepts. A line that names no known verb yields
// an "Invalid command" status, while a known verb with malformed
// arguments yields that verb's usage text. Neither touches the session.
//
// The Interpreter itself holds no state. Hosts own the session State and
// pass it in with every line:
//
//	st, res := interp.Interpret(ctx, st, "board g 2")
//
// Runner wraps an Interpreter with a State and a mutex for hosts that run
// one command at a time, such as the line-mode prompt.
package interpreter
