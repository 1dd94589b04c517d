// Package app wires configuration, logging and the imageboard client into
// the interpreter and starts either the full-screen TUI or the line-mode
// prompt.
//
// The bootstrap sequence is:
//  1. Initialize CLI logging at warn level, or debug with --debug.
//  2. Load layered configuration, or a single file with --config.
//  3. Apply command line overrides and validate the result.
//  4. Build the fetcher, session engine and interpreter.
//  5. Run the selected mode until the user quits.
package app
