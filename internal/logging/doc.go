// Package logging provides concrete implementations of the
// extcheck.Logger interface.
//
// Loggers write to stderr only: stdout is reserved for the validation
// report so it stays machine-parseable when piped.
package logging
