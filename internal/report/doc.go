// Package report renders run results for the console.
//
// Two renderings are supported: the classic text report (a header line
// per failing file, one indented line per distinct failure, and a final
// summary) and a JSON document carrying the full run result including
// catalog identities and content checksums.
//
// Text output is styled only when stdout is a terminal and colors are
// not suppressed; the plain rendering is byte-stable for scripts that
// parse it.
package report
