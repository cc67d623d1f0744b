package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/slicer-infra/extcheck/internal/cli"
	"github.com/slicer-infra/extcheck/pkg/extcheck"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(extcheck.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(extcheck.ExitCodeForError(err))
	}
}
