// Package filesystem provides the filesystem abstraction used by the
// report aggregator. Description files are always named explicitly on
// the command line, so the abstraction covers single-file access only:
// an OS-backed provider for production and an in-memory provider for
// engine tests.
package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider abstracts file access for description file validation.
type Provider interface {
	// ReadFile reads the file at the given path. Any error is an
	// unrecoverable I/O failure for the file being validated.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
