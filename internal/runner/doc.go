// Package runner executes the configured checks against description
// files and aggregates the results.
//
// The Runner applies the ordered check list to one file's metadata,
// converting check-level failures into failure records without ever
// aborting on the first error: checks are independent and one failing
// check never suppresses another. Failures with identical detail text
// are reported once per file.
//
// The Aggregator drives the per-file pipeline (read, parse, run checks)
// over the ordered list of paths and produces the run's final tally.
// An unreadable file aborts the whole run; check failures never do.
package runner
