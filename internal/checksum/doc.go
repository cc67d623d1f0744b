// Package checksum computes content checksums for description files.
//
// Two checksums are produced per file: a raw SHA-256 of the content as
// submitted, and a normalized SHA-256 that is stable across comment,
// blank-line, and whitespace edits. Catalog tooling uses the normalized
// checksum to detect meaningful changes between submissions of the same
// extension.
package checksum
