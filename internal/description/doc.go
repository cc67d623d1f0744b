// Package description parses extension description files.
//
// # Format
//
// A description file is a line-oriented key/value text file declaring an
// extension's source-control metadata:
//
//	# This is a comment
//	scm git
//	scmurl https://github.com/example/SlicerFooExtension
//	depends NA
//	build_subdirectory .
//
// Rules:
//   - Lines that are empty after trimming are ignored
//   - Lines starting with '#' are comments
//   - Remaining lines split at the first space into key and value
//   - A bare key (no value part) maps to an absent value, which is
//     distinct from an empty string
//   - Later duplicate keys overwrite earlier ones
//
// Parsing cannot fail; reading the file from disk is the caller's concern
// and any I/O error aborts validation of that file entirely.
//
// # Identity
//
// The extension identity is the file's base name without its suffix
// (e.g. "./index/FooExtension.s4ext" -> "FooExtension"). It attributes
// failures to an extension and is never itself validated. CatalogID
// derives a deterministic UUID v5 from the identity for catalog
// cross-referencing.
package description
