// Package checks defines the validation checks applied to extension
// description files.
//
// Each check is a named, pure function of (extension identity, metadata
// mapping) that declares the metadata keys it requires. The runner
// applies a uniform precondition guard before delegating to the check
// body: required keys are verified in declared order and the first
// missing key short-circuits with a missing-key failure, so the body
// never observes incomplete metadata and at most one failure is raised
// per invocation.
//
// Checks never mutate the metadata mapping and never perform I/O; the
// scmurl check inspects URL syntax only and does not touch the network.
package checks
