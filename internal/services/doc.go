// Package services defines the shared error taxonomy for conversion work
// and hosts clients for external tools in subpackages.
//
// Per-task failures are wrapped with one of the exported sentinel errors so
// the summary can classify them without string matching; only
// invocation-level errors escape to terminate the process.
package services
