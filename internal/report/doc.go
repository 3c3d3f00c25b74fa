// Package report aggregates per-task outcomes into the run summary.
//
// Aggregation is pure and tolerates arbitrary outcome arrival order; the
// CLI owns rendering.
package report
