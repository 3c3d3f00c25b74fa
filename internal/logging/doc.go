// Package logging assembles the structured slog loggers used across
// Darkroom.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes the standardized field names so pipeline code tags
// log lines consistently with run IDs and task paths. A no-op logger is
// provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
