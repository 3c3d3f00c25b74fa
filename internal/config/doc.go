// Package config loads, normalizes, and validates Darkroom configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and layers CLI flag overrides on top. The
// Config type centralizes every knob the converter needs: JPEG quality,
// worker count, recognized extensions, the ffmpeg invocation, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical extension lists, and clear validation errors.
package config
