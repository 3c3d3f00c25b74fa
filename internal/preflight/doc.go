// Package preflight runs the environment checks surfaced by `darkroom
// check` and consulted before a conversion run: external binaries,
// directory permissions, and free disk space in the output location.
package preflight
