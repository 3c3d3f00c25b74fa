// Package plan maps scanned input files to output paths and builds the
// immutable task list the worker pool executes.
//
// Path mapping is a pure function: the relative directory structure under
// the input root is mirrored under the output root and the extension is
// swapped for the target format. Collisions are not deduplicated; the last
// writer wins.
package plan
