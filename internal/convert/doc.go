// Package convert performs one conversion per task: HEIC/HEIF stills are
// decoded in-process and re-encoded as JPEG, videos are handed to the
// external transcoder.
//
// All per-task failures are caught at this boundary and folded into a
// Failed outcome carrying a human-readable reason; a failure never aborts
// the surrounding run. Tests can swap the image decoder and the transcoder
// to exercise worker behaviour without real media.
package convert
