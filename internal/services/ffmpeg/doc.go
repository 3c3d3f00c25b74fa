// Package ffmpeg wraps the external ffmpeg binary so the conversion worker
// can transcode videos to H.264/AAC MP4.
//
// It exposes a Transcoder interface and a CLI implementation that builds
// the argument list, runs the process to completion, and surfaces the tail
// of stderr on failure. Tests can swap in fakes to avoid executing the real
// binary while still exercising worker behaviour.
package ffmpeg
