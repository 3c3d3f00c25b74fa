package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

// stderrTailLines bounds how much transcoder output is attached to a
// failure; full logs are rarely useful and can run to megabytes.
const stderrTailLines = 8

// Transcoder converts one video file to the target container. Implementations
// block until the conversion finishes.
type Transcoder interface {
	Transcode(ctx context.Context, inputPath, outputPath string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithPreset overrides the x264 speed preset.
func WithPreset(preset string) Option {
	return func(c *CLI) {
		if preset != "" {
			c.preset = preset
		}
	}
}

// WithCodecs overrides the video and audio codecs.
func WithCodecs(video, audio string) Option {
	return func(c *CLI) {
		if video != "" {
			c.videoCodec = video
		}
		if audio != "" {
			c.audioCodec = audio
		}
	}
}

// WithThreads sets the encoder thread count per conversion.
func WithThreads(threads int) Option {
	return func(c *CLI) {
		if threads > 0 {
			c.threads = threads
		}
	}
}

// CLI wraps the ffmpeg command-line transcoder.
type CLI struct {
	binary     string
	preset     string
	videoCodec string
	audioCodec string
	threads    int
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{
		binary:     "ffmpeg",
		preset:     "ultrafast",
		videoCodec: "libx264",
		audioCodec: "aac",
		threads:    1,
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Transcode runs ffmpeg to completion. Existing outputs are overwritten.
// On non-zero exit the returned error carries the tail of stderr.
func (c *CLI) Transcode(ctx context.Context, inputPath, outputPath string) error {
	if strings.TrimSpace(inputPath) == "" {
		return errors.New("input path required")
	}
	if strings.TrimSpace(outputPath) == "" {
		return errors.New("output path required")
	}

	args := []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", inputPath,
		"-vcodec", c.videoCodec,
		"-preset", c.preset,
		"-threads", strconv.Itoa(c.threads),
		"-acodec", c.audioCodec,
		"-strict", "experimental",
		outputPath,
	}

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		tail := stderrTail(stderr.String())
		if tail == "" {
			return fmt.Errorf("ffmpeg failed: %w", err)
		}
		return fmt.Errorf("ffmpeg failed: %w: %s", err, tail)
	}
	return nil
}

// stderrTail collapses the last few non-empty stderr lines into one string.
func stderrTail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	kept := make([]string, 0, stderrTailLines)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) > stderrTailLines {
		kept = kept[len(kept)-stderrTailLines:]
	}
	return strings.Join(kept, " | ")
}

var _ Transcoder = (*CLI)(nil)
