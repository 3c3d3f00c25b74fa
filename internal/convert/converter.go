package convert

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"darkroom/internal/fileutil"
	"darkroom/internal/logging"
	"darkroom/internal/plan"
	"darkroom/internal/scan"
	"darkroom/internal/services"
	"darkroom/internal/services/ffmpeg"
)

// Converter executes single conversion tasks. It is safe for concurrent use
// by multiple pool workers.
type Converter struct {
	quality    int
	overwrite  bool
	transcoder ffmpeg.Transcoder
	logger     *slog.Logger
}

// Options configures a Converter.
type Options struct {
	// Quality is the JPEG encode quality (1-100).
	Quality int
	// Overwrite re-converts files whose output already exists. When false,
	// an existing output yields a skipped outcome.
	Overwrite bool
	// Transcoder handles video tasks. Nil means no transcoder is
	// available; video tasks are skipped with a reason.
	Transcoder ffmpeg.Transcoder
	Logger     *slog.Logger
}

// New constructs a Converter.
func New(opts Options) *Converter {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{
		quality:    opts.Quality,
		overwrite:  opts.Overwrite,
		transcoder: opts.Transcoder,
		logger:     logger.With(slog.String(logging.FieldComponent, "convert")),
	}
}

// Convert runs one task to completion and returns its outcome. Errors are
// never propagated; they become Failed outcomes.
func (c *Converter) Convert(ctx context.Context, task plan.Task) Outcome {
	log := c.logger.With(
		slog.String(logging.FieldPath, task.Input),
		slog.String(logging.FieldKind, string(task.Kind)),
	)

	if !c.overwrite && fileutil.Exists(task.Output) {
		log.Debug("output exists, skipping")
		return skipped(task, "output already exists")
	}

	if task.Kind == scan.KindVideo && c.transcoder == nil {
		log.Warn("no transcoder available, skipping video")
		return skipped(task, "ffmpeg not available")
	}

	if err := fileutil.EnsureDir(filepath.Dir(task.Output)); err != nil {
		return failed(task, services.Wrap(services.ErrOutputWrite, string(task.Kind), "create output directory", err), 0)
	}

	start := time.Now()
	var err error
	switch task.Kind {
	case scan.KindVideo:
		err = c.convertVideo(ctx, task)
	default:
		err = c.convertImage(task)
	}
	elapsed := time.Since(start)

	if err != nil {
		log.Error("conversion failed", slog.String("error", err.Error()))
		return failed(task, err, elapsed)
	}

	outputBytes := fileutil.FileSize(task.Output)
	log.Debug("conversion complete",
		slog.Int64("output_bytes", outputBytes),
		slog.Duration("elapsed", elapsed))
	return converted(task, outputBytes, elapsed)
}
