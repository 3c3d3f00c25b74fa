package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"darkroom/internal/config"
	"darkroom/internal/convert"
	"darkroom/internal/deps"
	"darkroom/internal/logging"
	"darkroom/internal/plan"
	"darkroom/internal/pool"
	"darkroom/internal/report"
	"darkroom/internal/runlock"
	"darkroom/internal/scan"
	"darkroom/internal/services/ffmpeg"
)

// runConvert drives one conversion run end to end: scan, plan, convert,
// report. Per-file failures land in the summary; only invalid invocation
// (bad root, bad config, held lock) returns an error and a non-zero exit.
func runConvert(cmd *cobra.Command, inputArg string, flags *convertFlags) error {
	cfg, err := loadRunConfig(cmd, flags)
	if err != nil {
		return err
	}

	inputRoot, err := config.ExpandPath(inputArg)
	if err != nil {
		return fmt.Errorf("resolve input directory: %w", err)
	}

	outputRoot := flags.outputDir
	if outputRoot == "" {
		outputRoot = cfg.OutputRootFor(inputRoot)
	}
	outputRoot, err = config.ExpandPath(outputRoot)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	files, err := scan.Scan(scan.Options{
		Root:            inputRoot,
		PruneDir:        outputRoot,
		ImageExtensions: cfg.Convert.ImageExtensions,
		VideoExtensions: cfg.Convert.VideoExtensions,
	})
	if err != nil {
		return err
	}
	tasks := plan.Build(files, inputRoot, outputRoot)

	out := cmd.OutOrStdout()
	if flags.dryRun {
		renderPlan(out, tasks, outputRoot)
		return nil
	}
	if len(tasks) == 0 {
		fmt.Fprintf(out, "No convertible media files found under %s\n", inputRoot)
		renderSummary(out, report.Summary{})
		return nil
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String(logging.FieldRunID, uuid.NewString()))
	logger.Info("starting run",
		slog.String("input", inputRoot),
		slog.String("output", outputRoot),
		slog.Int("tasks", len(tasks)))

	lock, err := runlock.Acquire(outputRoot)
	if err != nil {
		return err
	}
	defer lock.Release()

	var transcoder ffmpeg.Transcoder
	if binary, ok := deps.FFmpegAvailable(cfg.FFmpeg.Binary); ok {
		transcoder = ffmpeg.NewCLI(
			ffmpeg.WithBinary(binary),
			ffmpeg.WithPreset(cfg.FFmpeg.Preset),
			ffmpeg.WithCodecs(cfg.FFmpeg.VideoCodec, cfg.FFmpeg.AudioCodec),
			ffmpeg.WithThreads(cfg.FFmpeg.Threads),
		)
	} else {
		logger.Warn("transcoder unavailable, video files will be skipped",
			slog.String("binary", binary))
	}

	converter := convert.New(convert.Options{
		Quality:    cfg.Convert.Quality,
		Overwrite:  cfg.Library.OverwriteExisting,
		Transcoder: transcoder,
		Logger:     logger,
	})

	progress := newProgressReporter(out, len(tasks))
	start := time.Now()
	outcomes := pool.Run(cmd.Context(), tasks, converter.Convert, pool.Options{
		Workers:    cfg.Convert.Workers,
		OnProgress: progress.update,
		Logger:     logger,
	})
	progress.finish()

	summary := report.Aggregate(outcomes, time.Since(start))
	logger.Info("run complete",
		slog.Int("converted", summary.Converted),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.Duration("elapsed", summary.Elapsed))

	renderSummary(out, summary)
	return nil
}

// loadRunConfig loads the configuration file and layers the command-line
// overrides on top, re-validating the result so a bad flag value fails
// before any work starts.
func loadRunConfig(cmd *cobra.Command, flags *convertFlags) (*config.Config, error) {
	cfg, _, _, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("quality") {
		cfg.Convert.Quality = flags.quality
	}
	if cmd.Flags().Changed("workers") {
		cfg.Convert.Workers = flags.workers
	}
	if cmd.Flags().Changed("preset") {
		cfg.FFmpeg.Preset = flags.preset
	}
	if flags.overwrite {
		cfg.Library.OverwriteExisting = true
	}
	if flags.noOverwrite {
		cfg.Library.OverwriteExisting = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// renderPlan lists what a run would do without touching any files.
func renderPlan(out io.Writer, tasks []plan.Task, outputRoot string) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "Nothing to convert")
		return
	}
	fmt.Fprintf(out, "Would convert %d file(s) into %s:\n", len(tasks), outputRoot)
	for _, task := range tasks {
		fmt.Fprintf(out, "  %-5s %s -> %s\n", task.Kind, task.Input, task.Output)
	}
}
