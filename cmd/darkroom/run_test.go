package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"

	"darkroom/internal/scan"
	"darkroom/internal/testsupport"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeTestConfig produces a config file built from the shared test config,
// whose log directory lives inside the test's temp dir so runs never touch
// the real home directory.
func writeTestConfig(t *testing.T, opts ...testsupport.ConfigOption) string {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	encoded, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "darkroom.toml")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// writeStubTranscoder installs a shell script that mimics the transcoder
// binary: the success variant creates the output file (last argument), the
// failure variant exits non-zero with diagnostic output.
func writeStubTranscoder(t *testing.T, fail bool) string {
	t.Helper()

	script := "#!/bin/sh\nfor last; do :; done\n"
	if fail {
		script += "echo 'moov atom not found' >&2\nexit 1\n"
	} else {
		script += ": > \"$last\"\nexit 0\n"
	}
	path := filepath.Join(t.TempDir(), "ffmpeg-stub")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub transcoder: %v", err)
	}
	return path
}

func TestRunDryRunListsPlanWithoutConverting(t *testing.T) {
	root := testsupport.MediaTree(t, t.TempDir(),
		"IMG_0001.heic",
		"clips/trip.mov",
		"notes.txt",
	)

	out, err := executeCommand(t, root, "--dry-run", "-c", writeTestConfig(t))
	if err != nil {
		t.Fatalf("dry run returned error: %v", err)
	}
	if !strings.Contains(out, "Would convert 2 file(s)") {
		t.Fatalf("expected plan header, got:\n%s", out)
	}
	if !strings.Contains(out, filepath.Join("clips", "trip.mp4")) {
		t.Fatalf("expected mirrored video target, got:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(root, "converted")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create the output directory")
	}
}

func TestRunInvalidRoot(t *testing.T) {
	_, err := executeCommand(t, filepath.Join(t.TempDir(), "missing"), "-c", writeTestConfig(t))
	if !errors.Is(err, scan.ErrInvalidRoot) {
		t.Fatalf("expected ErrInvalidRoot, got %v", err)
	}
}

func TestRunRejectsQualityOutOfRange(t *testing.T) {
	root := t.TempDir()
	_, err := executeCommand(t, root, "-q", "150", "-c", writeTestConfig(t))
	if err == nil || !strings.Contains(err.Error(), "quality") {
		t.Fatalf("expected quality validation error, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(root, "converted")); !os.IsNotExist(statErr) {
		t.Fatalf("invalid invocation must not create the output directory")
	}
}

func TestRunRejectsConflictingOverwriteFlags(t *testing.T) {
	_, err := executeCommand(t, t.TempDir(), "--overwrite", "--no-overwrite")
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected flag conflict error, got %v", err)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "-c", writeTestConfig(t))
	if err != nil {
		t.Fatalf("empty directory run returned error: %v", err)
	}
	if !strings.Contains(out, "No convertible media files found") {
		t.Fatalf("expected empty-run notice, got:\n%s", out)
	}
	if !strings.Contains(out, "Processed 0 file(s)") {
		t.Fatalf("expected zero summary, got:\n%s", out)
	}
}

func TestRunConvertsVideoWithStubTranscoder(t *testing.T) {
	t.Setenv("DARKROOM_FFMPEG", writeStubTranscoder(t, false))

	root := testsupport.MediaTree(t, t.TempDir(), "clips/trip.mov")
	out, err := executeCommand(t, root, "-c", writeTestConfig(t, testsupport.WithWorkers(1)))
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	output := filepath.Join(root, "converted", "clips", "trip.mp4")
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("expected transcoded output at %s: %v", output, err)
	}
	if !strings.Contains(out, "Processed 1 file(s)") {
		t.Fatalf("expected summary for one file, got:\n%s", out)
	}
}

func TestRunPerFileFailuresStillExitZero(t *testing.T) {
	t.Setenv("DARKROOM_FFMPEG", writeStubTranscoder(t, true))

	root := testsupport.MediaTree(t, t.TempDir(), "clips/broken.mov")
	out, err := executeCommand(t, root, "-c", writeTestConfig(t))
	if err != nil {
		t.Fatalf("per-file failure must not fail the run, got %v", err)
	}
	if !strings.Contains(out, "Failures:") {
		t.Fatalf("expected failure listing, got:\n%s", out)
	}
	if !strings.Contains(out, "moov atom not found") {
		t.Fatalf("expected transcoder diagnostics in reason, got:\n%s", out)
	}
}

func TestRunUndecodableImageReportedAsFailure(t *testing.T) {
	root := testsupport.MediaTree(t, t.TempDir(), "garbage.heic")
	out, err := executeCommand(t, root, "-c", writeTestConfig(t))
	if err != nil {
		t.Fatalf("per-file failure must not fail the run, got %v", err)
	}
	if !strings.Contains(out, "garbage.heic") {
		t.Fatalf("expected failed input in listing, got:\n%s", out)
	}
	if _, statErr := os.Stat(filepath.Join(root, "converted", "garbage.jpg")); !os.IsNotExist(statErr) {
		t.Fatalf("failed image conversion must not leave an output file")
	}
}

func TestRunSecondInvocationSkipsWithNoOverwrite(t *testing.T) {
	root := testsupport.MediaTree(t, t.TempDir(), "trip.mov")
	cfgPath := writeTestConfig(t, testsupport.WithFFmpegBinary(writeStubTranscoder(t, false)))

	if _, err := executeCommand(t, root, "-c", cfgPath); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	out, err := executeCommand(t, root, "--no-overwrite", "-c", cfgPath)
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if !strings.Contains(out, "Processed 1 file(s)") {
		t.Fatalf("expected one accounted file, got:\n%s", out)
	}
}
