package plan

import (
	"path/filepath"
	"strings"

	"darkroom/internal/scan"
)

// Target extensions by media kind.
const (
	ImageTargetExt = ".jpg"
	VideoTargetExt = ".mp4"
)

// Task pairs one input file with its computed output path. Tasks are
// immutable once built; each produces exactly one outcome.
type Task struct {
	Input     string
	Output    string
	Kind      scan.Kind
	InputSize int64
}

// TargetExt returns the output extension for the given kind.
func TargetExt(kind scan.Kind) string {
	if kind == scan.KindVideo {
		return VideoTargetExt
	}
	return ImageTargetExt
}

// MapPath computes the output path for inputPath: the path relative to
// inputRoot is mirrored under outputRoot with targetExt substituted. Inputs
// outside inputRoot fall back to placing the bare filename directly under
// outputRoot.
func MapPath(inputPath, inputRoot, outputRoot, targetExt string) string {
	rel, err := filepath.Rel(inputRoot, inputPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(inputPath)
	}
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(outputRoot, stem+targetExt)
}

// Build creates one task per scanned file.
func Build(files []scan.File, inputRoot, outputRoot string) []Task {
	tasks := make([]Task, 0, len(files))
	for _, f := range files {
		tasks = append(tasks, Task{
			Input:     f.Path,
			Output:    MapPath(f.Path, inputRoot, outputRoot, TargetExt(f.Kind)),
			Kind:      f.Kind,
			InputSize: f.Size,
		})
	}
	return tasks
}
