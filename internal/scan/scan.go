package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"darkroom/internal/fileutil"
)

// ErrInvalidRoot reports that the input root does not exist or is not a
// directory. It aborts the run before any work begins.
var ErrInvalidRoot = errors.New("invalid input root")

// Kind classifies a discovered file.
type Kind string

const (
	// KindImage files are decoded in-process and re-encoded as JPEG.
	KindImage Kind = "image"
	// KindVideo files are handed to the external transcoder.
	KindVideo Kind = "video"
)

// File is one convertible input discovered under the root.
type File struct {
	Path string
	Kind Kind
	Size int64
}

// Options controls a scan.
type Options struct {
	// Root is the directory to walk. Must exist and be a directory.
	Root string
	// PruneDir is skipped entirely when encountered during the walk. The
	// CLI sets it to the output root so re-runs do not re-discover
	// converted files. Empty disables pruning.
	PruneDir string
	// ImageExtensions and VideoExtensions are matched case-insensitively
	// and must carry a leading dot.
	ImageExtensions []string
	VideoExtensions []string
}

// Scan walks opts.Root and returns every image and video file, sorted
// lexicographically by path.
func Scan(opts Options) ([]File, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, opts.Root, err)
	}
	isDir, err := fileutil.IsDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, opts.Root)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, opts.Root)
	}

	images := extensionSet(opts.ImageExtensions)
	videos := extensionSet(opts.VideoExtensions)

	prune := ""
	if opts.PruneDir != "" {
		if abs, err := filepath.Abs(opts.PruneDir); err == nil {
			prune = abs
		}
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal; only the root
			// itself aborts the run, and that is checked above.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if prune != "" && path == prune {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		var kind Kind
		switch {
		case images[ext]:
			kind = KindImage
		case videos[ext]:
			kind = KindVideo
		default:
			return nil
		}
		var size int64
		if fi, err := d.Info(); err == nil {
			size = fi.Size()
		}
		files = append(files, File{Path: path, Kind: kind, Size: size})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}
