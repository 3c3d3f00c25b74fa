// Package runlock guards an output root against concurrent Darkroom runs.
//
// Two runs writing into the same tree would interleave outputs
// unpredictably; a file lock in the output root makes the second run fail
// fast instead.
package runlock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"darkroom/internal/fileutil"
)

const lockFileName = ".darkroom.lock"

// ErrAlreadyLocked reports that another run holds the output root.
var ErrAlreadyLocked = errors.New("another darkroom run is already writing to this output directory")

// Lock holds an acquired output-root lock until released.
type Lock struct {
	flk *flock.Flock
}

// Acquire takes the lock for outputRoot, creating the directory if needed.
// It does not block: a held lock returns ErrAlreadyLocked immediately.
func Acquire(outputRoot string) (*Lock, error) {
	if err := fileutil.EnsureDir(outputRoot); err != nil {
		return nil, err
	}

	flk := flock.New(filepath.Join(outputRoot, lockFileName))
	ok, err := flk.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyLocked
	}
	return &Lock{flk: flk}, nil
}

// Release drops the lock. Safe to call on a nil receiver.
func (l *Lock) Release() error {
	if l == nil || l.flk == nil {
		return nil
	}
	return l.flk.Unlock()
}
