// Package builddir resets per-flavor build directories before the generator
// repopulates them.
package builddir

import (
	"errors"
	"io/fs"
	"os"
)

// Status classifies the result of a reset.
type Status int

const (
	// Absent means there was nothing to remove.
	Absent Status = iota
	// Removed means the previous tree was deleted.
	Removed
	// Failed means removal was attempted but did not complete.
	Failed
)

func (s Status) String() string {
	switch s {
	case Absent:
		return "absent"
	case Removed:
		return "removed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the result of Reset. Err is set only for Failed.
type Outcome struct {
	Path   string
	Status Status
	Err    error
}

// Resetter removes build directories. The zero value uses the real filesystem.
type Resetter struct {
	// For tests.
	lstat     func(string) (fs.FileInfo, error)
	removeAll func(string) error
}

// Reset removes path recursively if it exists. It never returns an error:
// failures are reported through the Outcome and the caller decides.
func (r Resetter) Reset(path string) Outcome {
	lstat, removeAll := os.Lstat, os.RemoveAll
	if r.lstat != nil {
		lstat = r.lstat
	}
	if r.removeAll != nil {
		removeAll = r.removeAll
	}

	if _, err := lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Outcome{Path: path, Status: Absent}
		}
		return Outcome{Path: path, Status: Failed, Err: err}
	}
	if err := removeAll(path); err != nil {
		return Outcome{Path: path, Status: Failed, Err: err}
	}
	return Outcome{Path: path, Status: Removed}
}

// Reset is Resetter{}.Reset.
func Reset(path string) Outcome {
	return Resetter{}.Reset(path)
}
