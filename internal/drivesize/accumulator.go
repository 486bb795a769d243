package drivesize

import (
	"io/fs"
	"path/filepath"

	"emperror.dev/errors"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Accumulator sums the sizes of the regular files below a directory.
//
// It walks one directory at a time off an explicit queue. Directories that
// cannot be listed are not descended into, and files that vanish between
// listing and the size lookup contribute nothing. Neither case is reported
// to the caller.
type Accumulator struct {
	fs        afero.Fs
	log       logrus.FieldLogger
	timer     *Timer
	countDirs bool
}

// NewAccumulator creates an Accumulator reading from fsys. When countDirs is
// set, every walk is preceded by a pass that counts and logs the directories
// about to be visited.
func NewAccumulator(fsys afero.Fs, log logrus.FieldLogger, timer *Timer, countDirs bool) *Accumulator {
	return &Accumulator{
		fs:        fsys,
		log:       log.WithField("component", "accumulator"),
		timer:     timer,
		countDirs: countDirs,
	}
}

// DirectorySize returns the total size in bytes of all regular files at or
// below path. It returns 0 for an empty or unreadable subtree.
func (a *Accumulator) DirectorySize(path string) int64 {
	a.announce(path)

	a.timer.ResetStep()

	var total int64

	a.walk(path, func(_ string, size int64) {
		total += size
	})

	a.log.Infof("Total size of %s and sub-dirs calculated in %s seconds as %s Mb",
		path, seconds(a.timer.ElapsedStep()), FormatFloat(Convert(total, MB)))

	return total
}

// DirectoryBreakdown returns one entry for every directory at or below path,
// path included. Each entry holds the size of the regular files directly in
// that directory, not in its subdirectories.
func (a *Accumulator) DirectoryBreakdown(path string) []DirectorySizeEntry {
	a.announce(path)

	a.timer.ResetStep()

	var entries []DirectorySizeEntry

	index := make(map[string]int)

	a.walk(path, func(dir string, size int64) {
		i, ok := index[dir]
		if !ok {
			i = len(entries)
			index[dir] = i
			entries = append(entries, DirectorySizeEntry{Path: dir})
		}

		entries[i].Size += size
	})

	a.log.Infof("Sizes of %d directories within %s calculated in %s seconds",
		len(entries), path, seconds(a.timer.ElapsedStep()))

	return entries
}

// announce runs the optional directory-count pass for path.
func (a *Accumulator) announce(path string) {
	if !a.countDirs {
		return
	}

	a.timer.ResetStep()

	dirs := listDirectories(a.fs, path)

	a.log.Infof("About to walk process %s directories within %s", humanize.Comma(int64(len(dirs))), path)
	a.log.Debugf("About to walk %v contained within %s", dirs, path)
	a.log.Infof("(it took %s seconds to find the dirs to walk above)", seconds(a.timer.ElapsedStep()))
}

// walk visits every readable directory at or below root. visit is called
// once per directory with size 0, then once per regular file with its size.
func (a *Accumulator) walk(root string, visit func(dir string, size int64)) {
	queue := []string{root}

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := afero.ReadDir(a.fs, dir)
		if err != nil {
			a.log.Debugf("Skipping unreadable directory %s: %v", dir, err)

			continue
		}

		visit(dir, 0)

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				queue = append(queue, path)

				continue
			}

			size, ok := a.fileSize(path)
			if !ok {
				continue
			}

			a.log.Debugf("Reading: %s (%s)", path, humanize.IBytes(uint64(size))) //nolint:gosec // Size is never negative

			visit(dir, size)
		}
	}
}

// fileSize stats path and returns its size if it still exists and is a
// regular file.
func (a *Accumulator) fileSize(path string) (int64, bool) {
	info, err := a.fs.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			a.log.Debugf("Skipping %s: %v", path, err)
		}

		return 0, false
	}

	if !info.Mode().IsRegular() {
		return 0, false
	}

	return info.Size(), true
}
