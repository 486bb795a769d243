package drivesize

import (
	"io/fs"
	"os"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/spf13/afero"
)

// listDirectories returns every directory at or below root, root included.
// Directories that cannot be read are listed but not descended into.
//
// On the OS filesystem the walk is done by fastwalk with a single worker;
// other filesystems are walked with afero.Walk.
func listDirectories(fsys afero.Fs, root string) []string {
	if _, ok := fsys.(*afero.OsFs); ok {
		return listDirectoriesFast(root)
	}

	var dirs []string

	_ = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Unreadable entries are skipped
		}

		if info.IsDir() {
			dirs = append(dirs, path)
		}

		return nil
	})

	return dirs
}

func listDirectoriesFast(root string) []string {
	var (
		mu   sync.Mutex
		dirs []string
	)

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	_ = fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip errors
		}

		if d.IsDir() {
			mu.Lock()
			dirs = append(dirs, path)
			mu.Unlock()
		}

		return nil
	})

	return dirs
}
