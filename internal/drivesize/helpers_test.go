package drivesize

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
)

// tree describes a filesystem: directories end in "/", files map to their size.
type tree map[string]int

func memFs(t *testing.T, layout tree) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()

	for path, size := range layout {
		if path[len(path)-1] == '/' {
			if err := fsys.MkdirAll(filepath.Clean(path), 0o755); err != nil {
				t.Fatalf("creating directory %s: %v", path, err)
			}

			continue
		}

		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating parent of %s: %v", path, err)
		}

		if err := afero.WriteFile(fsys, path, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}

	return fsys
}

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 11, 8, 12, 14, 22, 0, time.UTC)

	return func() time.Time {
		now = now.Add(step)

		return now
	}
}

func nullLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	return log, hook
}

func newTestAccumulator(fsys afero.Fs, countDirs bool) (*Accumulator, *test.Hook) {
	log, hook := nullLogger()

	return NewAccumulator(fsys, log, NewTimerWithClock(fakeClock(time.Millisecond)), countDirs), hook
}

// vanishingFs removes the named files the moment their size is looked up,
// as if another process deleted them right after the directory was listed.
type vanishingFs struct {
	afero.Fs
	vanish map[string]bool
}

func (v vanishingFs) Stat(name string) (os.FileInfo, error) {
	if v.vanish[name] {
		_ = v.Fs.Remove(name)

		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}

	return v.Fs.Stat(name)
}

// deniedFs refuses to open the named directories.
type deniedFs struct {
	afero.Fs
	denied map[string]bool
}

func (d deniedFs) Open(name string) (afero.File, error) {
	if d.denied[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}

	return d.Fs.Open(name)
}
