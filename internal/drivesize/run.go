package drivesize

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Options configures a drive scan and CLI behavior.
type Options struct {
	// Path is the root to scan.
	Path string
	// LogDir is the directory the per-run log file is written to.
	LogDir string
	// Output represents output format (log, table or json).
	Output string
	// Detailed reports every directory below the root's children separately.
	Detailed bool
	// CountDirs counts and logs the directories before each walk.
	CountDirs bool
	// Volume logs the capacity of the volume holding Path.
	Volume bool
	// Thresholds select the display unit per directory.
	Thresholds Thresholds
	// Version indicates whether to show version and exit.
	Version bool
}

// Run scans opt.Path on fsys and returns the size report.
//
// If opt.Detailed is true, every directory below the root's children gets
// its own entry. Progress updates are sent to progressHook if provided.
func Run(fsys afero.Fs, opt Options, log logrus.FieldLogger, timer *Timer, progressHook ProgressHook) (*SizeReport, error) {
	root := filepath.Clean(opt.Path)

	acc := NewAccumulator(fsys, log, timer, opt.CountDirs)
	scanner := NewScanner(fsys, acc, log, timer).WithProgress(progressHook)

	if opt.Detailed {
		return scanner.ScanDetailed(root)
	}

	return scanner.Scan(root)
}
