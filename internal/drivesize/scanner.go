package drivesize

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ProgressHook is called after each child directory of the root has been
// measured, with the number of children done, the number of entries listed
// under the root and the bytes counted so far.
type ProgressHook func(done, listed int, bytes int64)

// Scanner measures the immediate child directories of a root path.
type Scanner struct {
	fs       afero.Fs
	acc      *Accumulator
	log      logrus.FieldLogger
	timer    *Timer
	progress ProgressHook
}

// NewScanner creates a Scanner that measures each child directory with acc.
func NewScanner(fsys afero.Fs, acc *Accumulator, log logrus.FieldLogger, timer *Timer) *Scanner {
	return &Scanner{
		fs:    fsys,
		acc:   acc,
		log:   log.WithField("component", "scanner"),
		timer: timer,
	}
}

// WithProgress sets the hook called after every measured child directory.
func (s *Scanner) WithProgress(hook ProgressHook) *Scanner {
	s.progress = hook

	return s
}

// Scan returns the recursive size of every directory directly under root.
// Files directly under root are not counted. It fails with a
// FilesystemAccessError when root cannot be listed.
func (s *Scanner) Scan(root string) (*SizeReport, error) {
	return s.scan(root, false)
}

// ScanDetailed is like Scan but reports every directory below root's
// children separately, each with the size of the files directly inside it.
func (s *Scanner) ScanDetailed(root string) (*SizeReport, error) {
	return s.scan(root, true)
}

func (s *Scanner) scan(root string, detailed bool) (*SizeReport, error) {
	start := s.timer.Elapsed()

	names, err := s.list(root)
	if err != nil {
		return nil, err
	}

	s.log.Debugf("Listed %d entries in %s", len(names), root)

	report := newSizeReport(root)
	report.Detailed = detailed

	for i, name := range names {
		path := filepath.Join(root, name)

		info, err := s.fs.Stat(path)
		if err != nil || !info.IsDir() {
			s.log.Debugf("Skipping non-directory %s", path)

			s.notify(i+1, len(names), report)

			continue
		}

		if detailed {
			for _, entry := range s.acc.DirectoryBreakdown(path) {
				report.add(entry.Path, entry.Size)
			}
		} else {
			report.add(path, s.acc.DirectorySize(path))
		}

		s.notify(i+1, len(names), report)
	}

	report.Elapsed = s.timer.Elapsed() - start

	return report, nil
}

// list returns the entry names of root in directory order.
func (s *Scanner) list(root string) ([]string, error) {
	dir, err := s.fs.Open(root)
	if err != nil {
		return nil, newAccessError("list", root, err)
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, newAccessError("list", root, err)
	}

	return names, nil
}

func (s *Scanner) notify(done, listed int, report *SizeReport) {
	if s.progress != nil {
		s.progress(done, listed, report.Total())
	}
}
