package drivesize

import (
	"fmt"

	"emperror.dev/errors"
)

// FilesystemAccessError reports a directory that could not be listed.
type FilesystemAccessError struct {
	// Op is the operation that failed, e.g. "list".
	Op string
	// Path is the directory that was being accessed.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *FilesystemAccessError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemAccessError) Unwrap() error {
	return e.Err
}

// newAccessError wraps err in a FilesystemAccessError carrying a stack trace.
func newAccessError(op, path string, err error) error {
	return errors.WithStack(&FilesystemAccessError{Op: op, Path: path, Err: err})
}

// IsAccessError reports whether err, or anything it wraps, is a FilesystemAccessError.
func IsAccessError(err error) bool {
	var target *FilesystemAccessError

	return errors.As(err, &target)
}
