package entities

import (
	"errors"
	"fmt"
)

var (
	ErrStartMarkerNotFound = errors.New("start marker not found")
	ErrEndMarkerNotFound   = errors.New("end marker not found")
	ErrEndBeforeStart      = errors.New("end marker precedes start marker")
	ErrTooFewFields        = errors.New("dependency line has fewer than two fields")
)

// FileAccessError is returned when the manifest cannot be read or the
// output document cannot be written.
type FileAccessError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// FormatError is returned when the manifest does not have the expected shape.
type FormatError struct {
	Reason error
	Line   string // offending line, empty for marker errors
}

func (e *FormatError) Error() string {
	if e.Line == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%v: %q", e.Reason, e.Line)
}

func (e *FormatError) Unwrap() error { return e.Reason }
