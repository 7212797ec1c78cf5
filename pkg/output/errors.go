package output

import (
	"errors"
	"fmt"
)

// ErrPagerClosed is returned by a PagerSink when the pager exited before all
// output was written, usually because the user quit it.
var ErrPagerClosed = errors.New("pager closed")

// WriteError reports a failure writing to the output destination.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing output: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// PagerError reports a pager that could not be started or failed.
type PagerError struct {
	Command string
	Err     error
}

func (e *PagerError) Error() string {
	return fmt.Sprintf("pager %q: %v", e.Command, e.Err)
}

func (e *PagerError) Unwrap() error {
	return e.Err
}
