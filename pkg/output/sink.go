package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// SinkOptions selects and configures the output destination.
type SinkOptions struct {
	// NoPager forces direct output even on a terminal.
	NoPager bool

	// Pager is the pager command line; DefaultPager when empty.
	Pager string

	// Stdout is the direct output stream and the pager's output.
	Stdout io.Writer

	// Stderr receives the pager's diagnostics.
	Stderr io.Writer
}

// OpenSink returns a pager sink when Stdout is an interactive terminal and
// paging is allowed, and a direct stream sink otherwise.
func OpenSink(opts SinkOptions) (Sink, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	tty := IsTerminal(opts.Stdout)
	if opts.NoPager || !tty {
		return NewStreamSink(opts.Stdout, tty), nil
	}

	pager := opts.Pager
	if pager == "" {
		pager = DefaultPager
	}
	return StartPager(pager, opts.Stdout, opts.Stderr)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
