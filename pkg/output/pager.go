package output

import (
	"bufio"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// DefaultPager is used when no pager is configured.
const DefaultPager = "less -R"

// PagerSink writes lines to the stdin of an interactive pager process.
type PagerSink struct {
	command string
	cmd     *exec.Cmd
	pipe    io.WriteCloser
	w       *bufio.Writer
	broken  bool
	closed  bool
}

// StartPager starts the pager command line with its output connected to
// stdout and stderr, and returns a sink feeding its input.
func StartPager(command string, stdout, stderr io.Writer) (*PagerSink, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, &PagerError{Command: command, Err: errors.New("empty pager command")}
	}

	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204 -- pager is chosen by the user
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if os.Getenv("LESS") == "" {
		// Let less quit on short output and leave the screen as is, as git does.
		cmd.Env = append(os.Environ(), "LESS=FRX")
	}

	pipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, &PagerError{Command: command, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &PagerError{Command: command, Err: err}
	}

	return &PagerSink{
		command: command,
		cmd:     cmd,
		pipe:    pipe,
		w:       bufio.NewWriterSize(pipe, 64*1024),
	}, nil
}

// WriteLine writes one rendered line to the pager.
// Returns ErrPagerClosed once the pager has gone away.
func (p *PagerSink) WriteLine(line string) error {
	if p.broken {
		return ErrPagerClosed
	}
	if _, err := p.w.WriteString(line); err != nil {
		return p.writeErr(err)
	}
	return nil
}

// Close flushes remaining output, closes the pager's input and waits for
// the user to quit it.
func (p *PagerSink) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	var firstErr error
	if !p.broken {
		if err := p.w.Flush(); err != nil {
			if werr := p.writeErr(err); !errors.Is(werr, ErrPagerClosed) {
				firstErr = werr
			}
		}
	}

	if err := p.pipe.Close(); err != nil && firstErr == nil && !p.broken {
		firstErr = &WriteError{Err: err}
	}

	if err := p.cmd.Wait(); err != nil && firstErr == nil && !p.broken {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			firstErr = &PagerError{Command: p.command, Err: err}
		}
		// A non-zero pager exit is the user's business, not a failed run.
	}

	return firstErr
}

func (p *PagerSink) writeErr(err error) error {
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed) {
		p.broken = true
		return ErrPagerClosed
	}
	return &WriteError{Err: err}
}
