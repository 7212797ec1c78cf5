package commands

import (
	"context"
	"errors"

	"github.com/llnl/llogcolor/pkg/output"
	"github.com/llnl/llogcolor/pkg/parser"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 2 // usage, configuration or pager error

	// ExitIOError follows sysexits.h EX_IOERR.
	ExitIOError = 74

	ExitInterrupted = 130
)

// ExitCodeFor maps a command error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var inputErr *parser.InputError
	var writeErr *output.WriteError
	switch {
	case errors.As(err, &inputErr), errors.As(err, &writeErr):
		return ExitIOError
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitError
	}
}
