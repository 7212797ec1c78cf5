// Package logging configures diagnostic logging on stderr.
//
// Stdout carries only the colorized log itself, so every diagnostic goes
// through the loggers created here.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the default logger. Call once during CLI initialization.
// Quiet wins over verbose.
func Setup(verbose, quiet bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
}

// New creates a logger with the given component prefix. It inherits the
// default logger's level and output at creation time.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput overrides the default logger's output; used by tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
