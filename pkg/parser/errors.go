package parser

import "fmt"

// InputError reports an input that could not be opened or read.
type InputError struct {
	Path string
	Op   string // "open" or "read"
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
