package output

// Sink receives rendered lines in order.
type Sink interface {
	// WriteLine writes one rendered line, terminator included.
	WriteLine(s string) error

	// Close flushes pending output and releases the destination.
	// It must be called even when the run ends early.
	Close() error
}
