package output

import (
	"bufio"
	"io"
)

// StreamSink writes lines to an io.Writer through a buffer.
type StreamSink struct {
	w         *bufio.Writer
	lineFlush bool
}

// NewStreamSink creates a sink writing to w. With lineFlush set every line
// is flushed as soon as it is written, which keeps a terminal up to date
// while reading from a slow pipe.
func NewStreamSink(w io.Writer, lineFlush bool) *StreamSink {
	return &StreamSink{
		w:         bufio.NewWriterSize(w, 64*1024),
		lineFlush: lineFlush,
	}
}

// WriteLine writes one rendered line.
func (s *StreamSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return &WriteError{Err: err}
	}
	if s.lineFlush {
		if err := s.w.Flush(); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}

// Close flushes buffered output. The underlying writer is left open.
func (s *StreamSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
