package parser

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// StdinName is the input name that selects standard input.
const StdinName = "-"

// FileSource implements LineSource over a list of files read in order,
// as one concatenated stream.
type FileSource struct {
	files []string
	stdin io.Reader

	currentFile   *os.File
	currentReader *bufio.Reader
	currentSource string
	currentLine   int
	fileIndex     int
}

// NewFileSource creates a LineSource that reads the given files in order.
// An empty file list, or the name "-", reads from stdin.
func NewFileSource(files []string, stdin io.Reader) *FileSource {
	if len(files) == 0 {
		files = []string{StdinName}
	}
	return &FileSource{
		files:     files,
		stdin:     stdin,
		fileIndex: -1,
	}
}

// Next returns the next line across all inputs.
// Line content and terminators are preserved exactly.
// Returns io.EOF when all inputs have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*LogLine, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.currentReader == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		text, err := s.currentReader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &InputError{Path: s.currentSource, Op: "read", Err: err}
		}

		if text != "" {
			s.currentLine++
			line := &LogLine{
				Source:  s.currentSource,
				LineNum: s.currentLine,
			}
			line.Content, line.Terminator = splitTerminator(text)

			if err != nil {
				// Final unterminated line; the file is exhausted.
				if cerr := s.closeCurrentFile(); cerr != nil {
					return nil, cerr
				}
			}
			return line, nil
		}

		// Current file exhausted, try next
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	s.currentSource = path
	s.currentLine = 0

	if path == StdinName {
		if s.stdin == nil {
			return &InputError{Path: path, Op: "open", Err: os.ErrInvalid}
		}
		s.currentReader = bufio.NewReaderSize(s.stdin, 64*1024)
		return nil
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return &InputError{Path: path, Op: "open", Err: err}
	}

	s.currentFile = f
	s.currentReader = bufio.NewReaderSize(f, 64*1024)
	return nil
}

func (s *FileSource) closeCurrentFile() error {
	s.currentReader = nil
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		if err != nil {
			return &InputError{Path: s.currentSource, Op: "read", Err: err}
		}
	}
	return nil
}

// splitTerminator separates a line read with ReadString('\n') into its
// content and its "\n" or "\r\n" terminator.
func splitTerminator(text string) (string, string) {
	if strings.HasSuffix(text, "\r\n") {
		return text[:len(text)-2], "\r\n"
	}
	if strings.HasSuffix(text, "\n") {
		return text[:len(text)-1], "\n"
	}
	return text, ""
}
