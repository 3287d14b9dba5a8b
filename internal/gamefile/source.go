package gamefile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iamasit07/connectz/internal/domain"
)

// longest line we accept before giving up on the file
const maxLineBytes = 1 << 20

// ReaderSource yields the lines of a reader lazily, one per Next call.
type ReaderSource struct {
	scanner *bufio.Scanner
	done    bool
}

func NewReaderSource(r io.Reader) *ReaderSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	scanner.Split(scanLines)
	return &ReaderSource{scanner: scanner}
}

// Next returns the next line without its terminator, or EndOfInput once the
// reader is exhausted. Read failures are reported as errors, never as EndOfInput.
func (s *ReaderSource) Next() (string, domain.Fetch, error) {
	if s.done {
		return "", domain.EndOfInput, nil
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), domain.NextLine, nil
	}

	s.done = true
	err := s.scanner.Err()
	if err == nil {
		return "", domain.EndOfInput, nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		return "", domain.EndOfInput, fmt.Errorf("line longer than %d bytes: %w", maxLineBytes, domain.ErrInvalidInput)
	}
	return "", domain.EndOfInput, fmt.Errorf("failed to read game description: %v: %w", err, domain.ErrInputUnavailable)
}

// scanLines is bufio.ScanLines that also ends a line on a lone '\r', so
// "\n", "\r\n" and "\r" terminated files read the same.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// a '\r' at the end of the buffer may be half of "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// FileSource is a ReaderSource that owns its file handle.
type FileSource struct {
	*ReaderSource
	file *os.File
}

// Open opens path for lazy reading. Any failure to open is ErrInputUnavailable.
func Open(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v: %w", path, err, domain.ErrInputUnavailable)
	}
	return &FileSource{ReaderSource: NewReaderSource(f), file: f}, nil
}

// Close releases the file handle. It is safe to call more than once.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
