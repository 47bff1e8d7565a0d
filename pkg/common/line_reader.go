package common

import (
	"bufio"
	"io"
)

// A source of interactive input that returns one line per call.
type ILineReader interface {
	// Reads the next line without the line terminator.
	ReadLine() (string, error)
}

type scannerLineReader struct {
	scanner *bufio.Scanner
}

// Creates a line reader on top of the given reader (eg. os.Stdin).
func NewLineReader(reader io.Reader) ILineReader {
	return &scannerLineReader{scanner: bufio.NewScanner(reader)}
}

func (r *scannerLineReader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

type scriptedLineReader struct {
	lines []string
}

// Creates a line reader that returns the given lines in order and io.EOF afterwards.
func NewScriptedLineReader(lines ...string) ILineReader {
	return &scriptedLineReader{lines: lines}
}

func (r *scriptedLineReader) ReadLine() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}
