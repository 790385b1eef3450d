// Package output writes search results to stdout.
package output

import (
	"bufio"
	"io"
)

// Writer emits one record per line with no decoration.
type Writer struct {
	out *bufio.Writer
}

// New creates a new output Writer.
func New(out io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(out)}
}

// Lines writes every line followed by a newline, in order, and flushes.
// It stops at and returns the first write error.
func (w *Writer) Lines(lines []string) error {
	for _, line := range lines {
		if _, err := w.out.WriteString(line); err != nil {
			return err
		}
		if err := w.out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.out.Flush()
}
