// Package runlog implements the append-only run log that mirrors every
// emitted print line, block-level output, and fatal error alongside
// whatever the interpreter writes to standard output.
package runlog

import (
	"fmt"
	"os"
)

// Writer appends lines to a run-log file. Every write is flushed before
// returning: the file is opened unbuffered, so an *os.File.Write already
// satisfies the flush guarantee without a bufio.Writer in front of it.
type Writer struct {
	f *os.File
}

// Open opens (creating if necessary) the run log at path in append mode.
func Open(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open run log %q: %w", path, err)
	}

	return &Writer{f: f}, nil
}

// WriteLine formats and appends one line, terminated with a newline.
func (w *Writer) WriteLine(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.f, format+"\n", args...); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}

	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return w.f.Close()
}
