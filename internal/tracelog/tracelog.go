// Package tracelog provides the interpreter's internal debug trace, a
// separate concern from the user-facing run log (internal/runlog):
// it records parse and evaluation milestones ("Parsed statements: …",
// "Running statement: …", "Executing function …") when tracing is
// enabled, writing into the same run-log file the rest of the program
// uses as its append-only sink. This is distinct from the run log's
// own unconditional session framing ("Executing Statement N",
// "Result: …"), which is always written regardless of this flag.
//
// No third-party structured-logging library appears anywhere in the
// retrieved example pack as a direct import, so this wraps the standard
// library's log/slog rather than reaching for zap, logrus, or zerolog.
package tracelog

import (
	"io"
	"log/slog"
)

// New builds a debug-level slog.Logger writing text-formatted records to w.
// When enabled is false, the returned logger discards everything, so call
// sites can log unconditionally without checking a flag themselves.
func New(w io.Writer, enabled bool) *slog.Logger {
	if !enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
