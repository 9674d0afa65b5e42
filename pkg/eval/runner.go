package eval

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/conneroisu/strand/internal/runlog"
)

// Runner executes strand statement sequences. It owns the two output
// sinks every emission goes through: standard output and the run log.
type Runner struct {
	out   io.Writer
	log   *runlog.Writer
	trace *slog.Logger
}

// NewRunner builds a Runner writing program output to out and mirroring
// it to log. trace may be nil, in which case tracing is silently
// skipped.
func NewRunner(out io.Writer, log *runlog.Writer, trace *slog.Logger) *Runner {
	return &Runner{out: out, log: log, trace: trace}
}

func (r *Runner) tracef(format string, args ...any) {
	if r.trace == nil {
		return
	}
	r.trace.Debug(fmt.Sprintf(format, args...))
}

// StartSession writes the unconditional run-log session header, once,
// at the start of file-mode execution. Unlike the debug trace (gated
// behind --debug), this framing line always appears in the run log.
func (r *Runner) StartSession(filename string) error {
	if r.log == nil {
		return nil
	}

	return r.log.WriteLine("--- Starting script execution from %s ---", filename)
}

// logFrame writes an unconditional run-log framing line ("Executing
// Statement N", "Result: …"). Unlike emit, this
// never touches stdout; it mirrors the original implementation's
// always-on run-log bookkeeping, separate from the gated debug trace.
func (r *Runner) logFrame(format string, args ...any) error {
	if r.log == nil {
		return nil
	}

	return r.log.WriteLine(format, args...)
}

// emit writes text to stdout and mirrors it to the run log, using the
// line prefix appropriate to the execution context: a statement run in
// top-level context (including one inside a top-level if body) gets
// "Output: …", a statement inside a function body (or an if body within
// one) gets "Block Output (Stmt N): …".
func (r *Runner) emit(text string, ctx execContext, idx int) error {
	if _, err := fmt.Fprintln(r.out, text); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}

	if r.log == nil {
		return nil
	}

	if ctx == ctxTopLevel {
		return r.log.WriteLine("Output: %s", text)
	}

	return r.log.WriteLine("Block Output (Stmt %d): %s", idx, text)
}
