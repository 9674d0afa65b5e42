// Package repl implements the interactive Read-Eval-Print Loop for strand.
//
// Each line is tokenized, parsed as a top-level statement sequence, and
// run through the same pkg/eval entry point the file driver uses, so
// there is no separate evaluation path between "strand run" and
// "strand repl". Environment and function-table state persists across
// lines: a function defined on one line can be called on the next.
package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/conneroisu/strand/internal/runlog"
	"github.com/conneroisu/strand/internal/tracelog"
	"github.com/conneroisu/strand/internal/value"
	"github.com/conneroisu/strand/pkg/eval"
	"github.com/conneroisu/strand/pkg/lexer"
	"github.com/conneroisu/strand/pkg/parser"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `strand repl`

// Repl is an interactive strand session. State (Env, Funcs) persists for
// the lifetime of the Repl so earlier definitions remain visible to
// later lines.
type Repl struct {
	Prompt string

	env   *value.Environment
	funcs *value.FuncTable
	out   io.Writer
	log   *runlog.Writer
	debug bool
}

// New builds a Repl writing program output to out and mirroring it to
// log. debug gates the internal evaluation trace.
func New(out io.Writer, log *runlog.Writer, debug bool) *Repl {
	return &Repl{
		Prompt: "strand> ",
		env:    value.NewEnvironment(),
		funcs:  value.NewFuncTable(),
		out:    out,
		log:    log,
		debug:  debug,
	}
}

// printBanner prints the startup banner and usage instructions in cyan,
// matching the pack's convention of a short colored header before the
// first prompt.
func (r *Repl) printBanner() {
	cyanColor.Fprintln(r.out, banner)
	cyanColor.Fprintln(r.out, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(r.out, "Type :help for commands, :quit to exit.")
}

// Start runs the main read-eval-print loop until the user quits or sends
// EOF (Ctrl+D).
func (r *Repl) Start() error {
	r.printBanner()

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	trace := tracelog.New(io.Discard, false)
	if r.debug && r.log != nil {
		trace = tracelog.New(logWriter{r.log}, true)
	}
	runner := eval.NewRunner(r.out, r.log, trace)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}

			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if r.handleCommand(line) {
				break
			}

			continue
		}

		rl.SaveHistory(line)
		r.evalLine(runner, line)
	}

	return nil
}

// handleCommand processes a REPL meta-command. It returns true when the
// loop should terminate.
func (r *Repl) handleCommand(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		cyanColor.Fprintln(r.out, "Available commands:")
		cyanColor.Fprintln(r.out, "  :help, :h    Show this help")
		cyanColor.Fprintln(r.out, "  :quit, :q    Exit the REPL")

		return false
	default:
		redColor.Fprintf(r.out, "Unknown command: %s\n", cmd)

		return false
	}
}

// evalLine parses and runs a single REPL line against the persistent
// environment and function table, printing the last result in yellow
// and any error in red. Unlike the file driver, an error here never
// terminates the session.
func (r *Repl) evalLine(runner *eval.Runner, line string) {
	stmts, err := parser.New(lexer.New(line)).ParseProgram()
	if err != nil {
		redColor.Fprintf(r.out, "%v\n", err)

		return
	}

	results, err := runner.RunTopLevel(stmts, r.env, r.funcs)
	if err != nil {
		redColor.Fprintf(r.out, "%v\n", err)

		return
	}

	if len(results) == 0 {
		return
	}

	yellowColor.Fprintf(r.out, "%s\n", results[len(results)-1].String())
}

// logWriter adapts a *runlog.Writer to io.Writer so tracelog's
// slog.NewTextHandler can write trace records into the run log.
type logWriter struct {
	w *runlog.Writer
}

func (l logWriter) Write(p []byte) (int, error) {
	if err := l.w.WriteLine("%s", strings.TrimRight(string(p), "\n")); err != nil {
		return 0, err
	}

	return len(p), nil
}
