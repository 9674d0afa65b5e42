// Package main implements the strand command-line interface.
//
// strand is a tree-walking interpreter for the strand scripting
// language. It provides a complete lexer, parser, and evaluator,
// supporting:
//
//   - Arithmetic, comparison, and short-circuiting logical expressions
//   - Integer (arbitrary precision), Float, String, and Boolean values
//   - Variable assignment and compound assignment
//   - Function definitions and calls with explicit return
//   - if/else conditionals
//   - A moving-cursor format-string print statement
//
// The CLI supports two modes of operation:
//   - File mode: "strand run <file>"
//   - Interactive REPL mode: "strand repl"
//
// Examples:
//
//	strand run program.strand
//	strand run program.strand --log run.log --debug
//	strand repl
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/strand/internal/runlog"
	"github.com/conneroisu/strand/internal/tracelog"
	"github.com/conneroisu/strand/internal/value"
	"github.com/conneroisu/strand/pkg/eval"
	"github.com/conneroisu/strand/pkg/lexer"
	"github.com/conneroisu/strand/pkg/parser"
	"github.com/conneroisu/strand/pkg/repl"
)

// main is the entry point for the strand CLI.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the cobra command tree: a root command carrying the
// shared --log/--debug flags, a "run" subcommand evaluating a file, and
// a "repl" subcommand starting an interactive session.
func newRootCmd() *cobra.Command {
	var (
		logPath string
		debug   bool
	)

	root := &cobra.Command{
		Use:   "strand",
		Short: "strand is a tree-walking interpreter for the strand language",
	}
	root.PersistentFlags().StringVar(&logPath, "log", "runlog", "path to the run log")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable the internal evaluation trace")

	root.AddCommand(newRunCmd(&logPath, &debug))
	root.AddCommand(newReplCmd(&logPath, &debug))

	return root
}

// newRunCmd builds the "strand run <file>" subcommand, which reads the
// named source file and runs it top-level through pkg/eval, exactly
// once, to completion or the first error.
func newRunCmd(logPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a strand source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], *logPath, *debug)
		},
	}
}

// newReplCmd builds the "strand repl" subcommand.
func newReplCmd(logPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive strand session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(*logPath, *debug)
		},
	}
}

// runFile implements the "run" subcommand's RunE hook: parse the whole
// file into a statement sequence, then execute it once through a fresh
// Runner, Environment, and FuncTable.
func runFile(filename string, logPath string, debug bool) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	log, err := runlog.Open(logPath)
	if err != nil {
		return err
	}
	defer log.Close()

	stmts, err := parser.New(lexer.New(string(content))).ParseProgram()
	if err != nil {
		err = fmt.Errorf("parse %s: %w", filename, err)
		_ = log.WriteLine("Error: %v", err)

		return err
	}

	trace := tracelog.New(io.Discard, false)
	if debug {
		trace = tracelog.New(traceSink{log}, true)
	}

	runner := eval.NewRunner(os.Stdout, log, trace)
	if err := runner.StartSession(filename); err != nil {
		return err
	}
	_, err = runner.RunTopLevel(stmts, value.NewEnvironment(), value.NewFuncTable())
	if err != nil {
		_ = log.WriteLine("Error: %v", err)
	}

	return err
}

// runRepl implements the "repl" subcommand's RunE hook.
func runRepl(logPath string, debug bool) error {
	log, err := runlog.Open(logPath)
	if err != nil {
		return err
	}
	defer log.Close()

	return repl.New(os.Stdout, log, debug).Start()
}

// traceSink adapts a *runlog.Writer to io.Writer so the debug tracer can
// write its records into the run log alongside everything else.
type traceSink struct {
	w *runlog.Writer
}

func (t traceSink) Write(p []byte) (int, error) {
	if err := t.w.WriteLine("%s", strings.TrimRight(string(p), "\n")); err != nil {
		return 0, err
	}

	return len(p), nil
}
