package eval

import (
	"fmt"
	"strings"

	"github.com/conneroisu/strand/internal/ast"
	"github.com/conneroisu/strand/internal/value"
)

// execContext distinguishes top-level statement execution (where a bare
// return is a no-op) from function-body execution (where it propagates).
type execContext int

const (
	ctxTopLevel execContext = iota
	ctxFunction
)

// flowKind is the discriminant of the three-way control-flow carrier
// that threads return signals and deferred print output out of nested
// statement execution.
type flowKind int

const (
	// flowContinue is normal fall-through, carrying the last
	// expression's value.
	flowContinue flowKind = iota
	// flowReturn is an explicit return, propagating unconditionally
	// to the enclosing function.
	flowReturn
	// flowPrint signals the caller to emit text to stdout and the
	// run log; print statements never perform output themselves so
	// the enclosing block can format the run-log line correctly for
	// its own context.
	flowPrint
)

type flow struct {
	kind  flowKind
	value value.Value
	text  string
}

// RunTopLevel executes a sequence of top-level statements in order,
// returning the value of every non-Void expression statement (for a
// REPL to print) or the first error encountered, wrapped with the
// 1-based statement index.
//
// Every statement is framed in the run log with an unconditional
// "Executing Statement N" line, and followed by a "Result: …" line
// whenever it yields a non-Void value — this framing always appears,
// independent of the separately gated debug trace (tracef).
func (r *Runner) RunTopLevel(stmts []ast.Stmt, env *value.Environment, funcs *value.FuncTable) ([]value.Value, error) {
	var results []value.Value

	r.tracef("Parsed statements: %v", stmts)

	for i, stmt := range stmts {
		idx := i + 1
		if err := r.logFrame("\nExecuting Statement %d", idx); err != nil {
			return results, fmt.Errorf("statement %d: %w", idx, err)
		}

		f, err := r.execStmt(stmt, env, funcs, ctxTopLevel)
		if err != nil {
			return results, fmt.Errorf("statement %d: %w", idx, err)
		}

		switch f.kind {
		case flowPrint:
			if err := r.emit(f.text, ctxTopLevel, idx); err != nil {
				return results, fmt.Errorf("statement %d: %w", idx, err)
			}
		case flowContinue:
			if _, isVoid := f.value.(value.Void); !isVoid {
				results = append(results, f.value)
				if err := r.logFrame("Result: %s", f.value.String()); err != nil {
					return results, fmt.Errorf("statement %d: %w", idx, err)
				}
			}
		case flowReturn:
			// Top-level return has no effect beyond evaluating its
			// expression; execStmt already folds this into flowContinue.
		}
	}

	return results, nil
}

// execBlock runs a bracketed statement sequence (a function body or an
// if/else arm), performing any Print output itself and propagating a
// Return carrier to its own caller unchanged. wrap, if non-nil, wraps
// an error with context identifying which statement failed; it is
// supplied only by the outermost body a statement index is attributed
// to (a function's own body; RunTopLevel wraps its own statements
// without going through execBlock), not by nested if/else arms, so an
// error is wrapped exactly once, at the index of the statement the
// failure is externally attributed to.
func (r *Runner) execBlock(stmts []ast.Stmt, env *value.Environment, funcs *value.FuncTable, ctx execContext, wrap func(idx int, err error) error) (flow, error) {
	last := value.Value(value.Void{})

	for i, stmt := range stmts {
		idx := i + 1

		f, err := r.execStmt(stmt, env, funcs, ctx)
		if err != nil {
			if wrap != nil {
				err = wrap(idx, err)
			}

			return flow{}, err
		}

		switch f.kind {
		case flowPrint:
			if err := r.emit(f.text, ctx, idx); err != nil {
				if wrap != nil {
					err = wrap(idx, err)
				}

				return flow{}, err
			}
			last = value.Void{}
		case flowReturn:
			return f, nil
		default:
			last = f.value
		}
	}

	return flow{kind: flowContinue, value: last}, nil
}

func (r *Runner) execStmt(stmt ast.Stmt, env *value.Environment, funcs *value.FuncTable, ctx execContext) (flow, error) {
	r.tracef("Running statement: %v", stmt)

	switch s := stmt.(type) {
	case *ast.ExprStmt:
		v, err := r.EvalExpr(s.X, env, funcs)
		if err != nil {
			return flow{}, err
		}

		return flow{kind: flowContinue, value: v}, nil

	case *ast.PrintStmt:
		return r.execPrint(s, env, funcs)

	case *ast.DefStmt:
		funcs.Define(s.Name, s.Params, s.Body)

		return flow{kind: flowContinue, value: value.Void{}}, nil

	case *ast.ReturnStmt:
		var v value.Value = value.Void{}
		if s.Value != nil {
			var err error
			v, err = r.EvalExpr(s.Value, env, funcs)
			if err != nil {
				return flow{}, err
			}
		}
		if ctx == ctxTopLevel {
			return flow{kind: flowContinue, value: value.Void{}}, nil
		}

		return flow{kind: flowReturn, value: v}, nil

	case *ast.IfStmt:
		return r.execIf(s, env, funcs, ctx)

	default:
		return flow{}, fmt.Errorf("unknown statement type: %T", stmt)
	}
}

func (r *Runner) execIf(s *ast.IfStmt, env *value.Environment, funcs *value.FuncTable, ctx execContext) (flow, error) {
	cond, err := r.EvalExpr(s.Cond, env, funcs)
	if err != nil {
		return flow{}, err
	}
	condBool, ok := cond.(value.Boolean)
	if !ok {
		return flow{}, fmt.Errorf("if condition must be Boolean, got %s", cond.Type())
	}

	var body []ast.Stmt
	switch {
	case bool(condBool):
		body = s.Then
	case s.Else != nil:
		body = s.Else
	default:
		return flow{kind: flowContinue, value: value.Void{}}, nil
	}

	f, err := r.execBlock(body, env, funcs, ctx, nil)
	if err != nil {
		return flow{}, err
	}
	if f.kind == flowReturn {
		return f, nil
	}

	return flow{kind: flowContinue, value: value.Void{}}, nil
}

func (r *Runner) execPrint(s *ast.PrintStmt, env *value.Environment, funcs *value.FuncTable) (flow, error) {
	argText := make([]string, len(s.Args))
	for i, arg := range s.Args {
		v, err := r.EvalExpr(arg, env, funcs)
		if err != nil {
			return flow{}, err
		}
		argText[i] = v.String()
	}

	if s.Format == nil {
		return flow{kind: flowPrint, text: argText[0]}, nil
	}

	text, err := substitutePlaceholders(*s.Format, argText)
	if err != nil {
		return flow{}, err
	}

	return flow{kind: flowPrint, text: text}, nil
}

// substitutePlaceholders replaces each "{}" placeholder in format, left
// to right, with the corresponding element of args using a moving
// cursor so an inserted argument's text is never itself rescanned for
// further placeholders. Extra placeholders beyond len(args) are left
// as literal "{}"; fewer placeholders than arguments is a hard error.
func substitutePlaceholders(format string, args []string) (string, error) {
	var sb strings.Builder

	pos, used := 0, 0
	for {
		idx := strings.Index(format[pos:], "{}")
		if idx == -1 {
			sb.WriteString(format[pos:])

			break
		}

		sb.WriteString(format[pos : pos+idx])
		if used < len(args) {
			sb.WriteString(args[used])
			used++
		} else {
			sb.WriteString("{}")
		}
		pos += idx + 2
	}

	if used < len(args) {
		return "", fmt.Errorf("not enough placeholders for %d argument(s)", len(args))
	}

	return sb.String(), nil
}
