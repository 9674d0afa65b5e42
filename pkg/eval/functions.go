package eval

import (
	"fmt"

	"github.com/conneroisu/strand/internal/ast"
	"github.com/conneroisu/strand/internal/value"
)

// callFunction implements Call(name, args): lookup, an arity check,
// argument evaluation in the caller's environment, a fresh callee
// environment, and body execution with function-name-and-statement-
// index error wrapping.
func (r *Runner) callFunction(e *ast.CallExpr, env *value.Environment, funcs *value.FuncTable) (value.Value, error) {
	def, ok := funcs.Lookup(e.Name)
	if !ok {
		return nil, fmt.Errorf("call of undefined function: %s", e.Name)
	}

	if len(e.Args) != len(def.Params) {
		return nil, fmt.Errorf("%s expects %d argument(s), got %d", e.Name, len(def.Params), len(e.Args))
	}

	argVals := make([]value.Value, len(e.Args))
	for i, arg := range e.Args {
		v, err := r.EvalExpr(arg, env, funcs)
		if err != nil {
			return nil, err
		}
		argVals[i] = v
	}

	r.tracef("Executing function %q, args: %v", e.Name, argVals)

	callEnv := value.NewEnvironment()
	for i, param := range def.Params {
		callEnv.Set(param, argVals[i])
	}

	wrap := func(idx int, err error) error {
		return fmt.Errorf("%s: statement %d: %w", e.Name, idx, err)
	}

	f, err := r.execBlock(def.Body, callEnv, funcs, ctxFunction, wrap)
	if err != nil {
		return nil, err
	}

	return f.value, nil
}
