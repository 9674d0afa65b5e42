package eval

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/conneroisu/strand/internal/ast"
	"github.com/conneroisu/strand/internal/value"
)

// EvalExpr evaluates a single expression against env and funcs, the
// central dispatcher every expression variant flows through.
func (r *Runner) EvalExpr(expr ast.Expr, env *value.Environment, funcs *value.FuncTable) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.NumExpr:
		return evalNum(e.Lexeme)

	case *ast.StrExpr:
		return value.String(e.Value), nil

	case *ast.VarExpr:
		v, ok := env.Get(e.Name)
		if !ok {
			return nil, fmt.Errorf("Cannot evaluate uninitialized variable: %s", e.Name)
		}

		return v, nil

	case *ast.PrefixExpr:
		return r.evalPrefix(e, env, funcs)

	case *ast.InfixExpr:
		if e.Op == '=' {
			return r.evalAssign(e, env, funcs)
		}

		return r.evalInfix(e, env, funcs)

	case *ast.CmpExpr:
		return r.evalCmp(e, env, funcs)

	case *ast.LogicExpr:
		return r.evalLogic(e, env, funcs)

	case *ast.CallExpr:
		return r.callFunction(e, env, funcs)

	default:
		return nil, fmt.Errorf("unknown expression type: %T", expr)
	}
}

// evalNum parses a numeric literal's preserved lexeme: the presence of
// a '.' selects Float, otherwise an arbitrary-precision Integer.
func evalNum(lexeme string) (value.Value, error) {
	if strings.Contains(lexeme, ".") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal %q: %w", lexeme, err)
		}

		return value.Float(f), nil
	}

	n, ok := new(big.Int).SetString(lexeme, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer literal %q", lexeme)
	}

	return value.NewInteger(n), nil
}

func (r *Runner) evalAssign(e *ast.InfixExpr, env *value.Environment, funcs *value.FuncTable) (value.Value, error) {
	varExpr, ok := e.Left.(*ast.VarExpr)
	if !ok {
		return nil, fmt.Errorf("Assignment target must be a variable")
	}

	v, err := r.EvalExpr(e.Right, env, funcs)
	if err != nil {
		return nil, err
	}

	env.Set(varExpr.Name, v)

	return v, nil
}

func (r *Runner) evalPrefix(e *ast.PrefixExpr, env *value.Environment, funcs *value.FuncTable) (value.Value, error) {
	operand, err := r.EvalExpr(e.Operand, env, funcs)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case '+':
		switch operand.(type) {
		case value.Integer, value.Float:
			return operand, nil
		default:
			return nil, fmt.Errorf("unary + requires a numeric operand, got %s", operand.Type())
		}

	case '-':
		switch v := operand.(type) {
		case value.Integer:
			return value.NewInteger(new(big.Int).Neg(v.V)), nil
		case value.Float:
			return -v, nil
		default:
			return nil, fmt.Errorf("unary - requires a numeric operand, got %s", operand.Type())
		}

	default:
		return nil, fmt.Errorf("unknown unary operator %q", e.Op)
	}
}
