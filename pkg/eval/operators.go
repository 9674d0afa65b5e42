package eval

import (
	"fmt"
	"math"
	"math/big"

	"github.com/conneroisu/strand/internal/ast"
	"github.com/conneroisu/strand/internal/value"
)

// evalInfix dispatches the arithmetic operators (+ - * / % ^) by the
// runtime type of both operands: Integer op Integer stays Integer,
// String + String concatenates, any Integer/Float mix coerces both
// sides to float64 and stays Float, anything else is a type error.
func (r *Runner) evalInfix(e *ast.InfixExpr, env *value.Environment, funcs *value.FuncTable) (value.Value, error) {
	left, err := r.EvalExpr(e.Left, env, funcs)
	if err != nil {
		return nil, err
	}
	right, err := r.EvalExpr(e.Right, env, funcs)
	if err != nil {
		return nil, err
	}

	li, lIsInt := left.(value.Integer)
	ri, rIsInt := right.(value.Integer)
	if lIsInt && rIsInt {
		return evalIntArith(e.Op, li, ri)
	}

	ls, lIsStr := left.(value.String)
	rs, rIsStr := right.(value.String)
	if lIsStr && rIsStr {
		if e.Op != '+' {
			return nil, typeErr(e.Op, left, right)
		}

		return ls + rs, nil
	}

	lf, lOK := toFloatOperand(left)
	rf, rOK := toFloatOperand(right)
	if lOK && rOK {
		return evalFloatArith(e.Op, lf, rf)
	}

	return nil, typeErr(e.Op, left, right)
}

// toFloatOperand converts Integer or Float values to float64 for mixed
// arithmetic; anything else is rejected here so the caller can fall
// through to its own type error.
func toFloatOperand(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Float:
		return float64(n), true
	case value.Integer:
		f, err := integerToFloat(n)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// integerToFloat converts an arbitrary-precision Integer to float64,
// raising when the value overflows the float64 range.
func integerToFloat(n value.Integer) (float64, error) {
	f, _ := new(big.Float).SetInt(n.V).Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("integer %s is too large to convert to Float", n.V.String())
	}

	return f, nil
}

func evalIntArith(op byte, l, r value.Integer) (value.Value, error) {
	switch op {
	case '+':
		return value.NewInteger(new(big.Int).Add(l.V, r.V)), nil
	case '-':
		return value.NewInteger(new(big.Int).Sub(l.V, r.V)), nil
	case '*':
		return value.NewInteger(new(big.Int).Mul(l.V, r.V)), nil
	case '/':
		if r.V.Sign() == 0 {
			return nil, fmt.Errorf("division by zero")
		}

		return value.NewInteger(new(big.Int).Quo(l.V, r.V)), nil
	case '%':
		if r.V.Sign() == 0 {
			return nil, fmt.Errorf("modulo by zero")
		}

		return value.NewInteger(new(big.Int).Rem(l.V, r.V)), nil
	case '^':
		if r.V.Sign() < 0 || !r.V.IsUint64() || r.V.Uint64() > math.MaxUint32 {
			return nil, fmt.Errorf("exponent %s is not a non-negative 32-bit value", r.V.String())
		}

		return value.NewInteger(new(big.Int).Exp(l.V, r.V, nil)), nil
	default:
		return nil, fmt.Errorf("unknown arithmetic operator %q", op)
	}
}

func evalFloatArith(op byte, l, r float64) (value.Value, error) {
	switch op {
	case '+':
		return value.Float(l + r), nil
	case '-':
		return value.Float(l - r), nil
	case '*':
		return value.Float(l * r), nil
	case '/':
		if math.Abs(r) < floatEpsilon {
			return nil, fmt.Errorf("division by zero")
		}

		return value.Float(l / r), nil
	case '%':
		if math.Abs(r) < floatEpsilon {
			return nil, fmt.Errorf("modulo by zero")
		}

		return value.Float(math.Mod(l, r)), nil
	case '^':
		return value.Float(math.Pow(l, r)), nil
	default:
		return nil, fmt.Errorf("unknown arithmetic operator %q", op)
	}
}

const floatEpsilon = 1e-12

func typeErr(op byte, l, r value.Value) error {
	return fmt.Errorf("operator %q not supported between %s and %s", op, l.Type(), r.Type())
}

// evalCmp implements both strict (===, !==) and non-strict (==, !=)
// equality plus ordering (< > <= >=), which is restricted to
// same-variant Integer, Float, or String pairs.
func (r *Runner) evalCmp(e *ast.CmpExpr, env *value.Environment, funcs *value.FuncTable) (value.Value, error) {
	left, err := r.EvalExpr(e.Left, env, funcs)
	if err != nil {
		return nil, err
	}
	right, err := r.EvalExpr(e.Right, env, funcs)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "===":
		eq, err := strictEqual(left, right)
		if err != nil {
			return nil, err
		}

		return value.Boolean(eq), nil
	case "!==":
		eq, err := strictEqual(left, right)
		if err != nil {
			return nil, err
		}

		return value.Boolean(!eq), nil
	case "==":
		eq, err := nonStrictEqual(left, right)
		if err != nil {
			return nil, err
		}

		return value.Boolean(eq), nil
	case "!=":
		eq, err := nonStrictEqual(left, right)
		if err != nil {
			return nil, err
		}

		return value.Boolean(!eq), nil
	case "<", ">", "<=", ">=":
		return evalOrdering(e.Op, left, right)
	default:
		return nil, fmt.Errorf("unknown comparison operator %q", e.Op)
	}
}

// strictEqual never reports equal across differing variants, even when
// numerically equivalent (Integer(1) is never strictly equal to
// Float(1.0)).
func strictEqual(l, r value.Value) (bool, error) {
	switch lv := l.(type) {
	case value.Integer:
		rv, ok := r.(value.Integer)

		return ok && lv.V.Cmp(rv.V) == 0, nil
	case value.Float:
		rv, ok := r.(value.Float)

		return ok && lv == rv, nil
	case value.String:
		rv, ok := r.(value.String)

		return ok && lv == rv, nil
	case value.Boolean:
		rv, ok := r.(value.Boolean)

		return ok && lv == rv, nil
	case value.Void:
		_, ok := r.(value.Void)

		return ok, nil
	default:
		return false, fmt.Errorf("cannot compare value of type %s", l.Type())
	}
}

// nonStrictEqual additionally permits Integer/Float cross-comparison by
// numeric value in either operand order.
func nonStrictEqual(l, r value.Value) (bool, error) {
	li, lIsInt := l.(value.Integer)
	rf, rIsFloat := r.(value.Float)
	if lIsInt && rIsFloat {
		lf, err := integerToFloat(li)
		if err != nil {
			return false, err
		}

		return lf == float64(rf), nil
	}

	lf, lIsFloat := l.(value.Float)
	ri, rIsInt := r.(value.Integer)
	if lIsFloat && rIsInt {
		rFloat, err := integerToFloat(ri)
		if err != nil {
			return false, err
		}

		return float64(lf) == rFloat, nil
	}

	return strictEqual(l, r)
}

// evalOrdering implements < > <= >= for same-variant Integer, Float, or
// String pairs. The Float >= arm intentionally uses l >= r, the
// documented semantics, rather than reproducing any latent asymmetry.
func evalOrdering(op string, l, r value.Value) (value.Value, error) {
	switch lv := l.(type) {
	case value.Integer:
		rv, ok := r.(value.Integer)
		if !ok {
			return nil, orderErr(op, l, r)
		}
		c := lv.V.Cmp(rv.V)

		return value.Boolean(orderResult(op, c)), nil

	case value.Float:
		rv, ok := r.(value.Float)
		if !ok {
			return nil, orderErr(op, l, r)
		}

		switch op {
		case "<":
			return value.Boolean(lv < rv), nil
		case ">":
			return value.Boolean(lv > rv), nil
		case "<=":
			return value.Boolean(lv <= rv), nil
		case ">=":
			return value.Boolean(lv >= rv), nil
		}

	case value.String:
		rv, ok := r.(value.String)
		if !ok {
			return nil, orderErr(op, l, r)
		}

		var c int
		switch {
		case lv < rv:
			c = -1
		case lv > rv:
			c = 1
		}

		return value.Boolean(orderResult(op, c)), nil
	}

	return nil, orderErr(op, l, r)
}

func orderResult(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp < 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case ">=":
		return cmp >= 0
	default:
		return false
	}
}

func orderErr(op string, l, r value.Value) error {
	return fmt.Errorf("ordering %q not supported between %s and %s", op, l.Type(), r.Type())
}

// evalLogic implements short-circuiting and/or: false and X never
// evaluates X, true or X never evaluates X. The short-circuit only
// fires when left is a matching Boolean; otherwise right is evaluated
// unconditionally and both operands are type-checked together, so a
// non-Boolean left does not suppress evaluation of right.
func (r *Runner) evalLogic(e *ast.LogicExpr, env *value.Environment, funcs *value.FuncTable) (value.Value, error) {
	left, err := r.EvalExpr(e.Left, env, funcs)
	if err != nil {
		return nil, err
	}

	if leftBool, ok := left.(value.Boolean); ok {
		if e.Op == "and" && !bool(leftBool) {
			return value.Boolean(false), nil
		}
		if e.Op == "or" && bool(leftBool) {
			return value.Boolean(true), nil
		}
	}

	right, err := r.EvalExpr(e.Right, env, funcs)
	if err != nil {
		return nil, err
	}

	leftBool, ok := left.(value.Boolean)
	if !ok {
		return nil, fmt.Errorf("%s requires Boolean operands, got %s", e.Op, left.Type())
	}
	rightBool, ok := right.(value.Boolean)
	if !ok {
		return nil, fmt.Errorf("%s requires Boolean operands, got %s", e.Op, right.Type())
	}

	if e.Op == "and" {
		return value.Boolean(leftBool && rightBool), nil
	}

	return value.Boolean(leftBool || rightBool), nil
}
