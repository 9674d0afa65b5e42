package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/strand/internal/value"
	"github.com/conneroisu/strand/pkg/lexer"
	"github.com/conneroisu/strand/pkg/parser"
)

func runProgram(t *testing.T, src string) (string, []value.Value, error) {
	t.Helper()

	stmts, err := parser.New(lexer.New(src)).ParseProgram()
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRunner(&out, nil, nil)
	results, runErr := r.RunTopLevel(stmts, value.NewEnvironment(), value.NewFuncTable())

	return out.String(), results, runErr
}

func TestPrintSimpleForm(t *testing.T) {
	out, _, err := runProgram(t, `print("hello")`)
	require.NoError(t, err)
	require.Equal(t, "hello\n", out)
}

func TestPrintFormatFormWithExponent(t *testing.T) {
	out, _, err := runProgram(t, `x = 2
y = 3
print("{}", x ^ y)`)
	require.NoError(t, err)
	require.Equal(t, "8\n", out)
}

func TestFactorialTwenty(t *testing.T) {
	out, _, err := runProgram(t, `fn fact(n) [
  if (n <= 1) [
    return 1
  ]
  return n * fact(n - 1)
]
print("{}", fact(20))`)
	require.NoError(t, err)
	require.Equal(t, "2432902008176640000\n", out)
}

func TestStrictVsNonStrictEquality(t *testing.T) {
	out, _, err := runProgram(t, `print("{}", 1 == 1.0)
print("{}", 1 === 1.0)`)
	require.NoError(t, err)
	require.Equal(t, "true\nfalse\n", out)
}

func TestCompoundAssignmentChain(t *testing.T) {
	out, _, err := runProgram(t, `a = 10
a += 5
a *= 2
print("{}", a)`)
	require.NoError(t, err)
	require.Equal(t, "30\n", out)
}

func TestIfElseAcrossFunctionReturn(t *testing.T) {
	out, _, err := runProgram(t, `fn f(x) [
  if (x > 0) [
    return "pos"
  ] else [
    return "nonpos"
  ]
]
print("{}", f(-3))`)
	require.NoError(t, err)
	require.Equal(t, "nonpos\n", out)
}

func TestShortCircuitAndSkipsRightOperand(t *testing.T) {
	out, _, err := runProgram(t, `fn boom() [
  return 1 / 0
]
x = 1 > 2 and boom()
print("{}", x)`)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestShortCircuitOrSkipsRightOperand(t *testing.T) {
	out, _, err := runProgram(t, `fn boom() [
  return 1 / 0
]
x = 1 < 2 or boom()
print("{}", x)`)
	require.NoError(t, err)
	require.Equal(t, "true\n", out)
}

func TestNonBooleanLeftStillEvaluatesRightOperand(t *testing.T) {
	_, _, err := runProgram(t, `fn boom() [
  return 1 / 0
]
x = 1 and boom()`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "division by zero")
}

func TestUninitializedVariableIsFatal(t *testing.T) {
	_, _, err := runProgram(t, `print("{}", x)`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "uninitialized variable")
}

func TestIntegerDivisionByZero(t *testing.T) {
	_, _, err := runProgram(t, `print("{}", 1 / 0)`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "division by zero")
}

func TestIntegerModuloByZero(t *testing.T) {
	_, _, err := runProgram(t, `print("{}", 1 % 0)`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "modulo by zero")
}

func TestNegativeExponentIsError(t *testing.T) {
	_, _, err := runProgram(t, `print("{}", 2 ^ -1)`)
	require.Error(t, err)
}

func TestNotEnoughPlaceholdersIsError(t *testing.T) {
	_, _, err := runProgram(t, `print("{}", 1, 2)`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "placeholders")
}

func TestExtraPlaceholdersAreLiteral(t *testing.T) {
	out, _, err := runProgram(t, `print("{} and {}", 1)`)
	require.NoError(t, err)
	require.Equal(t, "1 and {}\n", out)
}

func TestEmptyFunctionBodyYieldsVoid(t *testing.T) {
	out, _, err := runProgram(t, `fn empty() [ ]
x = empty()
print("{}", x)`)
	require.NoError(t, err)
	require.Equal(t, "void\n", out)
}

func TestEmptyThenBodyProducesNoOutput(t *testing.T) {
	out, _, err := runProgram(t, `if (1 > 2) [ ]`)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestAssignmentTargetMustBeVariable(t *testing.T) {
	_, _, err := runProgram(t, `(1 + 1) = 2`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Assignment target must be a variable")
}

func TestRedefiningFunctionReplacesPriorBody(t *testing.T) {
	out, _, err := runProgram(t, `fn greet() [ return "hi" ]
fn greet() [ return "hello" ]
print("{}", greet())`)
	require.NoError(t, err)
	require.Equal(t, "hello\n", out)
}

func TestArityMismatchIsError(t *testing.T) {
	_, _, err := runProgram(t, `fn add(a, b) [ return a + b ]
print("{}", add(1))`)
	require.Error(t, err)
}

func TestCallOfUndefinedFunctionIsError(t *testing.T) {
	_, _, err := runProgram(t, `print("{}", missing(1))`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "undefined function")
}

func TestStringConcatenation(t *testing.T) {
	out, _, err := runProgram(t, `print("{}", "foo" + "bar")`)
	require.NoError(t, err)
	require.Equal(t, "foobar\n", out)
}

func TestMixedIntegerFloatArithmeticCoercesToFloat(t *testing.T) {
	out, _, err := runProgram(t, `print("{}", 1 + 1.5)`)
	require.NoError(t, err)
	require.Equal(t, "2.5\n", out)
}

func TestOrderingAcrossVariantsIsError(t *testing.T) {
	_, _, err := runProgram(t, `print("{}", 1 < "a")`)
	require.Error(t, err)
}

func TestFunctionCallErrorIsWrappedWithNameAndStatementIndex(t *testing.T) {
	_, _, err := runProgram(t, `fn bad() [
  x = 1 / 0
  return x
]
bad()`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad")
	require.Contains(t, err.Error(), "statement 1")
	require.Contains(t, err.Error(), "division by zero")
}
