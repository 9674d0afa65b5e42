// Package parser implements a recursive-descent parser with Pratt
// precedence climbing for strand source text.
//
// The parser is the second stage of the interpreter pipeline,
// transforming a token stream from the lexer into a sequence of
// top-level statements that the evaluator can walk directly.
//
// Architecture:
//
// Statement parsing dispatches on the leading token: print, fn, return,
// if, and expression statements are each handled by a dedicated
// function; the deprecated def keyword, a leading else, and a leading
// bare = are each a hard parse error. Function definitions are legal
// only at the top level — one nested inside a block body is a hard
// error.
//
// Expression parsing uses Pratt precedence climbing with an explicit
// left/right binding-power pair per operator (not a single precedence
// integer), so the right-associative assignment family and the
// left-associative arithmetic/comparison/logical families share one
// climbing loop. Compound-assignment tokens (+= -= *= /= %= ^=) are
// desugared at parse time into `x = x op y`, enforcing that their
// left-hand side is a bare variable.
//
// Error Handling:
//
// Parsing halts on the first error: there is no error-accumulation pass.
// The returned error names the offending token's source position and
// the expected production.
//
// Usage Example:
//
//	l := lexer.New(`fn double(x) [ return x * 2 ]`)
//	p := parser.New(l)
//	stmts, err := p.ParseProgram()
//	if err != nil {
//	    // report and halt
//	}
package parser
