// Package eval implements the tree-walking evaluator and statement runner
// for strand programs.
//
// The two concerns — expression evaluation (arithmetic, comparison,
// logic, assignment, function calls) and statement execution (print,
// if/else, function definition, return) — share this package because
// they are mutually recursive: a statement evaluates an expression that
// may itself call a function, which in turn executes statements.
//
// Runner is the shared entry point for both the file driver and the
// REPL: every top-level statement sequence, whether read from a file in
// one shot or one line at a time, runs through Runner.RunTopLevel so
// there is exactly one evaluation path.
//
// Control flow within a function body does not use panics or Go errors
// for `return` — a three-way flow carrier (Continue, Return, Print)
// threads the signal out of nested if/else bodies explicitly, keeping
// the evaluator's control flow a plain value rather than a non-local
// jump.
//
// Usage Example:
//
//	l := lexer.New(`fn double(x) [ return x * 2 ] print("{}", double(21))`)
//	p := parser.New(l)
//	stmts, err := p.ParseProgram()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := eval.NewRunner(os.Stdout, logWriter, traceLogger)
//	_, err = r.RunTopLevel(stmts, value.NewEnvironment(), value.NewFuncTable())
package eval
