// Package ast provides Abstract Syntax Tree node definitions for the strand
// scripting language.
//
// The tree has two tiers: expressions, which always evaluate to exactly one
// Value, and statements, which drive control flow and side effects. Both
// tiers are closed sum types — every case analysis in pkg/parser and pkg/eval
// is exhaustive over the variants declared here.
//
// Expressions:
//   - VarExpr: identifier reference (x)
//   - NumExpr: numeric literal, raw lexeme preserved (42, 3.14)
//   - StrExpr: string literal with escapes already resolved
//   - PrefixExpr: unary + or -
//   - InfixExpr: arithmetic and assignment (+ - * / % ^ =)
//   - CmpExpr: comparison (== != < > <= >= === !==)
//   - LogicExpr: and / or
//   - CallExpr: function invocation
//
// Statements:
//   - ExprStmt: evaluate and discard, or yield as block value
//   - PrintStmt: print(expr) or print(fmt, args...)
//   - DefStmt: function definition (top level only)
//   - ReturnStmt: explicit return signal
//   - IfStmt: block-structured if/else
//
// Nodes carry a SourcePos for error reporting via an embedded Base,
// the same scaffolding pattern used throughout this tree.
package ast
