// Package value provides the runtime value system for the strand scripting
// language interpreter.
//
// Value is a closed sum type with five variants: Integer (arbitrary
// precision, via math/big), Float (64-bit IEEE-754), String, Boolean, and
// Void. Every evaluated expression yields exactly one Value; Integers never
// silently become Floats except through the explicit coercion rules in
// pkg/eval.
//
// Environment is a flat identifier-to-Value table scoped to a single call
// frame. Unlike a conventional tree-walking interpreter's environment, it
// carries no parent pointer: the language has no closures, so a function
// body can only ever see its own freshly bound parameters, never the
// caller's bindings. The top-level Environment lives for the whole program;
// a call's Environment is discarded when the call returns.
//
// FuncTable is the global registry of user-defined functions, keyed by
// name, mapping to a parameter-name list and a body statement sequence.
// Redefining a name overwrites the previous entry.
package value
