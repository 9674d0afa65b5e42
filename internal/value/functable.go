package value

import "github.com/conneroisu/strand/internal/ast"

// FuncDef is the function-table entry: a parameter-name sequence and a body
// statement sequence, stored by value so the table outlives the parser's
// own AST walk.
type FuncDef struct {
	Params []string
	Body   []ast.Stmt
}

// FuncTable is the global registry of user-defined functions. Functions are
// defined only at the top level; redefinition overwrites the prior entry.
type FuncTable struct {
	defs map[string]FuncDef
}

// NewFuncTable creates an empty function table.
func NewFuncTable() *FuncTable {
	return &FuncTable{defs: make(map[string]FuncDef)}
}

// Define inserts or overwrites the entry for name.
func (t *FuncTable) Define(name string, params []string, body []ast.Stmt) {
	t.defs[name] = FuncDef{
		Params: append([]string(nil), params...),
		Body:   append([]ast.Stmt(nil), body...),
	}
}

// Lookup returns the entry for name, if any.
func (t *FuncTable) Lookup(name string) (FuncDef, bool) {
	def, ok := t.defs[name]

	return def, ok
}
