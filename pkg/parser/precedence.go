package parser

import "github.com/conneroisu/strand/pkg/lexer"

// bindingPower is the (left, right) binding-power pair for an infix or
// postfix operator token. Pratt parsing compares the left power of the
// upcoming operator against the minimum binding power threaded down from
// the caller to decide whether to keep extending the current expression.
type bindingPower struct {
	left, right int
}

// infixBindingPower maps each operator-carrying token to its binding
// powers. Higher numbers bind tighter. Right-associative operators (only
// assignment, here) have a right power lower than their left power;
// left-associative operators have right = left + 1.
var infixBindingPower = map[lexer.TokenType]bindingPower{
	lexer.TOKEN_ASSIGN:         {2, 1},
	lexer.TOKEN_PLUS_ASSIGN:    {2, 1},
	lexer.TOKEN_MINUS_ASSIGN:   {2, 1},
	lexer.TOKEN_STAR_ASSIGN:    {2, 1},
	lexer.TOKEN_SLASH_ASSIGN:   {2, 1},
	lexer.TOKEN_PERCENT_ASSIGN: {2, 1},
	lexer.TOKEN_CARET_ASSIGN:   {2, 1},

	lexer.TOKEN_OR: {3, 4},

	lexer.TOKEN_AND: {5, 6},

	lexer.TOKEN_EQ:   {7, 8},
	lexer.TOKEN_NEQ:  {7, 8},
	lexer.TOKEN_LT:   {7, 8},
	lexer.TOKEN_GT:   {7, 8},
	lexer.TOKEN_LTE:  {7, 8},
	lexer.TOKEN_GTE:  {7, 8},
	lexer.TOKEN_SEQ:  {7, 8},
	lexer.TOKEN_SNEQ: {7, 8},

	lexer.TOKEN_PLUS:  {9, 10},
	lexer.TOKEN_MINUS: {9, 10},

	lexer.TOKEN_STAR:    {11, 12},
	lexer.TOKEN_SLASH:   {11, 12},
	lexer.TOKEN_PERCENT: {11, 12},

	lexer.TOKEN_CARET: {13, 14},
}

// prefixRightBindingPower is the right binding power used when parsing the
// operand of a unary prefix + or -.
const prefixRightBindingPower = 10

// compoundOps maps a compound-assignment token to the single-character
// arithmetic operator it desugars into: `x op= y` becomes
// `x = x op y`.
var compoundOps = map[lexer.TokenType]byte{
	lexer.TOKEN_PLUS_ASSIGN:    '+',
	lexer.TOKEN_MINUS_ASSIGN:   '-',
	lexer.TOKEN_STAR_ASSIGN:    '*',
	lexer.TOKEN_SLASH_ASSIGN:   '/',
	lexer.TOKEN_PERCENT_ASSIGN: '%',
	lexer.TOKEN_CARET_ASSIGN:   '^',
}

// cmpOps is the set of tokens that parse into a CmpExpr (as opposed to an
// InfixExpr or LogicExpr).
var cmpOps = map[lexer.TokenType]string{
	lexer.TOKEN_EQ:   "==",
	lexer.TOKEN_NEQ:  "!=",
	lexer.TOKEN_LT:   "<",
	lexer.TOKEN_GT:   ">",
	lexer.TOKEN_LTE:  "<=",
	lexer.TOKEN_GTE:  ">=",
	lexer.TOKEN_SEQ:  "===",
	lexer.TOKEN_SNEQ: "!==",
}

// logicOps is the set of tokens that parse into a LogicExpr.
var logicOps = map[lexer.TokenType]string{
	lexer.TOKEN_AND: "and",
	lexer.TOKEN_OR:  "or",
}

// arithOps maps a plain arithmetic operator token to the single byte
// stored on an InfixExpr.
var arithOps = map[lexer.TokenType]byte{
	lexer.TOKEN_PLUS:    '+',
	lexer.TOKEN_MINUS:   '-',
	lexer.TOKEN_STAR:    '*',
	lexer.TOKEN_SLASH:   '/',
	lexer.TOKEN_PERCENT: '%',
	lexer.TOKEN_CARET:   '^',
}

// canStartExpression reports whether a token type can begin a prefix
// expression. Used to decide whether a bare `return` carries a value.
func canStartExpression(t lexer.TokenType) bool {
	switch t {
	case lexer.TOKEN_NUMBER, lexer.TOKEN_STRING, lexer.TOKEN_IDENT,
		lexer.TOKEN_LPAREN, lexer.TOKEN_PLUS, lexer.TOKEN_MINUS:
		return true
	default:
		return false
	}
}
