package parser

import (
	"github.com/conneroisu/strand/internal/ast"
	"github.com/conneroisu/strand/pkg/lexer"
)

// stmtContext distinguishes top-level statement parsing from parsing
// inside a block body. Function definitions are only legal at the top
// level.
type stmtContext int

const (
	topLevel stmtContext = iota
	inBlock
)

// Parser implements a recursive-descent parser with Pratt precedence
// climbing for strand source text. It transforms a token stream from the
// lexer into a sequence of top-level statements.
//
// Parsing is fatal on the first error encountered, rather than
// accumulating a list for comprehensive reporting: the caller gets one
// "parse error at line N, column M: message" and stops, a
// single-diagnostic error propagation policy.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
	err  *ParseError
}

// New creates a parser over the given lexer, priming the cur/peek
// lookahead window with the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()

	return p
}

// ParseProgram parses the entire token stream into a sequence of
// top-level statements. Returns the first parse error encountered, if
// any.
func (p *Parser) ParseProgram() ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for !p.curIs(lexer.TOKEN_EOF) && p.err == nil {
		stmt := p.parseStatement(topLevel)
		if p.err != nil {
			return nil, p.err
		}
		stmts = append(stmts, stmt)
		p.advance()
	}

	return stmts, nil
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

// fail records the first error encountered. Once set, ParseProgram and
// every nested parse helper unwind without doing further work.
func (p *Parser) fail(line, column int, format string, args ...any) {
	if p.err == nil {
		p.err = newParseError(line, column, format, args...)
	}
}

// expectPeek verifies the next token matches t and consumes it; otherwise
// records a fatal error and returns false.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()

		return true
	}
	p.fail(p.peek.Line, p.peek.Column, "expected %v, got %v %q", t, p.peek.Type, p.peek.Literal)

	return false
}

// expectCur verifies the current token matches t; otherwise records a
// fatal error and returns false. Unlike expectPeek it does not advance.
func (p *Parser) expectCur(t lexer.TokenType) bool {
	if p.curIs(t) {
		return true
	}
	p.fail(p.cur.Line, p.cur.Column, "expected %v, got %v %q", t, p.cur.Type, p.cur.Literal)

	return false
}
