package parser

import (
	"github.com/conneroisu/strand/internal/ast"
	"github.com/conneroisu/strand/pkg/lexer"
)

// parseStatement dispatches on the leading token of a statement. ctx
// tracks whether we're at the top level or inside a block body, since
// function definitions are only legal at the top level.
func (p *Parser) parseStatement(ctx stmtContext) ast.Stmt {
	switch p.cur.Type {
	case lexer.TOKEN_PRINT:
		return p.parsePrintStmt()
	case lexer.TOKEN_FN:
		if ctx == inBlock {
			p.fail(p.cur.Line, p.cur.Column, "function definitions are not allowed inside a block")

			return nil
		}

		return p.parseDefStmt()
	case lexer.TOKEN_RETURN:
		return p.parseReturnStmt()
	case lexer.TOKEN_IF:
		return p.parseIfStmt()
	case lexer.TOKEN_DEF:
		p.fail(p.cur.Line, p.cur.Column, "'def' is deprecated; use 'fn'")

		return nil
	case lexer.TOKEN_ELSE:
		p.fail(p.cur.Line, p.cur.Column, "'else' must follow an if block")

		return nil
	case lexer.TOKEN_ASSIGN:
		p.fail(p.cur.Line, p.cur.Column, "assignment cannot start a statement")

		return nil
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	pos := ast.WithPos(p.cur.Line, p.cur.Column)
	expr := p.parseExpression(0)
	if p.err != nil {
		return nil
	}

	return &ast.ExprStmt{Base: pos, X: expr}
}

// parseBlock parses a bracketed statement sequence. Entry: p.cur is
// TOKEN_LBRACKET. Exit: p.cur is the matching TOKEN_RBRACKET.
func (p *Parser) parseBlock() []ast.Stmt {
	p.advance() // consume '['

	var stmts []ast.Stmt
	for !p.curIs(lexer.TOKEN_RBRACKET) && !p.curIs(lexer.TOKEN_EOF) {
		stmt := p.parseStatement(inBlock)
		if p.err != nil {
			return nil
		}
		stmts = append(stmts, stmt)
		p.advance()
	}
	if !p.expectCur(lexer.TOKEN_RBRACKET) {
		return nil
	}

	return stmts
}

func (p *Parser) parseIfStmt() ast.Stmt {
	pos := ast.WithPos(p.cur.Line, p.cur.Column)

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.advance() // cur = first token of condition
	cond := p.parseExpression(0)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_LBRACKET) {
		return nil
	}
	thenBody := p.parseBlock()
	if p.err != nil {
		return nil
	}

	var elseBody []ast.Stmt
	if p.peekIs(lexer.TOKEN_ELSE) {
		p.advance() // cur = 'else'
		if !p.expectPeek(lexer.TOKEN_LBRACKET) {
			return nil
		}
		elseBody = p.parseBlock()
		if p.err != nil {
			return nil
		}
	}

	return &ast.IfStmt{Base: pos, Cond: cond, Then: thenBody, Else: elseBody}
}

func (p *Parser) parseDefStmt() ast.Stmt {
	pos := ast.WithPos(p.cur.Line, p.cur.Column)

	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.cur.Literal

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}

	var params []string
	if !p.peekIs(lexer.TOKEN_RPAREN) {
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			return nil
		}
		params = append(params, p.cur.Literal)
		for p.peekIs(lexer.TOKEN_COMMA) {
			p.advance() // cur = ','
			if !p.expectPeek(lexer.TOKEN_IDENT) {
				return nil
			}
			params = append(params, p.cur.Literal)
		}
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_LBRACKET) {
		return nil
	}
	body := p.parseBlock()
	if p.err != nil {
		return nil
	}

	return &ast.DefStmt{Base: pos, Name: name, Params: params, Body: body}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	pos := ast.WithPos(p.cur.Line, p.cur.Column)

	if !canStartExpression(p.peek.Type) {
		return &ast.ReturnStmt{Base: pos}
	}

	p.advance()
	val := p.parseExpression(0)
	if p.err != nil {
		return nil
	}

	return &ast.ReturnStmt{Base: pos, Value: val}
}

// parsePrintStmt distinguishes the two print forms by the raw first
// token, not by the shape of a parsed expression: seeing a string
// literal token commits to the format-string form before any
// expression parsing happens, exactly as a string-typed first argument
// followed by a non-separator token (e.g. "x" + "y") is a syntax
// error in format-string mode, not a single concatenated argument.
func (p *Parser) parsePrintStmt() ast.Stmt {
	pos := ast.WithPos(p.cur.Line, p.cur.Column)

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	if p.peekIs(lexer.TOKEN_RPAREN) {
		p.fail(p.peek.Line, p.peek.Column, "print requires at least one argument")

		return nil
	}
	p.advance() // cur = first token of first argument

	if p.cur.Type == lexer.TOKEN_STRING {
		format := p.cur.Literal
		p.advance()

		var args []ast.Expr
		for p.curIs(lexer.TOKEN_COMMA) {
			p.advance()
			arg := p.parseExpression(0)
			if p.err != nil {
				return nil
			}
			args = append(args, arg)
			p.advance() // cur = ',' or ')' after the argument
		}
		if !p.curIs(lexer.TOKEN_RPAREN) {
			p.fail(p.cur.Line, p.cur.Column, "expected closing ')' after print arguments, found %s", p.cur.Type)

			return nil
		}

		return &ast.PrintStmt{Base: pos, Format: &format, Args: args}
	}

	first := p.parseExpression(0)
	if p.err != nil {
		return nil
	}

	if p.peekIs(lexer.TOKEN_COMMA) {
		p.fail(p.peek.Line, p.peek.Column, "print with a non-string first argument takes exactly one argument")

		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return &ast.PrintStmt{Base: pos, Args: []ast.Expr{first}}
}
