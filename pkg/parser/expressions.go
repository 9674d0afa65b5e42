package parser

import (
	"github.com/conneroisu/strand/internal/ast"
	"github.com/conneroisu/strand/pkg/lexer"
)

// parseExpression implements Pratt precedence climbing. minBP is the
// minimum left binding power an upcoming infix operator must have for
// this call to keep extending the expression; callers pass 0 at the top
// of a new expression context (statement, grouped expression, call
// argument) and a specific right binding power when recursing into an
// operator's right-hand side.
func (p *Parser) parseExpression(minBP int) ast.Expr {
	left := p.parsePrefix()
	if p.err != nil {
		return left
	}

	for {
		bp, ok := infixBindingPower[p.peek.Type]
		if !ok || bp.left < minBP {
			break
		}
		p.advance()
		left = p.parseInfix(left, bp)
		if p.err != nil {
			return left
		}
	}

	return left
}

// parsePrefix parses the "nud" (null denotation) of the current token:
// literals, identifiers, calls, parenthesized expressions, and unary
// prefix + / -.
func (p *Parser) parsePrefix() ast.Expr {
	pos := ast.WithPos(p.cur.Line, p.cur.Column)

	switch p.cur.Type {
	case lexer.TOKEN_NUMBER:
		return &ast.NumExpr{Base: pos, Lexeme: p.cur.Literal}
	case lexer.TOKEN_STRING:
		return &ast.StrExpr{Base: pos, Value: p.cur.Literal}
	case lexer.TOKEN_IDENT:
		name := p.cur.Literal
		if p.peekIs(lexer.TOKEN_LPAREN) {
			return p.parseCall(name, pos)
		}

		return &ast.VarExpr{Base: pos, Name: name}
	case lexer.TOKEN_LPAREN:
		p.advance()
		inner := p.parseExpression(0)
		if p.err != nil {
			return inner
		}
		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return nil
		}

		return inner
	case lexer.TOKEN_PLUS, lexer.TOKEN_MINUS:
		op := p.cur.Literal[0]
		p.advance()
		operand := p.parseExpression(prefixRightBindingPower)

		return &ast.PrefixExpr{Base: pos, Op: op, Operand: operand}
	default:
		p.fail(p.cur.Line, p.cur.Column, "unexpected token %v %q in expression", p.cur.Type, p.cur.Literal)

		return nil
	}
}

// parseCall parses a function call's argument list. cur is the function
// name identifier and peek is the opening '('.
func (p *Parser) parseCall(name string, pos ast.Base) ast.Expr {
	p.advance() // consume '('

	var args []ast.Expr
	if !p.peekIs(lexer.TOKEN_RPAREN) {
		p.advance()
		args = append(args, p.parseExpression(0))
		if p.err != nil {
			return nil
		}
		for p.peekIs(lexer.TOKEN_COMMA) {
			p.advance()
			p.advance()
			args = append(args, p.parseExpression(0))
			if p.err != nil {
				return nil
			}
		}
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return &ast.CallExpr{Base: pos, Name: name, Args: args}
}

// parseInfix parses the "led" (left denotation) of an infix operator
// already sitting in p.cur, dispatching to the correct AST node kind:
// assignment, compound-assignment desugaring, comparison, logical, or
// plain arithmetic.
func (p *Parser) parseInfix(left ast.Expr, bp bindingPower) ast.Expr {
	pos := ast.WithPos(left.Position().Line, left.Position().Column)

	switch {
	case p.cur.Type == lexer.TOKEN_ASSIGN:
		p.advance()
		right := p.parseExpression(bp.right)

		return &ast.InfixExpr{Base: pos, Left: left, Op: '=', Right: right}

	case compoundOps[p.cur.Type] != 0:
		opChar := compoundOps[p.cur.Type]
		lit := p.cur.Literal
		line, col := p.cur.Line, p.cur.Column
		varExpr, ok := left.(*ast.VarExpr)
		if !ok {
			p.fail(line, col, "left-hand side of compound assignment %q must be a variable", lit)

			return left
		}
		p.advance()
		right := p.parseExpression(bp.right)
		inner := &ast.InfixExpr{Base: pos, Left: &ast.VarExpr{Base: pos, Name: varExpr.Name}, Op: opChar, Right: right}

		return &ast.InfixExpr{Base: pos, Left: varExpr, Op: '=', Right: inner}

	case cmpOps[p.cur.Type] != "":
		op := cmpOps[p.cur.Type]
		p.advance()
		right := p.parseExpression(bp.right)

		return &ast.CmpExpr{Base: pos, Left: left, Op: op, Right: right}

	case logicOps[p.cur.Type] != "":
		op := logicOps[p.cur.Type]
		p.advance()
		right := p.parseExpression(bp.right)

		return &ast.LogicExpr{Base: pos, Left: left, Op: op, Right: right}

	default:
		op := arithOps[p.cur.Type]
		p.advance()
		right := p.parseExpression(bp.right)

		return &ast.InfixExpr{Base: pos, Left: left, Op: op, Right: right}
	}
}
