// Package parser implements a recursive-descent LL(1) parser:
// program -> (definition|statement)* EOF, with operator precedence
// encoded as one method per grammar layer.
package parser

import (
	"github.com/cwbudde/logoscript/internal/ast"
	"github.com/cwbudde/logoscript/internal/lexer"
)

// Parser consumes a token stream from a lexer.Lexer and builds an
// ast.Program. It fails fast: the first SyntaxError (or lexer error)
// aborts the parse.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

// New creates a Parser reading tokens from lex.
func New(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// expect consumes the current token if it has kind k, returning it;
// otherwise returns a SyntaxError stamped with the current token's
// position.
func (p *Parser) expect(k lexer.TokenKind, what string) (lexer.Token, error) {
	if p.cur.Kind != k {
		return lexer.Token{}, newSyntaxError(p.cur.Pos, "expected %s, got %q", what, p.cur.Lexeme)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

// ParseProgram parses an entire source file into an ast.Program.
func ParseProgram(lex *lexer.Lexer) (*ast.Program, error) {
	p, err := New(lex)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	seen := map[string]lexer.Position{}

	for p.cur.Kind != lexer.EOF {
		if p.cur.Kind == lexer.FUN {
			def, err := p.parseProcDef()
			if err != nil {
				return nil, err
			}
			if _, dup := seen[def.Name]; dup {
				return nil, newSyntaxError(def.NamePos, "Redefinition of procedure %q", def.Name)
			}
			seen[def.Name] = def.NamePos
			prog.Definitions = append(prog.Definitions, def)
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}

	if p.cur.Kind != lexer.EOF {
		return nil, newSyntaxError(p.cur.Pos, "EOF expected")
	}
	return prog, nil
}

func (p *Parser) parseProcDef() (*ast.ProcDef, error) {
	if _, err := p.expect(lexer.FUN, "'fun'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER, "procedure name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.OPEN_PAREN, "opening paren"); err != nil {
		return nil, err
	}

	var params []string
	if p.cur.Kind != lexer.CLOSE_PAREN {
		for {
			paramTok, err := p.expect(lexer.IDENTIFIER, "parameter name")
			if err != nil {
				return nil, err
			}
			for _, existing := range params {
				if existing == paramTok.Lexeme {
					return nil, newSyntaxError(paramTok.Pos, "duplicate parameter name %q", paramTok.Lexeme)
				}
			}
			params = append(params, paramTok.Lexeme)
			if p.cur.Kind != lexer.COMMA {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.CLOSE_PAREN, "closing paren"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ProcDef{NamePos: nameTok.Pos, Name: nameTok.Lexeme, Params: params, Body: body}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(lexer.OPEN_BLOCK, "opening brace")
	if err != nil {
		return nil, err
	}
	block := &ast.Block{BracePos: open.Pos}
	for p.cur.Kind != lexer.CLOSE_BLOCK {
		if p.cur.Kind == lexer.EOF {
			return nil, newSyntaxError(p.cur.Pos, "unexpected EOF inside block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(lexer.CLOSE_BLOCK, "closing brace"); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur.Kind {
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.IF:
		return p.parseIf()
	default:
		return p.parseAssignmentOrExpr()
	}
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	whileTok, err := p.expect(lexer.WHILE, "'while'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.OPEN_PAREN, "opening paren"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CLOSE_PAREN, "closing paren"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{WhilePos: whileTok.Pos, Cond: cond, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	ifTok, err := p.expect(lexer.IF, "'if'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.OPEN_PAREN, "opening paren"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CLOSE_PAREN, "closing paren"); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{IfPos: ifTok.Pos, Cond: cond, Then: thenBlock}
	if p.cur.Kind == lexer.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.ElseBlock = elseBlock
	}
	return stmt, nil
}

func (p *Parser) parseAssignmentOrExpr() (ast.Stmt, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if ident, ok := expr.(*ast.Ident); ok && len(ident.Postfixes) == 0 && p.cur.Kind == lexer.ASSIGN {
		eqPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{NamePos: ident.IdentPos, EqPos: eqPos, Name: ident.Name, Expr: rhs}, nil
	}
	return &ast.ExprStmt{E: expr}, nil
}

// parseExpr is the `||` precedence layer.
func (p *Parser) parseExpr() (ast.Expr, error) {
	first, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.OR_OP {
		return first, nil
	}
	operands := []ast.Expr{first}
	for p.cur.Kind == lexer.OR_OP {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	return &ast.LogicOr{Operands: operands}, nil
}

// parseAndExpr is the `&&` precedence layer.
func (p *Parser) parseAndExpr() (ast.Expr, error) {
	first, err := p.parseRelation()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.AND_OP {
		return first, nil
	}
	operands := []ast.Expr{first}
	for p.cur.Kind == lexer.AND_OP {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseRelation()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	return &ast.LogicAnd{Operands: operands}, nil
}

// parseRelation is the comparison precedence layer. A Relation node is
// only built when a comparison operator is actually present.
func (p *Parser) parseRelation() (ast.Expr, error) {
	lhs, err := p.parseAddChain()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.COMP_OP {
		return lhs, nil
	}
	opTok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAddChain()
	if err != nil {
		return nil, err
	}
	return &ast.Relation{Lhs: lhs, Rhs: rhs, Op: opTok.Lexeme, OpPos: opTok.Pos}, nil
}

func (p *Parser) parseAddChain() (ast.Expr, error) {
	first, err := p.parseMulChain()
	if err != nil {
		return nil, err
	}
	add := &ast.Add{First: first}
	for p.cur.Kind == lexer.ADD_OP {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseMulChain()
		if err != nil {
			return nil, err
		}
		add.Rest = append(add.Rest, ast.AddTerm{Op: opTok.Lexeme, OpPos: opTok.Pos, Operand: rhs})
	}
	if len(add.Rest) == 0 {
		return first, nil
	}
	return add, nil
}

func (p *Parser) parseMulChain() (ast.Expr, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	mul := &ast.Mul{First: first}
	for p.cur.Kind == lexer.MULT_OP {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		mul.Rest = append(mul.Rest, ast.MulTerm{Op: opTok.Lexeme, OpPos: opTok.Pos, Operand: rhs})
	}
	if len(mul.Rest) == 0 {
		return first, nil
	}
	return mul, nil
}

// parseFactor handles a single leading unary sign and parenthesized
// sub-expressions. A second consecutive unary operator is rejected
// explicitly rather than silently accepted.
func (p *Parser) parseFactor() (ast.Expr, error) {
	if p.cur.Kind == lexer.UNARY_OP || p.cur.Kind == lexer.ADD_OP {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.UNARY_OP || p.cur.Kind == lexer.ADD_OP {
			return nil, newSyntaxError(p.cur.Pos, "repeated unary operator")
		}
		inner, err := p.parseFactorValue()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{OpPos: opTok.Pos, Op: opTok.Lexeme, Inner: inner}, nil
	}
	return p.parseFactorValue()
}

// parseFactorValue parses `"(" expr ")" | value`.
func (p *Parser) parseFactorValue() (ast.Expr, error) {
	if p.cur.Kind == lexer.OPEN_PAREN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CLOSE_PAREN, "closing paren"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return p.parseValue()
}

// parseValue handles `CONST | IDENT postfix*`.
func (p *Parser) parseValue() (ast.Expr, error) {
	switch p.cur.Kind {
	case lexer.CONST_NUMBER:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Const{ConstPos: tok.Pos, Kind: ast.NumberConst, Num: tok.NumValue}, nil
	case lexer.CONST_STRING:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Const{ConstPos: tok.Pos, Kind: ast.StringConst, Str: tok.StrValue}, nil
	case lexer.IDENTIFIER:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		ident := &ast.Ident{IdentPos: tok.Pos, Name: tok.Lexeme}
		for p.cur.Kind == lexer.OPEN_PAREN || p.cur.Kind == lexer.FIELD_OP {
			pf, err := p.parsePostfix()
			if err != nil {
				return nil, err
			}
			ident.Postfixes = append(ident.Postfixes, pf)
		}
		return ident, nil
	default:
		return nil, newSyntaxError(p.cur.Pos, "expected value, got %q", p.cur.Lexeme)
	}
}

func (p *Parser) parsePostfix() (ast.Postfix, error) {
	if p.cur.Kind == lexer.FIELD_OP {
		dotPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(lexer.IDENTIFIER, "field name")
		if err != nil {
			return nil, err
		}
		return &ast.FieldAccess{DotPos: dotPos, Name: nameTok.Lexeme}, nil
	}

	parenPos := p.cur.Pos
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	call := &ast.Call{ParenPos: parenPos}
	if p.cur.Kind != lexer.CLOSE_PAREN {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if p.cur.Kind != lexer.COMMA {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.CLOSE_PAREN, "closing paren"); err != nil {
		return nil, err
	}
	return call, nil
}
