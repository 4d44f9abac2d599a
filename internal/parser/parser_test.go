package parser

import (
	"testing"

	"github.com/cwbudde/logoscript/internal/ast"
	"github.com/cwbudde/logoscript/internal/lexer"
	"github.com/cwbudde/logoscript/internal/reader"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := ParseProgram(lexer.New(reader.NewString(src)))
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return prog
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	_, err := ParseProgram(lexer.New(reader.NewString(src)))
	if err == nil {
		t.Fatalf("expected parse error for %q", src)
	}
	return err
}

func TestPrecedenceAddThenMul(t *testing.T) {
	prog := parse(t, "x = a + b * c")
	assign := prog.Statements[0].(*ast.Assign)
	add, ok := assign.Expr.(*ast.Add)
	if !ok {
		t.Fatalf("expected *ast.Add at top level, got %T", assign.Expr)
	}
	if len(add.Rest) != 1 || add.Rest[0].Op != "+" {
		t.Fatalf("expected a single '+' term, got %+v", add.Rest)
	}
	mul, ok := add.Rest[0].Operand.(*ast.Mul)
	if !ok {
		t.Fatalf("expected the '+' operand to be *ast.Mul, got %T", add.Rest[0].Operand)
	}
	if len(mul.Rest) != 1 || mul.Rest[0].Op != "*" {
		t.Fatalf("expected a single '*' term, got %+v", mul.Rest)
	}
}

func TestPrecedenceAndTighterThanOr(t *testing.T) {
	prog := parse(t, "x = a || b && c")
	assign := prog.Statements[0].(*ast.Assign)
	or, ok := assign.Expr.(*ast.LogicOr)
	if !ok {
		t.Fatalf("expected *ast.LogicOr, got %T", assign.Expr)
	}
	if len(or.Operands) != 2 {
		t.Fatalf("expected 2 operands, got %d", len(or.Operands))
	}
	if _, ok := or.Operands[1].(*ast.LogicAnd); !ok {
		t.Fatalf("expected second || operand to be *ast.LogicAnd, got %T", or.Operands[1])
	}
}

func TestComparisonTighterThanLogical(t *testing.T) {
	prog := parse(t, "x = a < b && c > d")
	assign := prog.Statements[0].(*ast.Assign)
	and, ok := assign.Expr.(*ast.LogicAnd)
	if !ok {
		t.Fatalf("expected *ast.LogicAnd, got %T", assign.Expr)
	}
	for i, operand := range and.Operands {
		if _, ok := operand.(*ast.Relation); !ok {
			t.Fatalf("operand %d: expected *ast.Relation, got %T", i, operand)
		}
	}
}

func TestSingleOperandNeverWrapped(t *testing.T) {
	prog := parse(t, "x = a")
	assign := prog.Statements[0].(*ast.Assign)
	if _, ok := assign.Expr.(*ast.Ident); !ok {
		t.Fatalf("expected bare *ast.Ident, got %T", assign.Expr)
	}
}

func TestPureArithmeticNeverWrappedInRelation(t *testing.T) {
	prog := parse(t, "x = a + b")
	assign := prog.Statements[0].(*ast.Assign)
	if _, ok := assign.Expr.(*ast.Relation); ok {
		t.Fatalf("pure arithmetic should never be wrapped in Relation")
	}
}

func TestAssignmentVsBareExpr(t *testing.T) {
	prog := parse(t, "x = 1 f(2)")
	if _, ok := prog.Statements[0].(*ast.Assign); !ok {
		t.Fatalf("expected Assign, got %T", prog.Statements[0])
	}
	if _, ok := prog.Statements[1].(*ast.ExprStmt); !ok {
		t.Fatalf("expected ExprStmt, got %T", prog.Statements[1])
	}
}

func TestPostfixChainLeftAssociative(t *testing.T) {
	prog := parse(t, "x = a.b(1).c")
	assign := prog.Statements[0].(*ast.Assign)
	ident := assign.Expr.(*ast.Ident)
	if len(ident.Postfixes) != 3 {
		t.Fatalf("expected 3 postfixes, got %d", len(ident.Postfixes))
	}
	if _, ok := ident.Postfixes[0].(*ast.FieldAccess); !ok {
		t.Fatalf("postfix 0: expected FieldAccess, got %T", ident.Postfixes[0])
	}
	if _, ok := ident.Postfixes[1].(*ast.Call); !ok {
		t.Fatalf("postfix 1: expected Call, got %T", ident.Postfixes[1])
	}
	if _, ok := ident.Postfixes[2].(*ast.FieldAccess); !ok {
		t.Fatalf("postfix 2: expected FieldAccess, got %T", ident.Postfixes[2])
	}
}

func TestDuplicateUnaryRejected(t *testing.T) {
	parseErr(t, "x = --a")
}

func TestRedefinitionRejected(t *testing.T) {
	err := parseErr(t, "fun f(){} fun f(){}")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
}

func TestDuplicateParamNameRejected(t *testing.T) {
	parseErr(t, "fun f(a, a){}")
}

func TestMissingOpenParenOnWhile(t *testing.T) {
	err := parseErr(t, "while True { }")
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.At.Column != 6 {
		t.Fatalf("expected column 6, got %d", se.At.Column)
	}
}

func TestTrailingJunkRejected(t *testing.T) {
	parseErr(t, "x = 1 )")
}

func TestFibonacciParses(t *testing.T) {
	src := `fun fib(n){ if(n<=1){ return(1) } return(fib(n-1)+fib(n-2)) }
x0=fib(0) x1=fib(1)`
	prog := parse(t, src)
	if len(prog.Definitions) != 1 || prog.Definitions[0].Name != "fib" {
		t.Fatalf("expected single fib definition, got %+v", prog.Definitions)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(prog.Statements))
	}
}

func TestDeterministicReparse(t *testing.T) {
	src := "x = (a + b) * c - d / 2"
	p1 := parse(t, src)
	p2 := parse(t, src)
	if len(p1.Statements) != len(p2.Statements) {
		t.Fatalf("structurally different parses")
	}
}
