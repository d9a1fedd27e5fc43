package ast

import (
	"bytes"
	"fmt"
)

// Printer renders an expression tree as a parenthesized s-expression,
// e.g. "(+ 1 (* 2 3))". It adapts the teacher's buffer-based
// PrintingVisitor (main/print_visitor.go) to Lox's smaller node set,
// following the grouping rules of original_source/lox/astprinter.py.
type Printer struct{}

// PrintExpr returns the s-expression form of expression.
func PrintExpr(expression Expr) string {
	p := &Printer{}
	result, _ := expression.AcceptExpr(p)
	s, _ := result.(string)
	return s
}

func (p *Printer) parenthesize(name string, exprs ...Expr) (interface{}, error) {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(name)
	for _, e := range exprs {
		out.WriteString(" ")
		s, err := e.AcceptExpr(p)
		if err != nil {
			return nil, err
		}
		out.WriteString(s.(string))
	}
	out.WriteString(")")
	return out.String(), nil
}

func (p *Printer) VisitAssignExpr(e *Assign) (interface{}, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value)
}

func (p *Printer) VisitBinaryExpr(e *Binary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitCallExpr(e *Call) (interface{}, error) {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...)
}

func (p *Printer) VisitGetExpr(e *Get) (interface{}, error) {
	return p.parenthesize("."+e.Name.Lexeme, e.Instance)
}

func (p *Printer) VisitGroupingExpr(e *Grouping) (interface{}, error) {
	return p.parenthesize("group", e.Expression)
}

func (p *Printer) VisitLiteralExpr(e *Literal) (interface{}, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return fmt.Sprintf("%v", e.Value), nil
}

func (p *Printer) VisitLogicalExpr(e *Logical) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitSetExpr(e *Set) (interface{}, error) {
	return p.parenthesize("set "+e.Name.Lexeme, e.Instance, e.Value)
}

func (p *Printer) VisitSuperExpr(e *Super) (interface{}, error) {
	return "(super " + e.Method.Lexeme + ")", nil
}

func (p *Printer) VisitThisExpr(e *This) (interface{}, error) {
	return "this", nil
}

func (p *Printer) VisitUnaryExpr(e *Unary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p *Printer) VisitVariableExpr(e *Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}
