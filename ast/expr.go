// Package ast defines the Lox expression and statement node types and
// the visitor interfaces used to walk them. Each node type is a thin
// struct; dispatch happens through Accept/Visitor rather than type
// switches, following the teacher's visitor-pattern node design
// (parser/node.go) and the original interpreter's accept/visit split.
package ast

import "github.com/akashmaji946/golox/lexer"

// Expr is any expression node. Node identity (the pointer itself) is
// the key the resolver uses to record scope distances, so expression
// nodes are always handled via pointer, never copied by value.
type Expr interface {
	AcceptExpr(v ExprVisitor) (interface{}, error)
}

// ExprVisitor dispatches over every expression node kind.
type ExprVisitor interface {
	VisitAssignExpr(e *Assign) (interface{}, error)
	VisitBinaryExpr(e *Binary) (interface{}, error)
	VisitCallExpr(e *Call) (interface{}, error)
	VisitGetExpr(e *Get) (interface{}, error)
	VisitGroupingExpr(e *Grouping) (interface{}, error)
	VisitLiteralExpr(e *Literal) (interface{}, error)
	VisitLogicalExpr(e *Logical) (interface{}, error)
	VisitSetExpr(e *Set) (interface{}, error)
	VisitSuperExpr(e *Super) (interface{}, error)
	VisitThisExpr(e *This) (interface{}, error)
	VisitUnaryExpr(e *Unary) (interface{}, error)
	VisitVariableExpr(e *Variable) (interface{}, error)
}

type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *Call) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

type Get struct {
	Instance Expr
	Name     lexer.Token
}

func (e *Get) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

type Grouping struct {
	Expression Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Literal holds the already-converted Go value for a literal token:
// float64, string, bool, or nil.
type Literal struct {
	Value interface{}
}

func (e *Literal) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

type Set struct {
	Instance Expr
	Name     lexer.Token
	Value    Expr
}

func (e *Set) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *Super) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitSuperExpr(e) }

type This struct {
	Keyword lexer.Token
}

func (e *This) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

type Variable struct {
	Name lexer.Token
}

func (e *Variable) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }
