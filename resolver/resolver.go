// Package resolver performs the static pass between parsing and
// interpretation: it walks the AST once, tracking lexical scopes, and
// records how many environment frames out each variable reference
// resolves to. Grounded exactly on original_source/lox/resolver.py —
// the scope-stack shape, FunctionType/ClassType state, and every
// error message below are a direct port of that file's semantics,
// expressed as a Go AST visitor the way the teacher expresses
// evaluation as eval.Evaluator methods.
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/report"
)

type functionType int

const (
	ftNone functionType = iota
	ftFunction
	ftInitializer
	ftMethod
)

type classType int

const (
	ctNone classType = iota
	ctClass
	ctSubclass
)

// Resolver tracks nested block scopes and the current function/class
// context while walking a program.
type Resolver struct {
	interp          interp
	scopes          []map[string]bool
	currentFunction functionType
	currentClass    classType
	reporter        *report.Reporter
}

// interp is the subset of *interpreter.Interpreter the resolver needs:
// recording a resolved scope distance against an expression node.
type interp interface {
	Resolve(expression ast.Expr, depth int)
}

// New creates a Resolver that feeds scope distances to in and reports
// resolution errors (e.g. "Can't return from top-level code.") to r.
func New(in interp, r *report.Reporter) *Resolver {
	return &Resolver{interp: in, currentFunction: ftNone, currentClass: ctNone, reporter: r}
}

// Resolve walks every top-level statement.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) { s.AcceptStmt(r) }

func (r *Resolver) resolveExpr(e ast.Expr) { e.AcceptExpr(r) }

// --- StmtVisitor ---

func (r *Resolver) VisitBlockStmt(s *ast.Block) error {
	r.beginScope()
	r.Resolve(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.Class) error {
	enclosingClass := r.currentClass
	r.currentClass = ctClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil && s.Name.Lexeme == s.Superclass.Name.Lexeme {
		r.errorAt(s.Superclass.Name, "A class cannot inherit from itself.")
	}

	if s.Superclass != nil {
		r.currentClass = ctSubclass
		r.resolveExpr(s.Superclass)
	}

	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declaration := ftMethod
		if method.Name.Lexeme == "init" {
			declaration = ftInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.Expression) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.Function) error {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, ftFunction)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.If) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.Print) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.Return) error {
	if r.currentFunction == ftNone {
		r.errorAt(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == ftInitializer {
			r.errorAt(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.Var) error {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.While) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

// --- ExprVisitor ---

func (r *Resolver) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	if len(r.scopes) != 0 {
		if declared, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !declared {
			r.errorAt(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (interface{}, error) {
	r.resolveExpr(e.Instance)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Instance)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	if r.currentClass == ctNone {
		r.errorAt(e.Keyword, "Can't use 'super' outside a class.")
	} else if r.currentClass != ctSubclass {
		r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) (interface{}, error) {
	if r.currentClass == ctNone {
		r.errorAt(e.Keyword, "Can't use 'this' outside a class.")
		return nil, nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

// --- internals ---

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.Resolve(fn.Body)
	r.endScope()
	r.currentFunction = enclosingFunction
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expression ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interp.Resolve(expression, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) errorAt(token lexer.Token, message string) {
	r.reporter.TokenError(token.Line, token.Lexeme, token.Type == lexer.EOF, message)
}
