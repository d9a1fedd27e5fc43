// Package interpreter tree-walks the Lox AST to execute a program.
// Its structure (save/restore the current environment around a block,
// a CreateError-style runtime-error helper) is adapted from the
// teacher's eval.Evaluator (eval/evaluator.go) and eval/eval_*.go
// files; its exact per-node semantics are grounded on
// original_source/lox/interpreter.py, including the fix to that
// file's visit_unary bug (it evaluates the Unary node itself instead
// of its Right operand) called out in spec.md's Open Questions.
package interpreter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxvalue"
	"github.com/akashmaji946/golox/report"
)

// Interpreter executes a resolved Lox program. Distances recorded by
// the resolver package are read from locals (keyed by Expr node
// identity, i.e. pointer identity — each AST node is only ever
// constructed once by the parser).
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	locals      map[ast.Expr]int
	reporter    *report.Reporter
	out         io.Writer
}

// New creates an Interpreter that prints `print` statement output to
// out and reports uncaught runtime errors through r.
func New(out io.Writer, r *report.Reporter) *Interpreter {
	globals := environment.New()
	globals.Define("clock", loxvalue.Clock())
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		reporter:    r,
		out:         out,
	}
}

// Globals returns the outermost environment, satisfying loxvalue.Interp.
func (in *Interpreter) Globals() *environment.Environment { return in.globals }

// Resolve records that expression resolves to a variable depth frames
// out from wherever it is evaluated; called by the resolver package.
func (in *Interpreter) Resolve(expression ast.Expr, depth int) {
	in.locals[expression] = depth
}

// Interpret executes a resolved program. A *loxvalue.RuntimeError that
// escapes to the top is reported and turns into the sticky
// runtime-error flag rather than panicking the process.
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			if rerr, ok := err.(*loxvalue.RuntimeError); ok {
				in.reporter.RuntimeError(rerr.Token.Line, rerr.Message)
			}
			return
		}
	}
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.AcceptStmt(in)
}

// ExecuteBlock runs statements inside env, restoring the previous
// environment on every exit path (return, error, or completion),
// following eval.Evaluator's call-and-restore pattern and
// original_source's _execute_block try/finally.
func (in *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	return expr.AcceptExpr(in)
}

// --- Statement visitors ---

func (in *Interpreter) VisitBlockStmt(s *ast.Block) error {
	return in.ExecuteBlock(s.Statements, environment.NewChild(in.environment))
}

func (in *Interpreter) VisitClassStmt(s *ast.Class) error {
	var superclass *loxvalue.Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*loxvalue.Class)
		if !ok {
			return loxvalue.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, nil)

	env := in.environment
	if superclass != nil {
		env = environment.NewChild(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*loxvalue.Function)
	for _, method := range s.Methods {
		fn := loxvalue.NewFunction(method, env, method.Name.Lexeme == "init")
		methods[method.Name.Lexeme] = fn
	}

	class := loxvalue.NewClass(s.Name.Lexeme, superclass, methods)
	in.environment = env
	if superclass != nil {
		// env was a child scope created only to hold "super"; pop back
		// out before recording the class in its defining scope.
		in.environment = previousOf(env)
	}
	return in.environment.Assign(s.Name.Lexeme, class)
}

// previousOf exists solely so VisitClassStmt can pop back to the
// environment a "super" scope was pushed onto, mirroring
// interpreter.py's `self._environment = self._environment._enclosing`.
func previousOf(env *environment.Environment) *environment.Environment {
	return env.Enclosing()
}

func (in *Interpreter) VisitExpressionStmt(s *ast.Expression) error {
	_, err := in.evaluate(s.Expression)
	return err
}

func (in *Interpreter) VisitFunctionStmt(s *ast.Function) error {
	fn := loxvalue.NewFunction(s, in.environment, false)
	in.environment.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitIfStmt(s *ast.If) error {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return in.execute(s.ThenBranch)
	} else if s.ElseBranch != nil {
		return in.execute(s.ElseBranch)
	}
	return nil
}

func (in *Interpreter) VisitPrintStmt(s *ast.Print) error {
	value, err := in.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.out, stringify(value))
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.Return) error {
	var value interface{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &loxvalue.ReturnSignal{Value: value}
}

func (in *Interpreter) VisitVarStmt(s *ast.Var) error {
	var value interface{}
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.environment.Define(s.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.While) error {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

// --- Expression visitors ---

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		n, err := checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case lexer.BANG:
		return !isTruthy(right), nil
	}
	return nil, nil
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.SLASH:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case lexer.STAR:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.PLUS:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, loxvalue.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case lexer.GREATER:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, nil
}

func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	return in.lookUpVariable(e.Name, e)
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[e]; ok {
		in.environment.AssignAt(distance, e.Name.Lexeme, value)
	} else if err := in.globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, loxvalue.NewRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
	}
	return value, nil
}

func (in *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		v, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, v)
	}

	callable, ok := callee.(loxvalue.Callable)
	if !ok {
		return nil, loxvalue.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, loxvalue.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}
	return callable.Call(in, arguments)
}

func (in *Interpreter) VisitGetExpr(e *ast.Get) (interface{}, error) {
	obj, err := in.evaluate(e.Instance)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxvalue.Instance)
	if !ok {
		return nil, loxvalue.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (in *Interpreter) VisitSetExpr(e *ast.Set) (interface{}, error) {
	obj, err := in.evaluate(e.Instance)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxvalue.Instance)
	if !ok {
		return nil, loxvalue.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (in *Interpreter) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	distance := in.locals[e]
	superVal := in.environment.GetAt(distance, "super")
	superclass := superVal.(*loxvalue.Class)
	obj := in.environment.GetAt(distance-1, "this").(*loxvalue.Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, loxvalue.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(obj), nil
}

func (in *Interpreter) VisitThisExpr(e *ast.This) (interface{}, error) {
	return in.lookUpVariable(e.Keyword, e)
}

func (in *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	v, err := in.globals.Get(name.Lexeme)
	if err != nil {
		return nil, loxvalue.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	return v, nil
}

// --- helpers ---

func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual specifies equality per value kind explicitly rather than
// relying on Go's interface equality across differing dynamic types,
// resolving spec.md's Open Question about ambiguous host equality:
// nil equals only nil, numbers/strings/bools compare by value, and
// every other kind (functions, classes, instances) compares by
// identity — which for Go pointers is exactly `==`.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

func checkNumberOperand(operator lexer.Token, operand interface{}) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, loxvalue.NewRuntimeError(operator, "Operand must be a number.")
}

func checkNumberOperands(operator lexer.Token, left, right interface{}) (float64, float64, error) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	if ok1 && ok2 {
		return l, r, nil
	}
	return 0, 0, loxvalue.NewRuntimeError(operator, "Operands must be numbers.")
}

// stringify renders a runtime value the way `print` and the REPL show
// it: nil as "nil", numbers with a minimal decimal form (trailing
// ".0" stripped), booleans as "true"/"false", and everything else via
// its own String() method.
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = strings.TrimSuffix(text, ".0")
		}
		return text
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
