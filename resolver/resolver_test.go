package resolver

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
	"github.com/stretchr/testify/assert"
)

// recordingInterp satisfies the resolver's interp interface and
// records every (expr, depth) pair reported to it, standing in for
// interpreter.Interpreter in these unit tests.
type recordingInterp struct {
	resolved map[ast.Expr]int
}

func newRecordingInterp() *recordingInterp {
	return &recordingInterp{resolved: make(map[ast.Expr]int)}
}

func (r *recordingInterp) Resolve(expression ast.Expr, depth int) {
	r.resolved[expression] = depth
}

func parseSource(t *testing.T, src string) ([]ast.Stmt, *report.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := report.New(&buf)
	tokens := lexer.NewScanner(src, rep).ScanTokens()
	return parser.NewParser(tokens, rep).Parse(), rep
}

func TestResolver_LocalVariableDistance(t *testing.T) {
	stmts, rep := parseSource(t, `
		var a = 1;
		{
			var b = 2;
			print a + b;
		}
	`)
	assert.False(t, rep.HadError())

	interp := newRecordingInterp()
	New(interp, rep).Resolve(stmts)
	assert.False(t, rep.HadError())

	block := stmts[1].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	binary := printStmt.Expression.(*ast.Binary)

	aVar := binary.Left.(*ast.Variable)
	bVar := binary.Right.(*ast.Variable)

	// "a" is a global — the resolver never records a distance for it,
	// leaving it to fall back to the interpreter's globals lookup.
	_, aResolved := interp.resolved[aVar]
	assert.False(t, aResolved)

	// "b" is declared in the same block it's read from: distance 0.
	assert.Equal(t, 0, interp.resolved[bVar])
}

func TestResolver_ReadInOwnInitializerIsError(t *testing.T) {
	stmts, rep := parseSource(t, `{ var a = a; }`)
	assert.False(t, rep.HadError())

	interp := newRecordingInterp()
	New(interp, rep).Resolve(stmts)
	assert.True(t, rep.HadError())
}

func TestResolver_ReturnAtTopLevelIsError(t *testing.T) {
	stmts, rep := parseSource(t, `return 1;`)
	assert.False(t, rep.HadError())

	interp := newRecordingInterp()
	New(interp, rep).Resolve(stmts)
	assert.True(t, rep.HadError())
}

func TestResolver_ReturnValueFromInitializerIsError(t *testing.T) {
	stmts, rep := parseSource(t, `class A { init() { return 1; } }`)
	assert.False(t, rep.HadError())

	interp := newRecordingInterp()
	New(interp, rep).Resolve(stmts)
	assert.True(t, rep.HadError())
}

func TestResolver_ClassInheritingFromItselfIsError(t *testing.T) {
	stmts, rep := parseSource(t, `class A < A {}`)
	assert.False(t, rep.HadError())

	interp := newRecordingInterp()
	New(interp, rep).Resolve(stmts)
	assert.True(t, rep.HadError())
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	stmts, rep := parseSource(t, `print this;`)
	assert.False(t, rep.HadError())

	interp := newRecordingInterp()
	New(interp, rep).Resolve(stmts)
	assert.True(t, rep.HadError())
}
