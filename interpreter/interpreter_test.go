package interpreter

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/resolver"
	"github.com/stretchr/testify/assert"
)

// runProgram scans, parses, resolves, and interprets src, returning
// whatever was written to stdout and the diagnostics reporter.
func runProgram(t *testing.T, src string) (string, *report.Reporter) {
	t.Helper()
	var out, diag bytes.Buffer
	rep := report.New(&diag)

	tokens := lexer.NewScanner(src, rep).ScanTokens()
	stmts := parser.NewParser(tokens, rep).Parse()
	if rep.HadError() {
		return out.String(), rep
	}

	in := New(&out, rep)
	resolver.New(in, rep).Resolve(stmts)
	if rep.HadError() {
		return out.String(), rep
	}

	in.Interpret(stmts)
	return out.String(), rep
}

func TestInterpreter_Arithmetic(t *testing.T) {
	out, rep := runProgram(t, `print 1 + 2 * 3;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	out, rep := runProgram(t, `print "foo" + "bar";`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "foobar\n", out)
}

func TestInterpreter_NumberStringifyStripsTrailingZero(t *testing.T) {
	out, _ := runProgram(t, `print 10.0; print 3.5;`)
	assert.Equal(t, "10\n3.5\n", out)
}

func TestInterpreter_TruthinessAndUnaryBang(t *testing.T) {
	out, _ := runProgram(t, `print !nil; print !false; print !0; print !"";`)
	// nil and false are falsy; every other value (including 0 and "")
	// is truthy, so its negation is false.
	assert.Equal(t, "true\ntrue\nfalse\nfalse\n", out)
}

func TestInterpreter_UnaryMinusEvaluatesRightOperand(t *testing.T) {
	// Regression test for the visit_unary bug documented in
	// SPEC_FULL.md §3: the interpreter must evaluate expr.Right, not
	// re-evaluate the Unary node itself.
	out, rep := runProgram(t, `var x = 5; print -x;`)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "-5\n", out)
}

func TestInterpreter_Closures(t *testing.T) {
	src := `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				return i;
			}
			return count;
		}
		var counter = makeCounter();
		print counter();
		print counter();
	`
	out, rep := runProgram(t, src)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpreter_ClassesAndMethods(t *testing.T) {
	src := `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				return "hi " + this.name;
			}
		}
		var g = Greeter("lox");
		print g.greet();
	`
	out, rep := runProgram(t, src)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "hi lox\n", out)
}

func TestInterpreter_InheritanceAndSuper(t *testing.T) {
	src := `
		class Animal {
			speak() {
				return "...";
			}
		}
		class Dog < Animal {
			speak() {
				return "woof (was " + super.speak() + ")";
			}
		}
		print Dog().speak();
	`
	out, rep := runProgram(t, src)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "woof (was ...)\n", out)
}

func TestInterpreter_RuntimeErrorOnBadOperand(t *testing.T) {
	out, rep := runProgram(t, `print 1 + "a";`)
	assert.True(t, rep.HadRuntimeError())
	assert.Equal(t, "", out)
}

func TestInterpreter_RuntimeErrorOnUndefinedVariable(t *testing.T) {
	_, rep := runProgram(t, `print undefinedThing;`)
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpreter_EqualityIsPerVariant(t *testing.T) {
	out, _ := runProgram(t, `print nil == nil; print nil == false; print 1 == 1.0; print "a" == "a";`)
	assert.Equal(t, "true\nfalse\ntrue\ntrue\n", out)
}
