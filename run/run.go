// Package run wires the pipeline stages together: scan, parse,
// resolve, interpret. It plays the role of original_source/lox/
// main.py's Lox class (_run/runFile/runPrompt), and is shared by the
// repl and cmd/golox packages exactly as the teacher shares
// eval.NewEvaluator()+parser.NewParser() between repl.Repl and
// main.runFile/executeFileWithRecovery.
package run

import (
	"io"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/resolver"
)

// Session holds one interpreter instance across an arbitrary number
// of Run calls, so a REPL session accumulates global state (variables,
// functions, classes) between lines the way original_source's
// Lox.__init__ creates a single long-lived Interpreter.
type Session struct {
	Reporter    *report.Reporter
	interpreter *interpreter.Interpreter
}

// NewSession creates a Session that writes `print` output to out and
// diagnostics to the same writer via a Reporter.
func NewSession(out io.Writer) *Session {
	r := report.New(out)
	return &Session{Reporter: r, interpreter: interpreter.New(out, r)}
}

// Run scans, parses, resolves, and interprets one chunk of source.
// Each stage's errors are sticky on the Reporter; resolution and
// interpretation are skipped once a compile error has already been
// reported for this chunk, matching original_source's `if
// errors.is_error(): return` short-circuits after scanning/parsing
// and after resolving.
func (s *Session) Run(source string) {
	scanner := lexer.NewScanner(source, s.Reporter)
	tokens := scanner.ScanTokens()

	p := parser.NewParser(tokens, s.Reporter)
	statements := p.Parse()
	if s.Reporter.HadError() {
		return
	}

	res := resolver.New(s.interpreter, s.Reporter)
	res.Resolve(statements)
	if s.Reporter.HadError() {
		return
	}

	s.interpreter.Interpret(statements)
}
