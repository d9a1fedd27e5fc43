// Package report is the diagnostic sink shared by every compiler stage.
//
// It mirrors the teacher's Parser.Errors/HasErrors/GetErrors pattern:
// diagnostics accumulate instead of aborting the pipeline on the first
// bad token, and two sticky flags gate the CLI's eventual exit code.
package report

import (
	"fmt"
	"io"
)

// Reporter accumulates compile-time diagnostics and tracks whether a
// compile error or a runtime error has been seen since the last Reset.
type Reporter struct {
	Out io.Writer

	hadError        bool
	hadRuntimeError bool
}

// New creates a Reporter that writes formatted diagnostics to out.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Error reports a compile-time error at a source line with no token
// context (used by the scanner, which has no token to point at yet).
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// TokenError reports a compile-time error anchored at a specific
// token, formatting "at end" for the EOF token and "at '<lexeme>'"
// otherwise.
func (r *Reporter) TokenError(line int, lexeme string, atEOF bool, message string) {
	if atEOF {
		r.report(line, " at end", message)
	} else {
		r.report(line, fmt.Sprintf(" at '%s'", lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[Line %d] Error%s: %s\n", line, where, message)
	r.hadError = true
}

// RuntimeError reports an uncaught runtime error and marks the sticky
// runtime-error flag.
func (r *Reporter) RuntimeError(line int, message string) {
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", message, line)
	r.hadRuntimeError = true
}

// HadError reports whether a compile-time error has been seen.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error has been seen.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both sticky flags. The REPL calls this after every
// top-level input so a mistyped line doesn't poison later ones; file
// execution never calls it, so the flags decide the process exit code.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}
