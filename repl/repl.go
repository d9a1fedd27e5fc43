// Package repl implements the interactive Lox read-eval-print loop.
// It is adapted directly from the teacher's repl.Repl (repl/repl.go):
// the same banner/history/color shape, chzyer/readline for line
// editing, fatih/color for diagnostic coloring — retargeted at Lox's
// run.Session pipeline and its reset-both-flags-per-line REPL policy
// (see SPEC_FULL.md §3) instead of GoMix's single evaluator.Eval call.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/golox/run"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// colorWriter recolors each write before forwarding it, letting
// run.Session's Reporter write its diagnostics straight through in
// red without the REPL having to parse them back out.
type colorWriter struct {
	c *color.Color
	w io.Writer
}

func (cw colorWriter) Write(p []byte) (int, error) {
	cw.c.Fprint(cw.w, string(p))
	return len(p), nil
}

// Repl is the interactive Lox session shell.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner chrome.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner, matching the teacher's
// PrintBannerInfo layout and color choices.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until '.exit', Ctrl+D, or a readline error.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := run.NewSession(writer)
	session.Reporter.Out = colorWriter{c: redColor, w: writer}

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		session.Run(line)
		// Reset both sticky flags per SPEC_FULL.md §3: a mistyped line
		// shouldn't poison every later line in the session, matching
		// original_source's unconditional errors.reset() after _run().
		session.Reporter.Reset()
	}
}
