// Command golox is the entry point for the Lox interpreter: it runs a
// file given as its one optional positional argument, or drops into
// an interactive REPL otherwise. Adapted from the teacher's
// main/main.go (flag handling, colored help/version text), trimmed of
// GoMix's TCP "server" mode — that mode has no counterpart in this
// spec's External Interfaces section — and rewired to Lox's 0/65/70
// exit-code contract instead of GoMix's generic 0/1.
package main

import (
	"os"

	"github.com/akashmaji946/golox/repl"
	"github.com/akashmaji946/golox/run"
	"github.com/fatih/color"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "golox"
	LICENSE = "MIT"
	PROMPT  = "lox >>> "
	LINE    = "----------------------------------------------------------------"
	BANNER  = `
   _        ___  __  __
  | |      / _ \ \ \/ /
  | |     | | | | \  /
  | |___  | |_| | /  \
  |_____|  \___/ /_/\_\
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}
		os.Exit(runFile(os.Args[1]))
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("golox - A Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  golox                     Start interactive REPL mode")
	yellowColor.Println("  golox <path-to-file>      Execute a Lox file (.lox)")
	yellowColor.Println("  golox --help              Display this help message")
	yellowColor.Println("  golox --version           Display version information")
}

func showVersion() {
	cyanColor.Println("golox - A Lox interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// runFile executes a Lox source file and returns the process exit
// code: 0 on success, 65 on a compile-time error, 70 on an uncaught
// runtime error, per this spec's External Interfaces section.
func runFile(fileName string) int {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		return 1
	}

	session := run.NewSession(os.Stdout)
	session.Reporter.Out = os.Stderr
	session.Run(string(content))

	switch {
	case session.Reporter.HadError():
		return 65
	case session.Reporter.HadRuntimeError():
		return 70
	default:
		return 0
	}
}
