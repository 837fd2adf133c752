package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"
	"go.glox.dev/pkg"
)

// Exit codes follow sysexits.h
const (
	exitOK      = 0
	exitUsage   = 64
	exitData    = 65
	exitRuntime = 70
	exitIO      = 74
)

const usage = `usage: glox [-h] [-t | -a] [-n] [-T] [-c config.yml] [-d depth] [script]

Runs script, or starts an interactive prompt when no script is given.

  -a          print the syntax tree instead of running
  -c file     load options from a YAML file
  -d depth    maximum call depth
  -h          show this help
  -n          disable colored diagnostics
  -t          print the tokens instead of running
  -T          print a call trace on runtime errors
`

type settings struct {
	opts       lox.Options
	dumpTokens bool
	dumpAST    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glox: ")

	os.Exit(run(os.Args))
}

func run(args []string) int {
	s, rest, code := readFlags(args)
	if code >= 0 {
		return code
	}

	switch len(rest) {
	case 0:
		if s.dumpTokens || s.dumpAST {
			log.Println("-t and -a need a script")
			fmt.Fprint(os.Stderr, usage)
			return exitUsage
		}

		return runPrompt(s, os.Stdin, os.Stdout)
	case 1:
		return runFile(s, rest[0])
	default:
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}
}

// readFlags returns the settings, the positional arguments and, when the
// program should stop right away, a non-negative exit code.
func readFlags(args []string) (settings, []string, int) {
	s := settings{opts: lox.DefaultOptions()}

	opts, optind, err := getopt.Getopts(args, "ac:d:hntT")
	if err != nil {
		log.Println(err)
		fmt.Fprint(os.Stderr, usage)
		return s, nil, exitUsage
	}

	// A config file is the base the other flags override
	for _, opt := range opts {
		if opt.Option != 'c' {
			continue
		}

		if s.opts, err = lox.LoadOptions(opt.Value); err != nil {
			log.Println(err)
			return s, nil, exitIO
		}
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			s.dumpAST = true
		case 'd':
			depth, err := strconv.Atoi(opt.Value)
			if err != nil || depth <= 0 || depth > lox.MaxCallDepthLimit {
				log.Printf("invalid -d parameter, expected 1 to %d", lox.MaxCallDepthLimit)
				return s, nil, exitUsage
			}
			s.opts.MaxCallDepth = depth
		case 'h':
			fmt.Fprint(os.Stdout, usage)
			return s, nil, exitOK
		case 'n':
			s.opts.Color = false
		case 't':
			s.dumpTokens = true
		case 'T':
			s.opts.Trace = true
		}
	}

	return s, args[optind:], -1
}

func runFile(s settings, filename string) int {
	source, err := os.ReadFile(filename)
	if err != nil {
		log.Println(err)
		return exitIO
	}

	reporter := lox.NewReporter(os.Stderr, useColor(s.opts, os.Stderr))

	switch {
	case s.dumpTokens:
		return dumpTokens(reporter, string(source), os.Stdout)
	case s.dumpAST:
		return dumpAST(reporter, string(source), os.Stdout)
	}

	runner := lox.NewRunner(os.Stdout, &s.opts)
	err = runner.RunSource(string(source))
	reporter.Report(err)

	return exitCode(err)
}

func runPrompt(s settings, in io.Reader, out io.Writer) int {
	runner := lox.NewRunner(out, &s.opts)
	reporter := lox.NewReporter(os.Stderr, useColor(s.opts, os.Stderr))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		// Errors end the line, not the session
		reporter.Report(runner.RunSource(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		log.Println(err)
		return exitIO
	}

	return exitOK
}

func dumpTokens(reporter *lox.Reporter, source string, out io.Writer) int {
	tokens, errs := lox.Scan(source)
	for _, tok := range tokens {
		fmt.Fprintln(out, tok)
	}

	if len(errs) != 0 {
		var compileErrs lox.CompileErrors
		for _, err := range errs {
			compileErrs = append(compileErrs, err)
		}

		reporter.Report(compileErrs)
		return exitData
	}

	return exitOK
}

func dumpAST(reporter *lox.Reporter, source string, out io.Writer) int {
	stmts, err := lox.Compile(source)
	if err != nil {
		reporter.Report(err)
		return exitData
	}

	fmt.Fprint(out, lox.Sprint(stmts))
	return exitOK
}

// useColor reports whether diagnostics written to f should be colored.
func useColor(opts lox.Options, f *os.File) bool {
	if !opts.Color {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, lox.ErrRuntime):
		return exitRuntime
	case errors.Is(err, lox.ErrLex), errors.Is(err, lox.ErrSyntax), errors.Is(err, lox.ErrSemantic):
		return exitData
	default:
		return exitIO
	}
}
