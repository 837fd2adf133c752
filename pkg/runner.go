package lox

import (
	"io"
	"os"
	"strings"
)

// Runner drives source through the whole pipeline: scan, parse, analyze
// and evaluate. Globals defined by one run stay visible to the next one on
// the same Runner.
type Runner struct {
	interpreter *Interpreter
}

func NewRunner(out io.Writer, opt *Options) *Runner {
	return &Runner{
		interpreter: NewInterpreter(out, opt),
	}
}

func (r *Runner) RunFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return r.RunFromReader(file)
}

func (r *Runner) RunFromReader(reader io.Reader) error {
	var source strings.Builder
	if _, err := io.Copy(&source, reader); err != nil {
		return err
	}

	return r.RunSource(source.String())
}

// RunSource returns CompileErrors when the source has any static error, in
// which case nothing is evaluated, or the *RuntimeError that halted the run.
func (r *Runner) RunSource(source string) error {
	stmts, err := Compile(source)
	if err != nil {
		return err
	}

	return r.interpreter.Interpret(stmts)
}

// Compile runs every static pass over source and gathers their errors.
func Compile(source string) ([]Stmt, error) {
	var errs CompileErrors

	tokens, lexErrs := Scan(source)
	for _, err := range lexErrs {
		errs = append(errs, err)
	}

	ast := Parse(tokens)
	for _, err := range ast.Errors {
		errs = append(errs, err)
	}

	if len(errs) != 0 {
		return nil, errs
	}

	for _, err := range Analyze(ast.Statements) {
		errs = append(errs, err)
	}

	if len(errs) != 0 {
		return nil, errs
	}

	return ast.Statements, nil
}
