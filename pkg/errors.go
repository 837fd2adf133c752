package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// ErrLex indicates a scanner failure.
	ErrLex = errors.New("lex error")

	// ErrSyntax indicates a parser failure.
	ErrSyntax = errors.New("syntax error")

	// ErrSemantic indicates a failure of the static analysis pass.
	ErrSemantic = errors.New("semantic error")

	// ErrRuntime indicates a failure while evaluating a program.
	ErrRuntime = errors.New("runtime error")

	// ErrStackOverflow indicates the call depth limit was exceeded.
	ErrStackOverflow = errors.New("stack overflow")
)

type LexError struct {
	Line    int
	Message string
}

func newLexError(line int, format string, args ...interface{}) *LexError {
	return &LexError{Line: line, Message: fmt.Sprintf(format, args...)}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

func (e *LexError) Unwrap() error {
	return ErrLex
}

// SyntaxError is a parser diagnostic. Where locates the offending token,
// either " at end" or " at 'lexeme'".
type SyntaxError struct {
	Line    int
	Where   string
	Message string
}

func newSyntaxError(tok Token, message string) *SyntaxError {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Typ == TokenEOF {
		where = " at end"
	}

	return &SyntaxError{Line: tok.Line, Where: where, Message: message}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

type SemanticError struct {
	Token   Token
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

func (e *SemanticError) Unwrap() error {
	return ErrSemantic
}

// Frame is one entry of a call trace.
type Frame struct {
	Name string
	Line int
}

func (f Frame) String() string {
	return fmt.Sprintf("[line %d] in %s", f.Line, f.Name)
}

// RuntimeError halts the current run. Trace lists the active calls at the
// point of failure, innermost first, and is only filled when tracing is on.
type RuntimeError struct {
	Token   Token
	Message string
	Trace   []Frame

	cause error
}

func newRuntimeError(tok Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
		cause:   ErrRuntime,
	}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func (e *RuntimeError) Unwrap() []error {
	if e.cause == ErrRuntime {
		return []error{ErrRuntime}
	}

	return []error{e.cause, ErrRuntime}
}

// CompileErrors aggregates every static diagnostic of a single pass.
type CompileErrors []error

func (e CompileErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "\n")
}

func (e CompileErrors) Unwrap() []error {
	return e
}

// Reporter prints diagnostics for humans. Callers decide whether out can
// take color escapes.
type Reporter struct {
	out     io.Writer
	static  *color.Color
	runtime *color.Color
	trace   *color.Color
}

func NewReporter(out io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:     out,
		static:  color.New(color.FgRed),
		runtime: color.New(color.FgYellow),
		trace:   color.New(color.Faint),
	}

	// Decide per reporter rather than through color.NoColor, which only
	// looks at stdout
	for _, c := range []*color.Color{r.static, r.runtime, r.trace} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// Report writes err in the format matching its kind. Errors that aren't
// produced by the pipeline are written verbatim.
func (r *Reporter) Report(err error) {
	var compileErrs CompileErrors
	var runtimeErr *RuntimeError

	switch {
	case err == nil:
		return
	case errors.As(err, &compileErrs):
		for _, e := range compileErrs {
			r.static.Fprintln(r.out, e.Error())
		}
	case errors.As(err, &runtimeErr):
		r.runtime.Fprintln(r.out, runtimeErr.Error())
		for _, frame := range runtimeErr.Trace {
			r.trace.Fprintln(r.out, "    "+frame.String())
		}
	default:
		r.static.Fprintln(r.out, err.Error())
	}
}
