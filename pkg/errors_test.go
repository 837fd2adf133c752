package lox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tok := Token{Typ: TokenIdentifier, Lexeme: "x", Line: 4}
	eof := Token{Typ: TokenEOF, Line: 9}

	cases := []struct {
		err    error
		kind   error
		expect string
	}{
		{newLexError(2, "Unexpected character '%c'.", '$'), ErrLex, "[line 2] Error: Unexpected character '$'."},
		{newSyntaxError(tok, "Expect ';'."), ErrSyntax, "[line 4] Error at 'x': Expect ';'."},
		{newSyntaxError(eof, "Expect ';'."), ErrSyntax, "[line 9] Error at end: Expect ';'."},
		{&SemanticError{Token: tok, Message: "Bad."}, ErrSemantic, "[line 4] Error at 'x': Bad."},
		{newRuntimeError(tok, "Undefined variable '%s'.", "x"), ErrRuntime, "Undefined variable 'x'.\n[line 4]"},
	}

	for _, c := range cases {
		assert.True(t, errors.Is(c.err, c.kind), c.expect)
		assert.EqualError(t, c.err, c.expect)
	}

	assert.False(t, errors.Is(newRuntimeError(tok, "x"), ErrStackOverflow))
}

func TestCompileErrors(t *testing.T) {
	err := CompileErrors{
		newLexError(1, "Unterminated string."),
		newSyntaxError(Token{Typ: TokenEOF, Line: 1}, "Expect expression."),
	}

	assert.EqualError(t, err, "[line 1] Error: Unterminated string.\n[line 1] Error at end: Expect expression.")
	assert.True(t, errors.Is(err, ErrLex))
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.False(t, errors.Is(err, ErrRuntime))
}

func TestReporter(t *testing.T) {
	runtimeErr := newRuntimeError(Token{Line: 5}, "Stack overflow.")
	runtimeErr.Trace = []Frame{{Name: "<fn b>", Line: 2}, {Name: "<fn a>", Line: 7}}

	cases := []struct {
		err    error
		expect string
	}{
		{nil, ""},
		{
			CompileErrors{newLexError(1, "Unterminated string."), newLexError(3, "Unexpected character '@'.")},
			"[line 1] Error: Unterminated string.\n[line 3] Error: Unexpected character '@'.\n",
		},
		{
			runtimeErr,
			"Stack overflow.\n[line 5]\n    [line 2] in <fn b>\n    [line 7] in <fn a>\n",
		},
		{errors.New("open x.lox: no such file"), "open x.lox: no such file\n"},
	}

	for _, c := range cases {
		var out bytes.Buffer
		NewReporter(&out, false).Report(c.err)

		assert.Equal(t, c.expect, out.String())
	}
}

func TestReporterColor(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out, true).Report(CompileErrors{newLexError(1, "Unterminated string.")})
	assert.Contains(t, out.String(), "\x1b[31m")
	assert.Contains(t, out.String(), "[line 1] Error: Unterminated string.")

	out.Reset()
	NewReporter(&out, true).Report(newRuntimeError(Token{Line: 2}, "Failed."))
	assert.Contains(t, out.String(), "\x1b[33m")

	out.Reset()
	NewReporter(&out, false).Report(newRuntimeError(Token{Line: 2}, "Failed."))
	assert.NotContains(t, out.String(), "\x1b[")
}
