package lox

import (
	"errors"
	"strings"
	"testing"

	"go.glox.dev/internal/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	cases := []struct {
		data   string
		errors int
		expect []Token
	}{
		{
			"var x = 1;",
			0,
			[]Token{
				{TokenVar, "var", nil, 1},
				{TokenIdentifier, "x", nil, 1},
				{TokenEqual, "=", nil, 1},
				{TokenNumber, "1", 1.0, 1},
				{TokenSemicolon, ";", nil, 1},
				{TokenEOF, "", nil, 1},
			},
		},
		{
			"!= == <= >= ! = < >",
			0,
			[]Token{
				{TokenBangEqual, "!=", nil, 1},
				{TokenEqualEqual, "==", nil, 1},
				{TokenLessEqual, "<=", nil, 1},
				{TokenGreaterEqual, ">=", nil, 1},
				{TokenBang, "!", nil, 1},
				{TokenEqual, "=", nil, 1},
				{TokenLess, "<", nil, 1},
				{TokenGreater, ">", nil, 1},
				{TokenEOF, "", nil, 1},
			},
		},
		{
			"(){},.-+;*/",
			0,
			[]Token{
				{TokenLeftParen, "(", nil, 1},
				{TokenRightParen, ")", nil, 1},
				{TokenLeftBrace, "{", nil, 1},
				{TokenRightBrace, "}", nil, 1},
				{TokenComma, ",", nil, 1},
				{TokenDot, ".", nil, 1},
				{TokenMinus, "-", nil, 1},
				{TokenPlus, "+", nil, 1},
				{TokenSemicolon, ";", nil, 1},
				{TokenStar, "*", nil, 1},
				{TokenSlash, "/", nil, 1},
				{TokenEOF, "", nil, 1},
			},
		},
		{
			"// this is a comment\nprint \"hi\";",
			0,
			[]Token{
				{TokenPrint, "print", nil, 2},
				{TokenString, "\"hi\"", "hi", 2},
				{TokenSemicolon, ";", nil, 2},
				{TokenEOF, "", nil, 2},
			},
		},
		{
			"123.",
			0,
			[]Token{
				{TokenNumber, "123", 123.0, 1},
				{TokenDot, ".", nil, 1},
				{TokenEOF, "", nil, 1},
			},
		},
		{
			"3.25 .5",
			0,
			[]Token{
				{TokenNumber, "3.25", 3.25, 1},
				{TokenDot, ".", nil, 1},
				{TokenNumber, "5", 5.0, 1},
				{TokenEOF, "", nil, 1},
			},
		},
		{
			"\"multi\nline\" x\n",
			0,
			[]Token{
				{TokenString, "\"multi\nline\"", "multi\nline", 2},
				{TokenIdentifier, "x", nil, 2},
				{TokenEOF, "", nil, 2},
			},
		},
		{
			"_foo1 classy class orchid or",
			0,
			[]Token{
				{TokenIdentifier, "_foo1", nil, 1},
				{TokenIdentifier, "classy", nil, 1},
				{TokenClass, "class", nil, 1},
				{TokenIdentifier, "orchid", nil, 1},
				{TokenOr, "or", nil, 1},
				{TokenEOF, "", nil, 1},
			},
		},
		{
			"",
			0,
			[]Token{
				{TokenEOF, "", nil, 1},
			},
		},
		{
			"\"unclosed\nstring",
			1,
			[]Token{
				{TokenEOF, "", nil, 2},
			},
		},
		{
			"@ x #",
			2,
			[]Token{
				{TokenIdentifier, "x", nil, 1},
				{TokenEOF, "", nil, 1},
			},
		},
	}

	for _, c := range cases {
		toks, errs := Scan(c.data)

		assert.Len(t, errs, c.errors, c.data)
		assert.Equal(t, c.expect, toks, c.data)
	}
}

func TestLexerErrors(t *testing.T) {
	_, errs := Scan("var a = 1;\n@\n\"never closed")
	require.Len(t, errs, 2)

	assert.Equal(t, 2, errs[0].Line)
	assert.Equal(t, "Unexpected character '@'.", errs[0].Message)
	assert.Equal(t, 3, errs[1].Line)
	assert.Equal(t, "Unterminated string.", errs[1].Message)

	assert.True(t, errors.Is(errs[0], ErrLex))
	assert.Equal(t, "[line 2] Error: Unexpected character '@'.", errs[0].Error())
}

func TestLexerSingleEOF(t *testing.T) {
	for i := 0; i < 20; i++ {
		toks, _ := Scan(test.GetRandomTokens(50))

		eofs := 0
		for _, tok := range toks {
			if tok.Typ == TokenEOF {
				eofs++
			}
		}

		assert.Equal(t, 1, eofs)
		assert.Equal(t, TokenEOF, toks[len(toks)-1].Typ)
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok    Token
		expect string
	}{
		{Token{TokenLeftParen, "(", nil, 1}, "LeftParen ("},
		{Token{TokenBangEqual, "!=", nil, 1}, "BangEqual !="},
		{Token{TokenNumber, "2.5", 2.5, 1}, "Number 2.5 2.5"},
		{Token{TokenString, "\"hi\"", "hi", 1}, "String \"hi\" hi"},
		{Token{TokenWhile, "while", nil, 1}, "While while"},
		{Token{TokenEOF, "", nil, 1}, "EOF "},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, c.tok.String())
	}

	assert.Equal(t, "TokenType(100)", TokenType(100).String())
}

// Rebuilding the source out of the lexemes must yield the same tokens.
func TestLexerRoundTrip(t *testing.T) {
	type lexeme struct {
		typ  TokenType
		text string
	}

	significant := func(toks []Token) []lexeme {
		var out []lexeme
		for _, tok := range toks {
			out = append(out, lexeme{tok.Typ, tok.Lexeme})
		}

		return out
	}

	for i := 0; i < 50; i++ {
		source := test.GetRandomTokensWithSep(200, "\t")

		toks, errs := Scan(source)
		require.Empty(t, errs, source)

		var rebuilt []string
		for _, tok := range toks {
			rebuilt = append(rebuilt, tok.Lexeme)
		}

		again, errs := Scan(strings.Join(rebuilt, " "))
		require.Empty(t, errs)

		assert.Equal(t, significant(toks), significant(again))
	}
}

// Use a package-level variable to avoid compiler optimisation
var benchResult []Token

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		data := test.GetRandomTokens(size)
		l := NewLexer(strings.NewReader(data))

		var errs []*LexError
		b.StartTimer()

		benchResult, errs = l.Run()
		if len(errs) != 0 {
			b.Fatal(errs[0])
		}
	}
}

func BenchmarkLexer100(b *testing.B) {
	benchmarkLexer(100, b)
}

func BenchmarkLexer1000(b *testing.B) {
	benchmarkLexer(1000, b)
}

func BenchmarkLexer10000(b *testing.B) {
	benchmarkLexer(10000, b)
}

func BenchmarkLexer100000(b *testing.B) {
	benchmarkLexer(100000, b)
}
