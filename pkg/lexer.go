package lox

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

type stateFunc func(l *Lexer) stateFunc

const eof rune = -1

var punctuationTable = map[rune]TokenType{
	'(': TokenLeftParen,
	')': TokenRightParen,
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
	',': TokenComma,
	'.': TokenDot,
	'-': TokenMinus,
	'+': TokenPlus,
	';': TokenSemicolon,
	'*': TokenStar,
}

// Operators that extend to a two-rune form when followed by '='.
var operatorTable = map[rune][2]TokenType{
	'!': {TokenBang, TokenBangEqual},
	'=': {TokenEqual, TokenEqualEqual},
	'<': {TokenLess, TokenLessEqual},
	'>': {TokenGreater, TokenGreaterEqual},
}

// Lexer turns source text into tokens in a single left-to-right pass.
// Lexical errors don't stop the scan, they are collected and scanning
// resumes with the next rune.
type Lexer struct {
	reader *bufio.Reader
	tokens []Token
	errors []*LexError

	lexeme   strings.Builder
	line     int
	lastLine int
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader:   bufio.NewReader(reader),
		line:     1,
		lastLine: 1,
	}
}

// Scan is a shorthand for lexing an in-memory source.
func Scan(source string) ([]Token, []*LexError) {
	return NewLexer(strings.NewReader(source)).Run()
}

// Run drives the lexer to completion. The returned tokens always end with a
// single EOF token.
func (l *Lexer) Run() ([]Token, []*LexError) {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	return l.tokens, l.errors
}

func defaultState(l *Lexer) stateFunc {
	for {
		l.lexeme.Reset()

		switch r := l.next(); {
		case r == eof:
			l.tokens = append(l.tokens, Token{Typ: TokenEOF, Line: l.lastLine})
			return nil
		case r == ' ' || r == '\r' || r == '\t':
			continue
		case r == '\n':
			l.line++
			continue
		case r == '/':
			if l.accept('/') {
				return lineCommentState
			}

			return l.emit(TokenSlash, nil)
		case r == '"':
			return stringState
		case isDigit(r):
			return numberState
		case isAlpha(r):
			return identifierState
		default:
			if typ, ok := punctuationTable[r]; ok {
				return l.emit(typ, nil)
			}

			if ops, ok := operatorTable[r]; ok {
				if l.accept('=') {
					return l.emit(ops[1], nil)
				}

				return l.emit(ops[0], nil)
			}

			l.errorf("Unexpected character '%c'.", r)
		}
	}
}

func lineCommentState(l *Lexer) stateFunc {
	for r := l.peek(); r != '\n' && r != eof; r = l.peek() {
		l.next()
	}

	return defaultState
}

func stringState(l *Lexer) stateFunc {
	for r := l.peek(); r != '"'; r = l.peek() {
		if r == eof {
			l.errorf("Unterminated string.")
			return defaultState
		}

		l.next()
		if r == '\n' {
			l.line++
		}
	}

	l.next() // Closing double-quote

	lexeme := l.lexeme.String()
	return l.emit(TokenString, lexeme[1:len(lexeme)-1])
}

func numberState(l *Lexer) stateFunc {
	l.acceptDigits()

	// A '.' is only part of the number when a digit follows it
	if l.peek() == '.' {
		if next, err := l.reader.Peek(2); err == nil && isDigit(rune(next[1])) {
			l.next()
			l.acceptDigits()
		}
	}

	value, err := strconv.ParseFloat(l.lexeme.String(), 64)
	if err != nil {
		l.errorf("Invalid number '%s'.", l.lexeme.String())
		return defaultState
	}

	return l.emit(TokenNumber, value)
}

func identifierState(l *Lexer) stateFunc {
	for r := l.peek(); isAlpha(r) || isDigit(r); r = l.peek() {
		l.next()
	}

	if typ, ok := keywordTable[l.lexeme.String()]; ok {
		return l.emit(typ, nil)
	}

	return l.emit(TokenIdentifier, nil)
}

func (l *Lexer) acceptDigits() {
	for isDigit(l.peek()) {
		l.next()
	}
}

func (l *Lexer) errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, newLexError(l.line, format, args...))
}

func (l *Lexer) emit(t TokenType, literal interface{}) stateFunc {
	l.tokens = append(l.tokens, Token{
		Typ:     t,
		Lexeme:  l.lexeme.String(),
		Literal: literal,
		Line:    l.line,
	})

	return defaultState
}

// accept consumes the next rune only if it matches expected.
func (l *Lexer) accept(expected rune) bool {
	if l.peek() != expected {
		return false
	}

	l.next()
	return true
}

func (l *Lexer) peek() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		return eof
	}

	_ = l.reader.UnreadRune()
	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		return eof
	}

	l.lastLine = l.line
	l.lexeme.WriteRune(r)

	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_'
}
