package gdl

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lexer state machine
type Lexer struct {
	input []byte
	pos   int // current position in input (points to current char)
	line  int
	col   int
	width int // width of last rune read
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
}

// NextToken returns the next token in the stream
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return l.newToken(TokenEOF, "")
	}

	ch := l.peek()

	// Newlines terminate properties, same as commas
	if ch == '\n' {
		l.advance()
		return l.newToken(TokenNewline, "\n")
	}

	// Line comments: //
	if ch == '/' && l.peekAt(1) == '/' {
		return l.readComment()
	}

	switch ch {
	case ':':
		l.advance()
		return l.newToken(TokenColon, ":")
	case ',':
		l.advance()
		return l.newToken(TokenComma, ",")
	case '[':
		l.advance()
		return l.newToken(TokenLBracket, "[")
	case ']':
		l.advance()
		return l.newToken(TokenRBracket, "]")
	case '{':
		l.advance()
		return l.newToken(TokenLBrace, "{")
	case '}':
		l.advance()
		return l.newToken(TokenRBrace, "}")
	case '"':
		return l.readString()
	}

	// Numbers start with a digit or a sign
	if isDigit(ch) || ch == '+' || ch == '-' || ch == '.' {
		return l.readBareOrNumber()
	}

	// Identifiers / booleans
	if isAlpha(ch) || ch == '_' {
		return l.readBareOrNumber()
	}

	// Unknown
	l.advance()
	return l.newToken(TokenError, fmt.Sprintf("unexpected character: %c", ch))
}

func (l *Lexer) newToken(typ TokenType, literal string) Token {
	return Token{Type: typ, Literal: literal, Line: l.line, Col: l.col - len(literal)}
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return 0
	}
	r, w := utf8.DecodeRune(l.input[l.pos:])
	l.width = w
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

// peekAt looks ahead n runes without consuming
func (l *Lexer) peekAt(n int) rune {
	pos := l.pos
	for i := 0; i < n; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, w := utf8.DecodeRune(l.input[pos:])
		pos += w
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[pos:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' {
			l.advance()
		} else {
			break
		}
	}
}

func (l *Lexer) readComment() Token {
	// Consume '//'
	l.advance()
	l.advance()
	start := l.pos
	for l.pos < len(l.input) {
		if l.peek() == '\n' {
			break
		}
		l.advance()
	}
	return l.newToken(TokenComment, string(l.input[start:l.pos]))
}

func (l *Lexer) readString() Token {
	// Consume opening quote
	l.advance()
	start := l.pos
	escaped := false
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == '\n' {
			return l.newToken(TokenError, "unterminated string (newlines not allowed)")
		}
		if ch == '"' && !escaped {
			lit := string(l.input[start:l.pos])
			l.advance() // consume closing quote
			return l.newToken(TokenString, l.unescape(lit))
		}
		if ch == '\\' && !escaped {
			escaped = true
		} else {
			escaped = false
		}
		l.advance()
	}
	return l.newToken(TokenError, "unterminated string")
}

// Simple unescape for basic JSON-like escapes
func (l *Lexer) unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\r`, "\r")
	return s
}

func (l *Lexer) readBareOrNumber() Token {
	start := l.pos
	firstCh := l.peek()
	isNumber := isDigit(firstCh) || firstCh == '+' || firstCh == '-' || firstCh == '.'

	for l.pos < len(l.input) {
		ch := l.peek()
		// Bare identifiers: A-Za-z0-9_-
		if isAlpha(ch) || isDigit(ch) || ch == '_' || ch == '-' || ch == '+' {
			l.advance()
		} else if ch == '.' && isNumber {
			// Allow '.' only in numeric context (floats)
			l.advance()
		} else {
			break
		}
	}
	lit := string(l.input[start:l.pos])

	// Classify
	if lit == "true" || lit == "false" {
		return l.newToken(TokenBool, lit)
	}

	// A lone sign with no digits is malformed
	if lit == "+" || lit == "-" || lit == "." {
		return l.newToken(TokenError, fmt.Sprintf("malformed number: %s", lit))
	}

	// If it contains letters (except scientific-notation e), it is an identifier
	hasLetter := false
	for _, r := range lit {
		if isAlpha(r) && r != 'e' && r != 'E' {
			hasLetter = true
			break
		}
	}
	if !hasLetter && isNumber {
		return l.newToken(TokenNumber, lit)
	}

	return l.newToken(TokenIdent, lit)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
