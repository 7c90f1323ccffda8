package lox

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Scanner turns Lox source text into a token stream. It owns a single
// forward cursor over the UTF-8 source: start is the first byte of the
// lexeme currently being scanned, current the next undecoded byte, and
// line the 1-based line the cursor is on.
type Scanner struct {
	source string
	tokens []Token

	start   int
	current int
	line    int
}

// NewScanner prepares a scanner over source. A scanner is single-use:
// call ScanTokens once.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// ScanTokens consumes the entire source exactly once and returns the
// tokens in source order, terminated by an EOF token with an empty
// lexeme. Scanning is fail-fast: the first unexpected character or
// unterminated string aborts the scan, and only the error is returned.
func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Line: s.line})
	return s.tokens, nil
}

func (s *Scanner) scanToken() error {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(LeftParen)
	case ')':
		s.addToken(RightParen)
	case '{':
		s.addToken(LeftBrace)
	case '}':
		s.addToken(RightBrace)
	case ',':
		s.addToken(Comma)
	case '.':
		s.addToken(Dot)
	case '-':
		s.addToken(Minus)
	case '+':
		s.addToken(Plus)
	case ';':
		s.addToken(Semicolon)
	case '*':
		s.addToken(Star)
	case '!':
		if s.match('=') {
			s.addToken(BangEqual)
		} else {
			s.addToken(Bang)
		}
	case '=':
		if s.match('=') {
			s.addToken(EqualEqual)
		} else {
			s.addToken(Equal)
		}
	case '<':
		if s.match('=') {
			s.addToken(LessEqual)
		} else {
			s.addToken(Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(GreaterEqual)
		} else {
			s.addToken(Greater)
		}
	case '/':
		if s.match('/') {
			// A comment runs to the end of the line but leaves the
			// newline for the main loop to count.
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(Slash)
		}
	case ' ', '\r', '\t':
		// Insignificant.
	case '\n':
		s.line++
	case '"':
		return s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isIdentifierStart(c):
			s.scanIdentifier()
		default:
			return &Error{Line: s.line, Message: "Unexpected character"}
		}
	}
	return nil
}

// scanString consumes up to the closing quote. Strings may span lines;
// backslashes are literal, there are no escape sequences.
func (s *Scanner) scanString() error {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		return &Error{Line: s.line, Message: "Unterminated string"}
	}

	// Closing quote.
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(String, value)
	return nil
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A dot belongs to the number only when a digit follows it, so "1."
	// scans as the number 1 and then a dot.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// The lexeme is digits with at most one interior dot; ParseFloat
	// cannot reject it.
	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addTokenLiteral(Number, value)
}

func (s *Scanner) scanIdentifier() {
	for isIdentifierRune(s.peek()) {
		s.advance()
	}
	s.addToken(lookupKeyword(s.source[s.start:s.current]))
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// advance decodes the rune at the cursor and steps past it. Callers
// guarantee the cursor is not at the end.
func (s *Scanner) advance() rune {
	r, w := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += w
	return r
}

// match consumes the next rune only when it equals expected.
func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}
	r, w := utf8.DecodeRuneInString(s.source[s.current:])
	if r != expected {
		return false
	}
	s.current += w
	return true
}

// peek returns the next rune without consuming it, or NUL past the end.
func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

// peekNext looks one rune beyond peek.
func (s *Scanner) peekNext() rune {
	if s.isAtEnd() {
		return 0
	}
	_, w := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+w >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+w:])
	return r
}

func (s *Scanner) addToken(tt TokenType) {
	s.addTokenLiteral(tt, nil)
}

func (s *Scanner) addTokenLiteral(tt TokenType, literal any) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// lookupKeyword resolves a scanned identifier lexeme against the reserved
// words. The match is exact and case-sensitive.
func lookupKeyword(ident string) TokenType {
	switch ident {
	case "and":
		return And
	case "class":
		return Class
	case "else":
		return Else
	case "false":
		return False
	case "for":
		return For
	case "fun":
		return Fun
	case "if":
		return If
	case "nil":
		return Nil
	case "or":
		return Or
	case "print":
		return Print
	case "return":
		return Return
	case "super":
		return Super
	case "this":
		return This
	case "true":
		return True
	case "var":
		return Var
	case "while":
		return While
	}
	return Identifier
}
