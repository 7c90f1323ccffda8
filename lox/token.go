package lox

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	// Single-character tokens.
	LeftParen  TokenType = "("
	RightParen TokenType = ")"
	LeftBrace  TokenType = "{"
	RightBrace TokenType = "}"
	Comma      TokenType = ","
	Dot        TokenType = "."
	Minus      TokenType = "-"
	Plus       TokenType = "+"
	Semicolon  TokenType = ";"
	Slash      TokenType = "/"
	Star       TokenType = "*"

	// One or two character tokens.
	Bang         TokenType = "!"
	BangEqual    TokenType = "!="
	Equal        TokenType = "="
	EqualEqual   TokenType = "=="
	Greater      TokenType = ">"
	GreaterEqual TokenType = ">="
	Less         TokenType = "<"
	LessEqual    TokenType = "<="

	// Literals.
	Identifier TokenType = "IDENTIFIER"
	String     TokenType = "STRING"
	Number     TokenType = "NUMBER"

	// Keywords.
	And    TokenType = "AND"
	Class  TokenType = "CLASS"
	Else   TokenType = "ELSE"
	False  TokenType = "FALSE"
	For    TokenType = "FOR"
	Fun    TokenType = "FUN"
	If     TokenType = "IF"
	Nil    TokenType = "NIL"
	Or     TokenType = "OR"
	Print  TokenType = "PRINT"
	Return TokenType = "RETURN"
	Super  TokenType = "SUPER"
	This   TokenType = "THIS"
	True   TokenType = "TRUE"
	Var    TokenType = "VAR"
	While  TokenType = "WHILE"

	// End of input. Emitted exactly once, always last.
	EOF TokenType = "EOF"
)

// Token captures lexical information for the parser. Lexeme is the
// verbatim source slice the token was scanned from; Literal holds the
// decoded value for String (string) and Number (float64) tokens and is
// nil for everything else.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
}

// String renders the token as "<type> <lexeme> <literal>", the form the
// scan command prints one token per line.
func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}
