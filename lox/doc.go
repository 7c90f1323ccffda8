// Package lox implements the lexical scanner for the Lox scripting
// language. A Scanner walks raw source text once, left to right, and
// produces a flat sequence of typed tokens for a parser to consume:
//   - Single-character punctuation: ( ) { } , . - + ; *
//   - One- or two-character operators: ! != = == < <= > >=
//   - String literals in double quotes (multi-line, no escape sequences)
//     and decimal number literals with an optional fractional part.
//   - Identifiers and the sixteen reserved words of the language.
//
// Comments beginning with `//` run to the end of the line and are ignored.
// Every token records the verbatim source lexeme and the 1-based line it
// started on. Scanning is fail-fast: the first unexpected character or
// unterminated string aborts the scan and is returned as an *Error.
package lox
