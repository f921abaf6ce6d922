// File: lexer.go
// Title: Parameter File Lexical Analyzer
// Description: Converts parameter file text into tokens for the parser.
//              Handles identifiers, quoted strings, numeric literals
//              (including Verilog sized literals), booleans, braces and
//              both comment styles, with line and column tracking for
//              error reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-16 v0.2.0: Parameter file tokens, comments, raw string values

package extparms

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // leaf_address_size, global, set_reg_property
	TokenString     // "quoted text"
	TokenNumber     // 40, 0x1000, 32'h1000
	TokenBoolean    // true, false

	// Operators and delimiters
	TokenEquals     // =
	TokenLeftBrace  // {
	TokenRightBrace // }
)

// Token represents a lexical token with position information.
// Value holds the source text; string tokens keep their quotes.
type Token struct {
	Type     TokenType
	Value    string
	Position int // Byte offset in input
	Line     int // 1-based
	Column   int // 1-based
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenBoolean:
		return "BOOLEAN"
	case TokenEquals:
		return "EQUALS"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of parameter file input
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char under examination
	line     int
	column   int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	if illegal, ok := l.skipWhitespaceAndComments(); !ok {
		return illegal
	}

	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		tok = newToken(TokenEquals, l.ch, pos, line, column)
	case '{':
		tok = newToken(TokenLeftBrace, l.ch, pos, line, column)
	case '}':
		tok = newToken(TokenRightBrace, l.ch, pos, line, column)
	case '"':
		value, terminated := l.readString()
		tok = Token{Type: TokenString, Value: value, Position: pos, Line: line, Column: column}
		if !terminated {
			tok.Type = TokenIllegal
			return tok
		}
	case '\'':
		return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos, Line: line, Column: column}
	case 0:
		return Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			tok.Value = l.readIdentifier()
			tok.Type = lookupIdent(tok.Value)
			return tok
		} else if isDigit(l.ch) {
			return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos, Line: line, Column: column}
		}
		tok = newToken(TokenIllegal, l.ch, pos, line, column)
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("%s at line %d, column %d (position %d)",
				describeIllegal(tok), tok.Line, tok.Column, tok.Position)
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (letters, digits, underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal. Radix prefixes, digit separators and
// Verilog width/radix markers are kept; regnum validates the digits.
func (l *Lexer) readNumber() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '\'' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads a double-quoted string literal including its quotes.
// The second result is false when input ends before the closing quote.
func (l *Lexer) readString() (string, bool) {
	start := l.position

	for {
		l.readChar()
		if l.ch == '"' {
			return l.input[start : l.position+1], true
		}
		if l.ch == 0 {
			return l.input[start:l.position], false
		}
		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar()
		}
	}
}

// skipWhitespaceAndComments skips whitespace, // line comments and /* */
// block comments. An unterminated block comment yields an illegal token.
func (l *Lexer) skipWhitespaceAndComments() (Token, bool) {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			tok := Token{Type: TokenIllegal, Value: "/*", Position: l.position, Line: l.line, Column: l.column}
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') {
				if l.ch == 0 {
					return tok, false
				}
				l.readChar()
			}
			l.readChar()
			l.readChar()
		default:
			return Token{}, true
		}
	}
}

// Utility functions

// newToken creates a new single character token
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// lookupIdent determines if an identifier is a boolean literal or a
// regular identifier. Section and command keywords stay identifiers and
// are recognised by the parser from context.
func lookupIdent(ident string) TokenType {
	if ident == "true" || ident == "false" {
		return TokenBoolean
	}
	return TokenIdentifier
}

// describeIllegal returns a human readable reason for an illegal token
func describeIllegal(tok Token) string {
	switch {
	case strings.HasPrefix(tok.Value, `"`):
		return "unterminated string literal"
	case strings.HasPrefix(tok.Value, "/*"):
		return "unterminated block comment"
	default:
		return fmt.Sprintf("illegal character '%s'", tok.Value)
	}
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}
