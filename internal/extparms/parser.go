// File: parser.go
// Title: Parameter File Recursive Descent Parser
// Description: Parses parameter files into a flat event stream. Recognises
//              the global, input, output and annotate sections, recovers at
//              statement boundaries after an error and reports every syntax
//              error found in a file together.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-16 v0.2.0: Section grammar, event output, error recovery

package extparms

import (
	"errors"
	"fmt"
	"strings"

	mdwlog "github.com/msto63/ordt/foundation/core/log"
)

const defaultMaxInputLength = 1 << 20

// Parser implements recursive descent parsing for parameter files
type Parser struct {
	lexer   *Lexer
	current Token
	next    Token
	logger  *mdwlog.Logger
	options Options

	events []Event
	errs   []*ParseError
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message  string
	Position int
	Line     int
	Column   int
	Token    Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Line, pe.Column, pe.Message, pe.Token.Value)
}

// SyntaxError collects every ParseError found in one source.
type SyntaxError struct {
	Source string
	Errors []*ParseError
}

func (se *SyntaxError) Error() string {
	if len(se.Errors) == 1 {
		return fmt.Sprintf("%s: %s", se.Source, se.Errors[0].Error())
	}
	msgs := make([]string, len(se.Errors))
	for i, e := range se.Errors {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%s: %d syntax errors: %s", se.Source, len(se.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual parse errors to errors.As.
func (se *SyntaxError) Unwrap() []error {
	errs := make([]error, len(se.Errors))
	for i, e := range se.Errors {
		errs[i] = e
	}
	return errs
}

// New creates a new parameter file parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = defaultMaxInputLength
	}
	if opts.MaxInputLength < 0 {
		return nil, errors.New("max input length must not be negative")
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "extparms-parser"),
		options: opts,
	}, nil
}

// Parse parses a parameter file. source names the input in errors.
// On syntax errors no File is returned and the error is a *SyntaxError.
func (p *Parser) Parse(source, input string) (*File, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)
	}

	p.lexer = NewLexer(input)
	p.events = nil
	p.errs = nil
	p.current = p.lexer.NextToken()
	p.next = p.lexer.NextToken()

	p.logger.Debug("Starting parameter file parsing", mdwlog.Fields{
		"source": source,
		"length": len(input),
	})

	for p.current.Type != TokenEOF {
		if err := p.parseSection(); err != nil {
			p.record(err)
			p.syncSection()
		}
	}

	if len(p.errs) > 0 {
		p.logger.Warn("Parameter file parsing failed", mdwlog.Fields{
			"source": source,
			"errors": len(p.errs),
		})
		return nil, &SyntaxError{Source: source, Errors: p.errs}
	}

	p.logger.Debug("Parameter file parsing completed successfully", mdwlog.Fields{
		"source": source,
		"events": len(p.events),
	})

	return &File{Source: source, events: p.events}, nil
}

// Parse parses input with a default parser.
func Parse(source, input string) (*File, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(source, input)
}

// parseSection parses one section header and its body
func (p *Parser) parseSection() error {
	if p.current.Type != TokenIdentifier {
		return p.parseError("expected section keyword (global, input, output, annotate)")
	}

	keyword := p.current.Value
	switch keyword {
	case "global":
		p.advance()
		return p.parseAssignBody(CategoryGlobal)

	case "input", "output":
		table := inputSections
		if keyword == "output" {
			table = outputSections
		}
		p.advance()
		if p.current.Type != TokenIdentifier {
			return p.parseError(fmt.Sprintf("expected %s language after '%s'", keyword, keyword))
		}
		category, ok := table[p.current.Value]
		if !ok {
			return p.parseError(fmt.Sprintf("unknown %s language '%s'", keyword, p.current.Value))
		}
		p.advance()
		return p.parseAssignBody(category)

	case "annotate":
		p.advance()
		return p.parseAnnotateBody()

	default:
		return p.parseError(fmt.Sprintf("unknown section '%s'", keyword))
	}
}

// parseAssignBody parses '{' assign* '}'
func (p *Parser) parseAssignBody(category Category) error {
	if err := p.expect(TokenLeftBrace, "expected '{' to open section"); err != nil {
		return err
	}

	for p.current.Type != TokenRightBrace {
		if p.current.Type == TokenEOF {
			return p.parseError("expected '}' to close section")
		}
		start := p.current.Position
		if err := p.parseAssign(category); err != nil {
			p.record(err)
			p.syncStatement(start, p.atAssignStart)
		}
	}
	p.advance() // consume '}'
	return nil
}

// parseAssign parses ID '=' value
func (p *Parser) parseAssign(category Category) error {
	if p.current.Type != TokenIdentifier {
		return p.parseError("expected parameter name")
	}
	name := p.current
	p.advance()

	if err := p.expect(TokenEquals, "expected '=' after parameter name"); err != nil {
		return err
	}

	switch p.current.Type {
	case TokenIdentifier, TokenString, TokenNumber, TokenBoolean:
	default:
		return p.parseError(fmt.Sprintf("expected value, got %s", p.current.Type.String()))
	}
	value := p.current.Value
	p.advance()

	p.events = append(p.events, Event{
		Kind:     EventAssign,
		Category: category,
		Tokens:   []string{name.Value, "=", value},
		Line:     name.Line,
	})
	return nil
}

// parseAnnotateBody parses '{' annotation* '}'
func (p *Parser) parseAnnotateBody() error {
	if err := p.expect(TokenLeftBrace, "expected '{' to open annotate section"); err != nil {
		return err
	}

	for p.current.Type != TokenRightBrace {
		if p.current.Type == TokenEOF {
			return p.parseError("expected '}' to close annotate section")
		}
		start := p.current.Position
		if err := p.parseAnnotation(); err != nil {
			p.record(err)
			p.syncStatement(start, p.atAnnotationStart)
		}
	}
	p.advance() // consume '}'
	return nil
}

// parseAnnotation parses
// ('set_reg_property'|'set_field_property') (ID|STRING) '=' STRING ('instances'|'components') STRING
func (p *Parser) parseAnnotation() error {
	if !p.atAnnotationStart() {
		return p.parseError("expected set_reg_property or set_field_property")
	}
	command := p.current
	p.advance()

	if p.current.Type != TokenIdentifier && p.current.Type != TokenString {
		return p.parseError("expected property name")
	}
	property := p.current.Value
	p.advance()

	if err := p.expect(TokenEquals, "expected '=' after property name"); err != nil {
		return err
	}

	if p.current.Type != TokenString {
		return p.parseError("expected quoted property value")
	}
	value := p.current.Value
	p.advance()

	if p.current.Type != TokenIdentifier || (p.current.Value != "instances" && p.current.Value != "components") {
		return p.parseError("expected 'instances' or 'components'")
	}
	mode := p.current.Value
	p.advance()

	if p.current.Type != TokenString {
		return p.parseError("expected quoted path")
	}
	path := p.current.Value
	p.advance()

	p.events = append(p.events, Event{
		Kind:     EventAnnotation,
		Category: CategoryAnnotate,
		Tokens:   []string{command.Value, property, "=", value, mode, path},
		Line:     command.Line,
	})
	return nil
}

// Error recovery

// syncStatement skips to the next statement start or the closing brace.
// A statement that failed on its first token gives that token up, so
// recovery always makes progress.
func (p *Parser) syncStatement(start int, atStart func() bool) {
	if p.current.Position == start {
		p.advance()
	}
	for p.current.Type != TokenEOF && p.current.Type != TokenRightBrace && !atStart() {
		p.advance()
	}
}

// syncSection skips to the next section keyword.
func (p *Parser) syncSection() {
	p.advance()
	for p.current.Type != TokenEOF && !p.atSectionStart() {
		p.advance()
	}
}

func (p *Parser) atAssignStart() bool {
	return p.current.Type == TokenIdentifier && p.next.Type == TokenEquals
}

func (p *Parser) atAnnotationStart() bool {
	return p.current.Type == TokenIdentifier &&
		(p.current.Value == "set_reg_property" || p.current.Value == "set_field_property")
}

func (p *Parser) atSectionStart() bool {
	if p.current.Type != TokenIdentifier {
		return false
	}
	switch p.current.Value {
	case "global", "annotate":
		return p.next.Type == TokenLeftBrace
	case "input", "output":
		return p.next.Type == TokenIdentifier
	}
	return false
}

// Utility methods

// advance moves to the next token
func (p *Parser) advance() {
	p.current = p.next
	if p.current.Type == TokenEOF {
		p.next = p.current
		return
	}
	p.next = p.lexer.NextToken()
}

// expect consumes a token of the given type or returns a parse error
func (p *Parser) expect(tokenType TokenType, message string) error {
	if p.current.Type != tokenType {
		return p.parseError(message)
	}
	p.advance()
	return nil
}

// record adds an error to the list reported at the end of parsing
func (p *Parser) record(err error) {
	var pe *ParseError
	if errors.As(err, &pe) {
		p.errs = append(p.errs, pe)
		return
	}
	p.errs = append(p.errs, &ParseError{
		Message:  err.Error(),
		Position: p.current.Position,
		Line:     p.current.Line,
		Column:   p.current.Column,
		Token:    p.current,
	})
}

// parseError creates a parse error at the current token
func (p *Parser) parseError(message string) error {
	if p.current.Type == TokenIllegal {
		message = describeIllegal(p.current)
	}
	return &ParseError{
		Message:  message,
		Position: p.current.Position,
		Line:     p.current.Line,
		Column:   p.current.Column,
		Token:    p.current,
	}
}
