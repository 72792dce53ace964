// Package parser builds expression trees from token sequences by
// precedence climbing.
package parser

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/token"
)

var (
	// ErrUnexpectedToken is returned when a NUMBER (or the final EOF) is
	// expected and some other token is found.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrMalformedInput is the parent of errors caused by a token sequence
	// that breaks the input contract rather than the grammar.
	ErrMalformedInput = errors.New("malformed input")
	// ErrMissingEOF is returned for an empty sequence or one whose last
	// token is not EOF.
	ErrMissingEOF = fmt.Errorf("%w: token sequence does not end with %s", ErrMalformedInput, token.EOF)
	// ErrUnknownOperator is returned for a BINARY_OP with no precedence.
	ErrUnknownOperator = fmt.Errorf("%w: unknown operator", ErrMalformedInput)
)

// A Parser holds the cursor for a single parse. It must not be shared
// between goroutines; the token slice itself is only read.
type Parser struct {
	tokens []token.Token
	offset int
	log    zerolog.Logger
}

// An Option configures a Parser.
type Option func(*Parser)

// WithLogger makes the parser trace every step at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = logger
	}
}

// New returns a parser positioned on the first of tokens.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is shorthand for New(tokens, opts...).Parse().
func Parse(tokens []token.Token, opts ...Option) (ast.Expr, error) {
	return New(tokens, opts...).Parse()
}

// Parse parses one expression followed by EOF. On success the cursor is
// left on the EOF token. On failure no tree is returned and the cursor is
// left on the offending token.
func (p *Parser) Parse() (ast.Expr, error) {
	if len(p.tokens) == 0 || p.tokens[len(p.tokens)-1].Type != token.EOF {
		return nil, NewParseError(len(p.tokens), token.Token{}, ErrMissingEOF)
	}

	x, err := p.expr(token.PrecedenceNone)
	if err != nil {
		return nil, err
	}

	if p.peek().Type != token.EOF {
		return nil, p.unexpected(token.EOF)
	}

	return x, nil
}

// Offset reports the index of the token under the cursor.
func (p *Parser) Offset() int {
	return p.offset
}

func (p *Parser) expr(min token.Precedence) (ast.Expr, error) {
	lit, err := p.primary()
	if err != nil {
		return nil, err
	}
	var left ast.Expr = lit

	for p.peek().Type == token.BinaryOp {
		t := p.peek()
		op, ok := token.LookupOperator(t.Text)
		if !ok {
			return nil, NewParseError(p.offset, t, fmt.Errorf("%w %q", ErrUnknownOperator, t.Text))
		}

		prec := op.Precedence()
		if prec < min {
			break
		}
		p.advance()

		p.log.Trace().
			Int("offset", p.offset-1).
			Stringer("op", op).
			Int("precedence", int(prec)).
			Msg("binary")

		// prec+1 keeps operators of equal precedence out of the right
		// operand, so they associate to the left.
		right, err := p.expr(prec + 1)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Left:  left,
			OpPos: t.Pos,
			Op:    op,
			Right: right,
		}
	}

	return left, nil
}

func (p *Parser) primary() (*ast.Literal, error) {
	t := p.peek()
	if t.Type != token.Number {
		return nil, p.unexpected(token.Number)
	}
	p.advance()

	p.log.Trace().Int("offset", p.offset-1).Str("value", t.Text).Msg("primary")

	return &ast.Literal{
		ValuePos: t.Pos,
		Value:    t.Text,
	}, nil
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.offset]
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.offset]
	p.offset++
	return t
}

func (p *Parser) unexpected(expected token.Type) error {
	t := p.peek()
	return NewParseError(p.offset, t, fmt.Errorf("%w: expected %s but found %s", ErrUnexpectedToken, expected, t.Type))
}

type ParseError struct {
	Offset int
	Token  token.Token
	err    error
}

func NewParseError(offset int, tok token.Token, err error) *ParseError {
	return &ParseError{Offset: offset, Token: tok, err: err}
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d: %v", err.Offset, err.err)
}

func (err *ParseError) Unwrap() error {
	return err.err
}
