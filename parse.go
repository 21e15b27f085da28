// SPDX-License-Identifier: MIT
package ordery

import (
	"errors"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/ordery/lexer"
)

type (
	// Parser is a recursive descent parser for order expressions.
	//
	//	expression := clause ( "," clause )*
	//	clause     := target ( ":" direction )?
	//	target     := "/" segment ( "/" segment )*
	//	direction  := "asc" | "desc"
	//
	// A Parser is single use.
	Parser struct {
		cfg *Config
		l   *lexer.Lexer
	}

	// Result holds the outcome of ParseExpression; exactly one of Err & Value is set.
	Result struct {
		Err   *ParseError
		Value *Order
	}
)

// NewParser creates a Parser for expression.
func NewParser(expression string, opts ...Option) (p *Parser, err error) {
	cfg := newConfig(opts...)

	var l *lexer.Lexer
	if l, err = lexer.New(expression, cfg.lexerOptions()...); err != nil {
		return
	}
	p = &Parser{cfg: cfg, l: l}

	return
}

// Parse parses the expression into an Order.
func (p *Parser) Parse() (o *Order, err error) {
	if err = p.l.ExpectAdvance(); err != nil {
		return
	}

	return p.parseClause(nil)
}

// parseDirection parses an optional ":" direction suffix, defaulting to Asc.
func (p *Parser) parseDirection() (dir Direction, err error) {
	if !p.l.Accept(lexer.TokenDirIndicator) {
		dir = Asc
		return
	}

	if err = p.l.ExpectAdvance(); err != nil {
		return
	}
	if err = p.l.Expect(lexer.TokenDirection); err != nil {
		return
	}
	dir = Direction(p.l.Current().Val)

	// Position the Lexer for the end of source / separator check.
	_, err = p.l.Advance()

	return
}

// parseClause parses a clause into acc, seeding a new Order when acc is nil, then recurses on
// any following clause.
func (p *Parser) parseClause(acc *Order) (o *Order, err error) {
	var target *Target
	if target, err = ResolveFromCursor(p.l); err != nil {
		return
	}

	var dir Direction
	if dir, err = p.parseDirection(); err != nil {
		return
	}

	if acc == nil {
		o, err = Seed(dir, target)
	} else {
		o, err = Append(acc, dir, target)
	}
	if err != nil {
		return
	}

	if p.l.IsEnd() {
		return
	}

	if err = p.l.Expect(lexer.TokenConcat); err != nil {
		return
	}
	if err = p.l.ExpectAdvance(); err != nil {
		return
	}

	return p.parseClause(o)
}

// ParseExpression parses an order expression such as "/foo/bar:desc,/baz".
//
// An empty expression is a caller error & is returned as err. Invalid expressions are reported
// through Result.Err; any other err signals a bug.
func ParseExpression(expression string, opts ...Option) (result Result, err error) {
	var p *Parser
	if p, err = NewParser(expression, opts...); err != nil {
		return
	}

	o, pErr := p.Parse()
	if pErr == nil {
		result.Value = o
		if p.cfg.Debug {
			p.cfg.Logger.Debugf("parsed %q: %s", expression, spew.Sprint(o.clauses))
		}

		return
	}

	if !errors.As(pErr, &result.Err) {
		err = pErr
		return
	}

	if p.cfg.Debug {
		p.cfg.Logger.Debugf("parse %q: %v", expression, pErr)
	}

	return
}

// Unwrap converts the Result into the conventional value, error pair.
func (r Result) Unwrap() (*Order, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	return r.Value, nil
}

// MustParse is like ParseExpression but panics on any failure.
//
// It simplifies the initialization of variables holding static expressions.
func MustParse(expression string) *Order {
	result, err := ParseExpression(expression)
	if err == nil {
		_, err = result.Unwrap()
	}
	if err != nil {
		panic(`ordery: ParseExpression(` + expression + `): ` + err.Error())
	}

	return result.Value
}
