// SPDX-License-Identifier: MIT
package lexer

// REF: https://datatracker.ietf.org/doc/html/rfc6901

import (
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Lexer is a pull based scanner for order expressions.
	//
	// The Lexer is context sensitive: the structural token ending one Item decides how the next
	// run of characters is classified. It is not safe for concurrent use.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		// source is the immutable input.
		source string
		// cursor is the byte offset of the next character to scan.
		cursor int

		// current is the last lexed Item.
		current Item
	}
)

// New creates a Lexer for the source expression.
func New(source string, opts ...Option) (l *Lexer, err error) {
	if source == "" {
		err = ErrEmptyExpression
		return
	}

	l = &Lexer{
		logger:  defLogger,
		source:  source,
		current: Item{ID: TokenNone, Terminator: TokenNone},
	}

	for _, opt := range opts {
		opt(l)
	}

	return
}

// Current obtains the last lexed Item.
func (l *Lexer) Current() Item { return l.current }

// IsEnd reports whether the source has been fully scanned.
func (l *Lexer) IsEnd() bool { return l.cursor >= len(l.source) }

// Source obtains the expression being lexed.
func (l *Lexer) Source() string { return l.source }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Debug reports whether debug logging is enabled.
func (l *Lexer) Debug() bool { return l.debug }

// Accept checks whether the current Item is of kind id.
func (l *Lexer) Accept(id TokenID) bool { return l.current.ID == id }

// Expect asserts the current Item is of kind id.
func (l *Lexer) Expect(id TokenID) (err error) {
	if !l.Accept(id) {
		err = newParseError(l.offset(), id, id.expectMessage())
	}

	return
}

// Advance lexes the next Item, making it current.
//
// ok is false when there is nothing left to scan; err is only set for an invalid direction in
// which case the Lexer is left unchanged & the ParseError points at the preceding ":".
func (l *Lexer) Advance() (ok bool, err error) {
	if l.IsEnd() {
		return
	}

	run, terminator, selfTerminating := l.scan()

	var item Item
	if item, err = Analyze(l.current.Terminator, run, terminator, selfTerminating, l.cursor); err != nil {
		if l.debug {
			l.logger.Debugf("lex %q: %v", l.source, err)
		}
		err = newParseError(l.offset(), TokenDirection, TokenDirection.expectMessage())
		return
	}

	if l.debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debugf("lexed item: %s", spew.Sprint(item))
	}

	l.cursor += len(run)
	l.current = item
	ok = true

	return
}

// ExpectAdvance lexes the next Item, failing if the source has been fully scanned.
func (l *Lexer) ExpectAdvance() (err error) {
	var ok bool
	if ok, err = l.Advance(); err != nil || ok {
		return
	}

	return l.Error("")
}

// Error creates a ParseError positioned at the current Item.
//
// msg is appended to the error message when not empty.
func (l *Lexer) Error(msg string) error {
	return newParseError(l.offset(), TokenNone, msg)
}

// offset obtains the character offset of the current Item.
func (l *Lexer) offset() int { return utf8.RuneCountInString(l.source[:l.current.Pos]) }

// scan reads characters from the cursor up to the next structural character.
//
// A structural character found at the cursor is returned as a run of its own.
func (l *Lexer) scan() (run string, terminator TokenID, selfTerminating bool) {
	end := l.cursor
	for ; end < len(l.source); end++ {
		if terminator = structural[l.source[end]]; terminator == TokenNone {
			continue
		}

		if end == l.cursor {
			selfTerminating = true
			end++
		}

		break
	}
	run = l.source[l.cursor:end]

	return
}
