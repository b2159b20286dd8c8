// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/hierarchy/-/blob/master/lexer/lexer.go

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/agd/types"
)

type (
	// Lexer defines an incremental tokenizer for AGD sources.
	//
	// The zero continuation state is "nothing pending"; a pending whitespace
	// run, comment, identifier or string literal is tracked through the
	// pending TokenID together with pendingCount & commentDepth.
	//
	// A Lexer is exclusively owned by its caller; it is not safe for
	// concurrent use.
	Lexer struct {
		logger logrus.FieldLogger
		Debug  bool

		// buffer is the slice of runes of the pending identifier or string
		// literal.
		buffer []rune

		// pending is the continuation being accumulated; pendingNone when the
		// next rune is classified afresh.
		pending      TokenID
		pendingCount int
		commentDepth int

		// line is 1-based; position is the column cursor, incremented before
		// each rune is dispatched.
		line     int
		position int

		tokens         []Token
		identifiers    types.StringSlice
		stringLiterals types.StringSlice
	}

	// Option defines the Lexer functional option type
	Option func(*Lexer)
)

const (
	defBufferSize = 10

	pendingNone TokenID = 0
)

// Lexing errors.
var (
	ErrUnterminatedComment    = errors.New("unterminated comment")
	ErrUnterminatedString     = errors.New("unterminated string literal")
	ErrUnterminatedIdentifier = errors.New("identifier lacks a terminating separator")
)

// Keyword lookup tables; keywordNames is sorted for the binary search &
// keywordIDs mirrors its order.
var (
	keywordNames = []string{"Abbreviate", "Connect", "Declare", "and", "by"}
	keywordIDs   = []TokenID{TokenAbbreviate, TokenConnect, TokenDeclare, TokenAnd, TokenBy}
)

// Improves on performance compared to ORs.
//
// Reduces function cost improving probalility of inlining.
var identifierSymbols = [256]bool{
	'_': true,
	'-': true}

// New creates an empty Lexer.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		logger: logrus.New(),

		buffer: make([]rune, 0, defBufferSize),
		line:   1,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Feed consumes text, extending the token sequence & the side tables.
//
// The end of text is treated as end of input: a pending whitespace run is
// flushed as a final token while a pending comment, identifier or string
// literal yields a hard error & emits nothing.
func (l *Lexer) Feed(text string) error {
	for _, r := range text {
		l.position++

		switch l.pending {
		case TokenComment:
			switch r {
			case '(':
				l.commentDepth++
			case ')':
				l.commentDepth--

				if l.commentDepth == 0 {
					l.emit(Token{ID: TokenComment})
					l.pending = pendingNone
				}
			default:
				// Absorbed, neither buffered nor emitted.
			}
		case TokenIdentifier:
			if isIdentifierPart(r) {
				l.buffer = append(l.buffer, r)
				continue
			}

			l.pushIdentifier()
			l.classify(r)
		case TokenLineFeed:
			if r == '\n' {
				l.line++
				l.position = 0
				l.pendingCount++
				continue
			}

			l.flushRun()
			l.classify(r)
		case TokenSpace:
			if r == ' ' {
				l.pendingCount++
				continue
			}

			l.flushRun()
			l.classify(r)
		case TokenStringLiteral:
			if r == '"' {
				l.pushString()
				continue
			}

			l.buffer = append(l.buffer, r)
		default:
			l.classify(r)
		}
	}

	return l.finalize()
}

// classify dispatches a rune arriving with no pending continuation.
//
// Finalizing a continuation re-invokes classify on the terminating rune
// without advancing the cursor, preserving maximal-munch semantics with a
// single rune of lookahead.
func (l *Lexer) classify(r rune) {
	switch {
	case r == '\n':
		l.line++
		l.position = 0
		l.pending = TokenLineFeed
		l.pendingCount = 1
	case r == ' ':
		l.pending = TokenSpace
		l.pendingCount = 1
	case r == '"':
		l.pending = TokenStringLiteral
	case r == '(':
		l.commentDepth++
		l.pending = TokenComment
	case r == '.':
		l.emit(Token{ID: TokenFullStop})
	case isIdentifierStart(r):
		l.buffer = append(l.buffer, r)
		l.pending = TokenIdentifier
	default:
		l.emit(Token{
			ID:       TokenUnexpected,
			Char:     r,
			Line:     l.line,
			Position: l.position,
		})
	}
}

// pushIdentifier finalizes the pending identifier, emitting a keyword token
// or a fresh identifier side table entry.
//
// Side table entries are appended per occurrence; repeated text yields
// distinct indices.
func (l *Lexer) pushIdentifier() {
	name := string(l.buffer)
	l.buffer = l.buffer[:0]
	l.pending = pendingNone

	if index, ok := slices.BinarySearch(keywordNames, name); ok {
		l.emit(Token{ID: keywordIDs[index]})
		return
	}

	l.emit(Token{ID: TokenIdentifier, Index: l.identifiers.Push(name)})
}

// pushString finalizes the pending string literal on its closing quote.
func (l *Lexer) pushString() {
	value := string(l.buffer)
	l.buffer = l.buffer[:0]
	l.pending = pendingNone

	l.emit(Token{ID: TokenStringLiteral, Index: l.stringLiterals.Push(value)})
}

// flushRun emits the pending whitespace run.
func (l *Lexer) flushRun() {
	l.emit(Token{ID: l.pending, Count: l.pendingCount})
	l.pending = pendingNone
	l.pendingCount = 0
}

// finalize applies the end of input rules to the pending continuation.
func (l *Lexer) finalize() (err error) {
	switch l.pending {
	case pendingNone:
	case TokenLineFeed, TokenSpace:
		l.flushRun()
	case TokenComment:
		err = fmt.Errorf("%w: %d comment level(s) still open", ErrUnterminatedComment, l.commentDepth)
	case TokenStringLiteral:
		err = fmt.Errorf("%w: %q", ErrUnterminatedString, string(l.buffer))
	default:
		// An identifier cut off by the end of input fails instead of being
		// flushed like a trailing whitespace run.
		err = fmt.Errorf("%w: %q", ErrUnterminatedIdentifier, string(l.buffer))
	}

	return
}

// emit appends a Token to the sequence.
func (l *Lexer) emit(t Token) {
	if l.Debug {
		l.logger.Debug("lexer emit: ", t.String())
	}

	l.tokens = append(l.tokens, t)
}

// Tokens obtains the emitted token sequence in document order.
func (l *Lexer) Tokens() []Token { return l.tokens }

// Identifiers obtains the identifier side table.
func (l *Lexer) Identifiers() []string { return l.identifiers }

// StringLiterals obtains the string literal side table.
func (l *Lexer) StringLiterals() []string { return l.stringLiterals }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// isIdentifierStart return true for the ASCII letters opening an identifier.
func isIdentifierStart(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// isIdentifierPart return true for runes extending a pending identifier.
func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || (r >= '0' && r <= '9') ||
		(r < 256 && identifierSymbols[r])
}
