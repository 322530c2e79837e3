// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for pix.
//
// The pix lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Text arrives in pieces. When the lexer runs out of text in the middle of a
// token it waits for more. Once Close is called, running out of text ends the
// current token.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/pix/internal/common/struct/loc"
	"github.com/michaelmacinnis/pix/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes  string   // Buffer being scanned.
	closed bool     // No more buffers will be added.
	first  int      // Index of the current token's first byte.
	index  int      // Index of the current byte.
	line   int      // Line of the current byte.
	queue  []string // Buffers waiting to be scanned.
	runes  int      // Runes scanned on the current line.
	saved  action   // Escaped action.
	state  action   // Current action.

	source loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Close tells the lexer that no more text will be passed to Scan.
func (l *T) Close() {
	l.closed = true
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
// A nil token means more text is needed or, after Close, that there is none.
func (l *T) Token() *token.T {
	for {
		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens = l.tokens[1:]

			return t
		}

		l.gather()

		state := l.state(l)
		if state == nil {
			if len(l.tokens) > 0 {
				continue
			}

			return nil
		}

		l.state = state
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	bytes := strings.Join(l.queue, "")

	if l.first < len(l.bytes) {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.first = l.index
	l.source.Char = l.runes
	l.source.Line = l.line
}

// wait is returned by a state that has run out of text. If more text may
// arrive, the lexer stops and resumes in the same state later. Otherwise,
// the token in progress is emitted as class c.
func (l *T) wait(c token.Class) action {
	if !l.closed {
		return nil
	}

	if l.index > l.first {
		l.emit(c, l.Text())
	}

	l.saved = nil

	return skipWhitespace
}

// T states.

func escapeNextCharacter(l *T) action {
	r, w := l.peek()
	if r == eof {
		return l.wait(token.Unterminated)
	}

	l.accept(r, w)

	return l.resume()
}

func scanString(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return l.wait(token.Unterminated)
		case '"':
			l.accept(r, w)
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			l.accept(r, w)

			return l.escape(scanString, escapeNextCharacter)
		}

		l.accept(r, w)
	}
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return l.wait(token.Atom)
		case terminates(r):
			l.emit(token.Atom, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			if l.closed {
				l.skip()

				return skipWhitespace
			}

			return nil
		case '\n':
			l.accept(r, w)
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.skip()

			return nil
		case whitespace(r):
			l.accept(r, w)
			l.skip()

			continue
		}

		l.accept(r, w)

		switch r {
		case token.ListOpen, token.ListClose, token.VectorOpen, token.VectorClose, token.Quote:
			l.emit(r, l.Text())

			return skipWhitespace
		case '"':
			return scanString
		case ';':
			return skipComment
		}

		return scanAtom
	}
}

// Helper functions.

func terminates(r token.Class) bool {
	switch r {
	case '(', ')', '[', ']', '"', ';':
		return true
	}

	return whitespace(r)
}

func whitespace(r token.Class) bool {
	switch r {
	case '\t', '\n', '\r', ' ', ',':
		return true
	}

	return false
}
