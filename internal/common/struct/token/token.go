// Released under an MIT license. See LICENSE.

// Package token is shared by the pix lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/pix/internal/common/struct/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source *loc.T
	value  string
}

type token = T

// Token classes. Punctuation is represented by the rune itself.
const (
	Error Class = iota

	Atom Class = unicode.MaxRune + iota
	String
	Unterminated
)

// Punctuation.
const (
	ListOpen    Class = '('
	ListClose   Class = ')'
	Quote       Class = '\''
	VectorOpen  Class = '['
	VectorClose Class = ']'
)

// Closer returns the class that closes a sequence opened by c, if any.
func Closer(c Class) (Class, bool) {
	switch c {
	case ListOpen:
		return ListClose, true
	case VectorOpen:
		return VectorClose, true
	}

	return Error, false
}

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: &source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
// Punctuation is shown as a quoted rune.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Atom:
		return "Atom"
	case String:
		return "String"
	case Unterminated:
		return "Unterminated"
	}

	return strconv.QuoteRune(rune(c))
}

// Closes returns true if t ends a list or vector.
func (t *token) Closes() bool {
	return t.Is(ListClose, VectorClose)
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Class returns the class of the token t.
func (t *token) Class() Class {
	return t.class
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
