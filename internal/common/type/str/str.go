// Released under an MIT license. See LICENSE.

// Package str provides pix's immutable string type.
package str

import (
	"strconv"
	"unicode/utf8"

	"github.com/michaelmacinnis/pix/internal/common"
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
)

const name = "string"

// T (str) is a string of UTF-8 text.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// Map returns a new str holding f applied to the text of c.
// It panics if c is not a str.
func Map(c cell.I, f func(string) string) cell.I {
	return New(f(To(c).String()))
}

// To returns the str c. It panics if c is any other kind of value.
func To(c cell.I) *str {
	s, ok := c.(*str)
	if !ok {
		failure.Raise(failure.ErrType, "%s is not a %s", c.Name(), name)
	}

	return s
}

// Equal returns true if c is a str with the same text as s.
func (s *str) Equal(c cell.I) bool {
	t, ok := c.(*str)

	return ok && *t == *s
}

// Len returns the number of characters, not bytes, in s.
func (s *str) Len() int {
	return utf8.RuneCountInString(string(*s))
}

// Literal returns s in double quotes with Go escapes, which the reader
// decodes back into the same text.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of s.
func (s *str) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
