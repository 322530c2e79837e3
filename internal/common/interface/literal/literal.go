// Released under an MIT license. See LICENSE.

// Package literal defines the interface for pix values that print as
// something the reader can read back.
package literal

import (
	"strings"

	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
)

// I (literal) is any type with a readable representation.
type I interface {
	Literal() string
}

// Join returns the literal representations of cs separated by sep.
func Join(cs []cell.I, sep string) string {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = String(c)
	}

	return strings.Join(s, sep)
}

// String returns the literal representation of c. Values that cannot be
// read back, like functions, print as #<kind>.
func String(c cell.I) string {
	switch c := c.(type) {
	case nil:
		return "<nil>"
	case I:
		return c.Literal()
	default:
		return "#<" + c.Name() + ">"
	}
}
