// Released under an MIT license. See LICENSE.

// Package boolean provides pix's boolean value type.
//
// There are exactly two booleans. Every true or false the reader produces,
// and every result of a predicate, is one of them, so == is enough to
// compare booleans.
package boolean

import (
	"github.com/michaelmacinnis/pix/internal/common"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) is true or false.
type T struct {
	text  string
	value bool
}

type boolean = T

//nolint:gochecknoglobals
var (
	False = &boolean{text: "false", value: false}
	True  = &boolean{text: "true", value: true}
)

// Bool returns the boolean cell for the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Parse returns the boolean spelled text, if any.
func Parse(text string) (cell.I, bool) {
	switch text {
	case True.text:
		return True, true
	case False.text:
		return False, true
	}

	return nil, false
}

// Bool returns the Go value of the boolean b.
func (b *boolean) Bool() bool {
	return b.value
}

// Equal returns true if c is the same boolean as b.
func (b *boolean) Equal(c cell.I) bool {
	return c == cell.I(b)
}

// Literal returns the text of the boolean b.
func (b *boolean) Literal() string {
	return b.text
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	return b.text
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type can be false.
	_ = truth.I(&t)
}
