// Released under an MIT license. See LICENSE.

// Package pair provides pix's cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/pix/internal/common"
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/interface/truth"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is nil. It is also the empty list and marks the end of a list.
	Null cell.I
)

// T (pair) is a cons cell. A pair never changes after it is created.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Bool returns the boolean value of the pair p. Only nil is false.
func (p *pair) Bool() bool {
	return p != Null
}

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if cell.I(p) == Null || c == Null {
		return cell.I(p) == c
	}

	if !Is(c) {
		return false
	}

	return p.car.Equal(Car(c)) && p.cdr.Equal(Cdr(c))
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	if p == Null {
		return "nil"
	}

	var b strings.Builder

	b.WriteString("(")

	var c cell.I = p
	for sep := ""; c != Null; sep = " " {
		b.WriteString(sep)

		if !Is(c) {
			b.WriteString(". ")
			b.WriteString(literal.String(c))

			break
		}

		b.WriteString(literal.String(Car(c)))

		c = Cdr(c)
	}

	b.WriteString(")")

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "nil"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// The car of nil is nil. If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// The cdr of nil is nil. If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair (nil included).
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a pair if c is a pair; Otherwise it panics.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	failure.Raise(failure.ErrType, "%s is not a list", c.Name())

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	// The pair type has a truth value.
	_ = truth.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
