// Released under an MIT license. See LICENSE.

// Package validate checks argument counts.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
)

// Unlimited, as a maximum, means there is no upper bound.
const Unlimited = -1

// Count panics with an arity error unless label was passed min to max
// arguments.
func Count(label string, actual []cell.I, min, max int) {
	n := len(actual)

	switch {
	case n < min && min == max:
		failure.Raise(failure.ErrArity, "%s expected %s, passed %d", label, Plural(min, "argument", "s"), n)
	case n < min:
		failure.Raise(failure.ErrArity, "%s expected at least %s, passed %d", label, Plural(min, "argument", "s"), n)
	case max != Unlimited && n > max && min == max:
		failure.Raise(failure.ErrArity, "%s expected %s, passed %d", label, Plural(max, "argument", "s"), n)
	case max != Unlimited && n > max:
		failure.Raise(failure.ErrArity, "%s expected at most %s, passed %d", label, Plural(max, "argument", "s"), n)
	}
}

// Plural returns n followed by label, adding the suffix p unless n is one.
func Plural(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
