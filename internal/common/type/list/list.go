// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
//
// Pairs are immutable so every function here builds lists back to front.
package list

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
)

// Append returns a new list with each element in elements after those in list.
// The cells of list are copied. The list must be proper.
func Append(list cell.I, elements ...cell.I) cell.I {
	return New(append(Slice(list), elements...)...)
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(list cell.I) int {
	length := 0

	for list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	l := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Proper returns true if list is nil or a chain of pairs ending in nil.
func Proper(list cell.I) bool {
	for pair.Is(list) {
		if list == pair.Null {
			return true
		}

		list = pair.Cdr(list)
	}

	return false
}

// Reverse returns a new list with the elements of list in reverse order.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Slice returns the elements of list as a slice.
// An improper list will cause a panic.
func Slice(list cell.I) []cell.I {
	if !Proper(list) {
		failure.Raise(failure.ErrType, "improper list")
	}

	s := make([]cell.I, 0, Length(list))

	for list != pair.Null {
		s = append(s, pair.Car(list))

		list = pair.Cdr(list)
	}

	return s
}

// Tail returns the sublist of list starting at element index.
// If index is out of range and dflt is provided it is returned.
// Otherwise, this function panics.
func Tail(list cell.I, index int, dflt cell.I) cell.I {
	if index < 0 || index >= Length(list) {
		if dflt == nil {
			failure.Raise(failure.ErrType, "index %d out of range", index)
		}

		return dflt
	}

	for ; index > 0; index-- {
		list = pair.Cdr(list)
	}

	return list
}
