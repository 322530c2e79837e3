// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/integer"
	"github.com/michaelmacinnis/pix/internal/common/type/array"
	"github.com/michaelmacinnis/pix/internal/common/type/list"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/str"
)

// conj adds elements to a collection where it is cheapest to do so: the
// front of a list and the end of an array.
func conj(args []cell.I) cell.I {
	switch c := args[0].(type) {
	case *array.T:
		for _, e := range args[1:] {
			c = c.Conj(e)
		}

		return c
	case *pair.T:
		var l cell.I = c
		for _, e := range args[1:] {
			l = pair.Cons(e, l)
		}

		return l
	}

	failure.Raise(failure.ErrType, "cannot conj onto %s", args[0].Name())

	return nil
}

func cons(args []cell.I) cell.I {
	switch c := args[1].(type) {
	case *array.T:
		return pair.Cons(args[0], list.New(c.Items()...))
	case *pair.T:
		return pair.Cons(args[0], c)
	}

	failure.Raise(failure.ErrType, "cannot cons onto %s", args[1].Name())

	return nil
}

func count(args []cell.I) cell.I {
	switch c := args[0].(type) {
	case *array.T:
		return num.Int(int64(c.Len()))
	case *pair.T:
		if !list.Proper(c) {
			failure.Raise(failure.ErrType, "cannot count an improper list")
		}

		return num.Int(int64(list.Length(c)))
	case *str.T:
		return num.Int(int64(c.Len()))
	}

	failure.Raise(failure.ErrType, "count not supported on %s", args[0].Name())

	return nil
}

func first(args []cell.I) cell.I {
	switch c := args[0].(type) {
	case *array.T:
		if c.Len() == 0 {
			return pair.Null
		}

		return c.At(0)
	case *pair.T:
		return pair.Car(c)
	}

	failure.Raise(failure.ErrType, "first not supported on %s", args[0].Name())

	return nil
}

func makeList(args []cell.I) cell.I {
	return list.New(args...)
}

func makeVector(args []cell.I) cell.I {
	return array.New(args...)
}

func nth(args []cell.I) cell.I {
	i := integer.Value(args[1])

	var dflt cell.I
	if len(args) == 3 {
		dflt = args[2]
	}

	switch c := args[0].(type) {
	case *array.T:
		if dflt != nil && (i < 0 || i >= c.Len()) {
			return dflt
		}

		return c.At(i)
	case *pair.T:
		if dflt != nil && (i < 0 || i >= list.Length(c)) {
			return dflt
		}

		return pair.Car(list.Tail(c, i, nil))
	}

	failure.Raise(failure.ErrType, "nth not supported on %s", args[0].Name())

	return nil
}

func rest(args []cell.I) cell.I {
	switch c := args[0].(type) {
	case *array.T:
		if c.Len() == 0 {
			return pair.Null
		}

		return list.New(c.Items()[1:]...)
	case *pair.T:
		return pair.Cdr(c)
	}

	failure.Raise(failure.ErrType, "rest not supported on %s", args[0].Name())

	return nil
}
