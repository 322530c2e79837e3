// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/str"
	"github.com/michaelmacinnis/pix/internal/common/type/sym"
	"github.com/michaelmacinnis/pix/internal/common/type/variable"
)

// makeSymbol returns the symbol named by a string, optionally qualified by
// a namespace name.
func makeSymbol(args []cell.I) cell.I {
	if len(args) == 1 {
		return sym.Parse(str.To(args[0]).String(), "")
	}

	return sym.Qualified(str.To(args[0]).String(), str.To(args[1]).String())
}

func name(args []cell.I) cell.I {
	switch c := args[0].(type) {
	case *str.T:
		return c
	case *sym.T:
		return str.New(c.Local())
	case *variable.T:
		return str.New(c.Local())
	}

	failure.Raise(failure.ErrType, "%s has no name", args[0].Name())

	return nil
}

func namespace(args []cell.I) cell.I {
	var label string

	switch c := args[0].(type) {
	case *sym.T:
		label = c.Namespace()
	case *variable.T:
		label = c.Namespace()
	default:
		failure.Raise(failure.ErrType, "%s has no namespace", args[0].Name())
	}

	if label == "" {
		return pair.Null
	}

	return str.New(label)
}
