// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/type/array"
	"github.com/michaelmacinnis/pix/internal/common/type/boolean"
	"github.com/michaelmacinnis/pix/internal/common/type/native"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/str"
	"github.com/michaelmacinnis/pix/internal/common/type/sym"
	"github.com/michaelmacinnis/pix/internal/engine/eval"
)

func isFn(args []cell.I) cell.I {
	switch args[0].(type) {
	case *eval.Closure, *native.T:
		return boolean.True
	}

	return boolean.False
}

func isInteger(args []cell.I) cell.I {
	return boolean.Bool(num.Is(args[0]))
}

func isList(args []cell.I) cell.I {
	return boolean.Bool(pair.Is(args[0]))
}

func isNil(args []cell.I) cell.I {
	return boolean.Bool(args[0] == pair.Null)
}

func isString(args []cell.I) cell.I {
	return boolean.Bool(str.Is(args[0]))
}

func isSymbol(args []cell.I) cell.I {
	return boolean.Bool(sym.Is(args[0]))
}

func isVector(args []cell.I) cell.I {
	return boolean.Bool(array.Is(args[0]))
}

// printer returns println. Strings are written without quotes.
func printer(w io.Writer) native.Fn {
	return func(args []cell.I) cell.I {
		s := make([]string, len(args))
		for i, a := range args {
			s[i] = text(a)
			if a == pair.Null {
				s[i] = literal.String(a)
			}
		}

		if _, err := fmt.Fprintln(w, strings.Join(s, " ")); err != nil {
			failure.Raise(failure.ErrType, "println: %s", err.Error())
		}

		return pair.Null
	}
}

// typeOf returns the kind of a value as an unqualified symbol.
func typeOf(args []cell.I) cell.I {
	return sym.New(args[0].Name())
}
