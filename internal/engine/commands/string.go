// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/pix/internal/common"
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/type/boolean"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/str"
)

func lower(args []cell.I) cell.I {
	return str.Map(args[0], strings.ToLower)
}

// match reports whether a string matches a shell file name pattern.
func match(args []cell.I) cell.I {
	ok, err := adapted.Match(common.String(args[0]), common.String(args[1]))
	if err != nil {
		failure.Raise(failure.ErrType, "%s", err.Error())
	}

	return boolean.Bool(ok)
}

// makeString concatenates the text of its arguments. Strings contribute their
// contents, nil contributes nothing, and everything else its literal.
func makeString(args []cell.I) cell.I {
	var b strings.Builder

	for _, a := range args {
		b.WriteString(text(a))
	}

	return str.New(b.String())
}

func upper(args []cell.I) cell.I {
	return str.Map(args[0], strings.ToUpper)
}

func text(c cell.I) string {
	switch c := c.(type) {
	case *str.T:
		return c.String()
	case *pair.T:
		if cell.I(c) == pair.Null {
			return ""
		}
	}

	return literal.String(c)
}
