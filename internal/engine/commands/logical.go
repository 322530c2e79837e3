// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/truth"
	"github.com/michaelmacinnis/pix/internal/common/type/boolean"
)

func not(args []cell.I) cell.I {
	return boolean.Bool(truth.Falsy(args[0]))
}
