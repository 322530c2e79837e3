// Released under an MIT license. See LICENSE.

// Package loc records where in its source a token or form started.
package loc

import (
	"fmt"
)

// T (loc) is a position in a named source. Lines and characters count
// from 1.
type T struct {
	Char int
	Line int
	Name string
}

type loc = T

// String returns the location l as name:line:char.
func (l *loc) String() string {
	if l == nil {
		return "unknown location"
	}

	return fmt.Sprintf("%s:%d:%d", l.Name, l.Line, l.Char)
}
