// Released under an MIT license. See LICENSE.

// Package boot holds the pix prelude: the functions every namespace can
// see that are written in pix rather than Go.
package boot

import _ "embed" // Blank import required by embed.

// Label names the prelude in error messages and traces.
const Label = "boot.pix"

//go:embed boot.pix
var script string //nolint:gochecknoglobals

// Script returns the prelude. It must be evaluated in the core namespace
// after the primitives are defined.
func Script() string {
	return script
}
