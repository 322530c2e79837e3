// Released under an MIT license. See LICENSE.

// Package commands provides the pix primitives. Each primitive is a native
// bound to a variable in the core namespace.
package commands

import (
	"io"

	"github.com/michaelmacinnis/pix/internal/common/type/native"
	"github.com/michaelmacinnis/pix/internal/common/type/ns"
)

// Define binds the primitives in the core namespace of reg.
// Output from println is written to w.
func Define(reg *ns.Registry, w io.Writer) {
	core := reg.Intern(ns.Core)

	for _, n := range Natives(w) {
		core.Intern(n.Label()).Set(n)
	}
}

// Natives returns the primitives. Output from println is written to w.
func Natives(w io.Writer) []*native.T {
	return []*native.T{
		// Arithmetic.
		native.New("*", 0, native.Variadic, mul),
		native.New("+", 0, native.Variadic, add),
		native.New("-", 1, native.Variadic, sub),
		native.New("-add", 2, 2, add),
		native.New("platform+", 2, 2, add),
		native.New("quot", 2, 2, quot),
		native.New("rem", 2, 2, rem),

		// Relational and logical.
		native.New("<", 1, native.Variadic, lt),
		native.New("<=", 1, native.Variadic, le),
		native.New("=", 1, native.Variadic, eq),
		native.New(">", 1, native.Variadic, gt),
		native.New(">=", 1, native.Variadic, ge),
		native.New("identical?", 2, 2, identical),
		native.New("not", 1, 1, not),
		native.New("platform=", 2, 2, eq),

		// Collections.
		native.New("conj", 1, native.Variadic, conj),
		native.New("cons", 2, 2, cons),
		native.New("count", 1, 1, count),
		native.New("first", 1, 1, first),
		native.New("list", 0, native.Variadic, makeList),
		native.New("nth", 2, 3, nth),
		native.New("rest", 1, 1, rest),
		native.New("vector", 0, native.Variadic, makeVector),

		// Predicates.
		native.New("fn?", 1, 1, isFn),
		native.New("integer?", 1, 1, isInteger),
		native.New("list?", 1, 1, isList),
		native.New("nil?", 1, 1, isNil),
		native.New("string?", 1, 1, isString),
		native.New("symbol?", 1, 1, isSymbol),
		native.New("vector?", 1, 1, isVector),

		// Strings and symbols.
		native.New("lower", 1, 1, lower),
		native.New("match", 2, 2, match),
		native.New("name", 1, 1, name),
		native.New("namespace", 1, 1, namespace),
		native.New("str", 0, native.Variadic, makeString),
		native.New("symbol", 1, 2, makeSymbol),
		native.New("upper", 1, 1, upper),

		// Introspection and output.
		native.New("println", 0, native.Variadic, printer(w)),
		native.New("type", 1, 1, typeOf),
	}
}
