// Released under an MIT license. See LICENSE.

/*
Pix is a small Lisp with namespaces, compiled closures and constant-space
tail loops.

	(def fact
	  (fn* [n]
	    (loop [acc 1 i n]
	      (if (zero? i) acc (recur (* acc i) (dec i))))))

	(println (fact 20))

Pix runs a script, evaluates an expression passed with -e, or starts an
interactive session.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/type/list"
	"github.com/michaelmacinnis/pix/internal/common/type/ns"
	"github.com/michaelmacinnis/pix/internal/common/type/str"
	"github.com/michaelmacinnis/pix/internal/engine"
	"github.com/michaelmacinnis/pix/internal/system/options"
	"github.com/michaelmacinnis/pix/internal/ui"
)

// traces names every tracer pix selects.
//
//nolint:gochecknoglobals
var traces = []string{"pix.engine", "pix.eval", "pix.ns", "pix.reader"}

func main() {
	if err := options.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	configureTracing(options.Trace())

	os.Exit(run())
}

// configureTracing sends pix's traces to the standard logger at level.
func configureTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))

	l := tracing.TraceLevelFromString(level)
	for _, key := range traces {
		tracing.Select(key).SetTraceLevel(l)
	}
}

func run() int {
	reg := ns.Default

	if err := engine.Boot(reg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	args := make([]cell.I, len(options.Args()))
	for i, a := range options.Args() {
		args[i] = str.New(a)
	}

	reg.Find(ns.Core).Intern("*command-line-args*").Set(list.New(args...))

	e := engine.New(reg, options.Namespace())

	switch {
	case options.Script() != "":
		f, err := os.Open(options.Script())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return 1
		}
		defer f.Close()

		if _, err := e.Load(options.Script(), f); err != nil {
			fmt.Fprintln(os.Stderr, err)

			return 1
		}

	case options.Expression() != "":
		v, err := e.EvalString("-e", options.Expression())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return 1
		}

		fmt.Println(literal.String(v))

	case options.Interactive():
		if err := ui.Run(e); err != nil {
			fmt.Fprintln(os.Stderr, err)

			return 1
		}

	default:
		if _, err := e.Load("stdin", os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, err)

			return 1
		}
	}

	return 0
}
