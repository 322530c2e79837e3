// Released under an MIT license. See LICENSE.

// Package engine provides the top-level driver for evaluating pix code.
package engine

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/type/ns"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/engine/boot"
	"github.com/michaelmacinnis/pix/internal/engine/commands"
	"github.com/michaelmacinnis/pix/internal/engine/eval"
	"github.com/michaelmacinnis/pix/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating pix code.
// Everything an engine evaluates is read and compiled in its namespace,
// with unresolved symbols creating variables there.
type T struct {
	label string
	reg   *ns.Registry
}

// Boot defines the primitives in reg and then evaluates the boot script.
// Output from println is written to w.
func Boot(reg *ns.Registry, w io.Writer) error {
	commands.Define(reg, w)

	_, err := New(reg, ns.Core).EvalString(boot.Label, boot.Script())

	return err
}

// New creates a new T that evaluates code in the namespace label of reg.
func New(reg *ns.Registry, label string) *T {
	return &T{label: label, reg: reg}
}

// EvalString reads, compiles and evaluates each form in text.
func (e *T) EvalString(label, text string) (cell.I, error) {
	return e.Load(label, strings.NewReader(text))
}

// Each reads, compiles and evaluates each form in text and passes its value
// or error to yield. An evaluation error does not stop Each. A reader error
// does, since the rest of text cannot be read reliably.
func (e *T) Each(label, text string, yield func(cell.I, error)) {
	defer e.reg.Enter(e.label, true)()

	r := reader.New(label, strings.NewReader(text), e.reg)

	for {
		c, err := r.Read(true)
		if err != nil {
			yield(nil, err)

			return
		}

		if c == reader.EOF {
			return
		}

		yield(eval.Eval(e.reg, c))
	}
}

// Evaluate compiles and evaluates the form c.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	defer e.reg.Enter(e.label, true)()

	return eval.Eval(e.reg, c)
}

// Load reads, compiles and evaluates each form in src and returns the value
// of the last one. It stops at the first error. Label names the source in
// error messages.
func (e *T) Load(label string, src io.Reader) (cell.I, error) {
	defer e.reg.Enter(e.label, true)()

	trace().Infof("loading %s into %s", label, e.label)

	r := reader.New(label, src, e.reg)

	var v cell.I = pair.Null

	for {
		c, err := r.Read(true)
		if err != nil {
			return nil, err
		}

		if c == reader.EOF {
			return v, nil
		}

		v, err = eval.Eval(e.reg, c)
		if err != nil {
			return nil, err
		}
	}
}

// Namespace returns the name of the namespace e evaluates code in.
func (e *T) Namespace() string {
	return e.label
}

func trace() tracing.Trace {
	return tracing.Select("pix.engine")
}
