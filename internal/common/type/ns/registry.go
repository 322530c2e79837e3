// Released under an MIT license. See LICENSE.

package ns

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// Core is the name of the namespace that holds the primitives.
// Every namespace created by a registry refers to it.
const Core = "pix.core"

// Registry maps names to namespaces and tracks the current namespace.
//
// The current namespace is dynamically scoped. Enter establishes a new
// current namespace and returns the function that restores the previous one.
// A registry is not meant to be shared by concurrently evaluating goroutines.
type Registry struct {
	sync.RWMutex
	current []scoped
	spaces  map[string]*ns
}

type scoped struct {
	create bool
	ns     *ns
}

// Default is the process-wide registry.
var Default = NewRegistry() //nolint:gochecknoglobals

// NewRegistry creates a registry containing only the core namespace.
func NewRegistry() *Registry {
	r := &Registry{spaces: map[string]*ns{}}
	r.spaces[Core] = New(Core)

	return r
}

// AutoCreate returns true if unresolved symbols may create fresh variables
// in the current namespace.
func (r *Registry) AutoCreate() bool {
	r.RLock()
	defer r.RUnlock()

	if len(r.current) == 0 {
		return false
	}

	return r.current[len(r.current)-1].create
}

// Current returns the current namespace or nil if no namespace is current.
func (r *Registry) Current() *ns {
	r.RLock()
	defer r.RUnlock()

	if len(r.current) == 0 {
		return nil
	}

	return r.current[len(r.current)-1].ns
}

// Enter makes the namespace label current, creating it if necessary.
// If create is true, compiling may create variables for unresolved symbols.
// The returned function restores the previously current namespace. It is
// meant to be deferred so that the previous namespace is restored no matter
// how the scope is left.
func (r *Registry) Enter(label string, create bool) func() {
	n := r.Intern(label)

	r.Lock()
	depth := len(r.current)
	r.current = append(r.current, scoped{create: create, ns: n})
	r.Unlock()

	trace().Debugf("enter namespace %s (depth %d)", label, depth+1)

	return func() {
		r.Lock()
		defer r.Unlock()

		if len(r.current) > depth {
			r.current = r.current[:depth]
		}

		trace().Debugf("exit namespace %s (depth %d)", label, depth)
	}
}

// Find returns the namespace label or nil.
func (r *Registry) Find(label string) *ns {
	r.RLock()
	defer r.RUnlock()

	return r.spaces[label]
}

// Intern returns the namespace label, creating it if necessary.
// A new namespace refers to the core namespace.
func (r *Registry) Intern(label string) *ns {
	if n := r.Find(label); n != nil {
		return n
	}

	r.Lock()
	defer r.Unlock()

	if n, ok := r.spaces[label]; ok {
		return n
	}

	n := New(label)
	n.Refer(r.spaces[Core])
	r.spaces[label] = n

	trace().Debugf("created namespace %s", label)

	return n
}

func trace() tracing.Trace {
	return tracing.Select("pix.ns")
}
