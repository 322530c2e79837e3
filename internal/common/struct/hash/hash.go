// Released under an MIT license. See LICENSE.

// Package hash provides pix's name to reference mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/pix/internal/common/interface/reference"
)

// T (hash) maps names to references.
type T struct {
	sync.RWMutex
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	h.Lock()
	defer h.Unlock()

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	return true
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Intern returns the reference associated with the name k in the hash h.
// If there is no such reference, fresh is called to create one.
func (h *hash) Intern(k string, fresh func() reference.I) reference.I {
	if r := h.Get(k); r != nil {
		return r
	}

	h.Lock()
	defer h.Unlock()

	if r, ok := h.m[k]; ok {
		return r
	}

	r := fresh()
	h.m[k] = r

	return r
}

// Keys returns the names in the hash h in sorted order.
func (h *hash) Keys() []string {
	h.RLock()
	defer h.RUnlock()

	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
