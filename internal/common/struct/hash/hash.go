// Released under an MIT license. See LICENSE.

// Package hash provides uncalc's name to quantity mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/uncalc/uncalc/internal/common/interface/quantity"
)

// T (hash) maps names to quantities.
type T struct {
	sync.RWMutex
	m map[string]quantity.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]quantity.I{}}
}

// Copy creates a new hash with the same entries. Quantities are
// immutable so the entries themselves are shared.
func (h *hash) Copy() *hash {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	fresh := New()
	for k, v := range h.m {
		fresh.m[k] = v
	}

	return fresh
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

// Get retrieves the quantity associated with the name k in the hash h.
func (h *hash) Get(k string) quantity.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Names returns the names in the hash h, sorted.
func (h *hash) Names() []string {
	h.RLock()
	defer h.RUnlock()

	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the quantity v in the hash h.
func (h *hash) Set(k string, v quantity.I) {
	h.Lock()
	defer h.Unlock()

	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
