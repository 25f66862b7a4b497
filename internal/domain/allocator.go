package domain

import (
	m "github.com/mouse-blink/keyctx/internal/model"
)

// Allocator assigns keys from a fixed, ordered pool. Every call starts from
// a fresh pool, so each unit draws independently.
type Allocator struct {
	pool []string
}

// NewAllocator copies pool; later changes by the caller have no effect.
func NewAllocator(pool []string) *Allocator {
	return &Allocator{pool: append([]string(nil), pool...)}
}

// Size returns the number of identifiers in the pool.
func (a *Allocator) Size() int {
	return len(a.pool)
}

// Allocate walks bindings in discovery order and gives every distinct
// original key the next unused pool slot. Bindings sharing an original key
// share the assigned key. Once the pool is exhausted the remaining keys keep
// their original value and one warning is returned per such key.
//
// The input slice is not modified.
func (a *Allocator) Allocate(unit string, bindings []m.Binding) ([]m.Binding, []m.Warning) {
	assigned := make(map[string]string, len(bindings))
	out := make([]m.Binding, len(bindings))
	next := 0

	var warnings []m.Warning

	for i, b := range bindings {
		key, seen := assigned[b.OriginalKey]
		if !seen {
			if next < len(a.pool) {
				key = a.pool[next]
				next++
			} else {
				key = b.OriginalKey
				warnings = append(warnings, m.Warning{
					Unit:    unit,
					Key:     b.OriginalKey,
					File:    b.File,
					Message: "identifier pool exhausted, keeping original key",
				})
			}

			assigned[b.OriginalKey] = key
		}

		b.AssignedKey = key
		out[i] = b
	}

	return out, warnings
}
