// pool.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file implements Pool, the growable random-access arena that the
// DAWG builder, the DAWG itself, and the dictionary builder are all laid
// out on top of. Every structure in this module addresses memory through
// Pool indices rather than pointers, so that sub-graphs can be shared
// between multiple parents without aliasing problems.

package dawgdict

// BaseType is the index/value width used throughout the DAWG and
// dictionary: transition indices, dictionary unit indices and payload
// values are all plain uint32.
type BaseType = uint32

// Pool is a growable, random-access vector of T addressed by BaseType
// indices. It shrinks only through Clear or a Resize to a smaller
// length, and never releases its backing array to the runtime; callers that need slot reuse keep their own free list
// of indices into the Pool (see DawgBuilder.unusedUnits and
// DictionaryBuilder's circular extras list).
type Pool[T any] struct {
	items []T
}

// Get returns a pointer to the element at index i, or nil if i is out
// of range. Use Get when an absent element is a legitimate outcome;
// use Index when it is a contract violation.
func (p *Pool[T]) Get(i BaseType) *T {
	if int(i) >= len(p.items) {
		return nil
	}
	return &p.items[i]
}

// Index returns a pointer to the element at index i. It panics if i is
// out of range: every caller in this module addresses a Pool only
// through indices it has itself allocated, so an out-of-range index is
// a programmer error, not a recoverable condition.
func (p *Pool[T]) Index(i BaseType) *T {
	return &p.items[i]
}

// Push appends value to the pool and returns its new index.
func (p *Pool[T]) Push(value T) BaseType {
	p.items = append(p.items, value)
	return BaseType(len(p.items) - 1)
}

// Len returns the number of elements currently in the pool.
func (p *Pool[T]) Len() BaseType {
	return BaseType(len(p.items))
}

// Clear empties the pool, retaining its backing array.
func (p *Pool[T]) Clear() {
	p.items = p.items[:0]
}

// Resize grows or truncates the pool to exactly n elements, filling any
// newly added slots with fill.
func (p *Pool[T]) Resize(n BaseType, fill T) {
	cur := BaseType(len(p.items))
	if n <= cur {
		p.items = p.items[:n]
		return
	}
	for cur < n {
		p.items = append(p.items, fill)
		cur++
	}
}

// Iter returns the backing slice for read-only iteration.
func (p *Pool[T]) Iter() []T {
	return p.items
}

// FromSlice wraps an existing slice as a Pool without copying, used by
// Dictionary's deserializer.
func FromSlice[T any](items []T) Pool[T] {
	return Pool[T]{items: items}
}
