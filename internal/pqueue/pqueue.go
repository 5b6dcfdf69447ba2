// Package pqueue provides the priority queue used to hold automaton threads.
//
// Priority is insertion order: the first element has the highest priority and
// every insert appends at the lowest priority. Elements may optionally carry a
// uint32 key; InsertUnique drops an element whose key is already present, so
// the first-inserted element for a key always wins.
//
// Queue is an immutable value. Builder is a single-owner accumulator for the
// hot path (building one generation in a loop) and hands its result off as a
// Queue without copying.
package pqueue

import (
	"iter"
	"slices"

	"github.com/coregx/regobj/internal/sparse"
)

// Queue is an immutable priority-ordered sequence.
// The zero value is an empty queue.
type Queue[V any] struct {
	items []V
	keys  *sparse.SparseSet
}

// Empty returns a queue with no elements.
func Empty[V any]() Queue[V] {
	return Queue[V]{}
}

// Len returns the number of elements in the queue.
func (q Queue[V]) Len() int {
	return len(q.items)
}

// Has reports whether an element associated with key is present.
func (q Queue[V]) Has(key uint32) bool {
	return q.keys != nil && q.keys.Contains(key)
}

// Insert returns a new queue with v appended at the lowest priority.
// Duplicates are allowed.
func (q Queue[V]) Insert(v V) Queue[V] {
	return Queue[V]{items: q.appended(v), keys: q.keys}
}

// InsertUnique returns a new queue with v appended at the lowest priority,
// unless an element associated with key is already present, in which case q
// is returned unchanged.
func (q Queue[V]) InsertUnique(key uint32, v V) Queue[V] {
	if q.Has(key) {
		return q
	}
	var keys *sparse.SparseSet
	if q.keys != nil {
		keys = q.keys.Clone()
	} else {
		keys = sparse.NewSparseSet(key + 1)
	}
	keys.Insert(key)
	return Queue[V]{items: q.appended(v), keys: keys}
}

// appended copies the items with v added at the end. The copy is required:
// two queues derived from the same parent must never share a backing array
// that either of them could append into.
func (q Queue[V]) appended(v V) []V {
	items := make([]V, len(q.items), len(q.items)+1)
	copy(items, q.items)
	return append(items, v)
}

// Elements returns the elements in priority order, highest priority first.
// The returned slice is a copy and may be modified by the caller.
func (q Queue[V]) Elements() []V {
	return slices.Clone(q.items)
}

// All returns an iterator over the elements in priority order.
func (q Queue[V]) All() iter.Seq[V] {
	return slices.Values(q.items)
}

// Fold is a left fold over the elements of q in priority order.
func Fold[V, A any](q Queue[V], init A, f func(A, V) A) A {
	acc := init
	for _, v := range q.items {
		acc = f(acc, v)
	}
	return acc
}

// Builder accumulates a queue in place.
// A Builder must not be copied after first use and is not safe for
// concurrent use.
type Builder[V any] struct {
	items []V
	keys  *sparse.SparseSet
}

// NewBuilder creates a builder with room for roughly capacity elements.
func NewBuilder[V any](capacity int) *Builder[V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder[V]{
		items: make([]V, 0, capacity),
		//nolint:gosec // G115: capacity is non-negative and only a sizing hint
		keys: sparse.NewSparseSet(uint32(min(capacity, 1<<16)) + 1),
	}
}

// Len returns the number of elements accumulated so far.
func (b *Builder[V]) Len() int {
	return len(b.items)
}

// Insert appends v at the lowest priority.
func (b *Builder[V]) Insert(v V) {
	b.items = append(b.items, v)
}

// InsertUnique appends v at the lowest priority unless an element associated
// with key was already inserted. Returns true if v was appended.
func (b *Builder[V]) InsertUnique(key uint32, v V) bool {
	if !b.keys.Insert(key) {
		return false
	}
	b.items = append(b.items, v)
	return true
}

// Queue returns the accumulated queue and resets the builder.
// The builder's storage is handed off to the queue, so later inserts on b
// start from scratch and never alias the returned queue.
func (b *Builder[V]) Queue() Queue[V] {
	q := Queue[V]{items: b.items, keys: b.keys}
	if len(q.items) == 0 {
		q = Queue[V]{}
	}
	b.items = nil
	b.keys = sparse.NewSparseSet(0)
	return q
}
