package regobj

import (
	"iter"
	"strings"

	"github.com/coregx/regobj/internal/pqueue"
)

// Object is the complete run state of a compiled expression after some prefix
// of the input: the live threads in priority order.
//
// Objects are immutable values. Step, Insert and FromThreadList return new
// objects and never modify their inputs, so an Object can be kept, compared
// against later generations, or discarded without synchronization.
//
// Invariants:
//   - No two continuing threads share a ThreadID.
//   - Accepting threads are never deduplicated.
//   - Order is priority: earlier threads come from earlier alternatives or
//     from the preferred side of a repetition.
//
// The zero value is the empty object.
type Object[S, R any] struct {
	q pqueue.Queue[Thread[S, R]]
}

// Empty returns the object with no threads. Stepping it always yields the
// empty object again.
func Empty[S, R any]() Object[S, R] {
	return Object[S, R]{}
}

// FromThreadList builds an object by inserting threads left to right with
// Insert semantics: a continuing thread whose ID was already inserted is
// dropped.
//
// Use it to rebuild an object after filtering or reordering the result of
// Threads. FromThreadList(o.Threads()) reproduces o.
func FromThreadList[S, R any](threads []Thread[S, R]) Object[S, R] {
	b := pqueue.NewBuilder[Thread[S, R]](len(threads))
	for _, t := range threads {
		insertInto(b, t)
	}
	return Object[S, R]{q: b.Queue()}
}

// Insert returns o with t added at the lowest priority.
//
// Accepting threads are always added. A continuing thread is added only if
// no thread with the same ID is present; otherwise o is returned unchanged,
// keeping the higher-priority occurrence. Panics with ErrInvalidThread if t
// is the zero Thread.
func (o Object[S, R]) Insert(t Thread[S, R]) Object[S, R] {
	switch {
	case t.accepting:
		return Object[S, R]{q: o.q.Insert(t)}
	case t.next == nil:
		panic(ErrInvalidThread)
	}
	return Object[S, R]{q: o.q.InsertUnique(uint32(t.id), t)}
}

// insertInto is Insert for a generation under construction.
func insertInto[S, R any](b *pqueue.Builder[Thread[S, R]], t Thread[S, R]) {
	switch {
	case t.accepting:
		b.Insert(t)
	case t.next == nil:
		panic(ErrInvalidThread)
	default:
		b.InsertUnique(uint32(t.id), t)
	}
}

// Step feeds one symbol to every continuing thread of o and returns the next
// generation.
//
// Threads are visited in priority order and their successors are inserted in
// the order they are produced, so when two threads reach the same state the
// successor of the higher-priority thread wins. Accepting threads do not
// survive into the next generation. The number of continuing threads in the
// result never exceeds the number of ThreadIDs of the compiled expression.
func (o Object[S, R]) Step(s S) Object[S, R] {
	if o.IsFailed() {
		return o
	}
	b := pqueue.Fold(o.q, pqueue.NewBuilder[Thread[S, R]](o.q.Len()),
		func(b *pqueue.Builder[Thread[S, R]], t Thread[S, R]) *pqueue.Builder[Thread[S, R]] {
			if t.accepting {
				return b
			}
			for _, next := range t.next(s) {
				insertInto(b, next)
			}
			return b
		})
	return Object[S, R]{q: b.Queue()}
}

// Threads returns the threads of o in priority order, highest first.
// The slice is a copy and may be filtered or reordered by the caller.
func (o Object[S, R]) Threads() []Thread[S, R] {
	return o.q.Elements()
}

// All returns an iterator over the threads of o in priority order.
func (o Object[S, R]) All() iter.Seq[Thread[S, R]] {
	return o.q.All()
}

// Len returns the number of threads in o.
func (o Object[S, R]) Len() int {
	return o.q.Len()
}

// IsFailed reports whether o has no threads. A failed object can never
// produce a match, however much more input it is given.
func (o Object[S, R]) IsFailed() bool {
	return o.q.Len() == 0
}

// Results returns the results of the accepting threads of o in priority
// order. The first element, if any, is the preferred match for the input
// consumed so far. Duplicates are kept.
func (o Object[S, R]) Results() []R {
	return pqueue.Fold(o.q, []R(nil), func(acc []R, t Thread[S, R]) []R {
		if t.accepting {
			acc = append(acc, t.result)
		}
		return acc
	})
}

// String returns a human-readable representation of the object
func (o Object[S, R]) String() string {
	var sb strings.Builder
	sb.WriteString("Object[")
	i := 0
	for t := range o.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
		i++
	}
	sb.WriteByte(']')
	return sb.String()
}
