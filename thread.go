package regobj

import (
	"fmt"

	"github.com/coregx/regobj/nfa"
)

// ThreadID identifies a compiled automaton state. IDs are assigned once per
// compilation, starting at 1, and are only used to merge threads that reached
// the same state.
type ThreadID = nfa.ThreadID

// Thread is one live execution path of the automaton.
//
// A thread is either continuing (it has an ID and a transition function and
// waits for the next symbol) or accepting (it carries the result of a
// completed match and has no transition). Threads are immutable values.
//
// The zero Thread is neither and is rejected by Object.Insert and Step.
type Thread[S, R any] struct {
	id        ThreadID
	next      func(S) []Thread[S, R]
	result    R
	accepting bool
}

// NewThread creates a continuing thread. next returns the successor threads
// after consuming a symbol, already including any states reachable without
// consuming input. Panics if next is nil.
func NewThread[S, R any](id ThreadID, next func(S) []Thread[S, R]) Thread[S, R] {
	if next == nil {
		panic("regobj: NewThread with nil transition")
	}
	return Thread[S, R]{id: id, next: next}
}

// Accept creates an accepting thread carrying result.
func Accept[S, R any](result R) Thread[S, R] {
	return Thread[S, R]{result: result, accepting: true}
}

// IsAccepting reports whether t is an accepting thread.
func (t Thread[S, R]) IsAccepting() bool {
	return t.accepting
}

// Result returns the result of an accepting thread.
// ok is false for continuing threads.
func (t Thread[S, R]) Result() (result R, ok bool) {
	if !t.accepting {
		var zero R
		return zero, false
	}
	return t.result, true
}

// ID returns the identity of a continuing thread.
// ok is false for accepting threads, which have no identity.
func (t Thread[S, R]) ID() (id ThreadID, ok bool) {
	if !t.valid() || t.accepting {
		return 0, false
	}
	return t.id, true
}

// Step feeds one symbol to a continuing thread and returns its successors in
// priority order.
//
// Step panics with ErrAcceptingThread if t is accepting and with
// ErrInvalidThread if t is the zero Thread. Both indicate a bug in the
// caller's driver loop; check IsAccepting first.
func (t Thread[S, R]) Step(s S) []Thread[S, R] {
	if t.accepting {
		panic(ErrAcceptingThread)
	}
	if !t.valid() {
		panic(ErrInvalidThread)
	}
	return t.next(s)
}

// StepThread is the function form of Thread.Step, for custom drivers that
// step threads individually between full-object steps. It has the same
// preconditions and panics.
func StepThread[S, R any](s S, t Thread[S, R]) []Thread[S, R] {
	return t.Step(s)
}

func (t Thread[S, R]) valid() bool {
	return t.accepting || t.next != nil
}

// String returns a human-readable representation of the thread
func (t Thread[S, R]) String() string {
	switch {
	case t.accepting:
		return fmt.Sprintf("Accept(%v)", t.result)
	case t.next != nil:
		return fmt.Sprintf("Thread(%d)", t.id)
	default:
		return "Thread(invalid)"
	}
}
