// Package nfa builds the continuation-passing automaton behind regobj.
//
// An expression is a tree of [Node] values. Compilation happens in two passes:
//
//   - [Number] walks the tree once, expands bounded repetition, and gives
//     every [Symbol] node a fresh [ThreadID] (1, 2, 3, ... in preorder, left
//     before right). The result is a [Program].
//   - [Compile] turns a Program into the list of start threads. Each thread's
//     transition closes over the continuation for "what happens after this
//     symbol is consumed", with epsilon closure already applied, so the
//     stepping engine never computes closures at run time.
//
// Results flow through the tree as untyped values; the root package provides
// the typed combinators.
package nfa

import "fmt"

// ThreadID identifies a symbol-matching state of a compiled expression.
// Two threads with the same ID represent the same automaton state.
type ThreadID uint32

// Node is an expression tree node. The set of implementations is closed:
// [Eps], [Fail], [Symbol], [Alt], [Seq], [Map], [Rep], [Repeat] and [Void].
type Node[S any] interface {
	node()
}

// Eps matches the empty string and produces Value.
type Eps[S any] struct {
	Value any
}

// Fail matches nothing.
type Fail[S any] struct{}

// Symbol consumes one symbol accepted by Match and produces the value Match
// returns. ID is assigned by [Number]; any ID set by the caller is ignored.
type Symbol[S any] struct {
	ID    ThreadID
	Match func(S) (any, bool)
}

// Alt is alternation. Left has priority over Right.
type Alt[S any] struct {
	Left, Right Node[S]
}

// Seq matches Left followed by Right and combines their values.
type Seq[S any] struct {
	Left, Right Node[S]
	Combine     func(left, right any) any
}

// Map transforms the value produced by Sub.
type Map[S any] struct {
	Sub Node[S]
	F   func(any) any
}

// Rep is unbounded repetition of Sub, folding values with Step starting
// from Init. Greedy repetition prefers another iteration over stopping.
// Iterations of Sub that consume no input do not loop.
type Rep[S any] struct {
	Sub    Node[S]
	Greedy bool
	Init   any
	Step   func(acc, v any) any
}

// Repeat matches Sub at least Min and at most Max times and produces the
// values as a []any. Max < 0 means no upper bound.
type Repeat[S any] struct {
	Sub      Node[S]
	Min, Max int
	Greedy   bool
}

// Void matches Sub and discards its value, producing struct{}{}.
type Void[S any] struct {
	Sub Node[S]
}

func (*Eps[S]) node()    {}
func (*Fail[S]) node()   {}
func (*Symbol[S]) node() {}
func (*Alt[S]) node()    {}
func (*Seq[S]) node()    {}
func (*Map[S]) node()    {}
func (*Rep[S]) node()    {}
func (*Repeat[S]) node() {}
func (*Void[S]) node()   {}

// Program is a numbered expression ready for [Compile].
type Program[S any] struct {
	root    Node[S]
	threads int
}

// Root returns the numbered expression tree.
func (p *Program[S]) Root() Node[S] {
	return p.root
}

// ThreadCount returns the number of ThreadIDs assigned during numbering.
// No generation of the compiled automaton holds more continuing threads.
func (p *Program[S]) ThreadCount() int {
	return p.threads
}

// String returns a human-readable representation of the program
func (p *Program[S]) String() string {
	return fmt.Sprintf("Program{threads: %d}", p.threads)
}
