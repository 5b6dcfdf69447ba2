// Package regobj provides a non-backtracking regular expression engine over
// arbitrary symbol types, with its run state exposed between input symbols.
//
// Expressions are built from typed combinators and produce a result value of
// any type. Compile turns an expression into an Object: the set of live
// threads (execution paths) of the automaton, in priority order. The caller
// drives the automaton one symbol at a time with Object.Step and inspects each
// generation:
//
//   - IsFailed: no thread is alive; no continuation of the input can match.
//   - Results: matches that end exactly at the current position, best first.
//   - neither: no match yet, but more input may produce one.
//
// Threads that reach the same compiled state are merged, keeping the one with
// higher priority, so a generation never holds more continuing threads than
// the expression has symbol nodes. Matching is linear in the input length and
// never backtracks.
//
// Basic usage:
//
//	// a(b|c)*
//	re := regobj.Seq(regobj.Sym('a'), regobj.Many(regobj.Alt(regobj.Sym('b'), regobj.Sym('c'))),
//	    func(a rune, rest []rune) string { return string(a) + string(rest) })
//
//	obj, err := regobj.Compile(re)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range "abcb" {
//	    obj = obj.Step(r)
//	    if obj.IsFailed() {
//	        break
//	    }
//	}
//	fmt.Println(obj.Results()) // [abcb]
//
// Because each Object is an immutable value, drivers can keep earlier
// generations around, filter threads with Threads and FromThreadList, or step
// individual threads with StepThread.
//
// Limitations:
//   - No capture groups, lookaround or backreferences
//   - Results are values computed by the expression, not input positions
package regobj

import (
	"slices"

	"github.com/coregx/regobj/nfa"
)

// RE is an expression over symbols of type S producing a result of type R.
//
// REs are immutable and may be shared between larger expressions; each use
// is compiled to its own set of states. The zero RE does not compile.
type RE[S, R any] struct {
	node nfa.Node[S]
}

// Sym matches the symbol s and returns it.
func Sym[S comparable](s S) RE[S, S] {
	return Psym(func(x S) bool { return x == s })
}

// Psym matches a symbol satisfying pred and returns it.
func Psym[S any](pred func(S) bool) RE[S, S] {
	return RE[S, S]{node: &nfa.Symbol[S]{Match: func(x S) (any, bool) {
		return x, pred(x)
	}}}
}

// Msym matches a symbol for which f reports true and returns f's value.
func Msym[S, R any](f func(S) (R, bool)) RE[S, R] {
	return RE[S, R]{node: &nfa.Symbol[S]{Match: func(x S) (any, bool) {
		r, ok := f(x)
		return r, ok
	}}}
}

// AnySym matches any single symbol and returns it.
func AnySym[S any]() RE[S, S] {
	return Psym(func(S) bool { return true })
}

// Word matches the symbols of w in order and returns a copy of w.
func Word[S comparable](w []S) RE[S, []S] {
	word := slices.Clone(w)
	var node nfa.Node[S] = &nfa.Eps[S]{}
	for i := len(word) - 1; i >= 0; i-- {
		node = &nfa.Seq[S]{Left: Sym(word[i]).node, Right: node, Combine: discard}
	}
	return RE[S, []S]{node: &nfa.Map[S]{Sub: node, F: func(any) any {
		return slices.Clone(word)
	}}}
}

// Pure matches the empty string and returns r.
func Pure[S, R any](r R) RE[S, R] {
	return RE[S, R]{node: &nfa.Eps[S]{Value: r}}
}

// Fail matches nothing.
func Fail[S, R any]() RE[S, R] {
	return RE[S, R]{node: &nfa.Fail[S]{}}
}

// Alt matches any of the given expressions. Earlier alternatives have higher
// priority: their results come first and their threads win when two paths
// reach the same state.
func Alt[S, R any](first RE[S, R], rest ...RE[S, R]) RE[S, R] {
	if len(rest) == 0 {
		return first
	}
	node := rest[len(rest)-1].node
	for i := len(rest) - 2; i >= 0; i-- {
		node = &nfa.Alt[S]{Left: rest[i].node, Right: node}
	}
	return RE[S, R]{node: &nfa.Alt[S]{Left: first.node, Right: node}}
}

// Seq matches a followed by b and combines their results with f.
func Seq[S, A, B, C any](a RE[S, A], b RE[S, B], f func(A, B) C) RE[S, C] {
	return RE[S, C]{node: &nfa.Seq[S]{Left: a.node, Right: b.node, Combine: func(l, r any) any {
		return f(cast[A](l), cast[B](r))
	}}}
}

// Left matches a followed by b and keeps the result of a.
func Left[S, A, B any](a RE[S, A], b RE[S, B]) RE[S, A] {
	return RE[S, A]{node: &nfa.Seq[S]{Left: a.node, Right: b.node, Combine: func(l, _ any) any {
		return l
	}}}
}

// Right matches a followed by b and keeps the result of b.
func Right[S, A, B any](a RE[S, A], b RE[S, B]) RE[S, B] {
	return RE[S, B]{node: &nfa.Seq[S]{Left: a.node, Right: b.node, Combine: discard}}
}

// Map transforms the result of a with f.
func Map[S, A, B any](a RE[S, A], f func(A) B) RE[S, B] {
	return RE[S, B]{node: &nfa.Map[S]{Sub: a.node, F: func(v any) any {
		return f(cast[A](v))
	}}}
}

// Void matches a and discards its result.
func Void[S, R any](a RE[S, R]) RE[S, struct{}] {
	return RE[S, struct{}]{node: &nfa.Void[S]{Sub: a.node}}
}

// Optional matches a or the empty string, preferring a.
// The result is nil when a did not match.
func Optional[S, R any](a RE[S, R]) RE[S, *R] {
	some := Map(a, func(r R) *R { return &r })
	return Alt(some, Pure[S, *R](nil))
}

// Many matches zero or more repetitions of a, preferring more.
func Many[S, R any](a RE[S, R]) RE[S, []R] {
	return Repeat(a, 0, -1)
}

// Few matches zero or more repetitions of a, preferring fewer.
func Few[S, R any](a RE[S, R]) RE[S, []R] {
	return RepeatLazy(a, 0, -1)
}

// Some matches one or more repetitions of a, preferring more.
func Some[S, R any](a RE[S, R]) RE[S, []R] {
	return Repeat(a, 1, -1)
}

// Repeat matches between lo and hi repetitions of a, preferring more.
// hi < 0 means no upper bound. Bounds are checked by Compile.
func Repeat[S, R any](a RE[S, R], lo, hi int) RE[S, []R] {
	return repeat(a, lo, hi, true)
}

// RepeatLazy is like Repeat but prefers fewer repetitions.
func RepeatLazy[S, R any](a RE[S, R], lo, hi int) RE[S, []R] {
	return repeat(a, lo, hi, false)
}

func repeat[S, R any](a RE[S, R], lo, hi int, greedy bool) RE[S, []R] {
	return RE[S, []R]{node: &nfa.Map[S]{
		Sub: &nfa.Repeat[S]{Sub: a.node, Min: lo, Max: hi, Greedy: greedy},
		F:   toSlice[R],
	}}
}

// Reduce matches zero or more repetitions of a, preferring more, and folds
// their results with f starting from init.
//
// The accumulator may be shared by several threads, so f must return a new
// value rather than modify acc in place.
func Reduce[S, R, A any](a RE[S, R], init A, f func(acc A, r R) A) RE[S, A] {
	return reduce(a, init, f, true)
}

// ReduceLazy is like Reduce but prefers fewer repetitions.
func ReduceLazy[S, R, A any](a RE[S, R], init A, f func(acc A, r R) A) RE[S, A] {
	return reduce(a, init, f, false)
}

func reduce[S, R, A any](a RE[S, R], init A, f func(A, R) A, greedy bool) RE[S, A] {
	return RE[S, A]{node: &nfa.Rep[S]{
		Sub:    a.node,
		Greedy: greedy,
		Init:   init,
		Step: func(acc, v any) any {
			return f(cast[A](acc), cast[R](v))
		},
	}}
}

// cast converts an untyped result back to R. A nil interface value becomes
// the zero R, which is how nil results of interface type travel through the
// untyped tree.
func cast[R any](v any) R {
	r, _ := v.(R)
	return r
}

func toSlice[R any](v any) any {
	vs := v.([]any)
	out := make([]R, len(vs))
	for i, x := range vs {
		out[i] = cast[R](x)
	}
	return out
}

func discard(_, r any) any {
	return r
}
