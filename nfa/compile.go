package nfa

import "slices"

// Cont is the continuation of a compiled fragment: it receives the value the
// fragment produced and returns the threads that follow.
type Cont[T any] func(v any) []T

// MakeThread builds a continuing thread with the given identity and
// transition function.
type MakeThread[S, T any] func(id ThreadID, next func(S) []T) T

// cont is a continuation split by whether the fragment consumed input.
//
// Rep passes an empty arm that yields nothing, which is what stops a
// repetition whose body matched the empty string from looping forever.
type cont[T any] struct {
	empty    Cont[T]
	nonEmpty Cont[T]
}

func single[T any](k Cont[T]) cont[T] {
	return cont[T]{empty: k, nonEmpty: k}
}

// fragment is a compiled node waiting for its continuation.
type fragment[T any] func(k cont[T]) []T

// Compile returns the start threads of prog. final is invoked with the value
// of the whole expression each time a match completes; it typically returns
// a single accepting thread. mk builds the continuing threads.
//
// The returned threads are in priority order and may contain several threads
// with the same ID; callers deduplicate while building the first generation.
func Compile[S, T any](prog *Program[S], mk MakeThread[S, T], final Cont[T]) []T {
	c := &compiler[S, T]{mk: mk}
	return c.compile(prog.root)(single[T](final))
}

type compiler[S, T any] struct {
	mk MakeThread[S, T]
}

func (c *compiler[S, T]) compile(node Node[S]) fragment[T] {
	switch x := node.(type) {
	case *Eps[S]:
		v := x.Value
		return func(k cont[T]) []T {
			return k.empty(v)
		}

	case *Fail[S]:
		return func(cont[T]) []T {
			return nil
		}

	case *Symbol[S]:
		return c.compileSymbol(x)

	case *Alt[S]:
		left, right := c.compile(x.Left), c.compile(x.Right)
		return func(k cont[T]) []T {
			return slices.Concat(left(k), right(k))
		}

	case *Seq[S]:
		return c.compileSeq(x)

	case *Map[S]:
		sub, f := c.compile(x.Sub), x.F
		return func(k cont[T]) []T {
			return sub(cont[T]{
				empty:    func(v any) []T { return k.empty(f(v)) },
				nonEmpty: func(v any) []T { return k.nonEmpty(f(v)) },
			})
		}

	case *Rep[S]:
		return c.compileRep(x)

	case *Void[S]:
		sub := c.compile(x.Sub)
		return func(k cont[T]) []T {
			return sub(cont[T]{
				empty:    func(any) []T { return k.empty(struct{}{}) },
				nonEmpty: func(any) []T { return k.nonEmpty(struct{}{}) },
			})
		}
	}

	// Repeat nodes and nil nodes never survive Number.
	panic("nfa: Compile called on an unnumbered expression")
}

func (c *compiler[S, T]) compileSymbol(x *Symbol[S]) fragment[T] {
	id, match, mk := x.ID, x.Match, c.mk
	return func(k cont[T]) []T {
		kn := k.nonEmpty
		return []T{mk(id, func(s S) []T {
			v, ok := match(s)
			if !ok {
				return nil
			}
			return kn(v)
		})}
	}
}

func (c *compiler[S, T]) compileSeq(x *Seq[S]) fragment[T] {
	left, right, combine := c.compile(x.Left), c.compile(x.Right), x.Combine
	return func(k cont[T]) []T {
		return left(cont[T]{
			// Left consumed nothing: whether the pair is empty depends on right.
			empty: func(a any) []T {
				return right(cont[T]{
					empty:    func(b any) []T { return k.empty(combine(a, b)) },
					nonEmpty: func(b any) []T { return k.nonEmpty(combine(a, b)) },
				})
			},
			nonEmpty: func(a any) []T {
				return right(single[T](func(b any) []T { return k.nonEmpty(combine(a, b)) }))
			},
		})
	}
}

func (c *compiler[S, T]) compileRep(x *Rep[S]) fragment[T] {
	sub, greedy, step, init := c.compile(x.Sub), x.Greedy, x.Step, x.Init

	var loop func(acc any, k cont[T]) []T
	loop = func(acc any, k cont[T]) []T {
		kn := k.nonEmpty
		more := sub(cont[T]{
			empty: func(any) []T { return nil },
			nonEmpty: func(v any) []T {
				return loop(step(acc, v), single[T](kn))
			},
		})
		stop := k.empty(acc)
		if greedy {
			return slices.Concat(more, stop)
		}
		return slices.Concat(stop, more)
	}

	return func(k cont[T]) []T {
		return loop(init, k)
	}
}
