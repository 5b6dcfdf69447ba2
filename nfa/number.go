package nfa

import (
	"fmt"

	"github.com/coregx/regobj/internal/conv"
)

// Number assigns ThreadIDs to every Symbol of root and returns the numbered
// program. The input tree is not modified.
//
// IDs start at 1 and increase in preorder: the left side of an Alt or Seq is
// numbered before the right side. A Repeat is first expanded into copies of
// its body (mandatory copies first, then optional copies from the outermost
// in), and every copy is numbered separately. The same order is used on every
// call, so recompiling an expression yields the same IDs.
func Number[S any](root Node[S], config CompilerConfig) (*Program[S], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	n := &numberer[S]{config: config}
	out, err := n.number(root)
	if err != nil {
		return nil, err
	}
	return &Program[S]{root: out, threads: n.count}, nil
}

// numberer carries the ID counter through one traversal. It is owned by a
// single Number call.
type numberer[S any] struct {
	config CompilerConfig
	count  int
}

func (n *numberer[S]) fresh() (ThreadID, error) {
	if n.count >= n.config.MaxThreads {
		return 0, &CompileError{
			Node: fmt.Sprintf("symbol #%d", n.count+1),
			Err:  ErrTooComplex,
		}
	}
	n.count++
	return ThreadID(conv.IntToUint32(n.count)), nil
}

func (n *numberer[S]) number(node Node[S]) (Node[S], error) {
	if isNil(node) {
		return nil, &CompileError{Err: ErrNilNode}
	}

	switch x := node.(type) {
	case *Eps[S], *Fail[S]:
		return x, nil

	case *Symbol[S]:
		if x.Match == nil {
			return nil, &CompileError{Node: "symbol", Err: ErrNilNode}
		}
		id, err := n.fresh()
		if err != nil {
			return nil, err
		}
		return &Symbol[S]{ID: id, Match: x.Match}, nil

	case *Alt[S]:
		left, right, err := n.pair(x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		return &Alt[S]{Left: left, Right: right}, nil

	case *Seq[S]:
		if x.Combine == nil {
			return nil, &CompileError{Node: "seq combine", Err: ErrNilNode}
		}
		left, right, err := n.pair(x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		return &Seq[S]{Left: left, Right: right, Combine: x.Combine}, nil

	case *Map[S]:
		if x.F == nil {
			return nil, &CompileError{Node: "map func", Err: ErrNilNode}
		}
		sub, err := n.number(x.Sub)
		if err != nil {
			return nil, err
		}
		return &Map[S]{Sub: sub, F: x.F}, nil

	case *Rep[S]:
		if x.Step == nil {
			return nil, &CompileError{Node: "rep step", Err: ErrNilNode}
		}
		sub, err := n.number(x.Sub)
		if err != nil {
			return nil, err
		}
		return &Rep[S]{Sub: sub, Greedy: x.Greedy, Init: x.Init, Step: x.Step}, nil

	case *Repeat[S]:
		if err := n.checkRepeat(x); err != nil {
			return nil, err
		}
		return n.number(expandRepeat(x))

	case *Void[S]:
		sub, err := n.number(x.Sub)
		if err != nil {
			return nil, err
		}
		return &Void[S]{Sub: sub}, nil
	}

	return nil, &CompileError{Node: fmt.Sprintf("%T", node), Err: ErrNilNode}
}

func (n *numberer[S]) pair(l, r Node[S]) (Node[S], Node[S], error) {
	left, err := n.number(l)
	if err != nil {
		return nil, nil, err
	}
	right, err := n.number(r)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (n *numberer[S]) checkRepeat(r *Repeat[S]) error {
	bounds := fmt.Sprintf("repeat {%d,%d}", r.Min, r.Max)
	switch {
	case r.Min < 0:
		return &CompileError{Node: bounds, Err: ErrInvalidRepeat}
	case r.Max >= 0 && r.Max < r.Min:
		return &CompileError{Node: bounds, Err: ErrInvalidRepeat}
	case r.Min > n.config.MaxRepeat || r.Max > n.config.MaxRepeat:
		return &CompileError{Node: bounds, Err: ErrInvalidRepeat}
	}
	return nil
}

// expandRepeat rewrites a Repeat into Seq, Alt, Eps and Rep nodes that share
// the unnumbered body. Numbering the result gives each copy its own IDs.
func expandRepeat[S any](r *Repeat[S]) Node[S] {
	empty := &Eps[S]{Value: (*list)(nil)}

	var tail Node[S]
	if r.Max < 0 {
		tail = &Map[S]{
			Sub: &Rep[S]{Sub: r.Sub, Greedy: r.Greedy, Init: (*list)(nil), Step: pushValue},
			F:   listReverse,
		}
	} else {
		tail = empty
		for i := r.Min; i < r.Max; i++ {
			more := &Seq[S]{Left: r.Sub, Right: tail, Combine: consValue}
			if r.Greedy {
				tail = &Alt[S]{Left: more, Right: empty}
			} else {
				tail = &Alt[S]{Left: empty, Right: more}
			}
		}
	}

	body := tail
	for i := 0; i < r.Min; i++ {
		body = &Seq[S]{Left: r.Sub, Right: body, Combine: consValue}
	}
	return &Map[S]{Sub: body, F: listSlice}
}

// isNil reports whether node is nil or a typed nil pointer.
func isNil[S any](node Node[S]) bool {
	switch x := node.(type) {
	case nil:
		return true
	case *Eps[S]:
		return x == nil
	case *Fail[S]:
		return x == nil
	case *Symbol[S]:
		return x == nil
	case *Alt[S]:
		return x == nil
	case *Seq[S]:
		return x == nil
	case *Map[S]:
		return x == nil
	case *Rep[S]:
		return x == nil
	case *Repeat[S]:
		return x == nil
	case *Void[S]:
		return x == nil
	}
	return false
}
