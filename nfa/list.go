package nfa

// list is an immutable cons list used to accumulate repetition values.
// Sibling threads extend the same list independently, so nodes are never
// modified after construction.
type list struct {
	head any
	tail *list
	n    int
}

func cons(v any, l *list) *list {
	return &list{head: v, tail: l, n: l.len() + 1}
}

func (l *list) len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// slice returns the elements front to back.
func (l *list) slice() []any {
	out := make([]any, l.len())
	for i, c := 0, l; c != nil; i, c = i+1, c.tail {
		out[i] = c.head
	}
	return out
}

// reverse returns a new list with the elements in reverse order.
func (l *list) reverse() *list {
	var r *list
	for c := l; c != nil; c = c.tail {
		r = cons(c.head, r)
	}
	return r
}

// consValue is the Seq combiner that prepends the left value to the list
// produced by the right side.
func consValue(v, rest any) any {
	return cons(v, rest.(*list))
}

// pushValue is the Rep step that prepends v to the accumulator. Rep folds
// left to right, so the accumulated list is in reverse order.
func pushValue(acc, v any) any {
	return cons(v, acc.(*list))
}

// listSlice converts a list value to []any.
func listSlice(v any) any {
	return v.(*list).slice()
}

// listReverse reverses a list value.
func listReverse(v any) any {
	return v.(*list).reverse()
}
