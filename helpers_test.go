package regobj

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// feed steps obj through every symbol of input.
func feed[S, R any](obj Object[S, R], input ...S) Object[S, R] {
	for _, s := range input {
		obj = obj.Step(s)
	}
	return obj
}

// results compiles re, feeds input and returns the results of the final
// generation.
func results[R any](t *testing.T, re RE[rune, R], input string) []R {
	t.Helper()
	obj, err := Compile(re)
	require.NoError(t, err)
	return feed(obj, []rune(input)...).Results()
}

// first returns the preferred result for input, if any.
func first[R any](t *testing.T, re RE[rune, R], input string) (R, bool) {
	t.Helper()
	rs := results(t, re, input)
	if len(rs) == 0 {
		var zero R
		return zero, false
	}
	return rs[0], true
}

// continuingIDs returns the IDs of the continuing threads of obj in order.
func continuingIDs[S, R any](obj Object[S, R]) []ThreadID {
	var ids []ThreadID
	for t := range obj.All() {
		if id, ok := t.ID(); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// describe summarizes a thread list for order comparisons.
func describe[S, R any](ts []Thread[S, R]) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func str(rs []rune) string {
	return string(rs)
}

func constant[A, B any](b B) func(A) B {
	return func(A) B { return b }
}
