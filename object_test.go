package regobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loop returns a continuing thread with the given id that, on any symbol,
// yields the successors produced by next.
func loop(id ThreadID, next func(rune) []Thread[rune, string]) Thread[rune, string] {
	return NewThread(id, next)
}

func stay(id ThreadID) Thread[rune, string] {
	var self Thread[rune, string]
	self = NewThread(id, func(rune) []Thread[rune, string] { return []Thread[rune, string]{self} })
	return self
}

func TestEmpty(t *testing.T) {
	obj := Empty[rune, string]()
	assert.True(t, obj.IsFailed())
	assert.Empty(t, obj.Results())
	assert.Empty(t, obj.Threads())
	assert.Equal(t, 0, obj.Len())
	assert.Equal(t, "Object[]", obj.String())

	next := obj.Step('a')
	assert.True(t, next.IsFailed())

	var zero Object[rune, string]
	assert.True(t, zero.IsFailed())
	assert.True(t, zero.Step('z').IsFailed())
}

func TestScenario_SingleSymbol(t *testing.T) {
	obj, err := Compile(Map(Sym('x'), constant[rune]("X")))
	require.NoError(t, err)

	require.Equal(t, 1, obj.Len())
	assert.Equal(t, []ThreadID{1}, continuingIDs(obj))
	assert.False(t, obj.IsFailed())
	assert.Empty(t, obj.Results())

	obj = obj.Step('x')
	require.Equal(t, 1, obj.Len())
	assert.True(t, obj.Threads()[0].IsAccepting())
	assert.False(t, obj.IsFailed())
	assert.Equal(t, []string{"X"}, obj.Results())

	for _, r := range "xy" {
		after := obj.Step(r)
		assert.True(t, after.IsFailed())
		assert.Empty(t, after.Results())
	}
}

func TestScenario_AlternationPriority(t *testing.T) {
	re := Alt(Map(Sym('a'), constant[rune]("A")), Map(Sym('b'), constant[rune]("B")))
	initial, err := Compile(re)
	require.NoError(t, err)

	assert.Equal(t, []ThreadID{1, 2}, continuingIDs(initial))
	assert.Equal(t, []string{"Thread(1)", "Thread(2)"}, describe(initial.Threads()))

	assert.Equal(t, []string{"A"}, initial.Step('a').Results())
	assert.Equal(t, []string{"B"}, initial.Step('b').Results())
	assert.True(t, initial.Step('c').IsFailed())

	// Stepping must not disturb the initial generation.
	assert.Equal(t, []ThreadID{1, 2}, continuingIDs(initial))
}

func TestScenario_StarReusesThreadIDs(t *testing.T) {
	initial, err := Compile(Many(Sym('a')))
	require.NoError(t, err)

	ids := continuingIDs(initial)
	require.Equal(t, []ThreadID{1}, ids)
	size := initial.Len()

	obj := initial
	for i := 1; i <= 200; i++ {
		obj = obj.Step('a')
		require.Equal(t, ids, continuingIDs(obj), "generation %d", i)
		require.Equal(t, size, obj.Len(), "generation %d", i)
		require.Len(t, obj.Results(), 1)
		require.Len(t, obj.Results()[0], i)
	}
}

func TestInsert_DuplicateIDIsNoOp(t *testing.T) {
	obj := Empty[rune, string]().
		Insert(stay(1)).
		Insert(Accept[rune]("r")).
		Insert(stay(2))
	before := describe(obj.Threads())

	same := obj.Insert(stay(1))
	assert.Equal(t, before, describe(same.Threads()))

	same = obj.Insert(stay(2))
	assert.Equal(t, before, describe(same.Threads()))
}

func TestInsert_AppendsAtLowestPriority(t *testing.T) {
	obj := Empty[rune, string]().Insert(stay(5)).Insert(stay(3)).Insert(Accept[rune]("z"))
	assert.Equal(t, []string{"Thread(5)", "Thread(3)", "Accept(z)"}, describe(obj.Threads()))
}

func TestInsert_AcceptingNeverDeduplicated(t *testing.T) {
	obj := Empty[rune, string]().
		Insert(Accept[rune]("same")).
		Insert(Accept[rune]("same")).
		Insert(Accept[rune]("other"))
	assert.Equal(t, []string{"same", "same", "other"}, obj.Results())
}

func TestInsert_DoesNotModifyReceiver(t *testing.T) {
	base := Empty[rune, string]().Insert(stay(1))
	a := base.Insert(stay(2))
	b := base.Insert(Accept[rune]("b"))

	assert.Equal(t, []string{"Thread(1)"}, describe(base.Threads()))
	assert.Equal(t, []string{"Thread(1)", "Thread(2)"}, describe(a.Threads()))
	assert.Equal(t, []string{"Thread(1)", "Accept(b)"}, describe(b.Threads()))
}

func TestInsert_ZeroThreadPanics(t *testing.T) {
	require.PanicsWithValue(t, ErrInvalidThread, func() {
		Empty[rune, string]().Insert(Thread[rune, string]{})
	})
	require.PanicsWithValue(t, ErrInvalidThread, func() {
		FromThreadList([]Thread[rune, string]{{}})
	})
}

func TestFromThreadList_DropsLaterDuplicates(t *testing.T) {
	obj := FromThreadList([]Thread[rune, string]{
		stay(1), stay(2), Accept[rune]("x"), stay(1), Accept[rune]("x"), stay(3), stay(2),
	})
	assert.Equal(t,
		[]string{"Thread(1)", "Thread(2)", "Accept(x)", "Accept(x)", "Thread(3)"},
		describe(obj.Threads()))
}

func TestFromThreadList_RoundTrip(t *testing.T) {
	re := Seq(Many(Alt(Sym('a'), Sym('b'))), Optional(Sym('c')),
		func(xs []rune, c *rune) string { return str(xs) })
	obj, err := Compile(re)
	require.NoError(t, err)

	for _, r := range "abbac" {
		rebuilt := FromThreadList(obj.Threads())
		require.Equal(t, describe(obj.Threads()), describe(rebuilt.Threads()))
		require.Equal(t, obj.Results(), rebuilt.Results())
		require.Equal(t, describe(obj.Step(r).Threads()), describe(rebuilt.Step(r).Threads()))
		obj = obj.Step(r)
	}
}

func TestFromThreadList_FilterAndReorder(t *testing.T) {
	re := Alt(Map(Word([]rune("ab")), constant[[]rune]("left")), Map(Word([]rune("ac")), constant[[]rune]("right")))
	obj := MustCompile(re).Step('a')
	require.Equal(t, []ThreadID{2, 4}, continuingIDs(obj))

	// Drop the left branch and continue with the right one only.
	var kept []Thread[rune, string]
	for _, th := range obj.Threads() {
		if id, ok := th.ID(); ok && id != 2 {
			kept = append(kept, th)
		}
	}
	filtered := FromThreadList(kept)
	assert.True(t, filtered.Step('b').IsFailed())
	assert.Equal(t, []string{"right"}, filtered.Step('c').Results())

	// Threads returns a copy; reordering it does not affect obj.
	ts := obj.Threads()
	ts[0], ts[1] = ts[1], ts[0]
	assert.Equal(t, []ThreadID{2, 4}, continuingIDs(obj))
	assert.Equal(t, []ThreadID{4, 2}, continuingIDs(FromThreadList(ts)))
}

func TestStep_AcceptingOnlyYieldsEmpty(t *testing.T) {
	obj := FromThreadList([]Thread[rune, string]{Accept[rune]("a"), Accept[rune]("b")})
	require.False(t, obj.IsFailed())
	next := obj.Step('x')
	assert.True(t, next.IsFailed())
	assert.Equal(t, 0, next.Len())
}

func TestStep_HigherPriorityWinsSharedState(t *testing.T) {
	target := func(tag string) Thread[rune, string] {
		return NewThread(3, func(rune) []Thread[rune, string] {
			return []Thread[rune, string]{Accept[rune](tag)}
		})
	}
	high := loop(1, func(rune) []Thread[rune, string] { return []Thread[rune, string]{target("high")} })
	low := loop(2, func(rune) []Thread[rune, string] {
		return []Thread[rune, string]{target("low"), Accept[rune]("low-done")}
	})

	obj := FromThreadList([]Thread[rune, string]{high, low}).Step('s')
	assert.Equal(t, []string{"Thread(3)", "Accept(low-done)"}, describe(obj.Threads()))
	assert.Equal(t, []string{"high"}, obj.Step('s').Results())

	// Reversing priority flips the winner.
	obj = FromThreadList([]Thread[rune, string]{low, high}).Step('s')
	assert.Equal(t, []string{"low"}, obj.Step('s').Results())
}

func TestStep_DuplicateAcceptsFromDistinctPaths(t *testing.T) {
	// Two alternatives match the same symbol; both accepting threads
	// survive while the shared loop state is kept once.
	re := Many(Alt(Sym('a'), Sym('a')))
	obj := feed(MustCompile(re), 'a', 'a')
	assert.Equal(t, []ThreadID{1, 2}, continuingIDs(obj))
	assert.Len(t, obj.Results(), 2)
}

func TestStepThread(t *testing.T) {
	obj := MustCompile(Map(Sym('q'), constant[rune]("Q")))
	th := obj.Threads()[0]

	next := StepThread('q', th)
	require.Len(t, next, 1)
	res, ok := next[0].Result()
	require.True(t, ok)
	assert.Equal(t, "Q", res)

	assert.Empty(t, th.Step('r'))
}

func TestStepThread_AcceptingPanics(t *testing.T) {
	require.PanicsWithValue(t, ErrAcceptingThread, func() {
		StepThread('a', Accept[rune]("done"))
	})
	require.PanicsWithValue(t, ErrInvalidThread, func() {
		StepThread('a', Thread[rune, string]{})
	})
}

func TestNewThread_NilTransitionPanics(t *testing.T) {
	assert.Panics(t, func() { NewThread[rune, string](1, nil) })
}

func TestThreadAccessors(t *testing.T) {
	cont := stay(7)
	id, ok := cont.ID()
	assert.True(t, ok)
	assert.Equal(t, ThreadID(7), id)
	assert.False(t, cont.IsAccepting())
	_, ok = cont.Result()
	assert.False(t, ok)
	assert.Equal(t, "Thread(7)", cont.String())

	acc := Accept[rune](42)
	_, ok = acc.ID()
	assert.False(t, ok)
	assert.True(t, acc.IsAccepting())
	res, ok := acc.Result()
	assert.True(t, ok)
	assert.Equal(t, 42, res)
	assert.Equal(t, "Accept(42)", acc.String())

	var zero Thread[rune, int]
	assert.False(t, zero.IsAccepting())
	_, ok = zero.ID()
	assert.False(t, ok)
	assert.Equal(t, "Thread(invalid)", zero.String())
}

func TestObject_String(t *testing.T) {
	re := Seq(Sym('a'), Many(Alt(Sym('b'), Sym('c'))), func(a rune, rest []rune) string {
		return string(a) + string(rest)
	})
	obj := MustCompile(re).Step('a')
	assert.Equal(t, "Object[Thread(2) Thread(3) Accept(a)]", obj.String())
}
