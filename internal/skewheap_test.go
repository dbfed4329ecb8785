package internal

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jateen67/skewq/utils"
)

func countNodes[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

// heapOrdered walks the whole tree checking that no child beats its parent
func heapOrdered[T any](h *SkewHeap[T], n *node[T]) bool {
	if n == nil {
		return true
	}
	if n.left != nil && h.less(n.value, n.left.value) {
		return false
	}
	if n.right != nil && h.less(n.value, n.right.value) {
		return false
	}
	return heapOrdered(h, n.left) && heapOrdered(h, n.right)
}

func TestEmptyQueueFails(t *testing.T) {
	h := NewOrdered[int]()

	assert.True(t, h.Empty())
	assert.Equal(t, 0, h.Size())

	_, err := h.Top()
	assert.True(t, errors.Is(err, utils.ErrEmptyQueue))
	_, err = h.Pop()
	assert.True(t, errors.Is(err, utils.ErrEmptyQueue))
}

func TestPushThenTop(t *testing.T) {
	h := NewOrdered[int]()
	for _, v := range []int{5, 3, 8} {
		h.Push(v)
	}

	top, err := h.Top()
	require.NoError(t, err)
	assert.Equal(t, 8, top)

	// a strictly larger push becomes the new top
	h.Push(100)
	top, err = h.Top()
	require.NoError(t, err)
	assert.Equal(t, 100, top)
	assert.Equal(t, 4, h.Size())
}

func TestExtractAllOrdering(t *testing.T) {
	h := NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 9} {
		h.Push(v)
	}

	var got []int
	for !h.Empty() {
		top, err := h.Top()
		require.NoError(t, err)
		v, err := h.Pop()
		require.NoError(t, err)
		assert.Equal(t, top, v)
		got = append(got, v)
	}

	assert.Equal(t, []int{9, 8, 5, 3, 1}, got)
	assert.Equal(t, 0, h.Size())
}

func TestMergeSingletons(t *testing.T) {
	a := NewOrdered[int]()
	b := NewOrdered[int]()
	a.Push(4)
	b.Push(7)

	a.Merge(b)

	assert.Equal(t, 2, a.Size())
	top, err := a.Top()
	require.NoError(t, err)
	assert.Equal(t, 7, top)
	assert.True(t, b.Empty())
}

func TestMergeSizeLaw(t *testing.T) {
	a := NewOrdered[int]()
	b := NewOrdered[int]()
	for i := 0; i < 10; i++ {
		a.Push(rand.Intn(1000))
	}
	for i := 0; i < 25; i++ {
		b.Push(rand.Intn(1000))
	}

	a.Merge(b)

	assert.Equal(t, 35, a.Size())
	assert.Equal(t, 0, b.Size())
	assert.True(t, b.Empty())
	assert.Nil(t, b.root)
	assert.Equal(t, 35, countNodes(a.root))
	assert.True(t, heapOrdered(a, a.root))
}

func TestMergeWithEmptyIsNoop(t *testing.T) {
	a := NewOrdered[int]()
	for _, v := range []int{2, 9, 4} {
		a.Push(v)
	}

	a.Merge(NewOrdered[int]())

	assert.Equal(t, 3, a.Size())
	top, err := a.Top()
	require.NoError(t, err)
	assert.Equal(t, 9, top)
}

func TestSelfMergeIsNoop(t *testing.T) {
	h := NewOrdered[int]()
	h.Push(1)
	h.Push(2)

	h.Merge(h)

	assert.Equal(t, 2, h.Size())
	assert.Equal(t, 2, countNodes(h.root))
}

func TestCopyIndependence(t *testing.T) {
	a := NewOrdered[int]()
	for _, v := range []int{5, 1, 7} {
		a.Push(v)
	}

	c := a.Copy()
	c.Push(50)
	_, err := c.Pop()
	require.NoError(t, err)

	assert.Equal(t, 3, a.Size())
	top, err := a.Top()
	require.NoError(t, err)
	assert.Equal(t, 7, top)
	assert.Equal(t, 3, c.Size())
}

func TestAssignReplacesState(t *testing.T) {
	a := NewOrdered[int]()
	b := NewOrdered[int]()
	a.Push(1)
	for _, v := range []int{10, 20} {
		b.Push(v)
	}

	a.Assign(b)

	assert.Equal(t, 2, a.Size())
	top, err := a.Top()
	require.NoError(t, err)
	assert.Equal(t, 20, top)

	// deep copy, so draining a does not touch b
	_, err = a.Pop()
	require.NoError(t, err)
	_, err = a.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, b.Size())

	a.Assign(a) // self-assign must not clear
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, 2, b.Size())
}

func TestClear(t *testing.T) {
	h := NewOrdered[int]()
	for i := 0; i < 8; i++ {
		h.Push(i)
	}

	h.Clear()

	assert.True(t, h.Empty())
	assert.Nil(t, h.root)
	_, err := h.Top()
	assert.True(t, errors.Is(err, utils.ErrEmptyQueue))
}

func TestCustomComparator(t *testing.T) {
	// invert the ordering to get a min-queue
	h := NewSkewHeap(func(a, b int) bool { return a > b })
	for _, v := range []int{5, 3, 8, 1, 9} {
		h.Push(v)
	}

	var got []int
	for !h.Empty() {
		v, err := h.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 3, 5, 8, 9}, got)
}

func TestInvariantsUnderMixedOps(t *testing.T) {
	h := NewOrdered[int]()
	live := 0

	for i := 0; i < 2000; i++ {
		if rand.Intn(3) == 0 && live > 0 {
			_, err := h.Pop()
			require.NoError(t, err)
			live--
		} else {
			h.Push(rand.Intn(100))
			live++
		}
	}

	assert.Equal(t, live, h.Size())
	assert.Equal(t, live, countNodes(h.root))
	assert.True(t, heapOrdered(h, h.root))

	other := NewOrdered[int]()
	for i := 0; i < 500; i++ {
		other.Push(rand.Intn(100))
	}
	h.Merge(other)

	assert.Equal(t, live+500, h.Size())
	assert.Equal(t, live+500, countNodes(h.root))
	assert.True(t, heapOrdered(h, h.root))
}

func TestDrainSortedAndEmpties(t *testing.T) {
	h := NewOrdered[int]()
	for _, v := range []int{3, 1, 4, 1, 5} {
		h.Push(v)
	}

	got := h.Drain()

	assert.Equal(t, []int{5, 4, 3, 1, 1}, got)
	assert.True(t, h.Empty())
}

func BenchmarkSkewHeap_Push(b *testing.B) {
	h := NewOrdered[int]()
	for i := 0; i < b.N; i++ {
		h.Push(rand.Int())
	}

	opsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(opsPerSec, "ops/s")
}

func BenchmarkSkewHeap_PushPop(b *testing.B) {
	h := NewOrdered[int]()
	for i := 0; i < 1_000; i++ {
		h.Push(rand.Int())
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h.Push(rand.Int())
		h.Pop()
	}

	opsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(opsPerSec, "ops/s")
}

func BenchmarkSkewHeap_Merge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		x := NewOrdered[int]()
		y := NewOrdered[int]()
		for j := 0; j < 256; j++ {
			x.Push(rand.Int())
			y.Push(rand.Int())
		}
		b.StartTimer()
		x.Merge(y)
	}

	opsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(opsPerSec, "ops/s")
}
