package internal

import (
	"cmp"

	"github.com/jateen67/skewq/utils"
)

/*
notes:
a skew heap is just a heap-ordered binary tree with zero balance bookkeeping
	-> merge walks the right spine and unconditionally swaps children at each step
	-> that one swap is what makes merge amortized O(log n)
	-> a single call can still hit O(n) depth on a pathological tree, the bound
	   only holds across a sequence of operations

every other mutation is a merge in disguise:
	-> push = merge with a fresh single-node tree
	-> pop  = merge the old root's two subtrees

each node exclusively owns its subtrees, so a tree belongs to exactly one heap
at a time; merging transfers ownership wholesale and leaves the donor empty
*/

type node[T any] struct {
	value       T
	left, right *node[T]
}

// SkewHeap is a mergeable priority queue. With the default less-than ordering
// the top element is the maximum. Not safe for concurrent use.
type SkewHeap[T any] struct {
	root *node[T]
	size int
	less func(a, b T) bool
}

func NewSkewHeap[T any](less func(a, b T) bool) *SkewHeap[T] {
	return &SkewHeap[T]{less: less}
}

// NewOrdered builds a queue with the default less-than comparator
func NewOrdered[T cmp.Ordered]() *SkewHeap[T] {
	return NewSkewHeap(func(a, b T) bool { return a < b })
}

// merge combines two heap-ordered trees into one, consuming both. The
// comparator runs exactly once per step, always on (a, b): if a loses, the
// operands swap so the winner becomes the root and the loser sinks into its
// right spine. Ties keep the first operand on top.
func (h *SkewHeap[T]) merge(a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.less(a.value, b.value) {
		a, b = b, a
	}
	a.right = h.merge(a.right, b)
	// the skew heap step: swap unconditionally, no depth comparison
	a.left, a.right = a.right, a.left
	return a
}

func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value: n.value,
		left:  clone(n.left),
		right: clone(n.right),
	}
}

// release unlinks a subtree bottom-up so the collector can reclaim every node
// independently of the others; safe to call on nil
func release[T any](n *node[T]) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	n.left, n.right = nil, nil
}

// Top returns the highest priority value without removing it.
// Fails with utils.ErrEmptyQueue on an empty queue.
func (h *SkewHeap[T]) Top() (T, error) {
	if h.Empty() {
		var zero T
		return zero, utils.ErrEmptyQueue
	}
	return h.root.value, nil
}

func (h *SkewHeap[T]) Push(v T) {
	h.root = h.merge(h.root, &node[T]{value: v})
	h.size++
}

// Pop removes and returns the highest priority value.
// Fails with utils.ErrEmptyQueue on an empty queue.
func (h *SkewHeap[T]) Pop() (T, error) {
	if h.Empty() {
		var zero T
		return zero, utils.ErrEmptyQueue
	}
	before := h.root
	h.root = h.merge(before.left, before.right)
	h.size--
	// the old root's children now live in the new tree
	before.left, before.right = nil, nil
	return before.value, nil
}

// Merge moves every element of other into h and leaves other empty. Both
// queues must have been built with the same ordering. Merging a queue into
// itself is a no-op.
func (h *SkewHeap[T]) Merge(other *SkewHeap[T]) {
	if other == nil || other == h {
		return
	}
	h.root = h.merge(h.root, other.root)
	h.size += other.size
	other.root, other.size = nil, 0
}

func (h *SkewHeap[T]) Size() int {
	return h.size
}

func (h *SkewHeap[T]) Empty() bool {
	return h.size == 0
}

// Copy returns a deep copy sharing no nodes with h
func (h *SkewHeap[T]) Copy() *SkewHeap[T] {
	return &SkewHeap[T]{
		root: clone(h.root),
		size: h.size,
		less: h.less,
	}
}

// Assign discards h's tree and replaces it with a deep copy of other's
func (h *SkewHeap[T]) Assign(other *SkewHeap[T]) {
	if other == h {
		return
	}
	release(h.root)
	h.root = clone(other.root)
	h.size = other.size
	h.less = other.less
}

func (h *SkewHeap[T]) Clear() {
	release(h.root)
	h.root, h.size = nil, 0
}

// Drain pops until empty and returns the values in priority order,
// highest first
func (h *SkewHeap[T]) Drain() []T {
	out := make([]T, 0, h.size)
	for !h.Empty() {
		v, _ := h.Pop()
		out = append(out, v)
	}
	return out
}
