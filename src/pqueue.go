package src

import "golang.org/x/exp/constraints"

// Less orders x before y when x < y, which keeps the largest value on top.
func Less[T constraints.Ordered]() Comparator[T] {
	return func(x, y T) bool { return x < y }
}

// Greater orders x before y when x > y, which keeps the smallest value on top.
func Greater[T constraints.Ordered]() Comparator[T] {
	return func(x, y T) bool { return x > y }
}

// PriorityQueue is a binary heap laid out in a Sequence: the children of
// index i live at 2i+1 and 2i+2. After every mutation no child is judged
// by cmp to belong above its parent.
//
// No positions are exposed, since any Push or Pop may move any element.
type PriorityQueue[T any] struct {
	seq Sequence[T]
	cmp Comparator[T]
}

// NewPriorityQueue returns a max-at-top heap over a Vector.
func NewPriorityQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueueWith[T](NewVector[T](), Less[T]())
}

// NewPriorityQueueWith builds a heap over seq ordered by cmp. Elements
// already in seq are rearranged into heap order.
func NewPriorityQueueWith[T any](seq Sequence[T], cmp Comparator[T]) *PriorityQueue[T] {
	mustHold(seq != nil, ERR_NIL_SEQUENCE)
	mustHold(cmp != nil, ERR_NIL_COMPARE)
	pq := &PriorityQueue[T]{seq: seq, cmp: cmp}
	n := seq.Size()
	for parent := (n - 2) / 2; parent >= 0; parent-- {
		pq.adjustDown(n, parent)
	}
	return pq
}

func (pq *PriorityQueue[T]) swap(i, j int) {
	x := pq.seq.At(i)
	pq.seq.Set(i, pq.seq.At(j))
	pq.seq.Set(j, x)
}

// adjustUp moves the element at child toward the root while its parent
// should sit below it.
func (pq *PriorityQueue[T]) adjustUp(child int) {
	for child > 0 {
		parent := (child - 1) / 2
		if !pq.cmp(pq.seq.At(parent), pq.seq.At(child)) {
			break
		}
		pq.swap(parent, child)
		child = parent
	}
}

// adjustDown moves the element at parent toward the leaves of the first n
// elements. The right child is chosen only when it outranks the left one.
func (pq *PriorityQueue[T]) adjustDown(n, parent int) {
	child := 2*parent + 1
	for child < n {
		if child+1 < n && pq.cmp(pq.seq.At(child), pq.seq.At(child+1)) {
			child++
		}
		if !pq.cmp(pq.seq.At(parent), pq.seq.At(child)) {
			break
		}
		pq.swap(parent, child)
		parent = child
		child = 2*parent + 1
	}
}

func (pq *PriorityQueue[T]) Push(x T) {
	pq.seq.PushBack(x)
	pq.adjustUp(pq.seq.Size() - 1)
}

// Pop removes the top element.
func (pq *PriorityQueue[T]) Pop() {
	n := pq.seq.Size()
	mustHold(n > 0, ERR_EMPTY)
	pq.swap(0, n-1)
	pq.seq.PopBack()
	pq.adjustDown(n-1, 0)
}

// Top returns the element that Pop would remove.
func (pq *PriorityQueue[T]) Top() T {
	mustHold(pq.seq.Size() > 0, ERR_EMPTY)
	return pq.seq.At(0)
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.seq.Size()
}

func (pq *PriorityQueue[T]) Empty() bool {
	return pq.seq.Size() == 0
}
