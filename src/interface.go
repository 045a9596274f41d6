package src

// ----------------------------- base interface -------------------------

type empty interface {
	Empty() bool
}

type length interface {
	Size() int
}

type capacity interface {
	Capacity() int
}

var (
	_ empty    = (*Vector[int])(nil)
	_ empty    = (*String)(nil)
	_ empty    = (*List[int])(nil)
	_ empty    = (*PriorityQueue[int])(nil)
	_ capacity = (*Vector[int])(nil)
	_ capacity = (*String)(nil)
)

// cloner is implemented by element types that own storage of their own;
// deep copies go through it so no two containers share that storage.
type cloner[T any] interface {
	Clone() T
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// ----------------------------- heap interface -------------------------

// Sequence is the backing storage a PriorityQueue needs: append one,
// remove the last one, indexed read/write and length.
type Sequence[T any] interface {
	PushBack(x T)
	PopBack()
	At(i int) T
	Set(i int, x T)
	Size() int
}

var _ Sequence[int] = (*Vector[int])(nil)

// Comparator orders two elements. cmp(x, y) true means y should sit above x.
type Comparator[T any] func(x, y T) bool

// ----------------------------- adapter interface -------------------------

// Deque is the double-ended capability Queue and Stack are built over.
type Deque[T any] interface {
	PushBack(x T)
	PopBack()
	PopFront()
	Front() T
	Back() T
	Size() int
	Empty() bool
	Clear()
}

var _ Deque[int] = (*List[int])(nil)

// ----------------------------- position interface -------------------------

// randomAccess is what Iter needs from a contiguous container.
type randomAccess[T any] interface {
	At(i int) T
	Set(i int, x T)
	Size() int
}
