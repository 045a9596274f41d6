package src

// ListWalker walks a list from one end to the other without exposing
// positions, in the direction given by AL_START_HEAD or AL_START_TAIL.
type ListWalker[T any] struct {
	next      *listNode[T]
	direction int
}

// Next returns the next value, and false once the walk is over.
func (li *ListWalker[T]) Next() (T, bool) {
	curr := li.next
	if curr == nil || curr.sentinel {
		var zero T
		return zero, false
	}
	if li.direction == AL_START_HEAD {
		li.next = curr.next
	} else {
		li.next = curr.prev
	}
	return curr.data, true
}

type listNode[T any] struct {
	data     T
	prev     *listNode[T]
	next     *listNode[T]
	sentinel bool
}

// ListIter is a bidirectional position in a List. It stays valid until
// its own node is erased.
type ListIter[T any] struct {
	n *listNode[T]
}

func (it ListIter[T]) Next() ListIter[T] {
	return ListIter[T]{n: it.n.next}
}

func (it ListIter[T]) Prev() ListIter[T] {
	return ListIter[T]{n: it.n.prev}
}

func (it ListIter[T]) Equal(o ListIter[T]) bool {
	return it.n == o.n
}

// Value dereferences the position. It must not be called on End().
func (it ListIter[T]) Value() T {
	mustHold(it.n != nil && !it.n.sentinel, ERR_END_POSITION)
	return it.n.data
}

func (it ListIter[T]) Set(x T) {
	mustHold(it.n != nil && !it.n.sentinel, ERR_END_POSITION)
	it.n.data = x
}

// List is a doubly linked list built on a circular ring around a sentinel
// node. The sentinel holds no value; End() points at it, so the list always
// has at least one node. The zero List is ready to use.
type List[T any] struct {
	head *listNode[T]
}

// NewList returns an empty list owning only its sentinel.
func NewList[T any]() *List[T] {
	l := new(List[T])
	l.init()
	return l
}

// NewListFrom pushes values, in order, onto a new list.
func NewListFrom[T any](values ...T) *List[T] {
	l := NewList[T]()
	for _, x := range values {
		l.PushBack(cloneValue(x))
	}
	return l
}

func (l *List[T]) init() {
	if l.head != nil {
		return
	}
	l.head = &listNode[T]{sentinel: true}
	l.head.next = l.head
	l.head.prev = l.head
}

func (l *List[T]) Begin() ListIter[T] {
	l.init()
	return ListIter[T]{n: l.head.next}
}

func (l *List[T]) End() ListIter[T] {
	l.init()
	return ListIter[T]{n: l.head}
}

func (l *List[T]) Empty() bool {
	return l.Begin().Equal(l.End())
}

// Size counts the nodes on every call; the length is not cached.
func (l *List[T]) Size() int {
	sz := 0
	for it, end := l.Begin(), l.End(); !it.Equal(end); it = it.Next() {
		sz++
	}
	return sz
}

func (l *List[T]) Front() T {
	mustHold(!l.Empty(), ERR_EMPTY)
	return l.head.next.data
}

func (l *List[T]) Back() T {
	mustHold(!l.Empty(), ERR_EMPTY)
	return l.head.prev.data
}

// Insert splices a node holding x in front of pos and returns its position.
func (l *List[T]) Insert(pos ListIter[T], x T) ListIter[T] {
	mustHold(pos.n != nil, ERR_END_POSITION)
	cur := pos.n
	prev := cur.prev
	n := &listNode[T]{data: x, prev: prev, next: cur}
	prev.next = n
	cur.prev = n
	return ListIter[T]{n: n}
}

// Erase unlinks the node at pos and returns the position that followed it.
func (l *List[T]) Erase(pos ListIter[T]) ListIter[T] {
	mustHold(pos.n != nil && !pos.n.sentinel, ERR_END_POSITION)
	cur := pos.n
	prev, next := cur.prev, cur.next
	prev.next = next
	next.prev = prev
	cur.next = nil
	cur.prev = nil
	return ListIter[T]{n: next}
}

func (l *List[T]) PushBack(x T) {
	l.Insert(l.End(), x)
}

func (l *List[T]) PushFront(x T) {
	l.Insert(l.Begin(), x)
}

func (l *List[T]) PopBack() {
	mustHold(!l.Empty(), ERR_EMPTY)
	l.Erase(l.End().Prev())
}

func (l *List[T]) PopFront() {
	mustHold(!l.Empty(), ERR_EMPTY)
	l.Erase(l.Begin())
}

// Resize keeps the first n values, or appends copies of value up to n.
func (l *List[T]) Resize(n int, value T) {
	mustHold(n >= 0, ERR_NEGATIVE_SIZE)
	it, end := l.Begin(), l.End()
	sz := 0
	for sz < n && !it.Equal(end) {
		sz++
		it = it.Next()
	}
	if sz == n {
		for !it.Equal(end) {
			it = l.Erase(it)
		}
		return
	}
	for ; sz < n; sz++ {
		l.PushBack(cloneValue(value))
	}
}

// Clear erases every value node, leaving the sentinel.
func (l *List[T]) Clear() {
	it, end := l.Begin(), l.End()
	for !it.Equal(end) {
		it = l.Erase(it)
	}
}

// Swap exchanges the sentinels of l and o. Each ring only refers to its own
// sentinel, so no node needs touching.
func (l *List[T]) Swap(o *List[T]) {
	l.init()
	o.init()
	l.head, o.head = o.head, l.head
}

// Clone returns a deep copy built one PushBack at a time.
func (l *List[T]) Clone() *List[T] {
	c := NewList[T]()
	for it, end := l.Begin(), l.End(); !it.Equal(end); it = it.Next() {
		c.PushBack(cloneValue(it.n.data))
	}
	return c
}

// Assign makes l a deep copy of o by building the copy first and swapping.
func (l *List[T]) Assign(o *List[T]) {
	if l == o {
		return
	}
	tmp := o.Clone()
	l.Swap(tmp)
}

// Find returns the first position whose value matches x under eq, or End().
func (l *List[T]) Find(x T, eq func(a, b T) bool) ListIter[T] {
	it, end := l.Begin(), l.End()
	for ; !it.Equal(end); it = it.Next() {
		if eq(x, it.n.data) {
			break
		}
	}
	return it
}

// Remove erases the first value matching x and reports whether one was found.
func (l *List[T]) Remove(x T, eq func(a, b T) bool) bool {
	it := l.Find(x, eq)
	if it.Equal(l.End()) {
		return false
	}
	l.Erase(it)
	return true
}

func (l *List[T]) Rewind() *ListWalker[T] {
	l.init()
	return &ListWalker[T]{next: l.head.next, direction: AL_START_HEAD}
}

func (l *List[T]) RewindTail() *ListWalker[T] {
	l.init()
	return &ListWalker[T]{next: l.head.prev, direction: AL_START_TAIL}
}
