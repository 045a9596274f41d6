package src

// Queue is a FIFO facade over a Deque: Push appends, Pop removes the front.
type Queue[T any] struct {
	c Deque[T]
}

// NewQueue returns a queue backed by a List.
func NewQueue[T any]() *Queue[T] {
	return NewQueueWith[T](NewList[T]())
}

func NewQueueWith[T any](c Deque[T]) *Queue[T] {
	mustHold(c != nil, ERR_NIL_SEQUENCE)
	return &Queue[T]{c: c}
}

func (q *Queue[T]) Push(x T)    { q.c.PushBack(x) }
func (q *Queue[T]) Pop()        { q.c.PopFront() }
func (q *Queue[T]) Front() T    { return q.c.Front() }
func (q *Queue[T]) Back() T     { return q.c.Back() }
func (q *Queue[T]) Size() int   { return q.c.Size() }
func (q *Queue[T]) Empty() bool { return q.c.Empty() }
func (q *Queue[T]) Clear()      { q.c.Clear() }

// Swap exchanges the backing deques of q and o.
func (q *Queue[T]) Swap(o *Queue[T]) {
	q.c, o.c = o.c, q.c
}

// Stack is a LIFO facade over a Deque: Push and Pop work on the back.
type Stack[T any] struct {
	c Deque[T]
}

// NewStack returns a stack backed by a List.
func NewStack[T any]() *Stack[T] {
	return NewStackWith[T](NewList[T]())
}

func NewStackWith[T any](c Deque[T]) *Stack[T] {
	mustHold(c != nil, ERR_NIL_SEQUENCE)
	return &Stack[T]{c: c}
}

func (s *Stack[T]) Push(x T)    { s.c.PushBack(x) }
func (s *Stack[T]) Pop()        { s.c.PopBack() }
func (s *Stack[T]) Top() T      { return s.c.Back() }
func (s *Stack[T]) Size() int   { return s.c.Size() }
func (s *Stack[T]) Empty() bool { return s.c.Empty() }
func (s *Stack[T]) Clear()      { s.c.Clear() }

func (s *Stack[T]) Swap(o *Stack[T]) {
	s.c, o.c = o.c, s.c
}
