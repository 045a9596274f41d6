package src

// Iter is a random-access position into a Vector or a String.
//
// It stays valid until the container reallocates or shifts elements past
// its index. Value and Set check the index against the current size.
type Iter[T any] struct {
	c randomAccess[T]
	i int
}

func (it Iter[T]) Index() int {
	return it.i
}

func (it Iter[T]) Next() Iter[T] {
	return Iter[T]{c: it.c, i: it.i + 1}
}

func (it Iter[T]) Prev() Iter[T] {
	return Iter[T]{c: it.c, i: it.i - 1}
}

// Advance moves n slots, backwards when n is negative.
func (it Iter[T]) Advance(n int) Iter[T] {
	return Iter[T]{c: it.c, i: it.i + n}
}

// Distance returns it - o, the number of slots from o to it.
func (it Iter[T]) Distance(o Iter[T]) int {
	mustHold(it.c == o.c, ERR_FOREIGN_ITER)
	return it.i - o.i
}

func (it Iter[T]) Equal(o Iter[T]) bool {
	return it.c == o.c && it.i == o.i
}

func (it Iter[T]) Less(o Iter[T]) bool {
	mustHold(it.c == o.c, ERR_FOREIGN_ITER)
	return it.i < o.i
}

func (it Iter[T]) Value() T {
	return it.c.At(it.i)
}

func (it Iter[T]) Set(x T) {
	it.c.Set(it.i, x)
}
