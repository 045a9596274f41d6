package src

// Vector is a growable array over one contiguous buffer.
//
// len(data) is the capacity, data[:finish] holds the valid elements.
// A zero Vector is empty and owns no buffer.
type Vector[T any] struct {
	data   []T
	finish int
}

// NewVector returns an empty, unallocated vector.
func NewVector[T any]() *Vector[T] {
	return new(Vector[T])
}

// NewVectorN returns a vector holding n copies of value.
func NewVectorN[T any](n int, value T) *Vector[T] {
	v := new(Vector[T])
	v.Reserve(n)
	for i := 0; i < n; i++ {
		v.PushBack(cloneValue(value))
	}
	return v
}

// NewVectorFrom copies values, in order, into a new vector.
func NewVectorFrom[T any](values ...T) *Vector[T] {
	v := new(Vector[T])
	for _, x := range values {
		v.PushBack(cloneValue(x))
	}
	return v
}

func (v *Vector[T]) Size() int {
	return v.finish
}

func (v *Vector[T]) Capacity() int {
	return len(v.data)
}

func (v *Vector[T]) Empty() bool {
	return v.finish == 0
}

// Reserve grows the buffer to exactly n slots when n exceeds the current
// capacity. It never shrinks. The new buffer is populated before the old
// one is dropped, so a failed allocation leaves v untouched.
func (v *Vector[T]) Reserve(n int) {
	mustHold(n >= 0, ERR_NEGATIVE_SIZE)
	if n <= len(v.data) {
		return
	}
	tmp := make([]T, n)
	copy(tmp, v.data[:v.finish])
	v.data = tmp
}

// Resize truncates in place when n is below the size, otherwise fills the
// new slots with value.
func (v *Vector[T]) Resize(n int, value T) {
	mustHold(n >= 0, ERR_NEGATIVE_SIZE)
	if n < v.finish {
		v.clearRange(n, v.finish)
		v.finish = n
		return
	}
	if n > len(v.data) {
		v.Reserve(n)
	}
	for ; v.finish < n; v.finish++ {
		v.data[v.finish] = cloneValue(value)
	}
}

// grow doubles a full buffer, or allocates DEFAULT_INIT_CAP slots for an
// unallocated one.
func (v *Vector[T]) grow() {
	if v.finish < len(v.data) {
		return
	}
	newCap := DEFAULT_INIT_CAP
	if len(v.data) > 0 {
		newCap = len(v.data) * GROWTH_RATIO
	}
	v.Reserve(newCap)
}

func (v *Vector[T]) PushBack(x T) {
	v.grow()
	v.data[v.finish] = x
	v.finish++
}

func (v *Vector[T]) PopBack() {
	mustHold(v.finish > 0, ERR_EMPTY)
	v.finish--
	v.clearRange(v.finish, v.finish+1)
}

// Insert places x at pos, shifting the tail one slot right. pos may equal
// Size(), which appends.
func (v *Vector[T]) Insert(pos int, x T) {
	mustHold(pos >= 0 && pos <= v.finish, ERR_BAD_POSITION)
	// pos is an offset, so it survives the reallocation in grow
	v.grow()
	copy(v.data[pos+1:v.finish+1], v.data[pos:v.finish])
	v.data[pos] = x
	v.finish++
}

// Erase removes the element at pos, shifting the tail left, and returns
// pos, which now names the element that followed the erased one.
func (v *Vector[T]) Erase(pos int) int {
	mustHold(v.finish > 0, ERR_EMPTY)
	mustHold(pos >= 0 && pos < v.finish, ERR_OUT_OF_RANGE)
	copy(v.data[pos:], v.data[pos+1:v.finish])
	v.finish--
	v.clearRange(v.finish, v.finish+1)
	return pos
}

// Clear drops every element but keeps the buffer.
func (v *Vector[T]) Clear() {
	v.clearRange(0, v.finish)
	v.finish = 0
}

// zero the slots so the buffer does not pin released values
func (v *Vector[T]) clearRange(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		v.data[i] = zero
	}
}

// Swap exchanges the buffers of v and o in O(1).
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.data, o.data = o.data, v.data
	v.finish, o.finish = o.finish, v.finish
}

func (v *Vector[T]) At(i int) T {
	mustHold(i >= 0 && i < v.finish, ERR_OUT_OF_RANGE)
	return v.data[i]
}

func (v *Vector[T]) Set(i int, x T) {
	mustHold(i >= 0 && i < v.finish, ERR_OUT_OF_RANGE)
	v.data[i] = x
}

func (v *Vector[T]) Front() T {
	mustHold(v.finish > 0, ERR_EMPTY)
	return v.data[0]
}

func (v *Vector[T]) Back() T {
	mustHold(v.finish > 0, ERR_EMPTY)
	return v.data[v.finish-1]
}

// Data returns the valid region. The slice aliases v and is invalidated
// by the next reallocation.
func (v *Vector[T]) Data() []T {
	if v.finish == 0 {
		return nil
	}
	return v.data[:v.finish]
}

func (v *Vector[T]) Begin() Iter[T] {
	return Iter[T]{c: v, i: 0}
}

func (v *Vector[T]) End() Iter[T] {
	return Iter[T]{c: v, i: v.finish}
}

// Clone returns a deep copy with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := new(Vector[T])
	c.Reserve(len(v.data))
	for i := 0; i < v.finish; i++ {
		c.PushBack(cloneValue(v.data[i]))
	}
	return c
}

// Assign replaces the contents of v with a deep copy of o. The copy is
// built first and then swapped in, so v is never left half assigned and
// assigning v to itself is a no-op in effect.
func (v *Vector[T]) Assign(o *Vector[T]) {
	if v == o {
		return
	}
	tmp := o.Clone()
	v.Swap(tmp)
}
