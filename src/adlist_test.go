package src

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listValues[T any](l *List[T]) []T {
	out := make([]T, 0)
	li := l.Rewind()
	for v, ok := li.Next(); ok; v, ok = li.Next() {
		out = append(out, v)
	}
	return out
}

// ring walks next pointers from the sentinel and counts the steps back.
func ringSteps[T any](l *List[T]) int {
	steps := 1
	for n := l.head.next; n != l.head; n = n.next {
		steps++
	}
	return steps
}

func TestListSize(t *testing.T) {
	l := NewList[int]()
	assert.Equal(t, 0, l.Size())
	assert.True(t, l.Empty())
	l.PushFront(1)
	assert.Equal(t, 1, l.Size())
	assert.False(t, l.Empty())
	l.PushBack(2)
	assert.Equal(t, ringSteps(l), l.Size()+1)
}

func TestListZeroValue(t *testing.T) {
	var l List[string]
	assert.True(t, l.Empty())
	l.PushBack("a")
	assert.Equal(t, []string{"a"}, listValues(&l))
}

func TestListFrontBack(t *testing.T) {
	l := NewListFrom(1, 2, 3)
	assert.Equal(t, 1, l.Front())
	assert.Equal(t, 3, l.Back())
	l.PushFront(0)
	assert.Equal(t, 0, l.Front())
	assert.PanicsWithValue(t, ERR_EMPTY, func() { NewList[int]().Front() })
	assert.PanicsWithValue(t, ERR_EMPTY, func() { NewList[int]().Back() })
}

func TestListInsert(t *testing.T) {
	l := NewListFrom(1, 3)
	pos := l.Begin().Next()
	it := l.Insert(pos, 2)
	assert.Equal(t, 2, it.Value())
	assert.Equal(t, []int{1, 2, 3}, listValues(l))
	// the position insert was given still points at its node
	assert.Equal(t, 3, pos.Value())

	l.Insert(l.End(), 4)
	l.Insert(l.Begin(), 0)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, listValues(l))
}

func TestListErase(t *testing.T) {
	t.Run("returns the successor", func(t *testing.T) {
		l := NewListFrom(1, 2, 3)
		it := l.Erase(l.Begin())
		assert.Equal(t, 2, it.Value())
		assert.Equal(t, []int{2, 3}, listValues(l))
	})

	t.Run("every position", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			l := NewListFrom(10, 20, 30, 40)
			pos := l.Begin()
			for j := 0; j < i; j++ {
				pos = pos.Next()
			}
			succ := pos.Next()
			before := l.Size()
			got := l.Erase(pos)
			assert.True(t, got.Equal(succ))
			assert.Equal(t, before-1, l.Size())
		}
	})

	t.Run("other positions survive", func(t *testing.T) {
		l := NewListFrom(1, 2, 3)
		first := l.Begin()
		last := l.End().Prev()
		l.Erase(first.Next())
		assert.Equal(t, 1, first.Value())
		assert.Equal(t, 3, last.Value())
	})

	t.Run("end cannot be erased", func(t *testing.T) {
		l := NewListFrom(1)
		assert.PanicsWithValue(t, ERR_END_POSITION, func() { l.Erase(l.End()) })
		assert.PanicsWithValue(t, ERR_END_POSITION, func() { l.End().Value() })
	})
}

func TestListPushPop(t *testing.T) {
	l := NewList[string]()
	l.PushBack("b")
	l.PushFront("a")
	l.PushBack("c")
	assert.Equal(t, []string{"a", "b", "c"}, listValues(l))
	l.PopFront()
	assert.Equal(t, []string{"b", "c"}, listValues(l))
	l.PopBack()
	assert.Equal(t, []string{"b"}, listValues(l))
	l.PopBack()
	assert.True(t, l.Empty())
	assert.PanicsWithValue(t, ERR_EMPTY, func() { l.PopBack() })
	assert.PanicsWithValue(t, ERR_EMPTY, func() { l.PopFront() })
}

func TestListResize(t *testing.T) {
	l := NewListFrom(1, 2, 3, 4)
	l.Resize(2, 0)
	assert.Equal(t, []int{1, 2}, listValues(l))
	l.Resize(5, 7)
	assert.Equal(t, []int{1, 2, 7, 7, 7}, listValues(l))
	l.Resize(5, 9)
	assert.Equal(t, 5, l.Size())
	l.Resize(0, 0)
	assert.True(t, l.Empty())
}

func TestListClear(t *testing.T) {
	l := NewListFrom(1, 2, 3)
	l.Clear()
	assert.True(t, l.Empty())
	assert.Equal(t, 1, ringSteps(l))
	l.PushBack(4)
	assert.Equal(t, []int{4}, listValues(l))
}

func TestListSwap(t *testing.T) {
	a := NewListFrom(1, 2)
	b := NewListFrom(3)
	it := a.Begin()
	a.Swap(b)
	assert.Equal(t, []int{3}, listValues(a))
	assert.Equal(t, []int{1, 2}, listValues(b))
	// positions follow their nodes into the other list
	assert.True(t, it.Equal(b.Begin()))
}

func TestListCloneAssign(t *testing.T) {
	a := NewListFrom(NewString("x"), NewString("y"))
	b := a.Clone()
	b.Front().Append("!")
	assert.Equal(t, "x", a.Front().String())
	assert.Equal(t, "x!", b.Front().String())

	c := NewListFrom(NewString("old"))
	c.Assign(a)
	require.Equal(t, 2, c.Size())
	assert.Equal(t, "y", c.Back().String())
	assert.NotSame(t, a.Back(), c.Back())

	a.Assign(a)
	assert.Equal(t, 2, a.Size())
}

func TestListFind(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	l := NewListFrom(5, 6, 7)
	it := l.Find(6, eq)
	assert.Equal(t, 6, it.Value())
	assert.True(t, l.Find(9, eq).Equal(l.End()))

	assert.True(t, l.Remove(6, eq))
	assert.False(t, l.Remove(6, eq))
	assert.Equal(t, []int{5, 7}, listValues(l))
}

func TestListRewindTail(t *testing.T) {
	l := NewListFrom(1, 2, 3)
	li := l.RewindTail()
	got := make([]int, 0)
	for v, ok := li.Next(); ok; v, ok = li.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)

	_, ok := NewList[int]().Rewind().Next()
	assert.False(t, ok)
}

func TestListIterBidirectional(t *testing.T) {
	l := NewListFrom(1, 2, 3)
	it := l.End().Prev()
	assert.Equal(t, 3, it.Value())
	it = it.Prev().Prev()
	assert.Equal(t, 1, it.Value())
	assert.True(t, it.Prev().Equal(l.End()))
	it.Set(100)
	assert.Equal(t, 100, l.Front())
}
