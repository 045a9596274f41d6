package src

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// terminated checks that buf[size] == TERMINATOR.
func terminated(t *testing.T, s *String) {
	t.Helper()
	cs := s.CStr()
	require.Len(t, cs, s.Size()+1)
	assert.Equal(t, TERMINATOR, cs[s.Size()])
}

func TestNewString(t *testing.T) {
	s := NewString("hello")
	assert.Equal(t, 5, s.Size())
	assert.Equal(t, 5, s.Capacity())
	assert.Equal(t, "hello", s.String())
	terminated(t, s)

	var z String
	assert.True(t, z.Empty())
	assert.Equal(t, 0, z.Capacity())
	terminated(t, &z)
}

func TestStringPushBack(t *testing.T) {
	var s String
	caps := make([]int, 0)
	for _, c := range []byte("abcde") {
		s.PushBack(c)
		caps = append(caps, s.Capacity())
		terminated(t, &s)
	}
	assert.Equal(t, []int{4, 4, 4, 4, 8}, caps)
	assert.Equal(t, "abcde", s.String())
}

func TestStringAppend(t *testing.T) {
	s := NewString("ab")
	s.Append("cdef")
	assert.Equal(t, "abcdef", s.String())
	assert.Equal(t, 6, s.Capacity())
	terminated(t, s)

	s.AppendString(s)
	assert.Equal(t, "abcdefabcdef", s.String())
	terminated(t, s)

	s.Append("")
	assert.Equal(t, 12, s.Size())
}

func TestStringInsert(t *testing.T) {
	s := NewString("ab")
	s.InsertString(1, "XY")
	assert.Equal(t, "aXYb", s.String())
	assert.Equal(t, 4, s.Size())
	terminated(t, s)

	s.Insert(0, '<')
	s.Insert(s.Size(), '>')
	assert.Equal(t, "<aXYb>", s.String())
	terminated(t, s)

	s.InsertString(s.Size(), "!!")
	assert.Equal(t, "<aXYb>!!", s.String())

	assert.PanicsWithValue(t, ERR_BAD_POSITION, func() { s.Insert(s.Size()+1, 'x') })
	assert.PanicsWithValue(t, ERR_BAD_POSITION, func() { s.InsertString(-1, "x") })
}

func TestStringErase(t *testing.T) {
	t.Run("shift remainder left", func(t *testing.T) {
		s := NewString("hello world")
		s.Erase(5, 6)
		assert.Equal(t, "hello", s.String())
		terminated(t, s)

		s = NewString("hello world")
		s.Erase(0, 6)
		assert.Equal(t, "world", s.String())
		terminated(t, s)
	})

	t.Run("clamp to the tail", func(t *testing.T) {
		s := NewString("hello")
		s.Erase(2, NPOS)
		assert.Equal(t, "he", s.String())
		terminated(t, s)
	})

	t.Run("position must be inside", func(t *testing.T) {
		s := NewString("hi")
		assert.PanicsWithValue(t, ERR_OUT_OF_RANGE, func() { s.Erase(2, 1) })
		assert.PanicsWithValue(t, ERR_OUT_OF_RANGE, func() { NewString("").Erase(0, 1) })
	})
}

func TestStringAppendEraseRoundTrip(t *testing.T) {
	for _, base := range []string{"", "a", "hello", "with space"} {
		for _, text := range []string{"x", "tail", "  \n"} {
			b := NewString(base)
			b.Append(text)
			b.Erase(b.Size()-len(text), len(text))
			assert.Equal(t, base, b.String())
			terminated(t, b)
		}
	}
}

func TestStringResize(t *testing.T) {
	s := NewString("abc")
	s.Resize(6, 'z')
	assert.Equal(t, "abczzz", s.String())
	terminated(t, s)
	s.Resize(1, 'z')
	assert.Equal(t, "a", s.String())
	assert.Equal(t, 6, s.Capacity())
	terminated(t, s)
}

func TestStringReserve(t *testing.T) {
	s := NewString("abc")
	s.Reserve(20)
	assert.Equal(t, 20, s.Capacity())
	assert.Equal(t, "abc", s.String())
	terminated(t, s)
	s.Reserve(3)
	assert.Equal(t, 20, s.Capacity())
}

func TestStringClearSwap(t *testing.T) {
	a := NewString("left")
	b := NewString("right")
	a.Swap(b)
	assert.Equal(t, "right", a.String())
	assert.Equal(t, "left", b.String())

	a.Clear()
	assert.True(t, a.Empty())
	assert.Equal(t, 5, a.Capacity())
	terminated(t, a)
}

func TestStringAccess(t *testing.T) {
	s := NewString("abc")
	assert.Equal(t, byte('b'), s.At(1))
	s.Set(1, 'B')
	assert.Equal(t, "aBc", s.String())
	assert.PanicsWithValue(t, ERR_OUT_OF_RANGE, func() { s.At(3) })

	upper := 0
	for it := s.Begin(); !it.Equal(s.End()); it = it.Next() {
		if it.Value() >= 'A' && it.Value() <= 'Z' {
			upper++
		}
	}
	assert.Equal(t, 1, upper)
}

func TestStringFind(t *testing.T) {
	s := NewString("hello")
	assert.Equal(t, NPOS, s.Find('z', 0))
	assert.Equal(t, 2, s.Find('l', 0))
	assert.Equal(t, 3, s.Find('l', 3))
	assert.Equal(t, NPOS, s.Find('h', 1))
	assert.Equal(t, NPOS, s.Find('h', 10))

	assert.Equal(t, 1, s.FindString("ell", 0))
	assert.Equal(t, NPOS, s.FindString("ell", 2))
	assert.Equal(t, NPOS, s.FindString("lol", 0))
	assert.Equal(t, NPOS, NewString("").FindString("a", 0))
}

func TestStringRFind(t *testing.T) {
	s := NewString("hello")
	assert.Equal(t, 3, s.RFind('l', NPOS))
	assert.Equal(t, 3, s.RFind('l', 3))
	assert.Equal(t, 2, s.RFind('l', 2))
	assert.Equal(t, NPOS, s.RFind('l', 1))
	assert.Equal(t, 0, s.RFind('h', 4))
	assert.Equal(t, NPOS, s.RFind('z', NPOS))
	assert.Equal(t, NPOS, NewString("").RFind('a', NPOS))

	// search copy is reversed, s is untouched
	assert.Equal(t, "hello", s.String())
}

func TestStringRFindString(t *testing.T) {
	s := NewString("abcabc")
	assert.Equal(t, 3, s.RFindString("abc", NPOS))
	assert.Equal(t, 4, s.RFindString("bc", NPOS))
	// pos bounds the last byte of the match
	assert.Equal(t, 1, s.RFindString("bc", 3))
	assert.Equal(t, 1, s.RFindString("bc", 2))
	assert.Equal(t, NPOS, s.RFindString("bc", 1))
	assert.Equal(t, 0, s.RFindString("abcabc", NPOS))
	assert.Equal(t, NPOS, s.RFindString("abcabcd", NPOS))
	assert.Equal(t, NPOS, s.RFindString("cab", 3))
	assert.Equal(t, 2, s.RFindString("cab", 4))
}

func TestStringFindSingleOccurrenceSymmetry(t *testing.T) {
	s := NewString("the quick brown fox")
	for i := 0; i < s.Size(); i++ {
		c := s.At(i)
		if strings.Count(s.String(), string(c)) != 1 {
			continue
		}
		assert.Equal(t, i, s.Find(c, 0), "find %q", c)
		assert.Equal(t, i, s.RFind(c, NPOS), "rfind %q", c)
	}
}

func TestStringCompare(t *testing.T) {
	a := NewString("abc")
	b := NewString("abd")
	p := NewString("ab")

	assert.True(t, a.Less(b))
	assert.True(t, b.Greater(a))
	assert.True(t, p.Less(a))
	assert.True(t, a.GreaterEqual(p))
	assert.True(t, a.LessEqual(a.Clone()))
	assert.True(t, a.Equal(NewString("abc")))
	assert.True(t, a.NotEqual(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, p.Compare(a))
}

func TestStringCloneAssign(t *testing.T) {
	a := NewString("abc")
	b := a.Clone()
	b.Set(0, 'X')
	assert.Equal(t, "abc", a.String())

	c := NewString("something longer")
	c.Assign(a)
	assert.Equal(t, "abc", c.String())
	c.Append("d")
	assert.Equal(t, "abc", a.String())

	a.Assign(a)
	assert.Equal(t, "abc", a.String())
}

func TestStringWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewString("out put").WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "out put", buf.String())
}

func TestStringReadToken(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("one two\nthree"))
	s := NewString("stale")

	require.NoError(t, s.ReadToken(r))
	assert.Equal(t, "one", s.String())
	require.NoError(t, s.ReadToken(r))
	assert.Equal(t, "two", s.String())
	require.NoError(t, s.ReadToken(r))
	assert.Equal(t, "three", s.String())
	assert.ErrorIs(t, s.ReadToken(r), io.EOF)
	assert.True(t, s.Empty())
}

func TestStringReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("first line\n\nlast"))
	s := new(String)

	require.NoError(t, s.ReadLine(r))
	assert.Equal(t, "first line", s.String())
	require.NoError(t, s.ReadLine(r))
	assert.Equal(t, "", s.String())
	require.NoError(t, s.ReadLine(r))
	assert.Equal(t, "last", s.String())
	assert.ErrorIs(t, s.ReadLine(r), io.EOF)
}
