package src

import (
	"bytes"
	"io"
)

// String is a growable byte buffer that keeps a TERMINATOR byte right
// after its valid region, like a C string.
//
// buf holds capacity+1 bytes, buf[:size] is the text and buf[size] is
// always TERMINATOR. The zero value is an empty string.
type String struct {
	buf  []byte
	size int
}

var _ io.WriterTo = (*String)(nil)

// NewString copies text into a new String whose capacity equals its size.
func NewString(text string) *String {
	s := &String{buf: make([]byte, len(text)+1), size: len(text)}
	copy(s.buf, text)
	return s
}

// lazily give a zero String its terminator
func (s *String) init() {
	if s.buf == nil {
		s.buf = make([]byte, 1)
	}
}

func (s *String) Size() int {
	return s.size
}

func (s *String) Capacity() int {
	if s.buf == nil {
		return 0
	}
	return len(s.buf) - 1
}

func (s *String) Empty() bool {
	return s.size == 0
}

// Reserve grows the capacity to exactly n when n exceeds it. The text and
// its terminator are copied before the old buffer is dropped.
func (s *String) Reserve(n int) {
	mustHold(n >= 0, ERR_NEGATIVE_SIZE)
	s.init()
	if n <= s.Capacity() {
		return
	}
	tmp := make([]byte, n+1)
	copy(tmp, s.buf[:s.size+1])
	s.buf = tmp
}

// Resize truncates to n bytes, or pads with c up to n bytes.
func (s *String) Resize(n int, c byte) {
	mustHold(n >= 0, ERR_NEGATIVE_SIZE)
	s.init()
	if n <= s.size {
		s.size = n
		s.buf[s.size] = TERMINATOR
		return
	}
	if n > s.Capacity() {
		s.Reserve(n)
	}
	for i := s.size; i < n; i++ {
		s.buf[i] = c
	}
	s.size = n
	s.buf[s.size] = TERMINATOR
}

// grow makes room for one more byte, doubling a full buffer.
func (s *String) grow() {
	s.init()
	if s.size < s.Capacity() {
		return
	}
	newCap := DEFAULT_INIT_CAP
	if s.Capacity() > 0 {
		newCap = s.Capacity() * GROWTH_RATIO
	}
	s.Reserve(newCap)
}

func (s *String) PushBack(c byte) {
	s.grow()
	s.buf[s.size] = c
	s.buf[s.size+1] = TERMINATOR
	s.size++
}

func (s *String) Append(text string) {
	s.appendBytes([]byte(text))
}

// AppendString appends the text of o, which may be s itself.
func (s *String) AppendString(o *String) {
	s.appendBytes(o.Bytes())
}

func (s *String) appendBytes(p []byte) {
	s.init()
	n := s.size + len(p)
	if n > s.Capacity() {
		s.Reserve(n)
	}
	copy(s.buf[s.size:], p)
	s.size = n
	s.buf[s.size] = TERMINATOR
}

// Insert puts c at pos, shifting the tail (terminator included) right by
// one. pos may equal Size().
func (s *String) Insert(pos int, c byte) *String {
	mustHold(pos >= 0 && pos <= s.size, ERR_BAD_POSITION)
	s.grow()
	copy(s.buf[pos+1:s.size+2], s.buf[pos:s.size+1])
	s.buf[pos] = c
	s.size++
	return s
}

// InsertString puts text at pos, shifting the tail right by len(text).
func (s *String) InsertString(pos int, text string) *String {
	mustHold(pos >= 0 && pos <= s.size, ERR_BAD_POSITION)
	s.init()
	l := len(text)
	if s.size+l > s.Capacity() {
		s.Reserve(s.size + l)
	}
	copy(s.buf[pos+l:s.size+l+1], s.buf[pos:s.size+1])
	copy(s.buf[pos:pos+l], text)
	s.size += l
	return s
}

// Erase removes up to n bytes starting at pos. When n reaches past the end
// the string is truncated at pos, otherwise the remainder shifts left.
func (s *String) Erase(pos, n int) *String {
	mustHold(pos >= 0 && pos < s.size, ERR_OUT_OF_RANGE)
	mustHold(n >= 0, ERR_NEGATIVE_SIZE)
	if n >= s.size-pos {
		s.size = pos
		s.buf[s.size] = TERMINATOR
		return s
	}
	copy(s.buf[pos:], s.buf[pos+n:s.size+1])
	s.size -= n
	return s
}

func (s *String) Clear() {
	s.init()
	s.size = 0
	s.buf[0] = TERMINATOR
}

func (s *String) Swap(o *String) {
	s.buf, o.buf = o.buf, s.buf
	s.size, o.size = o.size, s.size
}

func (s *String) At(i int) byte {
	mustHold(i >= 0 && i < s.size, ERR_OUT_OF_RANGE)
	return s.buf[i]
}

func (s *String) Set(i int, c byte) {
	mustHold(i >= 0 && i < s.size, ERR_OUT_OF_RANGE)
	s.buf[i] = c
}

// CStr returns the text followed by its terminator.
func (s *String) CStr() []byte {
	s.init()
	return s.buf[:s.size+1]
}

// Bytes returns the valid region, aliasing s.
func (s *String) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf[:s.size]
}

func (s *String) String() string {
	return string(s.Bytes())
}

func (s *String) Begin() Iter[byte] {
	return Iter[byte]{c: s, i: 0}
}

func (s *String) End() Iter[byte] {
	return Iter[byte]{c: s, i: s.size}
}

// Clone returns an independent copy of the text.
func (s *String) Clone() *String {
	c := &String{buf: make([]byte, s.size+1), size: s.size}
	copy(c.buf, s.Bytes())
	return c
}

// Assign copies o into s by building a copy and swapping it in.
func (s *String) Assign(o *String) *String {
	if s != o {
		tmp := o.Clone()
		s.Swap(tmp)
	}
	return s
}

//-----------------------------------------------------------------------------
// search
//-----------------------------------------------------------------------------

// Find returns the first index >= pos holding c, or NPOS.
func (s *String) Find(c byte, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < s.size; i++ {
		if s.buf[i] == c {
			return i
		}
	}
	return NPOS
}

// FindString returns the first index >= pos where text starts, or NPOS.
func (s *String) FindString(text string, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos >= s.size {
		return NPOS
	}
	i := bytes.Index(s.buf[pos:s.size], []byte(text))
	if i < 0 {
		return NPOS
	}
	return pos + i
}

// mirror maps pos onto the reversed text and clamps it to the last byte.
func (s *String) mirror(pos int) int {
	if pos < 0 || pos >= s.size {
		pos = s.size - 1
	}
	return s.size - 1 - pos
}

// RFind returns the last index <= pos holding c, or NPOS. It searches a
// reversed copy forward from the mirrored position and maps the hit back.
func (s *String) RFind(c byte, pos int) int {
	if s.size == 0 {
		return NPOS
	}
	tmp := s.Clone()
	reverseBytes(tmp.Bytes())
	ret := tmp.Find(c, s.mirror(pos))
	if ret == NPOS {
		return NPOS
	}
	return s.size - 1 - ret
}

// RFindString returns the start of the last occurrence of text whose last
// byte lies at or before pos, or NPOS.
func (s *String) RFindString(text string, pos int) int {
	l := len(text)
	if l == 0 {
		if pos < 0 || pos > s.size {
			return s.size
		}
		return pos
	}
	if s.size == 0 || l > s.size {
		return NPOS
	}
	tmp := s.Clone()
	reverseBytes(tmp.Bytes())
	needle := []byte(text)
	reverseBytes(needle)
	ret := tmp.FindString(string(needle), s.mirror(pos))
	if ret == NPOS {
		return NPOS
	}
	return s.size - ret - l
}

func reverseBytes(p []byte) {
	for left, right := 0, len(p)-1; left < right; left, right = left+1, right-1 {
		p[left], p[right] = p[right], p[left]
	}
}

//-----------------------------------------------------------------------------
// compare
//-----------------------------------------------------------------------------

// Compare returns 0 if s == o, -1 if s < o, 1 if s > o, byte by byte.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

func (s *String) Equal(o *String) bool        { return s.Compare(o) == 0 }
func (s *String) NotEqual(o *String) bool     { return s.Compare(o) != 0 }
func (s *String) Less(o *String) bool         { return s.Compare(o) < 0 }
func (s *String) LessEqual(o *String) bool    { return s.Compare(o) <= 0 }
func (s *String) Greater(o *String) bool      { return s.Compare(o) > 0 }
func (s *String) GreaterEqual(o *String) bool { return s.Compare(o) >= 0 }

//-----------------------------------------------------------------------------
// textual io
//-----------------------------------------------------------------------------

// WriteTo writes the text, without its terminator, to w.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// ReadToken replaces s with the bytes read up to the next space or
// newline. The delimiter is consumed and dropped. io.EOF is returned only
// when the input ended before any byte was read.
func (s *String) ReadToken(r io.ByteReader) error {
	return s.readUntil(r, func(c byte) bool { return c == ' ' || c == '\n' })
}

// ReadLine replaces s with the bytes read up to the next newline, which is
// consumed and dropped.
func (s *String) ReadLine(r io.ByteReader) error {
	return s.readUntil(r, func(c byte) bool { return c == '\n' })
}

func (s *String) readUntil(r io.ByteReader, delim func(c byte) bool) error {
	s.Clear()
	read := 0
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && read > 0 {
				return nil
			}
			return err
		}
		read++
		if delim(c) {
			return nil
		}
		s.PushBack(c)
	}
}
