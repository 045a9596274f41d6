package src

import (
	"github.com/ILkUVayne/utlis-go/v2/flie"
	"github.com/ILkUVayne/utlis-go/v2/math"
	"github.com/ILkUVayne/utlis-go/v2/ulog"
)

//-----------------------------------------------------------------------------
// sys function
//-----------------------------------------------------------------------------

func absolutePath(file string) string {
	if len(file) > 0 && file[0] == '/' {
		return file
	}
	str, err := flie.Home()
	if err != nil {
		ulog.Error(err)
	}
	return str + "/" + file
}

// HistoryFile resolves a history file name against $HOME.
func HistoryFile(file string) string {
	return absolutePath(file)
}

//-----------------------------------------------------------------------------
// match function
//-----------------------------------------------------------------------------

func equalByte(a, b byte, noCase bool) bool {
	if noCase {
		return math.Uint8ToLower(a) == math.Uint8ToLower(b)
	}
	return a == b
}

// matchClass matches c against the [...] class whose body starts at
// pattern[p]. It returns the index of the closing ']' (or of the last byte
// when the class is unterminated).
func matchClass(pattern string, p int, c byte, noCase bool) (bool, int) {
	not, match := false, false
	if p < len(pattern) && pattern[p] == '^' {
		not = true
		p++
	}
	for p < len(pattern) && pattern[p] != ']' {
		switch {
		case pattern[p] == '\\' && p+1 < len(pattern):
			p++
			if equalByte(pattern[p], c, noCase) {
				match = true
			}
		case p+2 < len(pattern) && pattern[p+1] == '-' && pattern[p+2] != ']':
			start, end, ch := pattern[p], pattern[p+2], c
			if start > end {
				start, end = end, start
			}
			if noCase {
				start = math.Uint8ToLower(start)
				end = math.Uint8ToLower(end)
				ch = math.Uint8ToLower(ch)
			}
			if ch >= start && ch <= end {
				match = true
			}
			p += 2
		default:
			if equalByte(pattern[p], c, noCase) {
				match = true
			}
		}
		p++
	}
	if p == len(pattern) {
		p--
	}
	if not {
		match = !match
	}
	return match, p
}

// StringMatch reports whether str matches the glob pattern. Supported:
// * any run, ? any byte, [abc] [^abc] [a-z] classes and \ escapes.
func StringMatch(pattern, str string, noCase bool) bool {
	p, i := 0, 0
	for p < len(pattern) {
		switch pattern[p] {
		case '*':
			for p+1 < len(pattern) && pattern[p+1] == '*' {
				p++
			}
			if p+1 == len(pattern) {
				return true
			}
			for j := i; j <= len(str); j++ {
				if StringMatch(pattern[p+1:], str[j:], noCase) {
					return true
				}
			}
			return false
		case '?':
			if i == len(str) {
				return false
			}
			i++
		case '[':
			if i == len(str) {
				return false
			}
			match, end := matchClass(pattern, p+1, str[i], noCase)
			if !match {
				return false
			}
			p = end
			i++
		case '\\':
			if p+1 < len(pattern) {
				p++
			}
			fallthrough
		default:
			if i == len(str) || !equalByte(pattern[p], str[i], noCase) {
				return false
			}
			i++
		}
		p++
	}
	return i == len(str)
}
