// Package src 容器库与 playground cli
package src

import (
	"strconv"
)

// stlError is the value every broken precondition panics with.
type stlError int

func (e stlError) Error() string {
	if 0 <= int(e) && int(e) < len(stlErrors) {
		s := stlErrors[e]
		if s != "" {
			return s
		}
	}
	return "errno " + strconv.Itoa(int(e))
}

var stlErrors = [...]string{
	0x01: "index out of range",
	0x02: "container is empty",
	0x03: "position is end()",
	0x04: "position is beyond size",
	0x05: "nil backing sequence",
	0x06: "nil comparator",
	0x07: "position belongs to another container",
	0x08: "negative size",
}

// mustHold aborts the current operation with e unless cond is true.
func mustHold(cond bool, e stlError) {
	if !cond {
		panic(e)
	}
}

// IsContractViolation reports whether v, typically a recovered panic value,
// is one of the container precondition errors.
func IsContractViolation(v any) bool {
	_, ok := v.(stlError)
	return ok
}
