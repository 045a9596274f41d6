package src

import (
	"fmt"
	"strconv"
	"strings"
)

// sstlReply is the result of one command, formatted the way redis-cli
// prints replies.
type sstlReply struct {
	typ   int
	str   string
	isNil bool
	elems []string
}

// shared replies that carry no per-command data
var shared = struct {
	ok       *sstlReply
	czero    *sstlReply
	cone     *sstlReply
	nullBulk *sstlReply
	noKeyErr *sstlReply
	syntax   *sstlReply
	notInt   *sstlReply
}{
	ok:       &sstlReply{typ: SIMPLE_STR, str: REPLY_OK},
	czero:    &sstlReply{typ: INTEGERS, str: "0"},
	cone:     &sstlReply{typ: INTEGERS, str: "1"},
	nullBulk: &sstlReply{typ: BULK_STR, isNil: true},
	noKeyErr: &sstlReply{typ: SIMPLE_ERROR, str: REPLY_NO_KEY},
	syntax:   &sstlReply{typ: SIMPLE_ERROR, str: REPLY_SYNTAX},
	notInt:   &sstlReply{typ: SIMPLE_ERROR, str: REPLY_NOT_INT},
}

// format renders r. At most maxListing array items are printed; lines are
// clipped to width when width > 0.
func (r *sstlReply) format(maxListing, width int) string {
	return strFormatHandle(r, maxListing, width)
}

func bulkStrFormat(r *sstlReply, _, width int) string {
	if r.isNil {
		return NIL_STR
	}
	return clipLine(fmt.Sprintf("\"%s\"", r.str), width)
}

// one numbered line per item, e.g. 1) "a"
func arraysFormat(r *sstlReply, maxListing, width int) string {
	if len(r.elems) == 0 {
		return EMPTY_ARR
	}
	n := len(r.elems)
	if maxListing > 0 && n > maxListing {
		n = maxListing
	}
	pad := len(strconv.Itoa(n))
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		line := fmt.Sprintf("%*d) \"%s\"", pad, i+1, r.elems[i])
		sb.WriteString(clipLine(line, width))
	}
	if n < len(r.elems) {
		sb.WriteString(fmt.Sprintf("\n... (%d more)", len(r.elems)-n))
	}
	return sb.String()
}

// clipLine cuts line to width columns, marking the cut with "...".
func clipLine(line string, width int) string {
	if width <= 3 || len(line) <= width {
		return line
	}
	return line[:width-3] + "..."
}
