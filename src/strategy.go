package src

import (
	"fmt"
	"strings"

	"simple-stl/utils"
)

// -----------------------------------------------------------------------------
// args
// -----------------------------------------------------------------------------

// ============================= splitArgs handle ==============================

type splitArgsHandleFunc func(line string, i int) (string, int, int)

var splitArgsHandleMap = map[byte]splitArgsHandleFunc{
	'"':  quotesHandle,
	'\'': singleQuotesHandle,
}

// initial is the first byte of the next argument; quoted arguments start
// after it.
func splitArgsHandle(initial byte, line string, i int) (string, int, int) {
	fn, ok := splitArgsHandleMap[initial]
	if !ok {
		return normalHandle(line, i)
	}
	return fn(line, i+1)
}

// -----------------------------------------------------------------------------
// stlobj
// -----------------------------------------------------------------------------

// ================================ object length =================================

type lengthObjectFunc func(o *STLobj) int

var lengthObjectMaps = map[STLType]lengthObjectFunc{
	STL_VECTOR: func(o *STLobj) int { return assertVector(o).Size() },
	STL_STRING: func(o *STLobj) int { return assertString(o).Size() },
	STL_LIST:   func(o *STLobj) int { return assertList(o).Size() },
	STL_PQUEUE: func(o *STLobj) int { return assertHeap(o).pq.Size() },
	STL_QUEUE:  func(o *STLobj) int { return assertQueue(o).q.Size() },
	STL_STACK:  func(o *STLobj) int { return assertStack(o).s.Size() },
}

func objectLength(o *STLobj) int {
	fn, ok := lengthObjectMaps[o.Typ]
	if !ok {
		utils.Error("Unknown object type: ", o.Typ)
	}
	return fn(o)
}

// ================================ object copy =================================

// dupObjectFunc returns a deep copy of o's container.
type dupObjectFunc func(o *STLobj) STLVal

var dupObjectMaps = map[STLType]dupObjectFunc{
	STL_VECTOR: func(o *STLobj) STLVal { return assertVector(o).Clone() },
	STL_STRING: func(o *STLobj) STLVal { return assertString(o).Clone() },
	STL_LIST:   func(o *STLobj) STLVal { return assertList(o).Clone() },
	STL_PQUEUE: dupHeap,
	STL_QUEUE: func(o *STLobj) STLVal {
		l := assertQueue(o).l.Clone()
		return &queueObj{l: l, q: NewQueueWith[*String](l)}
	},
	STL_STACK: func(o *STLobj) STLVal {
		l := assertStack(o).l.Clone()
		return &stackObj{l: l, s: NewStackWith[*String](l)}
	},
}

func dupHeap(o *STLobj) STLVal {
	h := assertHeap(o)
	return newHeapObj(h.seq.Clone(), h.order)
}

func dupObject(o *STLobj) *STLobj {
	fn, ok := dupObjectMaps[o.Typ]
	if !ok {
		utils.Error("Unknown object type: ", o.Typ)
	}
	return createSTLobj(o.Typ, fn(o))
}

// ================================ object assign =================================

// assignObjectFunc makes dst a deep copy of src; both have the same type.
type assignObjectFunc func(dst, src *STLobj)

var assignObjectMaps = map[STLType]assignObjectFunc{
	STL_VECTOR: func(dst, src *STLobj) { assertVector(dst).Assign(assertVector(src)) },
	STL_STRING: func(dst, src *STLobj) { assertString(dst).Assign(assertString(src)) },
	STL_LIST:   func(dst, src *STLobj) { assertList(dst).Assign(assertList(src)) },
	STL_PQUEUE: func(dst, src *STLobj) {
		d, s := assertHeap(dst), assertHeap(src)
		d.seq.Assign(s.seq)
		d.order = s.order
		d.pq = NewPriorityQueueWith[*String](d.seq, heapComparator(d.order))
	},
	STL_QUEUE: func(dst, src *STLobj) { assertQueue(dst).l.Assign(assertQueue(src).l) },
	STL_STACK: func(dst, src *STLobj) { assertStack(dst).l.Assign(assertStack(src).l) },
}

func assignObject(dst, src *STLobj) {
	fn, ok := assignObjectMaps[src.Typ]
	if !ok || dst.Typ != src.Typ {
		utils.Error("assignObject err: dst.Typ = ", dst.Typ, " src.Typ = ", src.Typ)
	}
	fn(dst, src)
}

// ================================ object swap =================================

type swapObjectFunc func(a, b *STLobj)

var swapObjectMaps = map[STLType]swapObjectFunc{
	STL_VECTOR: func(a, b *STLobj) { assertVector(a).Swap(assertVector(b)) },
	STL_STRING: func(a, b *STLobj) { assertString(a).Swap(assertString(b)) },
	STL_LIST:   func(a, b *STLobj) { assertList(a).Swap(assertList(b)) },
	STL_PQUEUE: func(a, b *STLobj) {
		x, y := assertHeap(a), assertHeap(b)
		*x, *y = *y, *x
	},
	STL_QUEUE: func(a, b *STLobj) {
		x, y := assertQueue(a), assertQueue(b)
		x.q.Swap(y.q)
		x.l, y.l = y.l, x.l
	},
	STL_STACK: func(a, b *STLobj) {
		x, y := assertStack(a), assertStack(b)
		x.s.Swap(y.s)
		x.l, y.l = y.l, x.l
	},
}

func swapObject(a, b *STLobj) {
	fn, ok := swapObjectMaps[a.Typ]
	if !ok || a.Typ != b.Typ {
		utils.Error("swapObject err: a.Typ = ", a.Typ, " b.Typ = ", b.Typ)
	}
	fn(a, b)
}

// -----------------------------------------------------------------------------
// config
// -----------------------------------------------------------------------------

// complex config parse function
type complexConfFunc func(conf *configVal, val string) error

var complexConfFuncMaps = map[string]complexConfFunc{
	"heaporder": func(conf *configVal, val string) error {
		if err := checkHeapOrder(val); err != nil {
			return err
		}
		conf.HeapOrder = val
		return nil
	},
	"loglevel": func(conf *configVal, val string) error {
		if _, ok := utils.ParseLevel(val); !ok {
			return fmt.Errorf("unknown log level %q", val)
		}
		conf.LogLevel = val
		return nil
	},
}

// return true complexConf,or false simpleConf
func complexConfHandle(conf *configVal, key, val string) (ok bool, err error) {
	var fn complexConfFunc
	if fn, ok = complexConfFuncMaps[strings.ToLower(key)]; ok {
		err = fn(conf, val)
	}
	return
}

// -----------------------------------------------------------------------------
// reply
// -----------------------------------------------------------------------------

// ================================ format reply string =================================

type strFormatFunc func(r *sstlReply, maxListing, width int) string

var strFormatFuncMaps = map[int]strFormatFunc{
	SIMPLE_STR:   func(r *sstlReply, _, _ int) string { return r.str },
	SIMPLE_ERROR: func(r *sstlReply, _, _ int) string { return fmt.Sprintf("(error) %s", r.str) },
	INTEGERS:     func(r *sstlReply, _, _ int) string { return fmt.Sprintf("(integer) %s", r.str) },
	BULK_STR:     bulkStrFormat,
	ARRAYS:       arraysFormat,
}

func strFormatHandle(r *sstlReply, maxListing, width int) string {
	if fn, ok := strFormatFuncMaps[r.typ]; ok {
		return fn(r, maxListing, width)
	}
	return ""
}
