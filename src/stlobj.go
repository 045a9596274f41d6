package src

import (
	"fmt"

	"github.com/ILkUVayne/utlis-go/v2/str"
)

type STLType uint8

type STLVal any

// STLobj is one keyspace value: a container tagged with its type.
type STLobj struct {
	Typ STLType
	Val STLVal
}

// heapObj keeps the vector a heap is laid out in, so the heap can be
// copied by cloning its storage.
type heapObj struct {
	seq   *Vector[*String]
	pq    *PriorityQueue[*String]
	order string
}

// queueObj and stackObj keep their backing list for the same reason.
type queueObj struct {
	l *List[*String]
	q *Queue[*String]
}

type stackObj struct {
	l *List[*String]
	s *Stack[*String]
}

func createSTLobj(typ STLType, ptr any) *STLobj {
	return &STLobj{Typ: typ, Val: ptr}
}

func createVectorObject() *STLobj {
	return createSTLobj(STL_VECTOR, NewVector[*String]())
}

func createStringObject(text string) *STLobj {
	return createSTLobj(STL_STRING, NewString(text))
}

func createListObject() *STLobj {
	return createSTLobj(STL_LIST, NewList[*String]())
}

func createPQueueObject(order string) *STLobj {
	return createSTLobj(STL_PQUEUE, newHeapObj(NewVector[*String](), order))
}

func newHeapObj(seq *Vector[*String], order string) *heapObj {
	return &heapObj{seq: seq, pq: NewPriorityQueueWith[*String](seq, heapComparator(order)), order: order}
}

func createQueueObject() *STLobj {
	l := NewList[*String]()
	return createSTLobj(STL_QUEUE, &queueObj{l: l, q: NewQueueWith[*String](l)})
}

func createStackObject() *STLobj {
	l := NewList[*String]()
	return createSTLobj(STL_STACK, &stackObj{l: l, s: NewStackWith[*String](l)})
}

func (o *STLobj) strType() string {
	switch o.Typ {
	case STL_VECTOR:
		return "vector"
	case STL_STRING:
		return "string"
	case STL_LIST:
		return "list"
	case STL_PQUEUE:
		return "pqueue"
	case STL_QUEUE:
		return "queue"
	case STL_STACK:
		return "stack"
	default:
		return UNKNOWN
	}
}

// checkType replies WRONGTYPE and returns false when o is not of type typ.
func (o *STLobj) checkType(c *sstlClient, typ STLType) bool {
	if o.Typ != typ {
		c.addReplyError(REPLY_WRONG_TY)
		return false
	}
	return true
}

//-----------------------------------------------------------------------------
// element ordering
//-----------------------------------------------------------------------------

// return 0 a == b, 1 a > b, -1 a < b
//
// Integers order by value and sort before everything else, which orders
// byte by byte.
func compareValues(a, b *String) int {
	var x, y int64
	aInt := str.String2Int64(a.String(), &x) == nil
	bInt := str.String2Int64(b.String(), &y) == nil
	switch {
	case aInt && bInt:
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case aInt:
		return -1
	case bInt:
		return 1
	}
	return a.Compare(b)
}

func equalValues(a, b *String) bool {
	return compareValues(a, b) == 0
}

// heapComparator returns the Comparator for a max or min heap of elements.
func heapComparator(order string) Comparator[*String] {
	if order == HEAP_ORDER_MIN {
		return func(x, y *String) bool { return compareValues(x, y) > 0 }
	}
	return func(x, y *String) bool { return compareValues(x, y) < 0 }
}

func checkHeapOrder(order string) error {
	if order != HEAP_ORDER_MAX && order != HEAP_ORDER_MIN {
		return fmt.Errorf("unknown heap order %q, want %s or %s", order, HEAP_ORDER_MAX, HEAP_ORDER_MIN)
	}
	return nil
}
