package src

import "simple-stl/utils"

func assertVector(o *STLobj) *Vector[*String] {
	v, ok := o.Val.(*Vector[*String])
	if !ok {
		utils.Error("assertVector err: ", o.Typ)
	}
	return v
}

func assertString(o *STLobj) *String {
	s, ok := o.Val.(*String)
	if !ok {
		utils.Error("assertString err: ", o.Typ)
	}
	return s
}

func assertList(o *STLobj) *List[*String] {
	l, ok := o.Val.(*List[*String])
	if !ok {
		utils.Error("assertList err: ", o.Typ)
	}
	return l
}

func assertHeap(o *STLobj) *heapObj {
	h, ok := o.Val.(*heapObj)
	if !ok {
		utils.Error("assertHeap err: ", o.Typ)
	}
	return h
}

func assertQueue(o *STLobj) *queueObj {
	q, ok := o.Val.(*queueObj)
	if !ok {
		utils.Error("assertQueue err: ", o.Typ)
	}
	return q
}

func assertStack(o *STLobj) *stackObj {
	s, ok := o.Val.(*stackObj)
	if !ok {
		utils.Error("assertStack err: ", o.Typ)
	}
	return s
}
