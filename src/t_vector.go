package src

import (
	"simple-stl/cgo/qsort"
)

//-----------------------------------------------------------------------------
// Vector commands
//-----------------------------------------------------------------------------

func lookupVectorOrReply(c *sstlClient) *Vector[*String] {
	o := c.db.lookupKeyTypeOrReply(c, c.args[1], STL_VECTOR)
	if o == nil {
		return nil
	}
	return assertVector(o)
}

// vpush key value [value ...]
func vPushCommand(c *sstlClient) {
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_VECTOR, createVectorObject)
	if o == nil {
		return
	}
	v := assertVector(o)
	for _, e := range c.elemArgs(2) {
		v.PushBack(e)
	}
	c.addReplyLongLong(int64(v.Size()))
}

// vpop key
func vPopCommand(c *sstlClient) {
	v := lookupVectorOrReply(c)
	if v == nil {
		return
	}
	back := v.Back()
	v.PopBack()
	c.addReplyBulk(back)
}

// vget key index
func vGetCommand(c *sstlClient) {
	var i int
	v := lookupVectorOrReply(c)
	if v == nil || !c.getIntFromArgOrReply(2, &i) {
		return
	}
	c.addReplyBulk(v.At(i))
}

// vset key index value
func vSetCommand(c *sstlClient) {
	var i int
	v := lookupVectorOrReply(c)
	if v == nil || !c.getIntFromArgOrReply(2, &i) {
		return
	}
	v.Set(i, NewString(c.args[3]))
	c.setReply(shared.ok)
}

// vinsert key index value
func vInsertCommand(c *sstlClient) {
	var i int
	v := lookupVectorOrReply(c)
	if v == nil || !c.getIntFromArgOrReply(2, &i) {
		return
	}
	v.Insert(i, NewString(c.args[3]))
	c.addReplyLongLong(int64(v.Size()))
}

// verase key index
func vEraseCommand(c *sstlClient) {
	var i int
	v := lookupVectorOrReply(c)
	if v == nil || !c.getIntFromArgOrReply(2, &i) {
		return
	}
	v.Erase(i)
	c.addReplyLongLong(int64(v.Size()))
}

// vresize key size value
func vResizeCommand(c *sstlClient) {
	var n int
	if !c.getSizeFromArgOrReply(2, &n) {
		return
	}
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_VECTOR, createVectorObject)
	if o == nil {
		return
	}
	assertVector(o).Resize(n, NewString(c.args[3]))
	c.setReply(shared.ok)
}

// vreserve key capacity
func vReserveCommand(c *sstlClient) {
	var n int
	if !c.getSizeFromArgOrReply(2, &n) {
		return
	}
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_VECTOR, createVectorObject)
	if o == nil {
		return
	}
	v := assertVector(o)
	v.Reserve(n)
	c.addReplyLongLong(int64(v.Capacity()))
}

// vcap key
func vCapCommand(c *sstlClient) {
	o := c.db.lookupKeyOrReply(c, c.args[1], shared.czero)
	if o == nil || !o.checkType(c, STL_VECTOR) {
		return
	}
	c.addReplyLongLong(int64(assertVector(o).Capacity()))
}

// vrange key
func vRangeCommand(c *sstlClient) {
	o := c.db.lookupKeyOrReply(c, c.args[1], &sstlReply{typ: ARRAYS})
	if o == nil || !o.checkType(c, STL_VECTOR) {
		return
	}
	v := assertVector(o)
	elems := make([]string, 0, v.Size())
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		elems = append(elems, it.Value().String())
	}
	c.addReplyArray(elems)
}

// vsort key
//
// The elements are ordered through an index permutation, since C code may
// not hold on to the Go pointers the vector stores.
func vSortCommand(c *sstlClient) {
	v := lookupVectorOrReply(c)
	if v == nil {
		return
	}
	data := v.Data()
	perm := make([]int32, len(data))
	for i := range perm {
		perm[i] = int32(i)
	}
	qsort.Slice(perm, func(a, b int) bool {
		return compareValues(data[perm[a]], data[perm[b]]) < 0
	})
	sorted := make([]*String, len(data))
	for i, p := range perm {
		sorted[i] = data[p]
	}
	for i, e := range sorted {
		v.Set(i, e)
	}
	c.setReply(shared.ok)
}
