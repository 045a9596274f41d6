package src

//-----------------------------------------------------------------------------
// List commands
//-----------------------------------------------------------------------------

func pushGenericCommand(c *sstlClient, where int) {
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_LIST, createListObject)
	if o == nil {
		return
	}
	l := assertList(o)
	for _, e := range c.elemArgs(2) {
		if where == AL_START_HEAD {
			l.PushFront(e)
		} else {
			l.PushBack(e)
		}
	}
	c.addReplyLongLong(int64(l.Size()))
}

func popGenericCommand(c *sstlClient, where int) {
	o := c.db.lookupKeyTypeOrReply(c, c.args[1], STL_LIST)
	if o == nil {
		return
	}
	l := assertList(o)
	if where == AL_START_HEAD {
		c.addReplyBulk(l.Front())
		l.PopFront()
		return
	}
	c.addReplyBulk(l.Back())
	l.PopBack()
}

func rangeGenericCommand(c *sstlClient, where int) {
	o := c.db.lookupKeyOrReply(c, c.args[1], &sstlReply{typ: ARRAYS})
	if o == nil || !o.checkType(c, STL_LIST) {
		return
	}
	l := assertList(o)
	li := l.Rewind()
	if where == AL_START_TAIL {
		li = l.RewindTail()
	}
	elems := make([]string, 0)
	for e, ok := li.Next(); ok; e, ok = li.Next() {
		elems = append(elems, e.String())
	}
	c.addReplyArray(elems)
}

// lpush key value [value ...]
func lPushCommand(c *sstlClient) {
	pushGenericCommand(c, AL_START_HEAD)
}

// rpush key value [value ...]
func rPushCommand(c *sstlClient) {
	pushGenericCommand(c, AL_START_TAIL)
}

// lpop key
func lPopCommand(c *sstlClient) {
	popGenericCommand(c, AL_START_HEAD)
}

// rpop key
func rPopCommand(c *sstlClient) {
	popGenericCommand(c, AL_START_TAIL)
}

// lrange key
func lRangeCommand(c *sstlClient) {
	rangeGenericCommand(c, AL_START_HEAD)
}

// lrevrange key
func lRevRangeCommand(c *sstlClient) {
	rangeGenericCommand(c, AL_START_TAIL)
}

// lrem key value
//
// Removes the first element equal to value.
func lRemCommand(c *sstlClient) {
	o := c.db.lookupKeyOrReply(c, c.args[1], shared.czero)
	if o == nil || !o.checkType(c, STL_LIST) {
		return
	}
	if assertList(o).Remove(NewString(c.args[2]), equalValues) {
		c.setReply(shared.cone)
		return
	}
	c.setReply(shared.czero)
}

// lresize key size value
func lResizeCommand(c *sstlClient) {
	var n int
	if !c.getSizeFromArgOrReply(2, &n) {
		return
	}
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_LIST, createListObject)
	if o == nil {
		return
	}
	assertList(o).Resize(n, NewString(c.args[3]))
	c.setReply(shared.ok)
}
