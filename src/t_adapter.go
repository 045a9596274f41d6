package src

//-----------------------------------------------------------------------------
// Queue commands
//-----------------------------------------------------------------------------

// qpush key value [value ...]
func qPushCommand(c *sstlClient) {
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_QUEUE, createQueueObject)
	if o == nil {
		return
	}
	q := assertQueue(o).q
	for _, e := range c.elemArgs(2) {
		q.Push(e)
	}
	c.addReplyLongLong(int64(q.Size()))
}

// qpop key
func qPopCommand(c *sstlClient) {
	o := c.db.lookupKeyTypeOrReply(c, c.args[1], STL_QUEUE)
	if o == nil {
		return
	}
	q := assertQueue(o).q
	c.addReplyBulk(q.Front())
	q.Pop()
}

// qfront key
func qFrontCommand(c *sstlClient) {
	o := c.db.lookupKeyTypeOrReply(c, c.args[1], STL_QUEUE)
	if o == nil {
		return
	}
	c.addReplyBulk(assertQueue(o).q.Front())
}

//-----------------------------------------------------------------------------
// Stack commands
//-----------------------------------------------------------------------------

// spush key value [value ...]
func stPushCommand(c *sstlClient) {
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_STACK, createStackObject)
	if o == nil {
		return
	}
	s := assertStack(o).s
	for _, e := range c.elemArgs(2) {
		s.Push(e)
	}
	c.addReplyLongLong(int64(s.Size()))
}

// spop key
func stPopCommand(c *sstlClient) {
	o := c.db.lookupKeyTypeOrReply(c, c.args[1], STL_STACK)
	if o == nil {
		return
	}
	s := assertStack(o).s
	c.addReplyBulk(s.Top())
	s.Pop()
}

// stop key
func stTopCommand(c *sstlClient) {
	o := c.db.lookupKeyTypeOrReply(c, c.args[1], STL_STACK)
	if o == nil {
		return
	}
	c.addReplyBulk(assertStack(o).s.Top())
}
