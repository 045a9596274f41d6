package src

import "strings"

//-----------------------------------------------------------------------------
// Priority queue commands
//-----------------------------------------------------------------------------

// hnew key max|min
func hNewCommand(c *sstlClient) {
	order := strings.ToLower(c.args[2])
	if checkHeapOrder(order) != nil {
		c.setReply(shared.syntax)
		return
	}
	c.db.dbSet(c.args[1], createPQueueObject(order))
	c.setReply(shared.ok)
}

// hpush key value [value ...]
func hPushCommand(c *sstlClient) {
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_PQUEUE, func() *STLobj {
		return createPQueueObject(c.heapOrder)
	})
	if o == nil {
		return
	}
	pq := assertHeap(o).pq
	for _, e := range c.elemArgs(2) {
		pq.Push(e)
	}
	c.addReplyLongLong(int64(pq.Size()))
}

// hpop key
func hPopCommand(c *sstlClient) {
	o := c.db.lookupKeyTypeOrReply(c, c.args[1], STL_PQUEUE)
	if o == nil {
		return
	}
	pq := assertHeap(o).pq
	c.addReplyBulk(pq.Top())
	pq.Pop()
}

// htop key
func hTopCommand(c *sstlClient) {
	o := c.db.lookupKeyTypeOrReply(c, c.args[1], STL_PQUEUE)
	if o == nil {
		return
	}
	c.addReplyBulk(assertHeap(o).pq.Top())
}
