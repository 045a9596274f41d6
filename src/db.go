package src

import (
	"golang.org/x/exp/slices"
)

// sstlDB is the in-memory keyspace the cli commands work on.
type sstlDB struct {
	data map[string]*STLobj
}

func createDB() *sstlDB {
	return &sstlDB{data: make(map[string]*STLobj)}
}

// get sstlDB.data by key, nil if missing
func (db *sstlDB) lookupKey(key string) *STLobj {
	return db.data[key]
}

// lookupKeyOrReply replies reply when key is missing. A nil reply sends
// (nil).
func (db *sstlDB) lookupKeyOrReply(c *sstlClient, key string, reply *sstlReply) *STLobj {
	o := db.lookupKey(key)
	if o == nil {
		if reply == nil {
			c.addReplyNil()
		} else {
			c.setReply(reply)
		}
	}
	return o
}

// lookupKeyTypeOrReply returns the value at key when it exists and has
// type typ; otherwise it replies (nil) or WRONGTYPE and returns nil.
func (db *sstlDB) lookupKeyTypeOrReply(c *sstlClient, key string, typ STLType) *STLobj {
	o := db.lookupKeyOrReply(c, key, nil)
	if o == nil || !o.checkType(c, typ) {
		return nil
	}
	return o
}

// lookupKeyWriteOrCreate returns the value at key, creating it with create
// when missing. It replies WRONGTYPE and returns nil on a type mismatch.
func (db *sstlDB) lookupKeyWriteOrCreate(c *sstlClient, key string, typ STLType, create func() *STLobj) *STLobj {
	o := db.lookupKey(key)
	if o == nil {
		o = create()
		db.dbSet(key, o)
		return o
	}
	if !o.checkType(c, typ) {
		return nil
	}
	return o
}

func (db *sstlDB) dbSet(key string, o *STLobj) {
	db.data[key] = o
}

// dbDel returns 1 if key was deleted, 0 if missing
func (db *sstlDB) dbDel(key string) int {
	if _, ok := db.data[key]; !ok {
		return 0
	}
	delete(db.data, key)
	return 1
}

func (db *sstlDB) dbSize() int {
	return len(db.data)
}

func (db *sstlDB) flush() {
	db.data = make(map[string]*STLobj)
}

// keys returns the keys matching the glob pattern, sorted.
func (db *sstlDB) keys(pattern string) []string {
	allKeys := pattern == "*"
	res := make([]string, 0)
	for k := range db.data {
		if allKeys || StringMatch(pattern, k, false) {
			res = append(res, k)
		}
	}
	slices.Sort(res)
	return res
}

//-----------------------------------------------------------------------------
// Keyspace commands
//-----------------------------------------------------------------------------

// ping
func pingCommand(c *sstlClient) {
	c.addReplyStatus("PONG")
}

// keys pattern
func keysCommand(c *sstlClient) {
	c.addReplyArray(c.db.keys(c.args[1]))
}

// del key [key ...]
func delCommand(c *sstlClient) {
	deleted := 0
	for _, key := range c.args[1:] {
		deleted += c.db.dbDel(key)
	}
	c.addReplyLongLong(int64(deleted))
}

// type key
func typeCommand(c *sstlClient) {
	o := c.db.lookupKey(c.args[1])
	if o == nil {
		c.addReplyStatus("none")
		return
	}
	c.addReplyStatus(o.strType())
}

// len key
func lenCommand(c *sstlClient) {
	o := c.db.lookupKeyOrReply(c, c.args[1], shared.czero)
	if o == nil {
		return
	}
	c.addReplyLongLong(int64(objectLength(o)))
}

// exists key
func existsCommand(c *sstlClient) {
	if c.db.lookupKey(c.args[1]) == nil {
		c.setReply(shared.czero)
		return
	}
	c.setReply(shared.cone)
}

// flushall
func flushAllCommand(c *sstlClient) {
	c.db.flush()
	c.setReply(shared.ok)
}

// copy source destination
//
// The destination becomes a deep copy of the source. A destination of the
// same type is assigned in place, any other destination is replaced.
func copyCommand(c *sstlClient) {
	src := c.db.lookupKeyOrReply(c, c.args[1], shared.noKeyErr)
	if src == nil {
		return
	}
	dst := c.db.lookupKey(c.args[2])
	if dst != nil && dst.Typ == src.Typ {
		assignObject(dst, src)
	} else {
		c.db.dbSet(c.args[2], dupObject(src))
	}
	c.setReply(shared.ok)
}

// swap key1 key2
//
// Exchanges the contents of two values of the same type without copying.
func swapCommand(c *sstlClient) {
	a := c.db.lookupKeyOrReply(c, c.args[1], shared.noKeyErr)
	if a == nil {
		return
	}
	b := c.db.lookupKeyOrReply(c, c.args[2], shared.noKeyErr)
	if b == nil || !b.checkType(c, a.Typ) {
		return
	}
	swapObject(a, b)
	c.setReply(shared.ok)
}
