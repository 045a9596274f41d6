package src

//-----------------------------------------------------------------------------
// String commands
//-----------------------------------------------------------------------------

func lookupStringOrReply(c *sstlClient, key string) *String {
	o := c.db.lookupKeyTypeOrReply(c, key, STL_STRING)
	if o == nil {
		return nil
	}
	return assertString(o)
}

// sset key value
//
// An existing string is assigned in place, any other value is replaced.
func sSetCommand(c *sstlClient) {
	o := c.db.lookupKey(c.args[1])
	if o != nil && o.Typ == STL_STRING {
		assertString(o).Assign(NewString(c.args[2]))
	} else {
		c.db.dbSet(c.args[1], createStringObject(c.args[2]))
	}
	c.setReply(shared.ok)
}

// sget key
func sGetCommand(c *sstlClient) {
	if s := lookupStringOrReply(c, c.args[1]); s != nil {
		c.addReplyBulk(s)
	}
}

// sappend key value
func sAppendCommand(c *sstlClient) {
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_STRING, func() *STLobj { return createStringObject("") })
	if o == nil {
		return
	}
	s := assertString(o)
	s.Append(c.args[2])
	c.addReplyLongLong(int64(s.Size()))
}

// sinsert key pos value
func sInsertCommand(c *sstlClient) {
	var pos int
	s := lookupStringOrReply(c, c.args[1])
	if s == nil || !c.getIntFromArgOrReply(2, &pos) {
		return
	}
	if len(c.args[3]) == 1 {
		s.Insert(pos, c.args[3][0])
	} else {
		s.InsertString(pos, c.args[3])
	}
	c.addReplyLongLong(int64(s.Size()))
}

// serase key pos count
//
// count may be npos to erase through the end.
func sEraseCommand(c *sstlClient) {
	var pos, n int
	s := lookupStringOrReply(c, c.args[1])
	if s == nil || !c.getIntFromArgOrReply(2, &pos) || !c.getPosFromArgOrReply(3, &n) {
		return
	}
	s.Erase(pos, n)
	c.addReplyLongLong(int64(s.Size()))
}

// sfind key text [pos]
// srfind key text [pos]
func findGenericCommand(c *sstlClient, reverse bool) {
	if len(c.args) > 4 {
		c.setReply(shared.syntax)
		return
	}
	pos := 0
	if reverse {
		pos = NPOS
	}
	s := lookupStringOrReply(c, c.args[1])
	if s == nil {
		return
	}
	if len(c.args) == 4 && !c.getPosFromArgOrReply(3, &pos) {
		return
	}
	text := c.args[2]
	switch {
	case len(text) == 1 && reverse:
		c.addReplyPos(s.RFind(text[0], pos))
	case len(text) == 1:
		c.addReplyPos(s.Find(text[0], pos))
	case reverse:
		c.addReplyPos(s.RFindString(text, pos))
	default:
		c.addReplyPos(s.FindString(text, pos))
	}
}

func sFindCommand(c *sstlClient) {
	findGenericCommand(c, false)
}

func sRFindCommand(c *sstlClient) {
	findGenericCommand(c, true)
}

// sresize key size char
func sResizeCommand(c *sstlClient) {
	var n int
	if !c.getSizeFromArgOrReply(2, &n) {
		return
	}
	if len(c.args[3]) != 1 {
		c.setReply(shared.syntax)
		return
	}
	o := c.db.lookupKeyWriteOrCreate(c, c.args[1], STL_STRING, func() *STLobj { return createStringObject("") })
	if o == nil {
		return
	}
	assertString(o).Resize(n, c.args[3][0])
	c.setReply(shared.ok)
}

// scmp key1 key2
func sCmpCommand(c *sstlClient) {
	a := lookupStringOrReply(c, c.args[1])
	if a == nil {
		return
	}
	b := lookupStringOrReply(c, c.args[2])
	if b == nil {
		return
	}
	c.addReplyLongLong(int64(a.Compare(b)))
}
