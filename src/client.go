package src

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ILkUVayne/utlis-go/v2/str"
)

// sstlClient 命令执行上下文
type sstlClient struct {
	db         *sstlDB      // 数据库指针
	args       []string     // command args
	cmd        *sstlCommand // 客户端需要执行的命令
	reply      *sstlReply   // reply of the last command
	heapOrder  string       // order of heaps created by hpush
	maxListing int          // array replies print at most this many items
	width      int          // terminal columns, 0 when not a terminal
}

func createClient(db *sstlDB) *sstlClient {
	c := &sstlClient{
		db:         db,
		heapOrder:  HEAP_ORDER_MAX,
		maxListing: DEFAULT_MAX_LISTING,
	}
	if config != nil {
		c.heapOrder = config.HeapOrder
		c.maxListing = config.MaxListing
	}
	return c
}

func resetClient(c *sstlClient) {
	c.args = nil
	c.cmd = nil
}

// execute runs one tokenized command line and returns the formatted reply.
func (c *sstlClient) execute(args []string) string {
	if len(args) == 0 {
		return ""
	}
	c.args = args
	c.reply = nil
	processCommand(c)
	resetClient(c)
	if c.reply == nil {
		return ""
	}
	return c.reply.format(c.maxListing, c.width)
}

//-----------------------------------------------------------------------------
// reply
//-----------------------------------------------------------------------------

func (c *sstlClient) setReply(r *sstlReply) {
	c.reply = r
}

func (c *sstlClient) addReplyStatus(s string) {
	c.setReply(&sstlReply{typ: SIMPLE_STR, str: s})
}

func (c *sstlClient) addReplyError(s string) {
	c.setReply(&sstlReply{typ: SIMPLE_ERROR, str: s})
}

func (c *sstlClient) addReplyErrorFormat(format string, a ...any) {
	c.addReplyError(fmt.Sprintf(format, a...))
}

func (c *sstlClient) addReplyLongLong(n int64) {
	c.setReply(&sstlReply{typ: INTEGERS, str: strconv.FormatInt(n, 10)})
}

func (c *sstlClient) addReplyBulk(s *String) {
	if s == nil {
		c.addReplyNil()
		return
	}
	c.setReply(&sstlReply{typ: BULK_STR, str: s.String()})
}

func (c *sstlClient) addReplyNil() {
	c.setReply(shared.nullBulk)
}

func (c *sstlClient) addReplyArray(elems []string) {
	c.setReply(&sstlReply{typ: ARRAYS, elems: elems})
}

// addReplyPos replies a find result, NPOS as -1.
func (c *sstlClient) addReplyPos(pos int) {
	if pos == NPOS {
		c.addReplyLongLong(-1)
		return
	}
	c.addReplyLongLong(int64(pos))
}

//-----------------------------------------------------------------------------
// args
//-----------------------------------------------------------------------------

// getIntFromArgOrReply parses c.args[i] into n, replying an error when it
// is not an integer.
func (c *sstlClient) getIntFromArgOrReply(i int, n *int) bool {
	var v int64
	if str.String2Int64(c.args[i], &v) != nil {
		c.setReply(shared.notInt)
		return false
	}
	*n = int(v)
	return true
}

// getSizeFromArgOrReply is getIntFromArgOrReply that also rejects n < 0.
func (c *sstlClient) getSizeFromArgOrReply(i int, n *int) bool {
	if !c.getIntFromArgOrReply(i, n) {
		return false
	}
	if *n < 0 {
		c.addReplyErrorFormat("ERR %s", ERR_NEGATIVE_SIZE.Error())
		return false
	}
	return true
}

// getPosFromArgOrReply is getIntFromArgOrReply that also accepts "npos".
func (c *sstlClient) getPosFromArgOrReply(i int, n *int) bool {
	if strings.EqualFold(c.args[i], "npos") {
		*n = NPOS
		return true
	}
	return c.getIntFromArgOrReply(i, n)
}

// return args[from:] as elements
func (c *sstlClient) elemArgs(from int) []*String {
	elems := make([]*String, 0, len(c.args)-from)
	for _, v := range c.args[from:] {
		elems = append(elems, NewString(v))
	}
	return elems
}
