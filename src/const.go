package src

//-----------------------------------------------------------------------------
// base
//-----------------------------------------------------------------------------

const (
	UNKNOWN = "unknown"

	// NPOS is returned by the find family on a miss. It equals the largest
	// representable size, so it never collides with a valid index.
	NPOS = int(^uint(0) >> 1)
)

//-----------------------------------------------------------------------------
// errors
//-----------------------------------------------------------------------------

const (
	ERR_OUT_OF_RANGE  = stlError(0x01) /* index outside [0, size) */
	ERR_EMPTY         = stlError(0x02) /* pop/front/back/top on an empty container */
	ERR_END_POSITION  = stlError(0x03) /* erase or dereference at end() */
	ERR_BAD_POSITION  = stlError(0x04) /* insert position beyond size */
	ERR_NIL_SEQUENCE  = stlError(0x05) /* heap or adapter built without backing storage */
	ERR_NIL_COMPARE   = stlError(0x06) /* heap built without a comparator */
	ERR_FOREIGN_ITER  = stlError(0x07) /* position belongs to another container */
	ERR_NEGATIVE_SIZE = stlError(0x08) /* reserve/resize with n < 0 */
)

//-----------------------------------------------------------------------------
// growth
//-----------------------------------------------------------------------------

const (
	// DEFAULT_INIT_CAP is the capacity a full, never allocated buffer grows to.
	DEFAULT_INIT_CAP = 4
	// GROWTH_RATIO is applied to the capacity of a full buffer.
	GROWTH_RATIO = 2

	TERMINATOR byte = 0
)

//-----------------------------------------------------------------------------
// list
//-----------------------------------------------------------------------------

const (
	AL_START_HEAD = 0
	AL_START_TAIL = 1
)

//-----------------------------------------------------------------------------
// stlobj
//-----------------------------------------------------------------------------

// STL_VECTOR 动态数组
// STL_STRING 字符串
// STL_LIST 双向链表
// STL_PQUEUE 优先级队列
// STL_QUEUE 队列
// STL_STACK 栈
const (
	STL_VECTOR STLType = iota
	STL_STRING
	STL_LIST
	STL_PQUEUE
	STL_QUEUE
	STL_STACK
)

const (
	HEAP_ORDER_MAX = "max"
	HEAP_ORDER_MIN = "min"
)

//-----------------------------------------------------------------------------
// cli
//-----------------------------------------------------------------------------

const (
	SSTL_VERSION = "0.1.0"

	CLI_OK  = 0
	CLI_ERR = 1

	CONFIG = "./sstl.conf"

	DEFAULT_PROMPT = "sstl> "

	SSTL_CLI_HISTFILE_DEFAULT = ".sstlcli_history"

	DEFAULT_MAX_LISTING = 128

	// splitArgs status

	SPA_CONTINUE   = 1
	SPA_DONE       = 2
	SPA_TERMINATED = 3
)

//-----------------------------------------------------------------------------
// reply
//-----------------------------------------------------------------------------

const (
	NIL_STR   = "(nil)"
	EMPTY_ARR = "(empty array)"

	REPLY_OK = "OK"

	REPLY_UNKNOWN  = "ERR unknown command '%s'"
	REPLY_ARGS_NUM = "ERR wrong number of arguments for '%s' command"
	REPLY_WRONG_TY = "WRONGTYPE Operation against a key holding the wrong kind of value"
	REPLY_NOT_INT  = "ERR value is not an integer or out of range"
	REPLY_NO_KEY   = "ERR no such key"
	REPLY_SYNTAX   = "ERR syntax error"
)

const (
	SIMPLE_STR   = iota + 1 // OK
	SIMPLE_ERROR            // (error) ...
	INTEGERS                // (integer) n
	BULK_STR                // "text" or (nil)
	ARRAYS                  // 1) ... n)
)

//-----------------------------------------------------------------------------
// cmd
//-----------------------------------------------------------------------------

const (
	PING     = "ping"
	KEYS     = "keys"
	DEL      = "del"
	TYPE     = "type"
	LEN      = "len"
	EXISTS   = "exists"
	FLUSHALL = "flushall"
	COPY     = "copy"
	SWAP     = "swap"

	// vector command

	V_PUSH    = "vpush"
	V_POP     = "vpop"
	V_GET     = "vget"
	V_SET     = "vset"
	V_INSERT  = "vinsert"
	V_ERASE   = "verase"
	V_RESIZE  = "vresize"
	V_RESERVE = "vreserve"
	V_CAP     = "vcap"
	V_RANGE   = "vrange"
	V_SORT    = "vsort"

	// string command

	S_SET    = "sset"
	S_GET    = "sget"
	S_APPEND = "sappend"
	S_INSERT = "sinsert"
	S_ERASE  = "serase"
	S_FIND   = "sfind"
	S_RFIND  = "srfind"
	S_RESIZE = "sresize"
	S_CMP    = "scmp"

	// list command

	L_PUSH     = "lpush"
	R_PUSH     = "rpush"
	L_POP      = "lpop"
	R_POP      = "rpop"
	L_RANGE    = "lrange"
	L_REVRANGE = "lrevrange"
	L_REM      = "lrem"
	L_RESIZE   = "lresize"

	// heap command

	H_NEW  = "hnew"
	H_PUSH = "hpush"
	H_POP  = "hpop"
	H_TOP  = "htop"

	// adapter command

	Q_PUSH  = "qpush"
	Q_POP   = "qpop"
	Q_FRONT = "qfront"
	ST_PUSH = "spush"
	ST_POP  = "spop"
	ST_TOP  = "stop"
)
