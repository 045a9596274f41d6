package src

import (
	"strings"

	"github.com/ILkUVayne/utlis-go/v2/time"

	"simple-stl/utils"
)

type CommandProc func(c *sstlClient)

// sstlCommand arity: > 0 means exactly arity args (command name included),
// < 0 means at least -arity args.
type sstlCommand struct {
	name  string
	proc  CommandProc
	arity int
}

// 查询需要执行的命令
func lookupCommand(cmdStr string) *sstlCommand {
	for i := range commandTable {
		if commandTable[i].name == cmdStr {
			return &commandTable[i]
		}
	}
	return nil
}

func (cmd *sstlCommand) checkArity(argc int) bool {
	if cmd.arity > 0 {
		return argc == cmd.arity
	}
	return argc >= -cmd.arity
}

// 执行命令
//
// A broken container precondition inside a command becomes an error reply;
// any other panic is not ours and keeps unwinding.
func processCommand(c *sstlClient) {
	cmdStr := strings.ToLower(c.args[0])
	start := time.GetMsTime()
	defer func() {
		if r := recover(); r != nil {
			if !IsContractViolation(r) {
				panic(r)
			}
			c.addReplyErrorFormat("ERR %s", r.(stlError).Error())
		}
		utils.Info("process command: ", cmdStr, " cost(ms): ", utils.SinceMs(start))
	}()

	c.cmd = lookupCommand(cmdStr)
	if c.cmd == nil {
		c.addReplyErrorFormat(REPLY_UNKNOWN, cmdStr)
		return
	}
	if !c.cmd.checkArity(len(c.args)) {
		c.addReplyErrorFormat(REPLY_ARGS_NUM, cmdStr)
		return
	}
	c.cmd.proc(c)
}

// commandNames returns every command name starting with prefix.
func commandNames(prefix string) []string {
	names := make([]string, 0)
	for _, cmd := range commandTable {
		if strings.HasPrefix(cmd.name, prefix) {
			names = append(names, cmd.name)
		}
	}
	return names
}

// =================================== command ====================================

// commandTable 命令列表
var commandTable = []sstlCommand{
	{PING, pingCommand, 1},
	{KEYS, keysCommand, 2},
	{DEL, delCommand, -2},
	{TYPE, typeCommand, 2},
	{LEN, lenCommand, 2},
	{EXISTS, existsCommand, 2},
	{FLUSHALL, flushAllCommand, 1},
	{COPY, copyCommand, 3},
	{SWAP, swapCommand, 3},
	// vector
	{V_PUSH, vPushCommand, -3},
	{V_POP, vPopCommand, 2},
	{V_GET, vGetCommand, 3},
	{V_SET, vSetCommand, 4},
	{V_INSERT, vInsertCommand, 4},
	{V_ERASE, vEraseCommand, 3},
	{V_RESIZE, vResizeCommand, 4},
	{V_RESERVE, vReserveCommand, 3},
	{V_CAP, vCapCommand, 2},
	{V_RANGE, vRangeCommand, 2},
	{V_SORT, vSortCommand, 2},
	// string
	{S_SET, sSetCommand, 3},
	{S_GET, sGetCommand, 2},
	{S_APPEND, sAppendCommand, 3},
	{S_INSERT, sInsertCommand, 4},
	{S_ERASE, sEraseCommand, 4},
	{S_FIND, sFindCommand, -3},
	{S_RFIND, sRFindCommand, -3},
	{S_RESIZE, sResizeCommand, 4},
	{S_CMP, sCmpCommand, 3},
	// list
	{L_PUSH, lPushCommand, -3},
	{R_PUSH, rPushCommand, -3},
	{L_POP, lPopCommand, 2},
	{R_POP, rPopCommand, 2},
	{L_RANGE, lRangeCommand, 2},
	{L_REVRANGE, lRevRangeCommand, 2},
	{L_REM, lRemCommand, 3},
	{L_RESIZE, lResizeCommand, 4},
	// heap
	{H_NEW, hNewCommand, 3},
	{H_PUSH, hPushCommand, -3},
	{H_POP, hPopCommand, 2},
	{H_TOP, hTopCommand, 2},
	// queue and stack
	{Q_PUSH, qPushCommand, -3},
	{Q_POP, qPopCommand, 2},
	{Q_FRONT, qFrontCommand, 2},
	{ST_PUSH, stPushCommand, -3},
	{ST_POP, stPopCommand, 2},
	{ST_TOP, stTopCommand, 2},
}
