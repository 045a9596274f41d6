// Package src
//
// Lib args provides cli parameter parsing and command line tokenizing
package src

import (
	"flag"
	"unicode"
)

var transChar = map[byte]byte{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'b': '\b',
	'a': '\a',
}

// ------------------------------ args tools --------------------------

// return next not space index by index
//
// e.g. s = "hello  world" i = 5, will return 7
func nextLineIdx(line string, i int) int {
	for i < len(line) && unicode.IsSpace(rune(line[i])) {
		i++
	}
	return i
}

func checkTerminated(line string, key byte, i int) (status int) {
	// closing quote must be followed by a space or nothing at all
	if line[i] == key {
		if i+1 < len(line) && !unicode.IsSpace(rune(line[i+1])) {
			return SPA_TERMINATED
		}
		return SPA_DONE
	}
	// unterminated quotes
	if i+1 == len(line) {
		return SPA_TERMINATED
	}
	return SPA_CONTINUE
}

func normalHandle(line string, i int) (string, int, int) {
	current := NewString("")
	for ; i < len(line); i++ {
		if unicode.IsSpace(rune(line[i])) {
			break
		}
		current.PushBack(line[i])
	}
	return current.String(), i, SPA_DONE
}

func quotesHandle(line string, i int) (string, int, int) {
	current := NewString("")
	for ; i < len(line); i++ {
		// e.g. \r \n \" and so on
		if line[i] == '\\' && i+1 < len(line) {
			i++
			tc, ok := transChar[line[i]]
			if !ok {
				tc = line[i]
			}
			current.PushBack(tc)
			if i+1 == len(line) {
				return current.String(), i, SPA_TERMINATED
			}
			continue
		}
		if status := checkTerminated(line, '"', i); status != SPA_CONTINUE {
			return current.String(), i, status
		}
		current.PushBack(line[i])
	}
	return current.String(), i, SPA_TERMINATED
}

func singleQuotesHandle(line string, i int) (string, int, int) {
	current := NewString("")
	for ; i < len(line); i++ {
		if line[i] == '\\' && i+1 < len(line) && line[i+1] == '\'' {
			current.PushBack('\'')
			i++
			if i+1 == len(line) {
				return current.String(), i, SPA_TERMINATED
			}
			continue
		}
		if status := checkTerminated(line, '\'', i); status != SPA_CONTINUE {
			return current.String(), i, status
		}
		current.PushBack(line[i])
	}
	return current.String(), i, SPA_TERMINATED
}

// splitArgs tokenizes a command line the way redis-cli does: arguments are
// separated by spaces and may be "double" or 'single' quoted. It returns
// nil for an empty line or unbalanced quotes.
func splitArgs(line string) []string {
	if len(line) == 0 {
		return nil
	}
	var args []string
	// skip space
	i := nextLineIdx(line, 0)
	for i < len(line) {
		current, end, status := splitArgsHandle(line[i], line, i)
		if status == SPA_TERMINATED {
			return nil
		}
		args = append(args, current)
		i = nextLineIdx(line, end+1)
	}
	return args
}

// ------------------------------- cli args ---------------------------

type cliArgs struct {
	confPath string // config file path
	prompt   string // client cli prompt, overrides the config
	version  bool
}

var CliArgs cliArgs

func ParseCliArgs() {
	flag.StringVar(&CliArgs.confPath, "c", CONFIG, "config path")
	flag.StringVar(&CliArgs.prompt, "prompt", "", "cli prompt")
	flag.BoolVar(&CliArgs.version, "v", false, "print version and exit")
	flag.Parse()
}
