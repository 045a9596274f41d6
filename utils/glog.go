package utils

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

const (
	InfoLevel = iota
	ErrorLevel
	Disabled
)

var levelNames = map[string]int{
	"info":     InfoLevel,
	"error":    ErrorLevel,
	"disabled": Disabled,
}

// replies go to stdout, so the log stays on stderr
var (
	errorLog = log.New(os.Stderr, "\033[31m[error]\033[0m ", log.LstdFlags|log.Lshortfile)
	infoLog  = log.New(os.Stderr, "\033[34m[info]\033[0m ", log.LstdFlags)
	loggers  = []*log.Logger{errorLog, infoLog}
	mux      sync.Mutex
)

// Error ErrorF 会阻止defer执行
// ErrorP ErrorPf 不会会阻止defer执行，但需要手动return
var (
	Error   = errorLog.Fatal
	ErrorF  = errorLog.Fatalf
	ErrorP  = errorLog.Println
	ErrorPf = errorLog.Printf
	Info    = infoLog.Println
	InfoF   = infoLog.Printf
)

// ParseLevel maps info, error or disabled to its level.
func ParseLevel(name string) (int, bool) {
	level, ok := levelNames[strings.ToLower(name)]
	return level, ok
}

func SetLevel(level int) {
	mux.Lock()
	defer mux.Unlock()

	for _, logger := range loggers {
		logger.SetOutput(os.Stderr)
	}

	if ErrorLevel < level {
		errorLog.SetOutput(io.Discard)
	}
	if InfoLevel < level {
		infoLog.SetOutput(io.Discard)
	}
}

// SetLevelByName is SetLevel for a level name; unknown names leave the
// level unchanged.
func SetLevelByName(name string) bool {
	level, ok := ParseLevel(name)
	if ok {
		SetLevel(level)
	}
	return ok
}
