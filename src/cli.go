package src

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GeertJohan/go.linenoise"
	"github.com/ILkUVayne/utlis-go/v2/ulog"
	"github.com/mattn/go-isatty"

	"simple-stl/utils"
)

/*------------------------------------------------------------------------------
 * Setup
 *--------------------------------------------------------------------------- */

func cliInit() *sstlClient {
	SetupConf(CliArgs.confPath)
	if CliArgs.prompt != "" {
		config.Prompt = CliArgs.prompt
	}
	utils.SetLevelByName(config.LogLevel)
	return createClient(createDB())
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func isQuit(args []string) bool {
	if len(args) != 1 {
		return false
	}
	cmd := strings.ToLower(args[0])
	return cmd == "quit" || cmd == "exit"
}

/*------------------------------------------------------------------------------
 * User interface
 *--------------------------------------------------------------------------- */

func completionCallback(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}
	return commandNames(strings.ToLower(line))
}

// repl reads command lines with linenoise until quit, exit or ^C/^D.
func repl(c *sstlClient) {
	if isTerminal(os.Stdout) {
		c.width = utils.TerminalWidth(int(os.Stdout.Fd()))
	}
	history := HistoryFile(config.HistoryFile)
	linenoise.SetMultiline(config.Multiline)
	linenoise.SetCompletionHandler(completionCallback)
	if _, err := os.Stat(history); err == nil {
		if err = linenoise.LoadHistory(history); err != nil {
			ulog.ErrorP("load history: ", err)
		}
	}

	for {
		line, err := linenoise.Line(config.Prompt)
		if err != nil {
			if err != linenoise.KillSignalError {
				ulog.ErrorP(err)
			}
			return
		}
		args := splitArgs(line)
		if args == nil {
			if strings.TrimSpace(line) != "" {
				fmt.Println("Invalid argument(s)")
			}
			continue
		}
		if err = linenoise.AddHistory(line); err == nil {
			err = linenoise.SaveHistory(history)
		}
		if err != nil {
			ulog.ErrorP("save history: ", err)
		}
		if isQuit(args) {
			return
		}
		fmt.Println(c.execute(args))
	}
}

// runScript executes one command per line of r, writing replies to w.
func runScript(c *sstlClient, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	line := new(String)
	for {
		err := line.ReadLine(br)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		args := splitArgs(line.String())
		if args == nil {
			if strings.TrimSpace(line.String()) != "" {
				if _, err = fmt.Fprintln(w, "Invalid argument(s)"); err != nil {
					return err
				}
			}
			continue
		}
		if isQuit(args) {
			return nil
		}
		if _, err = fmt.Fprintln(w, c.execute(args)); err != nil {
			return err
		}
	}
}

// noninteractive runs each argument as one command line.
func noninteractive(c *sstlClient, lines []string, w io.Writer) int {
	for _, l := range lines {
		args := splitArgs(l)
		if args == nil {
			fmt.Fprintln(w, "Invalid argument(s)")
			return CLI_ERR
		}
		fmt.Fprintln(w, c.execute(args))
	}
	return CLI_OK
}

func CliStart(args []string) {
	if CliArgs.version {
		fmt.Printf("sstl-cli %s\n", SSTL_VERSION)
		return
	}
	c := cliInit()

	// each argument is one command line
	if len(args) > 0 {
		os.Exit(noninteractive(c, args, os.Stdout))
	}

	// commands piped on stdin
	if !isTerminal(os.Stdin) {
		if err := runScript(c, os.Stdin, os.Stdout); err != nil {
			ulog.Error(err)
		}
		return
	}

	// Start interactive mode when no command is provided
	repl(c)
}
