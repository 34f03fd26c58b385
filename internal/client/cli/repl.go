package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, number, size int) error
	Go(ctx context.Context, url string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("staffview %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist, page <n> [size], go <url>, logout, exit")
			} else {
				printlnFn("Available commands: login, go <url>, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "page":
			number, size, ok := parsePage(args)
			if !ok {
				printlnFn("Usage: page <n> [size]")
				continue
			}
			cmdErr = a.Page(ctx, number, size)

		case "go":
			if len(args) != 1 {
				printlnFn("Usage: go <url>")
				continue
			}
			cmdErr = a.Go(ctx, args[0])

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}

func parsePage(args []string) (number, size int, ok bool) {
	if len(args) < 1 || len(args) > 2 {
		return 0, 0, false
	}
	number, err := strconv.Atoi(args[0])
	if err != nil || number < 1 {
		return 0, 0, false
	}
	if len(args) == 2 {
		size, err = strconv.Atoi(args[1])
		if err != nil || size < 1 {
			return 0, 0, false
		}
	}
	return number, size, true
}
